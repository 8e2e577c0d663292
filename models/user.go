package models

import (
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID       uint         `gorm:"primary_key" json:"id"`
	Username string       `gorm:"type:varchar(150);not null" json:"username"`
	Password string       `gorm:"type:varchar(150);not null" json:"-"`
	IsAdmin  bool         `gorm:"default:false" json:"is_admin"`
	Results  []QuizResult `gorm:"ForeignKey:UserID" json:"-"`
}

type Users []User

// RegisterUser hashes the password and creates the account. The first user
// ever created becomes an admin; the count check and the insert run in one
// transaction, with the unique index on username as the backstop against
// concurrent registrations.
func RegisterUser(username, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{Username: username, Password: string(hash)}

	tx := DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var existing User
	if !tx.Where("username = ?", username).First(&existing).RecordNotFound() {
		tx.Rollback()
		return nil, ErrUsernameTaken
	}

	var count int
	if err := tx.Model(&User{}).Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	user.IsAdmin = count == 0

	if err := tx.Create(&user).Error; err != nil {
		// unique index violation from a racing registration
		tx.Rollback()
		return nil, ErrUsernameTaken
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks a username/password pair against the stored hash.
func AuthenticateUser(username, password string) (*User, error) {
	var user User
	if DB.Where("username = ?", username).First(&user).RecordNotFound() {
		return nil, ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredential
	}
	return &user, nil
}

func FindUserByID(id uint) (*User, error) {
	var user User
	if DB.First(&user, id).RecordNotFound() {
		return nil, ErrNotFound
	}
	return &user, nil
}

func AllUsers() (Users, error) {
	var users Users
	err := DB.Order("id").Find(&users).Error
	return users, err
}

// PromoteUser sets the admin flag. Promoting an admin again is a no-op.
func PromoteUser(id uint) (*User, error) {
	user, err := FindUserByID(id)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		return user, nil
	}
	if err := DB.Model(user).Update("is_admin", true).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes the user's quiz results and then the user itself, in one
// transaction so no orphaned results survive.
func DeleteUser(id uint) error {
	user, err := FindUserByID(id)
	if err != nil {
		return err
	}

	tx := DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Where("user_id = ?", user.ID).Delete(&QuizResult{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(user).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
