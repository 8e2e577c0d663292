package models

import (
	"errors"
	"log"
	"os"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

var DB *gorm.DB

var (
	ErrNotFound          = errors.New("record not found")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidCredential = errors.New("incorrect password")
)

// InitDB opens the database and migrates the schema. With DATABASE_URL set it
// connects to Postgres, otherwise it falls back to a local SQLite file.
func InitDB() *gorm.DB {
	var err error
	if url := os.Getenv("DATABASE_URL"); url != "" {
		DB, err = gorm.Open("postgres", url)
	} else {
		DB, err = gorm.Open("sqlite3", "database.db")
	}
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	Migrate(DB)
	return DB
}

func Migrate(db *gorm.DB) {
	db.AutoMigrate(&User{}, &Question{}, &QuizResult{})
	db.Model(&User{}).AddUniqueIndex("idx_users_username", "username")
	if db.Dialect().GetName() == "postgres" {
		db.Model(&QuizResult{}).AddForeignKey("user_id", "users(id)", "CASCADE", "CASCADE")
	}
}
