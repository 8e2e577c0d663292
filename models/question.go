package models

import (
	"gopkg.in/go-playground/validator.v9"
)

type Question struct {
	ID       uint   `gorm:"primary_key" json:"id"`
	Question string `gorm:"type:varchar(200);not null" json:"question" validate:"required"`
	OptionA  string `gorm:"type:varchar(100);not null" json:"option_a" validate:"required"`
	OptionB  string `gorm:"type:varchar(100);not null" json:"option_b" validate:"required"`
	OptionC  string `gorm:"type:varchar(100);not null" json:"option_c" validate:"required"`
	OptionD  string `gorm:"type:varchar(100);not null" json:"option_d" validate:"required"`
	Answer   string `gorm:"type:varchar(100);not null" json:"answer" validate:"required"`
}

type Questions []Question

var validate = validator.New()

// Options returns the four choices in display order.
func (q *Question) Options() []string {
	return []string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}

// AddQuestions validates every item up front and inserts the batch in one
// transaction. One invalid item rejects the whole batch.
func AddQuestions(questions []Question) error {
	for i := range questions {
		if err := validate.Struct(&questions[i]); err != nil {
			return err
		}
	}

	tx := DB.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	for i := range questions {
		if err := tx.Create(&questions[i]).Error; err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit().Error
}

func FindQuestion(id uint) (*Question, error) {
	var question Question
	if DB.First(&question, id).RecordNotFound() {
		return nil, ErrNotFound
	}
	return &question, nil
}

// UpdateQuestion overwrites all six fields of an existing question.
func UpdateQuestion(id uint, updated Question) (*Question, error) {
	question, err := FindQuestion(id)
	if err != nil {
		return nil, err
	}
	updated.ID = question.ID
	if err := validate.Struct(&updated); err != nil {
		return nil, err
	}
	if err := DB.Save(&updated).Error; err != nil {
		return nil, err
	}
	return &updated, nil
}

func DeleteQuestion(id uint) error {
	question, err := FindQuestion(id)
	if err != nil {
		return err
	}
	return DB.Delete(question).Error
}

func AllQuestions() (Questions, error) {
	var questions Questions
	err := DB.Order("id").Find(&questions).Error
	return questions, err
}

// QuestionIDs returns the bank's IDs in presentation order; quiz sessions
// snapshot this at start time.
func QuestionIDs() ([]uint, error) {
	var ids []uint
	err := DB.Model(&Question{}).Order("id").Pluck("id", &ids).Error
	return ids, err
}

func CountQuestions() (int, error) {
	var count int
	err := DB.Model(&Question{}).Count(&count).Error
	return count, err
}
