package models

import (
	"testing"

	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/require"
)

// setupTestDB points the package at a fresh in-memory SQLite database.
// A single connection keeps every query on the same memory store.
func setupTestDB(t *testing.T) {
	db, err := gorm.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.DB().SetMaxOpenConns(1)

	DB = db
	Migrate(db)
	t.Cleanup(func() { db.Close() })
}

func mustRegister(t *testing.T, username string) *User {
	user, err := RegisterUser(username, "secret")
	require.NoError(t, err)
	return user
}

func sampleQuestion(text, answer string) Question {
	return Question{
		Question: text,
		OptionA:  "red",
		OptionB:  "green",
		OptionC:  "blue",
		OptionD:  "yellow",
		Answer:   answer,
	}
}
