package models

import (
	"fmt"
	"time"
)

// QuizResult is one completed quiz. Rows are never updated after creation.
type QuizResult struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Score     int       `gorm:"not null" json:"score"`
	Total     int       `gorm:"not null" json:"total"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	CreatedAt time.Time `json:"date"`
}

type LeaderboardEntry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
	Total    int    `json:"total"`
}

func RecordResult(userID uint, score, total int) (*QuizResult, error) {
	if score < 0 || score > total {
		return nil, fmt.Errorf("score %d outside 0..%d", score, total)
	}
	result := QuizResult{Score: score, Total: total, UserID: userID}
	if err := DB.Create(&result).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// LatestResult returns the user's most recent result, or nil when they have
// never completed a quiz.
func LatestResult(userID uint) (*QuizResult, error) {
	var result QuizResult
	query := DB.Where("user_id = ?", userID).Order("id desc").First(&result)
	if query.RecordNotFound() {
		return nil, nil
	}
	if query.Error != nil {
		return nil, query.Error
	}
	return &result, nil
}

// UserHighScore returns the user's best score, zero when they have no results.
func UserHighScore(userID uint) (int, error) {
	var result QuizResult
	query := DB.Where("user_id = ?", userID).Order("score desc").First(&result)
	if query.RecordNotFound() {
		return 0, nil
	}
	if query.Error != nil {
		return 0, query.Error
	}
	return result.Score, nil
}

// Leaderboard returns the top results by score with usernames joined in.
func Leaderboard(limit int) ([]LeaderboardEntry, error) {
	entries := make([]LeaderboardEntry, 0, limit)
	err := DB.Table("quiz_results").
		Select("users.username, quiz_results.score, quiz_results.total").
		Joins("join users on users.id = quiz_results.user_id").
		Order("quiz_results.score desc").
		Limit(limit).
		Scan(&entries).Error
	return entries, err
}

func ResultsForUser(userID uint) ([]QuizResult, error) {
	var results []QuizResult
	err := DB.Where("user_id = ?", userID).Order("id").Find(&results).Error
	return results, err
}
