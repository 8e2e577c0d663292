package main

import (
	"sync"
)

type quizState int

const (
	stateNotStarted quizState = iota
	stateInProgress
	stateCompleted
)

// QuizSession is one user's in-flight quiz. QuestionIDs is the bank order
// snapshotted at start time; question number n (1-based) always resolves
// through it, so bank edits mid-session never renumber the sequence.
type QuizSession struct {
	State       quizState
	QuestionIDs []uint
	Score       int
	Answered    int
}

func (qs *QuizSession) Total() int {
	return len(qs.QuestionIDs)
}

// QuestionID maps a 1-based question number onto the snapshot. ok is false
// past the end of the sequence.
func (qs *QuizSession) QuestionID(n int) (uint, bool) {
	if n < 1 || n > len(qs.QuestionIDs) {
		return 0, false
	}
	return qs.QuestionIDs[n-1], true
}

func (qs *QuizSession) RecordAnswer(correct bool) {
	if qs.State != stateInProgress {
		return
	}
	if correct {
		qs.Score++
	}
	qs.Answered++
}

// Finalize moves the session to Completed and reports the final score. Only
// the first call returns first=true; callers record a result exactly then, so
// hitting submit and the results page in either order persists one row.
func (qs *QuizSession) Finalize() (score, total int, first bool) {
	score, total = qs.Score, len(qs.QuestionIDs)
	if qs.State != stateInProgress {
		return score, total, false
	}
	qs.State = stateCompleted
	qs.Score = 0
	qs.Answered = 0
	return score, total, true
}

// quizSessionStore keeps in-flight sessions in process memory, keyed by the
// uuid held in the client's cookie session.
type quizSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*QuizSession
}

func newQuizSessionStore() *quizSessionStore {
	return &quizSessionStore{sessions: make(map[string]*QuizSession)}
}

// Start replaces any session under key with a fresh in-progress one.
func (s *quizSessionStore) Start(key string, questionIDs []uint) *QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	qs := &QuizSession{State: stateInProgress, QuestionIDs: questionIDs}
	s.sessions[key] = qs
	return qs
}

func (s *quizSessionStore) Get(key string) *QuizSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[key]
}

func (s *quizSessionStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
}
