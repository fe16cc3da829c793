package server

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// SetAnswer is one ranked answer inside a persisted question set.
type SetAnswer struct {
	Rank   int    `json:"rank"`
	Text   string `json:"text"`
	Points int    `json:"points"`
}

// SetQuestion is one question inside a persisted question set.
type SetQuestion struct {
	Text    string      `json:"text"`
	Answers []SetAnswer `json:"answers"`
}

type QuestionSetSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	QuestionCount int    `json:"questionCount"`
	CreatedAt     string `json:"createdAt"`
}

type QuestionSetDetail struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Questions []SetQuestion `json:"questions"`
	CreatedAt string        `json:"createdAt"`
}

type QuestionSetRequest struct {
	Name      string        `json:"name"`
	Questions []SetQuestion `json:"questions"`
}

// Store is the persistence boundary: question sets and admin auth.
// Game sessions themselves live only in memory.
type Store interface {
	ListQuestionSets(ctx context.Context) ([]QuestionSetSummary, error)
	CreateQuestionSet(ctx context.Context, req QuestionSetRequest) (QuestionSetDetail, error)
	GetQuestionSet(ctx context.Context, id string) (QuestionSetDetail, error)
	UpdateQuestionSet(ctx context.Context, id string, req QuestionSetRequest) (QuestionSetDetail, error)
	DeleteQuestionSet(ctx context.Context, id string) error
	CountQuestionSets(ctx context.Context) (int, error)

	AdminByEmail(ctx context.Context, email string) (adminID, passwordHash string, err error)
	CreateAdmin(ctx context.Context, email, passwordHash string) error
	CountAdmins(ctx context.Context) (int, error)
	CreateAdminSession(ctx context.Context, adminID string) (string, error)
	AdminFromSession(ctx context.Context, sessionID string) (adminSession, error)
	DeleteAdminSession(ctx context.Context, sessionID string) error
}
