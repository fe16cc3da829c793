package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

// SQLiteStore implements Store on a single SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListQuestionSets(ctx context.Context) ([]QuestionSetSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, questions, created_at
		FROM question_sets
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sets []QuestionSetSummary
	for rows.Next() {
		var set QuestionSetSummary
		var questionsJSON string
		if err := rows.Scan(&set.ID, &set.Name, &questionsJSON, &set.CreatedAt); err != nil {
			return nil, err
		}
		var questions []json.RawMessage
		json.Unmarshal([]byte(questionsJSON), &questions)
		set.QuestionCount = len(questions)
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

func (s *SQLiteStore) CreateQuestionSet(ctx context.Context, req QuestionSetRequest) (QuestionSetDetail, error) {
	questionsJSON, err := json.Marshal(req.Questions)
	if err != nil {
		return QuestionSetDetail{}, fmt.Errorf("encoding questions: %w", err)
	}

	var id, createdAt string
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO question_sets (id, name, questions)
		VALUES (lower(hex(randomblob(16))), ?, ?)
		RETURNING id, created_at
	`, req.Name, string(questionsJSON)).Scan(&id, &createdAt)
	if err != nil {
		return QuestionSetDetail{}, err
	}

	return QuestionSetDetail{
		ID:        id,
		Name:      req.Name,
		Questions: req.Questions,
		CreatedAt: createdAt,
	}, nil
}

func (s *SQLiteStore) GetQuestionSet(ctx context.Context, id string) (QuestionSetDetail, error) {
	var d QuestionSetDetail
	var questionsJSON string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, questions, created_at
		FROM question_sets WHERE id = ?
	`, id).Scan(&d.ID, &d.Name, &questionsJSON, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return d, ErrNotFound
	}
	if err != nil {
		return d, err
	}
	if err := json.Unmarshal([]byte(questionsJSON), &d.Questions); err != nil {
		return d, fmt.Errorf("decoding questions for set %s: %w", id, err)
	}
	if d.Questions == nil {
		d.Questions = []SetQuestion{}
	}
	return d, nil
}

func (s *SQLiteStore) UpdateQuestionSet(ctx context.Context, id string, req QuestionSetRequest) (QuestionSetDetail, error) {
	questionsJSON, err := json.Marshal(req.Questions)
	if err != nil {
		return QuestionSetDetail{}, fmt.Errorf("encoding questions: %w", err)
	}

	var createdAt string
	err = s.db.QueryRowContext(ctx, `
		UPDATE question_sets SET name = ?, questions = ?
		WHERE id = ?
		RETURNING created_at
	`, req.Name, string(questionsJSON), id).Scan(&createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return QuestionSetDetail{}, ErrNotFound
	}
	if err != nil {
		return QuestionSetDetail{}, err
	}

	return QuestionSetDetail{
		ID:        id,
		Name:      req.Name,
		Questions: req.Questions,
		CreatedAt: createdAt,
	}, nil
}

func (s *SQLiteStore) DeleteQuestionSet(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM question_sets WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) CountQuestionSets(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM question_sets`).Scan(&count)
	return count, err
}

func (s *SQLiteStore) AdminByEmail(ctx context.Context, email string) (string, string, error) {
	var adminID, passwordHash string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, password_hash FROM admins WHERE email = ?
	`, email).Scan(&adminID, &passwordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", "", ErrNotFound
	}
	return adminID, passwordHash, err
}

func (s *SQLiteStore) CreateAdmin(ctx context.Context, email, passwordHash string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO admins (id, email, password_hash)
		VALUES (lower(hex(randomblob(16))), ?, ?)
	`, email, passwordHash)
	return err
}

func (s *SQLiteStore) CountAdmins(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count)
	return count, err
}

func (s *SQLiteStore) CreateAdminSession(ctx context.Context, adminID string) (string, error) {
	var sessionID string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO admin_sessions (admin_id)
		VALUES (?)
		RETURNING id
	`, adminID).Scan(&sessionID)
	return sessionID, err
}

func (s *SQLiteStore) AdminFromSession(ctx context.Context, sessionID string) (adminSession, error) {
	var sess adminSession
	err := s.db.QueryRowContext(ctx, `
		SELECT a.id, a.email
		FROM admin_sessions s
		JOIN admins a ON a.id = s.admin_id
		WHERE s.id = ?
	`, sessionID).Scan(&sess.AdminID, &sess.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return adminSession{}, errNoAdminSession
	}
	return sess, err
}

func (s *SQLiteStore) DeleteAdminSession(ctx context.Context, sessionID string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE id = ?`, sessionID)
	return err
}
