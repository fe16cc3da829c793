package server

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// SeedDemo creates a demo question set and a demo admin when the
// database is empty. Idempotent: does nothing once either exists.
func SeedDemo(ctx context.Context, logger *slog.Logger, store Store) error {
	sets, err := store.CountQuestionSets(ctx)
	if err != nil {
		return fmt.Errorf("counting question sets: %w", err)
	}
	if sets == 0 {
		if _, err := store.CreateQuestionSet(ctx, demoQuestionSet()); err != nil {
			return fmt.Errorf("seeding demo question set: %w", err)
		}
		logger.Info("demo question set created")
	}

	admins, err := store.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("counting admins: %w", err)
	}
	if admins == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("familiada"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing demo password: %w", err)
		}
		if err := store.CreateAdmin(ctx, "admin@example.com", string(hash)); err != nil {
			return fmt.Errorf("seeding demo admin: %w", err)
		}
		logger.Info("demo admin created", "email", "admin@example.com")
	}

	return nil
}

func demoQuestionSet() QuestionSetRequest {
	return QuestionSetRequest{
		Name: "Demo",
		Questions: []SetQuestion{
			{
				Text: "Name something people forget at home",
				Answers: []SetAnswer{
					{Rank: 1, Text: "keys", Points: 38},
					{Rank: 2, Text: "phone", Points: 27},
					{Rank: 3, Text: "wallet", Points: 18},
					{Rank: 4, Text: "umbrella", Points: 11},
					{Rank: 5, Text: "glasses", Points: 6},
				},
			},
			{
				Text: "Name a pet kept in an apartment",
				Answers: []SetAnswer{
					{Rank: 1, Text: "dog", Points: 41},
					{Rank: 2, Text: "cat", Points: 33},
					{Rank: 3, Text: "hamster", Points: 12},
					{Rank: 4, Text: "parrot", Points: 9},
					{Rank: 5, Text: "żółw", Points: 5},
				},
			},
			{
				Text: "Name something you do on a Sunday morning",
				Answers: []SetAnswer{
					{Rank: 1, Text: "sleep", Points: 35},
					{Rank: 2, Text: "coffee", Points: 25},
					{Rank: 3, Text: "church", Points: 20},
					{Rank: 4, Text: "jogging", Points: 12},
					{Rank: 5, Text: "pancakes", Points: 8},
				},
			},
			{
				Text: "Name a thing people queue for",
				Answers: []SetAnswer{
					{Rank: 1, Text: "bread", Points: 30},
					{Rank: 2, Text: "tickets", Points: 28},
					{Rank: 3, Text: "doctor", Points: 22},
					{Rank: 4, Text: "sales", Points: 20},
				},
			},
			{
				Text: "Name something found in a kitchen drawer",
				Answers: []SetAnswer{
					{Rank: 1, Text: "spoon", Points: 32},
					{Rank: 2, Text: "knife", Points: 26},
					{Rank: 3, Text: "fork", Points: 21},
					{Rank: 4, Text: "opener", Points: 13},
					{Rank: 5, Text: "scissors", Points: 8},
				},
			},
		},
	}
}
