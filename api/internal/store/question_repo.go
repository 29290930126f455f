package store

import (
	"context"
	"fmt"
	"time"

	"firebase.google.com/go/v4/db"
	"github.com/google/uuid"

	"quizgen/api/internal/quiz"
)

// QuestionRepo хранит принятые партии вопросов в Realtime Database
// под questions/<category>/<id>.
type QuestionRepo struct {
	DB *db.Client
}

func NewQuestionRepo(client *db.Client) *QuestionRepo {
	return &QuestionRepo{DB: client}
}

// SaveBatch присваивает каждой записи uuid и метку времени и пишет
// партию по одной записи. Первый сбой прерывает сохранение.
func (r *QuestionRepo) SaveBatch(ctx context.Context, questions []quiz.Question) error {
	now := time.Now().UTC()
	for i := range questions {
		q := &questions[i]
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		q.CreatedAt = now

		ref := r.DB.NewRef("questions").Child(q.Category).Child(q.ID)
		if err := ref.Set(ctx, q); err != nil {
			return fmt.Errorf("save question %s: %w", q.ID, err)
		}
	}
	return nil
}

// ListByCategory возвращает до limit последних записей категории.
func (r *QuestionRepo) ListByCategory(ctx context.Context, category string, limit int) ([]quiz.Question, error) {
	if limit <= 0 {
		limit = 20
	}

	var raw map[string]quiz.Question
	q := r.DB.NewRef("questions").Child(category).OrderByChild("createdAt").LimitToLast(limit)
	if err := q.Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("list questions for %q: %w", category, err)
	}

	out := make([]quiz.Question, 0, len(raw))
	for _, v := range raw {
		out = append(out, v)
	}
	return out, nil
}
