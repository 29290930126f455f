package quiz

import (
	"fmt"
	"time"
)

type Type string

const (
	TypeSingleChoice Type = "single-choice"
	TypeMultiChoice  Type = "multi-choice"
	TypeBoolean      Type = "boolean"
	TypeNumeric      Type = "numeric"
)

// IsChoice — типы, для которых обязательны ровно 4 варианта ответа.
func (t Type) IsChoice() bool {
	return t == TypeSingleChoice || t == TypeMultiChoice
}

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Request описывает одну партию вопросов для генерации.
type Request struct {
	Topic      string     `json:"topic"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	Count      int        `json:"count"`
	Type       Type       `json:"type"`
}

func (r Request) Validate() error {
	if r.Topic == "" {
		return fmt.Errorf("topic is empty")
	}
	if r.Count <= 0 {
		return fmt.Errorf("count must be positive, got %d", r.Count)
	}
	switch r.Type {
	case TypeSingleChoice, TypeMultiChoice, TypeBoolean, TypeNumeric:
	default:
		return fmt.Errorf("unknown question type %q", r.Type)
	}
	switch r.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("unknown difficulty %q", r.Difficulty)
	}
	return nil
}

// Question — проверенная и нормализованная запись вопроса.
// CorrectAnswer зависит от типа: индекс, набор индексов, bool или число.
type Question struct {
	ID            string     `json:"id,omitempty"`
	Question      string     `json:"question"`
	Type          Type       `json:"type"`
	Options       []string   `json:"options,omitempty"`
	CorrectAnswer any        `json:"correctAnswer"`
	Explanation   string     `json:"explanation"`
	Category      string     `json:"category"`
	Difficulty    Difficulty `json:"difficulty"`
	Tags          []string   `json:"tags"`
	CreatedAt     time.Time  `json:"createdAt,omitempty"`
}
