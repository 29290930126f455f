package quiz

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"quizgen/api/internal/util"
)

// rawQuestion — то, что модель прислала по факту, до проверок.
type rawQuestion struct {
	Question      string `json:"question"`
	Options       []any  `json:"options"`
	CorrectAnswer any    `json:"correctAnswer"`
	Explanation   string `json:"explanation"`
	Tags          any    `json:"tags"`
}

// ParseQuestions превращает сырой текст модели в проверенные записи.
// Снимает ограждение ```json, парсит JSON; если не вышло — достаёт
// первый [...] диапазон и пробует его. Любой сбой валидации роняет
// всю партию целиком, позиции в ошибках 1-based.
func ParseQuestions(raw string, req Request) ([]Question, error) {
	text := util.StripCodeFences(raw)

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		span, ok := util.ExtractJSONArray(text)
		if !ok {
			return nil, fmt.Errorf("response is not a JSON array and has no bracketed span: %w", err)
		}
		if err2 := json.Unmarshal([]byte(span), &items); err2 != nil {
			return nil, fmt.Errorf("bracketed span is not a JSON array: %w", err2)
		}
	}
	// JSON null декодируется в nil-слайс без ошибки — это не массив.
	if items == nil {
		return nil, fmt.Errorf("response is not a JSON array")
	}

	out := make([]Question, 0, len(items))
	for i, item := range items {
		q, err := normalizeQuestion(item, req)
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		out = append(out, q)
	}
	return out, nil
}

func normalizeQuestion(item json.RawMessage, req Request) (Question, error) {
	var rq rawQuestion
	if err := json.Unmarshal(item, &rq); err != nil {
		return Question{}, fmt.Errorf("bad item shape: %w", err)
	}

	if strings.TrimSpace(rq.Question) == "" {
		return Question{}, fmt.Errorf("missing question text")
	}
	if strings.TrimSpace(rq.Explanation) == "" {
		return Question{}, fmt.Errorf("missing explanation")
	}

	q := Question{
		Question:    strings.TrimSpace(rq.Question),
		Type:        req.Type,
		Explanation: strings.TrimSpace(rq.Explanation),
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Tags:        normalizeTags(rq.Tags, req.Topic),
	}

	if req.Type.IsChoice() {
		if len(rq.Options) != 4 {
			return Question{}, fmt.Errorf("expected exactly 4 options, got %d", len(rq.Options))
		}
		opts := make([]string, 4)
		for j, o := range rq.Options {
			opts[j] = toString(o)
		}
		q.Options = opts
	}

	ans, err := coerceAnswer(rq.CorrectAnswer, req.Type)
	if err != nil {
		return Question{}, err
	}
	q.CorrectAnswer = ans

	return q, nil
}

// coerceAnswer приводит correctAnswer к типу вопроса.
// Для choice-типов значение проходит как есть, границы индексов
// здесь не проверяются.
func coerceAnswer(v any, t Type) (any, error) {
	switch t {
	case TypeBoolean:
		switch a := v.(type) {
		case bool:
			return a, nil
		case float64:
			return a == 1, nil
		case string:
			// Только точное "true"; любые другие варианты — false.
			return a == "true", nil
		default:
			return false, nil
		}
	case TypeNumeric:
		switch a := v.(type) {
		case float64:
			return a, nil
		case string:
			f, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
			if err != nil {
				return nil, fmt.Errorf("correctAnswer %q is not numeric", a)
			}
			return f, nil
		default:
			return nil, fmt.Errorf("correctAnswer is not numeric")
		}
	default:
		return v, nil
	}
}

func normalizeTags(v any, topic string) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{strings.ToLower(topic), "ai-generated"}
	}
	tags := make([]string, 0, len(arr))
	for _, t := range arr {
		tags = append(tags, toString(t))
	}
	return tags
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
