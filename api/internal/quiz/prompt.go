package quiz

import (
	"fmt"
	"strings"
)

func difficultyPhrase(d Difficulty) string {
	switch d {
	case DifficultyEasy:
		return "beginner-friendly, testing basic recall and straightforward understanding"
	case DifficultyMedium:
		return "moderately challenging, requiring applied understanding of the concepts"
	case DifficultyHard:
		return "demanding, requiring analysis, deduction and deep understanding"
	default:
		return "moderately challenging"
	}
}

func typeInstructions(t Type) string {
	switch t {
	case TypeSingleChoice:
		return `Each question must have exactly 4 plausible options and a single correct one.
"correctAnswer" is the 0-based index of the correct option.`
	case TypeMultiChoice:
		return `Each question must have exactly 4 plausible options, two or more of them correct.
"correctAnswer" is an array of the 0-based indices of all correct options.`
	case TypeBoolean:
		return `Each question is a true/false statement. Omit "options".
"correctAnswer" is the boolean true or false.`
	case TypeNumeric:
		return `Each question has a numeric answer. Omit "options".
"correctAnswer" is the number itself, not a string.`
	default:
		return ""
	}
}

func exampleAnswer(t Type) string {
	switch t {
	case TypeMultiChoice:
		return "[0, 2]"
	case TypeBoolean:
		return "true"
	case TypeNumeric:
		return "42.5"
	default:
		return "1"
	}
}

func exampleOptions(t Type) string {
	if !t.IsChoice() {
		return ""
	}
	return `
    "options": ["option A", "option B", "option C", "option D"],`
}

// BuildPrompt собирает одну инструкцию для модели из дескриптора запроса.
// Чистое форматирование строк, ошибок не бывает.
func BuildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate exactly %d quiz questions about %q in the category %q.\n",
		req.Count, req.Topic, req.Category)
	fmt.Fprintf(&b, "The questions must be %s.\n\n", difficultyPhrase(req.Difficulty))
	b.WriteString(typeInstructions(req.Type))
	b.WriteString("\n\nEvery question needs a short \"explanation\" of the correct answer and 2-3 short \"tags\".\n")
	b.WriteString("Respond with pure, valid JSON only: a single array, no text outside it, shaped like this:\n\n")

	fmt.Fprintf(&b, `[
  {
    "question": "...",%s
    "correctAnswer": %s,
    "explanation": "...",
    "tags": ["tag1", "tag2"]
  }
]`, exampleOptions(req.Type), exampleAnswer(req.Type))

	return b.String()
}
