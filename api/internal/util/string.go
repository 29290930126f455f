package util

import (
	"regexp"
	"strings"
)

func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Первый [...] диапазон в тексте, включая скобки. Жадное совпадение,
// чтобы вложенные массивы остались внутри диапазона.
var bracketedArray = regexp.MustCompile(`(?s)\[.*\]`)

// ExtractJSONArray достаёт первый [..] диапазон из свободного текста.
// Best-effort фоллбэк на случай, когда модель обернула JSON в прозу.
func ExtractJSONArray(s string) (string, bool) {
	m := bracketedArray.FindString(s)
	if m == "" {
		return "", false
	}
	return m, true
}
