package handle

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Engine — то, что хендлерам нужно от генеративного бэкенда.
type Engine interface {
	Resolve(ctx context.Context, preference string) string
	Generate(ctx context.Context, model, prompt string) (string, error)
}

type Handle struct {
	eng Engine
	log *logrus.Logger
}

func New(eng Engine, log *logrus.Logger) *Handle {
	return &Handle{
		eng: eng,
		log: log,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
