package main

import (
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"quizgen/api/internal/config"
	"quizgen/api/internal/handle"
	"quizgen/api/internal/llm/gemini"
)

func main() {
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	if strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug") {
		log.SetLevel(logrus.DebugLevel)
	}

	eng := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, log)
	h := handle.New(eng, log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Post("/api/generate", h.Generate)

	addr := ":" + cfg.Port
	log.Infof("quizgen-proxy listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
