package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"quizgen/api/internal/config"
	"quizgen/api/internal/quiz"
	"quizgen/api/internal/rtdb"
	"quizgen/api/internal/store"
)

func main() {
	var (
		topic      = flag.String("topic", "", "topic to generate questions about")
		category   = flag.String("category", "General", "question category")
		difficulty = flag.String("difficulty", "Medium", "Easy, Medium or Hard")
		count      = flag.Int("count", 5, "number of questions")
		qtype      = flag.String("type", "single-choice", "single-choice, multi-choice, boolean or numeric")
		model      = flag.String("model", "", "preferred model identifier")
		save       = flag.Bool("save", false, "persist the batch to the realtime database")
	)
	flag.Parse()

	cfg := config.LoadClient()

	log := logrus.New()
	log.SetOutput(os.Stderr)

	ctx := context.Background()

	gen := quiz.NewGenerator(cfg.ProxyBaseURL, log)
	gen.ModelPreference = *model

	if *save {
		if cfg.FirebaseDatabaseURL == "" {
			log.Fatal("FIREBASE_DATABASE_URL is not set, cannot save")
		}
		client, err := rtdb.New(ctx, cfg.FirebaseCredentials, cfg.FirebaseDatabaseURL)
		if err != nil {
			log.WithError(err).Fatal("realtime database init failed")
		}
		gen.WithStore(store.NewQuestionRepo(client))
	}

	req := quiz.Request{
		Topic:      *topic,
		Category:   *category,
		Difficulty: quiz.Difficulty(*difficulty),
		Count:      *count,
		Type:       quiz.Type(*qtype),
	}

	questions, err := gen.Generate(ctx, req)
	if err != nil {
		log.WithError(err).Fatal("generation failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(questions)
}
