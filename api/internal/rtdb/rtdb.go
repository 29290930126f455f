package rtdb

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// New собирает клиент Realtime Database один раз на процесс.
// Хендл строится в composition root и передаётся явно, глобалов нет.
func New(ctx context.Context, credentialsFile, databaseURL string) (*db.Client, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("firebase database URL is empty")
	}

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{DatabaseURL: databaseURL}, opts...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("init realtime database client: %w", err)
	}
	return client, nil
}
