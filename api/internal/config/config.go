package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	GeminiAPIKey string
	GeminiModel  string

	// Клиентская сторона: адрес прокси, куда генератор отправляет промпты.
	ProxyBaseURL string

	// Firebase Realtime Database; пустые значения просто выключают стор.
	FirebaseDatabaseURL string
	FirebaseCredentials string
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing required env %s", k)
	}
	return v
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load читает конфигурацию один раз на старте процесса.
// .env подхватывается best-effort, отсутствие файла не ошибка.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port: getEnv("PORT", "8000"),

		GeminiAPIKey: mustEnv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		ProxyBaseURL: getEnv("PROXY_BASE_URL", "http://localhost:8000"),

		FirebaseDatabaseURL: getEnv("FIREBASE_DATABASE_URL", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
	}
}

// LoadClient — вариант для клиентского бинаря: ключ Gemini там не нужен,
// его отсутствие не фатально.
func LoadClient() *Config {
	_ = godotenv.Load()

	return &Config{
		ProxyBaseURL:        getEnv("PROXY_BASE_URL", "http://localhost:8000"),
		FirebaseDatabaseURL: getEnv("FIREBASE_DATABASE_URL", ""),
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS", ""),
	}
}
