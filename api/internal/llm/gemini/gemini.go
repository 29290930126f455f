package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// DefaultModel — жёсткий фоллбэк, когда ни предпочтение, ни листинг
// моделей ничего не дали.
const DefaultModel = "gemini-1.5-flash"

type Engine struct {
	APIKey string
	Model  string
	log    *logrus.Logger
}

func New(apiKey, model string, log *logrus.Logger) *Engine {
	if model == "" {
		model = DefaultModel
	}
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
		log:    log,
	}
}

func (e *Engine) Name() string { return "gemini" }

// Resolve выбирает идентификатор модели для одного запроса.
// Порядок фиксированный: точное/суффиксное совпадение с предпочтением →
// первый кандидат с generateContent или из семейства gemini →
// сырое предпочтение → DefaultModel. Сбой листинга не роняет запрос,
// только warning в лог.
func (e *Engine) Resolve(ctx context.Context, preference string) string {
	preference = strings.TrimSpace(preference)

	models, err := e.listModels(ctx)
	if err != nil {
		e.log.WithError(err).Warn("model listing failed, falling back")
		return e.fallback(preference)
	}

	if name, ok := pick(models, preference); ok {
		return name
	}
	return e.fallback(preference)
}

// pick применяет политику выбора к списку кандидатов: сначала точное
// или суффиксное совпадение с предпочтением, затем первый кандидат
// с generateContent либо из семейства gemini.
func pick(models []*genai.ModelInfo, preference string) (string, bool) {
	if preference != "" {
		want := strings.TrimPrefix(preference, "models/")
		for _, m := range models {
			name := strings.TrimPrefix(m.Name, "models/")
			if name == want || strings.HasSuffix(name, want) {
				return name, true
			}
		}
	}

	for _, m := range models {
		name := strings.TrimPrefix(m.Name, "models/")
		if supportsGeneration(m) || strings.Contains(name, "gemini") {
			return name, true
		}
	}
	return "", false
}

func (e *Engine) fallback(preference string) string {
	if preference != "" {
		return strings.TrimPrefix(preference, "models/")
	}
	return e.Model
}

func supportsGeneration(m *genai.ModelInfo) bool {
	for _, method := range m.SupportedGenerationMethods {
		if method == "generateContent" {
			return true
		}
	}
	return false
}

func (e *Engine) listModels(ctx context.Context) ([]*genai.ModelInfo, error) {
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return nil, err
	}
	defer cl.Close()

	var out []*genai.ModelInfo
	it := cl.ListModels(ctx)
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Generate вызывает generateContent и возвращает первый текстовый
// кандидат как есть, без какой-либо пост-обработки.
func (e *Engine) Generate(ctx context.Context, model, prompt string) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(strings.TrimPrefix(model, "models/"))

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("gemini generate: empty response")
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
