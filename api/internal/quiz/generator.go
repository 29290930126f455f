package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Store — необязательная персистенция принятых партий.
type Store interface {
	SaveBatch(ctx context.Context, questions []Question) error
}

// Generator строит промпт, гоняет его через прокси и валидирует ответ.
// Прокси держит ключи у себя, клиентской стороне они не нужны.
type Generator struct {
	BaseURL         string
	ModelPreference string

	httpc *http.Client
	log   *logrus.Logger
	store Store
}

func NewGenerator(baseURL string, log *logrus.Logger) *Generator {
	return &Generator{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 90 * time.Second},
		log:     log,
	}
}

// WithStore подключает персистенцию; без неё партии просто возвращаются.
func (g *Generator) WithStore(s Store) *Generator {
	g.store = s
	return g
}

type proxyRequest struct {
	Prompt          string `json:"prompt"`
	ModelPreference string `json:"modelPreference,omitempty"`
}

type proxyResponse struct {
	Text  string `json:"text"`
	Model string `json:"model"`
	Error string `json:"error"`
}

// Generate выпускает одну партию вопросов под дескриптор запроса.
// Любой сбой — одна обёрнутая ошибка, частичных результатов не бывает.
func (g *Generator) Generate(ctx context.Context, req Request) ([]Question, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	prompt := BuildPrompt(req)

	resp, err := g.callProxy(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}
	g.log.WithField("model", resp.Model).Debug("proxy response received")

	questions, err := ParseQuestions(resp.Text, req)
	if err != nil {
		return nil, fmt.Errorf("generate questions: %w", err)
	}

	if g.store != nil {
		if err := g.store.SaveBatch(ctx, questions); err != nil {
			return nil, fmt.Errorf("generate questions: %w", err)
		}
	}
	return questions, nil
}

func (g *Generator) callProxy(ctx context.Context, prompt string) (*proxyResponse, error) {
	payload, err := json.Marshal(proxyRequest{
		Prompt:          prompt,
		ModelPreference: g.ModelPreference,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call proxy: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read proxy response: %w", err)
	}

	var out proxyResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("proxy %d: %s", resp.StatusCode, string(body))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proxy %d: %s", resp.StatusCode, out.Error)
	}
	return &out, nil
}
