package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

type GenerateRequest struct {
	Prompt          string `json:"prompt"`
	ModelPreference string `json:"modelPreference"`
}

type GenerateResponse struct {
	Text  string `json:"text"`
	Model string `json:"model"`
}

// Generate принимает промпт, разрешает идентификатор модели и отдаёт
// сырой текст ответа вместе с фактически использованной моделью.
// Ретраев нет, любой сбой генерации — 500 с сообщением апстрима.
func (h *Handle) Generate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "prompt is required and must be a string")
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		writeError(w, http.StatusBadRequest, "prompt is required and must be a string")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 70*time.Second)
	defer cancel()

	model := h.eng.Resolve(ctx, req.ModelPreference)

	text, err := h.eng.Generate(ctx, model, req.Prompt)
	if err != nil {
		h.log.WithError(err).WithField("model", model).Error("generation failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{Text: text, Model: model})
}
