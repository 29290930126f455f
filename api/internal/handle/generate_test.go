package handle

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	resolved string
	text     string
	err      error

	gotModel  string
	gotPrompt string
}

func (f *fakeEngine) Resolve(_ context.Context, preference string) string {
	if f.resolved != "" {
		return f.resolved
	}
	return preference
}

func (f *fakeEngine) Generate(_ context.Context, model, prompt string) (string, error) {
	f.gotModel = model
	f.gotPrompt = prompt
	return f.text, f.err
}

func newTestHandle(eng Engine) *Handle {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return New(eng, log)
}

func postGenerate(h *Handle, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Generate(w, req)
	return w
}

func TestGenerateOK(t *testing.T) {
	eng := &fakeEngine{resolved: "gemini-1.5-flash", text: "[]"}
	h := newTestHandle(eng)

	w := postGenerate(h, `{"prompt": "make questions", "modelPreference": "gemini-1.5-pro"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "[]", resp.Text)
	assert.Equal(t, "gemini-1.5-flash", resp.Model)
	assert.Equal(t, "gemini-1.5-flash", eng.gotModel)
	assert.Equal(t, "make questions", eng.gotPrompt)
}

func TestGenerateRejectsBadPrompt(t *testing.T) {
	h := newTestHandle(&fakeEngine{})

	for _, body := range []string{
		`{}`,
		`{"prompt": ""}`,
		`{"prompt": "   "}`,
		`{"prompt": 42}`,
		`not json at all`,
	} {
		w := postGenerate(h, body)
		require.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body %s", body)
		assert.NotEmpty(t, resp["error"], "body %s", body)
	}
}

func TestGenerateUpstreamFailure(t *testing.T) {
	h := newTestHandle(&fakeEngine{err: errors.New("quota exceeded")})

	w := postGenerate(h, `{"prompt": "make questions"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "quota exceeded")
}

func TestGenerateMethodNotAllowed(t *testing.T) {
	h := newTestHandle(&fakeEngine{})

	req := httptest.NewRequest(http.MethodGet, "/api/generate", nil)
	w := httptest.NewRecorder()
	h.Generate(w, req)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
