package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func infoList() []*genai.ModelInfo {
	return []*genai.ModelInfo{
		{Name: "models/embedding-001", SupportedGenerationMethods: []string{"embedContent"}},
		{Name: "models/gemini-1.5-pro", SupportedGenerationMethods: []string{"generateContent"}},
		{Name: "models/gemini-1.5-flash", SupportedGenerationMethods: []string{"generateContent"}},
	}
}

func TestPickPreferenceExactMatch(t *testing.T) {
	name, ok := pick(infoList(), "gemini-1.5-flash")
	assert.True(t, ok)
	assert.Equal(t, "gemini-1.5-flash", name)
}

func TestPickPreferenceWithModelsPrefix(t *testing.T) {
	name, ok := pick(infoList(), "models/gemini-1.5-pro")
	assert.True(t, ok)
	assert.Equal(t, "gemini-1.5-pro", name)
}

func TestPickPreferenceSuffixMatch(t *testing.T) {
	name, ok := pick(infoList(), "1.5-pro")
	assert.True(t, ok)
	assert.Equal(t, "gemini-1.5-pro", name)
}

func TestPickUnknownPreferenceTakesFirstGenerator(t *testing.T) {
	// Предпочтение не найдено — берём первого кандидата с generateContent.
	name, ok := pick(infoList(), "gpt-4o")
	assert.True(t, ok)
	assert.Equal(t, "gemini-1.5-pro", name)
}

func TestPickNoPreference(t *testing.T) {
	name, ok := pick(infoList(), "")
	assert.True(t, ok)
	assert.Equal(t, "gemini-1.5-pro", name)
}

func TestPickGeminiFamilyWithoutCapability(t *testing.T) {
	models := []*genai.ModelInfo{
		{Name: "models/embedding-001", SupportedGenerationMethods: []string{"embedContent"}},
		{Name: "models/gemini-exp", SupportedGenerationMethods: nil},
	}
	name, ok := pick(models, "")
	assert.True(t, ok)
	assert.Equal(t, "gemini-exp", name)
}

func TestPickNothingUsable(t *testing.T) {
	models := []*genai.ModelInfo{
		{Name: "models/embedding-001", SupportedGenerationMethods: []string{"embedContent"}},
	}
	_, ok := pick(models, "")
	assert.False(t, ok)
}

func TestFallbackOrder(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	e := New("key", "", log)

	assert.Equal(t, "gemini-1.5-pro", e.fallback("gemini-1.5-pro"))
	assert.Equal(t, "gemini-1.5-pro", e.fallback("models/gemini-1.5-pro"))
	assert.Equal(t, DefaultModel, e.fallback(""))
}
