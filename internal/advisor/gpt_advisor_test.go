package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaenox/legal-assistant/internal/models"
	"go.uber.org/zap"
)

// newTestAdvisor serves every chat completion with content, or with an
// HTTP 500 when status is non-zero.
func newTestAdvisor(t *testing.T, content string, status int) (*GPTAdvisor, *openai.ChatCompletionRequest) {
	t.Helper()

	var captured openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			http.NotFound(w, r)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if status != 0 {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":{"message":"upstream failure","type":"server_error"}}`))
			return
		}

		json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
			ID:     "chatcmpl-test",
			Object: "chat.completion",
			Model:  "gpt-4o",
			Choices: []openai.ChatCompletionChoice{{
				Index: 0,
				Message: openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleAssistant,
					Content: content,
				},
				FinishReason: openai.FinishReasonStop,
			}},
		})
	}))
	t.Cleanup(srv.Close)

	a := NewGPTAdvisor(GPTConfig{
		APIKey:    "sk-test-key-0123456789",
		BaseURL:   srv.URL + "/v1",
		Model:     "gpt-4o",
		MaxTokens: 1000,
	}, zap.NewNop())

	return a, &captured
}

func TestGPTAdvisor_Advise(t *testing.T) {
	a, req := newTestAdvisor(t, `{
		"response": "Section 13B allows divorce by mutual consent.",
		"category": "Family Law",
		"confidence": 89,
		"disclaimer": "Consult an advocate."
	}`, 0)

	advice := a.Advise(context.Background(), "Can we divorce by mutual consent?")

	assert.Equal(t, "Section 13B allows divorce by mutual consent.", advice.Response)
	assert.Equal(t, models.CategoryFamily, advice.Category)
	assert.Equal(t, 89, advice.Confidence)
	assert.Equal(t, "Consult an advocate.", advice.Disclaimer)

	assert.Equal(t, "gpt-4o", req.Model)
	assert.Equal(t, 1000, req.MaxTokens)
	require.NotNil(t, req.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, req.ResponseFormat.Type)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "Indian law")
	assert.Equal(t, "Can we divorce by mutual consent?", req.Messages[1].Content)
}

func TestGPTAdvisor_ClampsConfidence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"too high", `{"response":"r","category":"Criminal Law","confidence":120}`, 95},
		{"too low", `{"response":"r","category":"Criminal Law","confidence":10}`, 70},
		{"fractional", `{"response":"r","category":"Criminal Law","confidence":80.6}`, 81},
		{"huge", `{"response":"r","category":"Criminal Law","confidence":1e300}`, 95},
		{"hugely negative", `{"response":"r","category":"Criminal Law","confidence":-1e300}`, 70},
		{"missing", `{"response":"r","category":"Criminal Law"}`, DefaultConfidence},
		{"zero", `{"response":"r","category":"Criminal Law","confidence":0}`, DefaultConfidence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAdvisor(t, tt.content, 0)
			advice := a.Advise(context.Background(), "arrested")
			assert.Equal(t, tt.want, advice.Confidence)
		})
	}
}

func TestGPTAdvisor_DefaultsMissingFields(t *testing.T) {
	a, _ := newTestAdvisor(t, `{}`, 0)

	advice := a.Advise(context.Background(), "divorce")

	assert.Equal(t, emptyResponse, advice.Response)
	assert.Equal(t, models.CategoryGeneral, advice.Category)
	assert.Equal(t, DefaultConfidence, advice.Confidence)
	assert.Equal(t, Disclaimer, advice.Disclaimer)
}

func TestGPTAdvisor_FallbackOnUpstreamError(t *testing.T) {
	a, _ := newTestAdvisor(t, "", http.StatusInternalServerError)

	advice := a.Advise(context.Background(), "How do I get bail?")

	assert.Equal(t, Match("How do I get bail?"), advice)
	assert.Equal(t, models.CategoryCriminal, advice.Category)
}

func TestGPTAdvisor_FallbackOnInvalidJSON(t *testing.T) {
	a, _ := newTestAdvisor(t, "Sure! Here is some advice about GST.", 0)

	advice := a.Advise(context.Background(), "Do I need GST for my startup?")

	assert.Equal(t, models.CategoryBusiness, advice.Category)
	assert.Equal(t, 93, advice.Confidence)
}

func TestGPTAdvisor_FallbackOnUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := NewGPTAdvisor(GPTConfig{
		APIKey:  "sk-test-key-0123456789",
		BaseURL: url + "/v1",
		Model:   "gpt-4o",
	}, zap.NewNop())

	advice := a.Advise(context.Background(), "refund for a defective phone")
	assert.Equal(t, models.CategoryConsumer, advice.Category)
}
