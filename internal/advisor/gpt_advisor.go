package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const systemPrompt = `You are a professional AI legal assistant specializing in Indian law. Analyze the user's legal question and provide guidance based on Indian legal system in the following areas:

Legal Categories:
- Family Law (Hindu Marriage Act, Muslim Personal Law, divorce, custody, adoption, domestic relations)
- Property Law (Indian Property laws, real estate, property disputes, ownership rights)
- Employment Law (Indian Labour laws, workplace rights, EPF, ESI, discrimination, contracts)
- Criminal Law (Indian Penal Code, CrPC, criminal defense, charges, legal representation)
- Business Law (Companies Act, GST, corporate formation, contracts, compliance)
- Consumer Law (Consumer Protection Act, consumer rights, complaints)

Respond with JSON in this exact format:
{
  "response": "detailed legal guidance (2-3 paragraphs)",
  "category": "one of the categories above",
  "confidence": number between 70-95,
  "disclaimer": "standard legal disclaimer"
}

Important: Always include appropriate disclaimers mentioning Indian legal context and recommend consulting a licensed advocate/lawyer registered with Bar Council of India for specific legal advice.`

const emptyResponse = "I apologize, but I couldn't generate a proper response. Please try rephrasing your question."

var errNoChoices = errors.New("completion has no choices")

type GPTResponse struct {
	Response   string   `json:"response"`
	Category   string   `json:"category"`
	Confidence *float64 `json:"confidence"`
	Disclaimer string   `json:"disclaimer"`
}

type GPTConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
}

// GPTAdvisor asks an OpenAI chat model and falls back to the canned
// answers when the call or its parsing fails.
type GPTAdvisor struct {
	client    *openai.Client
	model     string
	maxTokens int
	logger    *zap.Logger
}

func NewGPTAdvisor(cfg GPTConfig, logger *zap.Logger) *GPTAdvisor {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &GPTAdvisor{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		logger:    logger,
	}
}

func (a *GPTAdvisor) Advise(ctx context.Context, question string) Advice {
	reply, err := a.complete(ctx, question)
	if err != nil {
		a.logger.Error("Failed to get GPT advice, using fallback response", zap.Error(err))
		return Match(question)
	}

	advice := Advice{
		Response:   reply.Response,
		Category:   reply.Category,
		Confidence: DefaultConfidence,
		Disclaimer: reply.Disclaimer,
	}
	if advice.Response == "" {
		advice.Response = emptyResponse
	}
	if advice.Category == "" {
		advice.Category = defaultAdvice.Category
	}
	if advice.Disclaimer == "" {
		advice.Disclaimer = Disclaimer
	}
	if reply.Confidence != nil && *reply.Confidence != 0 {
		advice.Confidence = clampConfidence(*reply.Confidence)
	}

	return advice
}

func (a *GPTAdvisor) complete(ctx context.Context, question string) (*GPTResponse, error) {
	resp, err := a.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: a.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: question,
				},
			},
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
			MaxTokens: a.maxTokens,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errNoChoices
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		content = "{}"
	}

	var reply GPTResponse
	if err := json.Unmarshal([]byte(content), &reply); err != nil {
		a.logger.Debug("Unparseable GPT response", zap.String("response", content))
		return nil, fmt.Errorf("parse completion: %w", err)
	}

	return &reply, nil
}
