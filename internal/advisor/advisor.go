package advisor

import (
	"context"
	"math"
)

// Disclaimer is attached to every answer unless the model supplies its own.
const Disclaimer = "This AI provides general legal information based on Indian law and does not constitute legal advice. Please consult a licensed advocate registered with Bar Council of India for specific legal counsel."

const (
	MinConfidence     = 70
	MaxConfidence     = 95
	DefaultConfidence = 75
)

// Advice is the answer to a single legal question.
type Advice struct {
	Response   string `json:"response"`
	Category   string `json:"category"`
	Confidence int    `json:"confidence"`
	Disclaimer string `json:"disclaimer"`
}

// Advisor answers legal questions. Implementations never fail: when an
// upstream is unavailable they degrade to canned text.
type Advisor interface {
	Advise(ctx context.Context, question string) Advice
}

// clampConfidence bounds c to [MinConfidence, MaxConfidence] and rounds it.
// Clamping happens first so out-of-range values cannot overflow int.
func clampConfidence(c float64) int {
	return int(math.Round(math.Max(MinConfidence, math.Min(MaxConfidence, c))))
}

var (
	_ Advisor = (*KeywordAdvisor)(nil)
	_ Advisor = (*GPTAdvisor)(nil)
)
