package advisor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/xaenox/legal-assistant/internal/models"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		question string
		category string
	}{
		{"How do I file for DIVORCE in Delhi?", models.CategoryFamily},
		{"Who gets custody of the children?", models.CategoryFamily},
		{"Is stamp duty payable on land purchase?", models.CategoryProperty},
		{"What about real estate agents?", models.CategoryProperty},
		{"My employer has not paid my salary", models.CategoryEmployment},
		{"How do I withdraw EPF?", models.CategoryEmployment},
		{"Can the police arrest me without a warrant?", models.CategoryCriminal},
		{"How do I register a startup?", models.CategoryBusiness},
		{"Is GST needed for freelancers?", models.CategoryBusiness},
		{"The seller refused a refund", models.CategoryConsumer},
		{"What is the meaning of life?", models.CategoryGeneral},
		{"", models.CategoryGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.question, func(t *testing.T) {
			advice := Match(tt.question)
			assert.Equal(t, tt.category, advice.Category)
			assert.Equal(t, Disclaimer, advice.Disclaimer)
			assert.GreaterOrEqual(t, advice.Confidence, MinConfidence)
			assert.LessOrEqual(t, advice.Confidence, MaxConfidence)
		})
	}
}

func TestMatch_FirstRuleWins(t *testing.T) {
	// "divorce" (family) is checked before "property".
	advice := Match("Divorce and division of property")
	assert.Equal(t, models.CategoryFamily, advice.Category)

	// "company" (business) would match, but "salary" (employment) comes first.
	advice = Match("My company withholds my salary")
	assert.Equal(t, models.CategoryEmployment, advice.Category)
}

func TestMatch_SameTextPerBucket(t *testing.T) {
	a := Match("divorce")
	b := Match("custody of my son after marriage ended")
	assert.Equal(t, a, b)
	assert.Equal(t, 88, a.Confidence)
	assert.Contains(t, a.Response, "Hindu Marriage Act, 1955")
}

func TestKeywordAdvisor_Delay(t *testing.T) {
	a := NewKeywordAdvisor(20 * time.Millisecond)

	start := time.Now()
	advice := a.Advise(context.Background(), "bail hearing")
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, models.CategoryCriminal, advice.Category)
}

func TestKeywordAdvisor_CancelledContext(t *testing.T) {
	a := NewKeywordAdvisor(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	advice := a.Advise(ctx, "defective product")
	assert.Equal(t, models.CategoryConsumer, advice.Category)
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 70, clampConfidence(10))
	assert.Equal(t, 70, clampConfidence(70))
	assert.Equal(t, 82, clampConfidence(82))
	assert.Equal(t, 95, clampConfidence(95))
	assert.Equal(t, 95, clampConfidence(120))
	assert.Equal(t, 81, clampConfidence(80.6))
	assert.Equal(t, 95, clampConfidence(1e300))
	assert.Equal(t, 70, clampConfidence(-1e300))
}
