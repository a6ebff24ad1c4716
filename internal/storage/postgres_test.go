package storage

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xaenox/legal-assistant/internal/models"
	"go.uber.org/zap"
)

func setupTestDB(t *testing.T) *PostgresStorage {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx := context.Background()
	s, err := NewPostgresStorage(ctx, DatabaseConfig{URL: dbURL}, zap.NewNop())
	if err != nil {
		t.Skipf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	for _, table := range []string{"consultations", "contact_requests", "users"} {
		_, err := s.db.ExecContext(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}

	return s
}

func TestPostgresStorage_Consultations(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	user := "user-1"
	first, err := s.CreateConsultation(ctx, models.NewConsultation{
		UserID:     &user,
		Question:   "Can my landlord keep the deposit?",
		Response:   "It depends on the agreement.",
		Category:   models.CategoryProperty,
		Confidence: 92,
	})
	require.NoError(t, err)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := s.CreateConsultation(ctx, models.NewConsultation{
		Question:   "What is GST?",
		Response:   "A tax.",
		Category:   models.CategoryBusiness,
		Confidence: 93,
	})
	require.NoError(t, err)

	list, err := s.GetConsultations(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Nil(t, list[0].UserID)

	mine, err := s.GetConsultations(ctx, user)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.NotNil(t, mine[0].UserID)
	assert.Equal(t, user, *mine[0].UserID)

	got, err := s.GetConsultationByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Question, got.Question)

	_, err = s.GetConsultationByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostgresStorage_ContactRequests(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	r, err := s.CreateContactRequest(ctx, models.NewContactRequest{
		Name:        "Meera",
		Email:       "meera@example.com",
		LegalArea:   models.EmploymentLawArea,
		Description: "Unpaid salary",
	})
	require.NoError(t, err)

	list, err := s.GetContactRequests(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, r.ID, list[0].ID)
	assert.Equal(t, models.EmploymentLawArea, list[0].LegalArea)
}

func TestPostgresStorage_Users(t *testing.T) {
	s := setupTestDB(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, models.NewUser{Username: "clerk", Password: "pw"})
	require.NoError(t, err)

	got, err := s.GetUserByUsername(ctx, "clerk")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.CreateUser(ctx, models.NewUser{Username: "clerk", Password: "pw2"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
}
