package storage

import (
	"context"
	"errors"

	"github.com/xaenox/legal-assistant/internal/models"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrUsernameTaken = errors.New("username already taken")
)

type Storage interface {
	UserStorage

	CreateConsultation(ctx context.Context, c models.NewConsultation) (*models.Consultation, error)
	// GetConsultations returns consultations newest first. A non-empty
	// userID limits the result to that user's consultations.
	GetConsultations(ctx context.Context, userID string) ([]*models.Consultation, error)
	GetConsultationByID(ctx context.Context, id string) (*models.Consultation, error)

	CreateContactRequest(ctx context.Context, r models.NewContactRequest) (*models.ContactRequest, error)
	GetContactRequests(ctx context.Context) ([]*models.ContactRequest, error)

	Close() error
}

type UserStorage interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, u models.NewUser) (*models.User, error)
}

var (
	_ Storage = (*MemoryStorage)(nil)
	_ Storage = (*PostgresStorage)(nil)
)
