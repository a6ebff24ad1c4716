package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/xaenox/legal-assistant/internal/models"
)

// MemoryStorage keeps every record in process memory. Nothing survives a restart.
type MemoryStorage struct {
	mu              sync.RWMutex
	users           map[string]*models.User
	consultations   map[string]*models.Consultation
	contactRequests map[string]*models.ContactRequest

	now      func() time.Time
	lastTime time.Time
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		users:           make(map[string]*models.User),
		consultations:   make(map[string]*models.Consultation),
		contactRequests: make(map[string]*models.ContactRequest),
		now:             time.Now,
	}
}

// timestamp returns the creation time for a new record. Times are strictly
// increasing so records created within one clock tick still sort.
// Callers must hold mu.
func (s *MemoryStorage) timestamp() time.Time {
	t := s.now()
	if !t.After(s.lastTime) {
		t = s.lastTime.Add(time.Nanosecond)
	}
	s.lastTime = t
	return t
}

// User methods
func (s *MemoryStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if user, exists := s.users[id]; exists {
		u := *user
		return &u, nil
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStorage) CreateUser(ctx context.Context, nu models.NewUser) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Username == nu.Username {
			return nil, ErrUsernameTaken
		}
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Username: nu.Username,
		Password: nu.Password,
	}
	s.users[user.ID] = user

	u := *user
	return &u, nil
}

// Consultation methods
func (s *MemoryStorage) CreateConsultation(ctx context.Context, nc models.NewConsultation) (*models.Consultation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &models.Consultation{
		ID:         uuid.NewString(),
		UserID:     nc.UserID,
		Question:   nc.Question,
		Response:   nc.Response,
		Category:   nc.Category,
		Confidence: nc.Confidence,
		CreatedAt:  s.timestamp(),
	}
	s.consultations[c.ID] = c

	out := *c
	return &out, nil
}

func (s *MemoryStorage) GetConsultations(ctx context.Context, userID string) ([]*models.Consultation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.Consultation, 0, len(s.consultations))
	for _, c := range s.consultations {
		if userID != "" && (c.UserID == nil || *c.UserID != userID) {
			continue
		}
		out := *c
		result = append(result, &out)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryStorage) GetConsultationByID(ctx context.Context, id string) (*models.Consultation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, exists := s.consultations[id]; exists {
		out := *c
		return &out, nil
	}
	return nil, ErrNotFound
}

// Contact request methods
func (s *MemoryStorage) CreateContactRequest(ctx context.Context, nr models.NewContactRequest) (*models.ContactRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &models.ContactRequest{
		ID:          uuid.NewString(),
		Name:        nr.Name,
		Email:       nr.Email,
		LegalArea:   nr.LegalArea,
		Description: nr.Description,
		CreatedAt:   s.timestamp(),
	}
	s.contactRequests[r.ID] = r

	out := *r
	return &out, nil
}

func (s *MemoryStorage) GetContactRequests(ctx context.Context) ([]*models.ContactRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*models.ContactRequest, 0, len(s.contactRequests))
	for _, r := range s.contactRequests {
		out := *r
		result = append(result, &out)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *MemoryStorage) Close() error {
	// Nothing to close for in-memory storage
	return nil
}
