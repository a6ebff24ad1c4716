package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/xaenox/legal-assistant/internal/models"
	"go.uber.org/zap"
)

//go:embed migrations.sql
var migrations embed.FS

const uniqueViolation = "23505"

type DatabaseConfig struct {
	// URL, when set, is passed to the driver as-is and the other fields are ignored.
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type PostgresStorage struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresStorage(ctx context.Context, config DatabaseConfig, logger *zap.Logger) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	storage := &PostgresStorage{db: db, logger: logger}

	if err := storage.initializeSchema(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error initializing database schema: %w", err)
	}

	logger.Info("Connected to PostgreSQL",
		zap.String("host", config.Host),
		zap.Int("port", config.Port),
		zap.String("dbname", config.DBName))

	return storage, nil
}

func (s *PostgresStorage) initializeSchema(ctx context.Context) error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, string(migrationSQL)); err != nil {
		return fmt.Errorf("error executing migrations: %w", err)
	}

	return nil
}

func (s *PostgresStorage) GetUser(ctx context.Context, id string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE id = $1`, id,
	).Scan(&user.ID, &user.Username, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

func (s *PostgresStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := &models.User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = $1`, username,
	).Scan(&user.ID, &user.Username, &user.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting user by username: %w", err)
	}
	return user, nil
}

func (s *PostgresStorage) CreateUser(ctx context.Context, nu models.NewUser) (*models.User, error) {
	user := &models.User{
		ID:       uuid.NewString(),
		Username: nu.Username,
		Password: nu.Password,
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password) VALUES ($1, $2, $3)`,
		user.ID, user.Username, user.Password)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return user, nil
}

func (s *PostgresStorage) CreateConsultation(ctx context.Context, nc models.NewConsultation) (*models.Consultation, error) {
	c := &models.Consultation{
		ID:         uuid.NewString(),
		UserID:     nc.UserID,
		Question:   nc.Question,
		Response:   nc.Response,
		Category:   nc.Category,
		Confidence: nc.Confidence,
	}

	query := `
		INSERT INTO consultations (id, user_id, question, response, category, confidence)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := s.db.QueryRowContext(ctx, query,
		c.ID,
		c.UserID,
		c.Question,
		c.Response,
		c.Category,
		c.Confidence,
	).Scan(&c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating consultation: %w", err)
	}

	return c, nil
}

func (s *PostgresStorage) GetConsultations(ctx context.Context, userID string) ([]*models.Consultation, error) {
	query := `
		SELECT id, user_id, question, response, category, confidence, created_at
		FROM consultations
		WHERE $1 = '' OR user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying consultations: %w", err)
	}
	defer rows.Close()

	consultations := []*models.Consultation{}
	for rows.Next() {
		c, err := scanConsultation(rows)
		if err != nil {
			return nil, err
		}
		consultations = append(consultations, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating consultations: %w", err)
	}

	return consultations, nil
}

func (s *PostgresStorage) GetConsultationByID(ctx context.Context, id string) (*models.Consultation, error) {
	query := `
		SELECT id, user_id, question, response, category, confidence, created_at
		FROM consultations
		WHERE id = $1`

	c, err := scanConsultation(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConsultation(row rowScanner) (*models.Consultation, error) {
	c := &models.Consultation{}
	var userID sql.NullString
	err := row.Scan(
		&c.ID,
		&userID,
		&c.Question,
		&c.Response,
		&c.Category,
		&c.Confidence,
		&c.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning consultation: %w", err)
	}
	if userID.Valid {
		c.UserID = &userID.String
	}
	return c, nil
}

func (s *PostgresStorage) CreateContactRequest(ctx context.Context, nr models.NewContactRequest) (*models.ContactRequest, error) {
	r := &models.ContactRequest{
		ID:          uuid.NewString(),
		Name:        nr.Name,
		Email:       nr.Email,
		LegalArea:   nr.LegalArea,
		Description: nr.Description,
	}

	query := `
		INSERT INTO contact_requests (id, name, email, legal_area, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	err := s.db.QueryRowContext(ctx, query,
		r.ID,
		r.Name,
		r.Email,
		r.LegalArea,
		r.Description,
	).Scan(&r.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating contact request: %w", err)
	}

	return r, nil
}

func (s *PostgresStorage) GetContactRequests(ctx context.Context) ([]*models.ContactRequest, error) {
	query := `
		SELECT id, name, email, legal_area, description, created_at
		FROM contact_requests
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying contact requests: %w", err)
	}
	defer rows.Close()

	requests := []*models.ContactRequest{}
	for rows.Next() {
		r := &models.ContactRequest{}
		err := rows.Scan(
			&r.ID,
			&r.Name,
			&r.Email,
			&r.LegalArea,
			&r.Description,
			&r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning contact request: %w", err)
		}
		requests = append(requests, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact requests: %w", err)
	}

	return requests, nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
