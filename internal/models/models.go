package models

import "time"

// User is an account record. Passwords are stored as given.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// NewUser carries the fields supplied when creating a user.
type NewUser struct {
	Username string
	Password string
}

// Consultation is one question/answer exchange with the advisor
type Consultation struct {
	ID         string    `json:"id"`
	UserID     *string   `json:"userId"`
	Question   string    `json:"question"`
	Response   string    `json:"response"`
	Category   string    `json:"category"`
	Confidence int       `json:"confidence"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewConsultation carries the fields supplied when storing a consultation.
type NewConsultation struct {
	UserID     *string
	Question   string
	Response   string
	Category   string
	Confidence int
}
