package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xaenox/legal-assistant/internal/models"
	"go.uber.org/zap"
)

const contactSubmittedMessage = "Contact request submitted successfully. We will respond within 2 hours."

type createContactRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Email       string `json:"email" binding:"required,email"`
	LegalArea   string `json:"legalArea" binding:"required,legal_area"`
	Description string `json:"description" binding:"required,max=5000"`
}

type contactResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (s *Server) createContactRequest(c *gin.Context) {
	var req createContactRequest
	if !s.bindJSON(c, &req, "Invalid contact information") {
		return
	}

	ctx := c.Request.Context()
	contact, err := s.storage.CreateContactRequest(ctx, models.NewContactRequest{
		Name:        req.Name,
		Email:       req.Email,
		LegalArea:   models.LegalArea(req.LegalArea),
		Description: req.Description,
	})
	if err != nil {
		s.jsonError(c, http.StatusInternalServerError, "Failed to submit contact request", err)
		return
	}

	s.logger.Info("Contact request received",
		zap.String("contact_id", contact.ID),
		zap.String("legal_area", string(contact.LegalArea)))

	if err := s.notifier.NotifyContact(ctx, contact); err != nil {
		s.logger.Warn("Failed to notify about contact request",
			zap.String("contact_id", contact.ID),
			zap.Error(err))
	}

	c.JSON(http.StatusOK, contactResponse{
		ID:      contact.ID,
		Message: contactSubmittedMessage,
	})
}

func (s *Server) listContactRequests(c *gin.Context) {
	requests, err := s.storage.GetContactRequests(c.Request.Context())
	if err != nil {
		s.jsonError(c, http.StatusInternalServerError, "Failed to fetch contact requests", err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
