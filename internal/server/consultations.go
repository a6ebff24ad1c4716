package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xaenox/legal-assistant/internal/models"
	"github.com/xaenox/legal-assistant/internal/storage"
	"go.uber.org/zap"
)

const recentConsultationsLimit = 10

type createConsultationRequest struct {
	Question string `json:"question" binding:"required,max=5000"`
	// Category is accepted from the chat widget but the advisor decides the
	// stored category.
	Category string `json:"category"`
}

type consultationResponse struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Response   string    `json:"response"`
	Category   string    `json:"category"`
	Confidence int       `json:"confidence"`
	Disclaimer string    `json:"disclaimer"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (s *Server) createConsultation(c *gin.Context) {
	var req createConsultationRequest
	if !s.bindJSON(c, &req, "Invalid consultation request") {
		return
	}

	ctx := c.Request.Context()
	advice := s.advisor.Advise(ctx, req.Question)

	consultation, err := s.storage.CreateConsultation(ctx, models.NewConsultation{
		Question:   req.Question,
		Response:   advice.Response,
		Category:   advice.Category,
		Confidence: advice.Confidence,
	})
	if err != nil {
		s.jsonError(c, http.StatusInternalServerError, "Failed to process consultation", err)
		return
	}

	s.logger.Info("Consultation answered",
		zap.String("consultation_id", consultation.ID),
		zap.String("category", consultation.Category),
		zap.Int("confidence", consultation.Confidence))

	c.JSON(http.StatusOK, consultationResponse{
		ID:         consultation.ID,
		Question:   consultation.Question,
		Response:   consultation.Response,
		Category:   consultation.Category,
		Confidence: consultation.Confidence,
		Disclaimer: advice.Disclaimer,
		CreatedAt:  consultation.CreatedAt,
	})
}

func (s *Server) listConsultations(c *gin.Context) {
	consultations, err := s.storage.GetConsultations(c.Request.Context(), c.Query("userId"))
	if err != nil {
		s.jsonError(c, http.StatusInternalServerError, "Failed to fetch consultations", err)
		return
	}

	if len(consultations) > recentConsultationsLimit {
		consultations = consultations[:recentConsultationsLimit]
	}
	c.JSON(http.StatusOK, consultations)
}

func (s *Server) getConsultation(c *gin.Context) {
	consultation, err := s.storage.GetConsultationByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Consultation not found"})
		return
	}
	if err != nil {
		s.jsonError(c, http.StatusInternalServerError, "Failed to fetch consultation", err)
		return
	}

	c.JSON(http.StatusOK, consultation)
}
