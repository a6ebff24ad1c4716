package server

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/xaenox/legal-assistant/internal/models"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var registerValidatorsOnce sync.Once

// registerValidators reports fields by their JSON names and adds the
// legal_area tag. gin's validator is process-wide, so this runs once.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("legal_area", func(fl validator.FieldLevel) bool {
			return models.LegalArea(fl.Field().String()).Valid()
		})
	})
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "Request body must be a valid JSON object"}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Must be a valid email address"
	case "legal_area":
		areas := make([]string, len(models.LegalAreas))
		for i, a := range models.LegalAreas {
			areas[i] = string(a)
		}
		return "Must be one of " + strings.Join(areas, ", ")
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("Failed %s validation", fe.Tag())
	}
}

// bindJSON decodes and validates the request body into obj. On failure it
// writes a 400 reply and returns false.
func (s *Server) bindJSON(c *gin.Context, obj any, message string) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		s.logger.Debug("Request validation failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: message,
			Errors:  fieldErrors(err),
		})
		return false
	}
	return true
}

// jsonError logs err and writes a reply carrying only message.
func (s *Server) jsonError(c *gin.Context, status int, message string, err error) {
	if status >= http.StatusInternalServerError {
		s.logger.Error(message, zap.String("path", c.FullPath()), zap.Error(err))
	} else {
		s.logger.Warn(message, zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, ErrorResponse{Message: message})
}

// recoverer turns panics into a 500 reply.
func (s *Server) recoverer() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("Unhandled panic",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
				})
			}
		}()
		c.Next()
	}
}
