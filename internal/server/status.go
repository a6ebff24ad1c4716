package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type statusResponse struct {
	OpenAIConnected bool   `json:"openaiConnected"`
	Mode            string `json:"mode"`
	Message         string `json:"message"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": s.now().UTC().Format(isoMillis),
	})
}

// status reports whether answers come from the model. It never exposes the key.
func (s *Server) status(c *gin.Context) {
	if s.cfg.LiveMode {
		c.JSON(http.StatusOK, statusResponse{
			OpenAIConnected: true,
			Mode:            "live",
			Message:         "AI powered by OpenAI " + displayModel(s.cfg.Model),
		})
		return
	}

	c.JSON(http.StatusOK, statusResponse{
		OpenAIConnected: false,
		Mode:            "demo",
		Message:         "Demo mode - Connect OpenAI API for full functionality",
	})
}

// displayModel turns a model id such as gpt-4o into its product name, GPT-4o.
func displayModel(model string) string {
	if rest, ok := strings.CutPrefix(model, "gpt-"); ok {
		return "GPT-" + rest
	}
	return model
}
