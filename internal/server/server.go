package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/xaenox/legal-assistant/internal/advisor"
	"github.com/xaenox/legal-assistant/internal/notifier"
	"github.com/xaenox/legal-assistant/internal/storage"
	"go.uber.org/zap"
)

type Config struct {
	// LiveMode is true when questions go to the language model rather than
	// the canned answers.
	LiveMode        bool
	Model           string
	RateLimitPerMin int
	AllowedOrigins  []string
	// TrustedProxies lists the proxy addresses or CIDRs whose forwarding
	// headers are believed. Empty means the peer address is the client IP.
	TrustedProxies  []string
}

type Server struct {
	cfg      Config
	storage  storage.Storage
	advisor  advisor.Advisor
	notifier notifier.Notifier
	logger   *zap.Logger
	now      func() time.Time
}

func New(cfg Config, store storage.Storage, adv advisor.Advisor, n notifier.Notifier, logger *zap.Logger) *Server {
	registerValidators()

	if n == nil {
		n = notifier.NopNotifier{}
	}

	return &Server{
		cfg:      cfg,
		storage:  store,
		advisor:  adv,
		notifier: n,
		logger:   logger,
		now:      time.Now,
	}
}

// Handler builds the gin engine serving the API.
func (s *Server) Handler() http.Handler {
	router := gin.New()
	if err := router.SetTrustedProxies(s.cfg.TrustedProxies); err != nil {
		s.logger.Error("Invalid trusted proxies, ignoring forwarding headers",
			zap.Strings("trusted_proxies", s.cfg.TrustedProxies),
			zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
	router.Use(s.recoverer())
	router.Use(s.requestLogger())
	router.Use(cors.New(s.corsConfig()))

	s.registerRoutes(router)
	return router
}

func (s *Server) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	origins := s.cfg.AllowedOrigins
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
		cfg.AllowCredentials = true
	}
	return cfg
}

func (s *Server) registerRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/consultations", s.rateLimit(s.cfg.RateLimitPerMin), s.createConsultation)
		api.GET("/consultations", s.listConsultations)
		api.GET("/consultations/:id", s.getConsultation)

		api.POST("/contact", s.createContactRequest)
		api.GET("/contact", s.listContactRequests)

		api.GET("/health", s.health)
		api.GET("/status", s.status)
	}
}
