package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"tzt-server/internal/auth"
	"tzt-server/internal/domain"
	"tzt-server/internal/service"
)

const (
	appName    = "TRADIQ ZIUM TECHS"
	appVersion = "2.0.0-neural"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth       service.AuthService
	contacts   service.ContactService
	tokens     *auth.Tokens
	logger     *logrus.Logger
	env        string
	production bool
	limit      RateLimit
}

func NewHandler(authSvc service.AuthService, contacts service.ContactService, tokens *auth.Tokens, logger *logrus.Logger, env string, production bool, limit RateLimit) *Handler {
	return &Handler{
		auth:       authSvc,
		contacts:   contacts,
		tokens:     tokens,
		logger:     logger,
		env:        env,
		production: production,
		limit:      limit,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.Use(corsMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api := router.Group("/api/v1")
	api.Use(rateLimitMiddleware(h.limit))
	{
		api.GET("/config", h.getConfig)

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", h.register)
			authGroup.POST("/login", h.login)
		}

		api.POST("/contact", h.submitContact)

		admin := api.Group("", Authorize(h.tokens), RestrictTo(domain.RoleAdmin))
		{
			admin.GET("/users", h.listUsers)
			admin.GET("/contact", h.listContactMessages)
		}
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"appName":     appName,
		"version":     appVersion,
		"environment": h.env,
	})
}

func (h *Handler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"token":  result.Token,
		"data":   gin.H{"user": result.User},
	})
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"token":  result.Token,
		"data":   gin.H{"user": result.User},
	})
}

func (h *Handler) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	msg, err := h.contacts.Accept(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		h.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":         "success",
		"message":        "Transmission acknowledged by TZT neural mesh.",
		"transmissionId": msg.ID,
	})
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.auth.ListUsers(c.Request.Context())
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	if users == nil {
		users = []domain.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) listContactMessages(c *gin.Context) {
	messages, err := h.contacts.ListMessages(c.Request.Context())
	if err != nil {
		h.respondDomainError(c, err)
		return
	}
	if messages == nil {
		messages = []domain.ContactMessage{}
	}
	c.JSON(http.StatusOK, messages)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
