package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tzt-server/internal/domain"
)

const internalErrorMessage = "Internal Neural Mesh Error"

// respondError writes the uniform error envelope.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
	})
}

// respondDomainError maps domain errors to HTTP statuses. Anything
// unrecognized is an internal error: logged in full, reported generically.
func (h *Handler) respondDomainError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondError(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, domain.ErrDuplicateEmail):
		respondError(c, http.StatusBadRequest, domain.ErrDuplicateEmail.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondError(c, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrInvalidToken):
		respondError(c, http.StatusUnauthorized, domain.ErrInvalidToken.Error())
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, domain.ErrNotFound.Error())
	default:
		h.logger.WithError(err).Errorf("%s %s failed", c.Request.Method, c.Request.URL.Path)
		if h.production {
			respondError(c, http.StatusInternalServerError, internalErrorMessage)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": internalErrorMessage,
			"stack":   err.Error(),
		})
	}
}
