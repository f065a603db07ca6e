package handlers

import (
	"errors"
	"net/http"

	"github.com/espranza/server/internal/models"
	"github.com/espranza/server/internal/services"
	"github.com/gin-gonic/gin"
)

// AdminLogin exchanges the shared admin password for a session token.
// Anything that is not the configured password, a missing or empty one
// included, is a 401.
func AdminLogin(a *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Password string `json:"password"`
		}
		// A malformed body carries no password either way.
		_ = c.ShouldBindJSON(&req)

		token, err := a.Login(req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidPassword) {
				c.JSON(http.StatusUnauthorized, gin.H{
					"success": false,
					"message": "Wrong password!",
				})
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   token,
		})
	}
}
