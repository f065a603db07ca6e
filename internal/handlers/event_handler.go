package handlers

import (
	"net/http"

	"github.com/espranza/server/internal/models"
	"github.com/espranza/server/internal/services"
	"github.com/gin-gonic/gin"
)

func ListEvents(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		events, err := s.ListEvents(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(events, ""))
	}
}

func UpdateEvents(s *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Events []models.Event `json:"events"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if req.Events == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("events must be an array"))
			return
		}

		if err := s.ReplaceEvents(c.Request.Context(), req.Events); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Events updated!"))
	}
}
