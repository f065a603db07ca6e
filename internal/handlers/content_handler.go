package handlers

import (
	"net/http"

	"github.com/espranza/server/internal/models"
	"github.com/espranza/server/internal/services"
	"github.com/gin-gonic/gin"
)

func GetContent(s *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		content, err := s.GetContent(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}
		// content is nil until the first update; the frontend treats
		// null data as "use built-in defaults".
		c.JSON(http.StatusOK, models.SuccessResponse(content, ""))
	}
}

func UpdateContent(s *services.ContentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Content *models.Content `json:"content"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}
		if req.Content == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("content is required"))
			return
		}

		if err := s.ReplaceContent(c.Request.Context(), req.Content); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Website content saved!"))
	}
}
