package handlers

import (
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/espranza/server/internal/helpers"
	"github.com/espranza/server/internal/models"
	"github.com/gin-gonic/gin"
)

// UploadFile relays a single multipart file to the media host. The type
// reported back is the browser-supplied MIME type of the original file,
// not whatever the host detected.
func UploadFile(cld *cloudinary.Cloudinary) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("No file uploaded"))
			return
		}

		folder := c.DefaultPostForm("folder", helpers.UploadFolder)

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("could not read uploaded file"))
			return
		}
		defer file.Close()

		url, publicID, err := helpers.UploadFile(c.Request.Context(), cld, file, folder)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(models.MediaAsset{
			URL:      url,
			PublicID: publicID,
			Type:     fileHeader.Header.Get("Content-Type"),
		}, ""))
	}
}
