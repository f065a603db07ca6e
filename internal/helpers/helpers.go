package helpers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	// UploadFolder is where form uploads land on Cloudinary unless the
	// caller names a different folder.
	UploadFolder = "espranza_uploads"
)

// AllowedUploadFormats mirrors the extension filter the media host
// enforces on its side.
var AllowedUploadFormats = []string{"jpg", "png", "jpeg", "webp", "mp4", "mkv", "pdf"}

func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}

// UploadFile relays one file's bytes to Cloudinary and returns the hosted
// URL and public id. Resource type detection is left to the host.
func UploadFile(ctx context.Context, cld *cloudinary.Cloudinary, file io.Reader, folder string) (string, string, error) {
	if cld == nil {
		return "", "", fmt.Errorf("cloudinary client is not configured")
	}
	if strings.TrimSpace(folder) == "" {
		folder = UploadFolder
	}

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		ResourceType:   "auto",
		AllowedFormats: api.CldAPIArray(AllowedUploadFormats),
		Tags:           api.CldAPIArray{"espranza"},
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %v", err)
	}
	if uploadResult.Error.Message != "" {
		return "", "", fmt.Errorf("failed to upload file: %s", uploadResult.Error.Message)
	}

	return uploadResult.SecureURL, uploadResult.PublicID, nil
}
