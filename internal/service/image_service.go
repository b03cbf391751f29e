package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/jpeg"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"trademaster/internal/config"
	"trademaster/internal/models"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

const (
	// DefaultMediaUploadDir is used when MEDIA_UPLOAD_DIR is not configured.
	DefaultMediaUploadDir = "/tmp/trademaster/media"
	// DefaultMediaMaxUploadSizeMB bounds upload size when not configured.
	DefaultMediaMaxUploadSizeMB = 10
	// MaxImageDimension is the longest edge kept after resizing.
	MaxImageDimension = 2048

	jpegQuality = 82
	webpQuality = 70
)

// ImageService validates, normalizes and stores uploaded images. Every image
// is re-encoded to JPEG (the served master) plus a WebP variant.
type ImageService struct {
	uploadDir          string
	maxUploadSizeBytes int64
}

// NewImageService returns a new ImageService configured from cfg.
func NewImageService(cfg *config.Config) *ImageService {
	uploadDir := DefaultMediaUploadDir
	maxUploadSizeMB := DefaultMediaMaxUploadSizeMB

	if cfg != nil {
		if cfg.MediaUploadDir != "" {
			uploadDir = cfg.MediaUploadDir
		}
		if cfg.MediaMaxUploadSizeMB > 0 {
			maxUploadSizeMB = cfg.MediaMaxUploadSizeMB
		}
	}

	return &ImageService{
		uploadDir:          uploadDir,
		maxUploadSizeBytes: int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// UploadDir returns the directory processed images are written to.
func (s *ImageService) UploadDir() string {
	return s.uploadDir
}

// Process validates content, re-encodes it and writes both variants to disk.
// It returns the public path of the JPEG master (served under /media).
func (s *ImageService) Process(content []byte) (string, error) {
	if len(content) == 0 {
		return "", models.NewValidationError("No file uploaded")
	}
	if int64(len(content)) > s.maxUploadSizeBytes {
		return "", models.NewValidationError(fmt.Sprintf("File too large (max %dMB)", s.maxUploadSizeBytes/(1024*1024)))
	}

	detectedType := http.DetectContentType(content)
	if !isAllowedImageMIME(detectedType) {
		return "", models.NewValidationError("Invalid image type")
	}

	decoded, _, err := image.Decode(bytes.NewReader(content))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}

	decoded = resizeToFit(decoded, MaxImageDimension)

	sum := sha256.Sum256(content)
	name := hex.EncodeToString(sum[:16])

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", models.NewInternalError(err)
	}

	jpegName := name + ".jpg"
	var jpegBuf bytes.Buffer
	if err := jpeg.Encode(&jpegBuf, decoded, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := os.WriteFile(filepath.Join(s.uploadDir, jpegName), jpegBuf.Bytes(), 0o644); err != nil {
		return "", models.NewInternalError(err)
	}

	var webpBuf bytes.Buffer
	if err := webp.Encode(&webpBuf, decoded, &webp.Options{Quality: webpQuality}); err == nil {
		// WebP variant is best-effort; the JPEG master always exists.
		_ = os.WriteFile(filepath.Join(s.uploadDir, name+".webp"), webpBuf.Bytes(), 0o644)
	}

	return "/media/" + jpegName, nil
}

func isAllowedImageMIME(mimeType string) bool {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
		return true
	}
	return false
}

// resizeToFit scales img down so its longest edge is at most maxDim,
// preserving aspect ratio. Smaller images pass through untouched.
func resizeToFit(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= maxDim && h <= maxDim {
		return img
	}

	var nw, nh int
	if w >= h {
		nw = maxDim
		nh = h * maxDim / w
	} else {
		nh = maxDim
		nw = w * maxDim / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
