package services

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/aura-ide/aura/internal/config"
)

// maxImageBytes bounds the sketch attached to a run
const maxImageBytes = 8 << 20

// LoadImageDataURL reads an image file and encodes it as a data URL
func LoadImageDataURL(path string) (string, error) {
	path = config.ExpandPath(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return "", fmt.Errorf("image %s is larger than %d bytes", path, maxImageBytes)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return "", fmt.Errorf("%s is not an image (%s)", path, mimeType)
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
