// Package portrait loads the profile picture and draws it in the terminal as
// half-block cells, two pixels per cell.
package portrait

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/andareed/profilecard/logging"
	_ "golang.org/x/image/webp"
)

const maxImageBytes = 16 << 20

// Load decodes an image from a local path or an http(s) URL.
func Load(ctx context.Context, src string) (image.Image, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("no image source")
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return fetch(ctx, src)
	}

	f, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("error opening image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", src, err)
	}
	logging.Debugf("portrait: decoded %s image %s (%v)", format, src, img.Bounds().Size())
	return img, nil
}

func fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error building request: %w", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error fetching image: %s returned %s", url, resp.Status)
	}

	img, format, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", url, err)
	}
	logging.Debugf("portrait: fetched %s image from %s (%v)", format, url, img.Bounds().Size())
	return img, nil
}
