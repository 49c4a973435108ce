// Package assets loads background textures for the compositor.
package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

var (
	// ErrNotFound is returned when no file exists for a texture id.
	ErrNotFound = errors.New("texture not found")
	// ErrUnknownFormat is returned for data that is not png, jpeg, gif or webp.
	ErrUnknownFormat = errors.New("unknown image format")
)

// MaxTextureBytes caps how much of a texture source is read.
const MaxTextureBytes = 32 << 20

// Loader resolves a texture id to a decoded image.
type Loader interface {
	Load(ctx context.Context, texture string) (image.Image, error)
}

// extensions are tried in order for each texture id.
var extensions = []string{".webp", ".png", ".jpg", ".jpeg"}

// DetectFormat reads the magic bytes and returns the image format.
func DetectFormat(data []byte) (string, error) {
	if len(data) < 12 {
		return "", fmt.Errorf("%w: data too short", ErrUnknownFormat)
	}

	switch {
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return "jpeg", nil
	case data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4E && data[3] == 0x47:
		return "png", nil
	case string(data[0:6]) == "GIF87a" || string(data[0:6]) == "GIF89a":
		return "gif", nil
	case string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return "webp", nil
	}
	return "", ErrUnknownFormat
}

// Decode decodes png, jpeg, gif or webp data.
func Decode(data []byte) (image.Image, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return nil, err
	}

	var img image.Image
	if format == "webp" {
		img, err = webp.Decode(bytes.NewReader(data))
	} else {
		img, err = imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s image: %w", format, err)
	}
	return img, nil
}

// DirLoader reads textures from a directory as <id>.<ext>.
type DirLoader struct {
	Dir string
}

// NewDirLoader creates a loader rooted at dir.
func NewDirLoader(dir string) *DirLoader {
	return &DirLoader{Dir: dir}
}

// Load implements Loader.
func (l *DirLoader) Load(ctx context.Context, texture string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l == nil || l.Dir == "" || !validID(texture) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, texture)
	}

	for _, ext := range extensions {
		path := filepath.Join(l.Dir, texture+ext)
		data, err := readFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading texture %s: %w", path, err)
		}
		return Decode(data)
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrNotFound, texture, l.Dir)
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, MaxTextureBytes))
}

// HTTPLoader fetches textures from BaseURL/<id>.<ext>.
type HTTPLoader struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPClient returns a client tuned for texture downloads.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	dialer := &net.Dialer{
		Timeout:   10 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			ForceAttemptHTTP2:     true,
			MaxIdleConns:          20,
			IdleConnTimeout:       90 * time.Second,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 20 * time.Second,
		},
	}
}

// NewHTTPLoader creates a loader for baseURL. A nil client uses NewHTTPClient.
func NewHTTPLoader(baseURL string, client *http.Client) *HTTPLoader {
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &HTTPLoader{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

// Load implements Loader.
func (l *HTTPLoader) Load(ctx context.Context, texture string) (image.Image, error) {
	if !validID(texture) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, texture)
	}

	for _, ext := range extensions {
		url := l.BaseURL + "/" + texture + ext
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("building request: %w", err)
		}
		resp, err := l.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetching texture %s: %w", url, err)
		}
		data, err := io.ReadAll(io.LimitReader(resp.Body, MaxTextureBytes))
		resp.Body.Close()
		if resp.StatusCode == http.StatusNotFound {
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching texture %s: bad status %s", url, resp.Status)
		}
		if err != nil {
			return nil, fmt.Errorf("reading texture %s: %w", url, err)
		}
		return Decode(data)
	}
	return nil, fmt.Errorf("%w: %q at %s", ErrNotFound, texture, l.BaseURL)
}

// Chain tries each loader in order and returns the first image found.
type Chain []Loader

// Load implements Loader.
func (c Chain) Load(ctx context.Context, texture string) (image.Image, error) {
	var errs []error
	for _, l := range c {
		img, err := l.Load(ctx, texture)
		if err == nil {
			return img, nil
		}
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, texture)
	}
	return nil, errors.Join(errs...)
}

// validID rejects ids that could escape the texture root.
func validID(id string) bool {
	return id != "" && !strings.ContainsAny(id, `/\`) && !strings.Contains(id, "..")
}
