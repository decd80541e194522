package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"os"
	"path/filepath"
	"sync"
)

// PageCache caches decoded page images by file path so repeated inspection of
// the same scan does not re-read and re-decode it.
//
// Cached pages stay in memory until Evict or Clear. PageCache is safe for
// concurrent use by multiple goroutines.
type PageCache struct {
	mu    sync.RWMutex
	pages map[string]image.Image
}

// NewPageCache creates an empty page cache ready for use.
func NewPageCache() *PageCache {
	return &PageCache{
		pages: make(map[string]image.Image),
	}
}

// Load returns the page image at path, reading and decoding it on the first
// call and serving the cached copy afterwards. PNG, JPEG and GIF are
// supported. The path string is the cache key, so relative and absolute paths
// to the same file cache separately.
func (c *PageCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.pages[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open page image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode page image: %w", err)
	}

	c.mu.Lock()
	c.pages[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear drops every cached page.
func (c *PageCache) Clear() {
	c.mu.Lock()
	c.pages = make(map[string]image.Image)
	c.mu.Unlock()
}

// Evict drops the cached page for path, if any. The next Load for the same
// path reads from disk again.
func (c *PageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.pages, path)
	c.mu.Unlock()
}

// PageInfo describes a loaded page image file.
type PageInfo struct {
	// Width and Height are the pixel dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Format is derived from the file extension: "png", "jpeg", "gif", or
	// "unknown".
	Format string `json:"format"`

	// FileSizeBytes is the size of the file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadPageInfo loads the page at path through the cache and returns its
// dimensions, format and file size.
func LoadPageInfo(cache *PageCache, path string) (*PageInfo, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat page file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	bounds := img.Bounds()
	return &PageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}

// EncodePNGBase64 encodes img as a PNG and returns the standard base64 form
// used for inline image payloads.
func EncodePNGBase64(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode PNG: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
