package assets

import (
	"errors"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Library loads photos, sprites and music named in the journey file. Files
// are looked up in Dir first, then in the embedded assets. Decoded images
// are cached; a miss is logged once and remembered.
type Library struct {
	Dir string

	mu      sync.Mutex
	images  map[string]*ebiten.Image
	missing map[string]bool

	// newImage converts a decoded image; swapped in tests.
	newImage func(image.Image) *ebiten.Image
}

func NewLibrary(dir string) *Library {
	return &Library{
		Dir:      dir,
		images:   make(map[string]*ebiten.Image),
		missing:  make(map[string]bool),
		newImage: ebiten.NewImageFromImage,
	}
}

// ReadFile returns the raw bytes of name.
func (l *Library) ReadFile(name string) ([]byte, error) {
	if name == "" {
		return nil, fmt.Errorf("assets: empty name")
	}
	tried := []string{name}
	if l.Dir != "" && !filepath.IsAbs(name) {
		tried = append([]string{filepath.Join(l.Dir, filepath.FromSlash(name))}, tried...)
	}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			return b, nil
		}
	}
	b, err := LoadEmbedded(name)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, os.ErrNotExist)
	}
	return b, nil
}

// Image implements the renderer's image source. It never fails loudly: a
// missing or broken file is logged the first time and reported as absent.
func (l *Library) Image(name string) (*ebiten.Image, bool) {
	if name == "" {
		return nil, false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if img, ok := l.images[name]; ok {
		return img, true
	}
	if l.missing[name] {
		return nil, false
	}

	img, err := l.decode(name)
	if err != nil {
		l.missing[name] = true
		log.Printf("assets: image %q: %v", name, err)
		return nil, false
	}
	eimg := l.newImage(img)
	l.images[name] = eimg
	return eimg, true
}

// ImageOrPlaceholder falls back to the embedded placeholder.
func (l *Library) ImageOrPlaceholder(name string) *ebiten.Image {
	if img, ok := l.Image(name); ok {
		return img
	}
	img, _ := l.Image(Placeholder)
	return img
}

func (l *Library) decode(name string) (image.Image, error) {
	b, err := l.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return DecodeImage(name, b)
}

// Missing reports whether name has already failed to load.
func (l *Library) Missing(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.missing[name]
}

// AudioStream decodes a music file. A file that does not exist returns an
// error wrapping os.ErrNotExist so callers can fall back quietly.
func (l *Library) AudioStream(name string) (io.ReadSeeker, error) {
	b, err := l.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return DecodeAudio(name, b)
}

// IsNotExist reports whether err means the asset is absent.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
