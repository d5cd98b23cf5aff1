// Package snapshot saves rendered frames as PNG files chosen through a
// native save dialog.
package snapshot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ncruces/zenity"
)

// ErrCanceled is returned by a PathFunc when the user dismissed the dialog.
var ErrCanceled = zenity.ErrCanceled

// PathFunc asks where to save and returns the chosen path.
type PathFunc func(suggested string) (string, error)

// DialogPath asks with a zenity save dialog.
func DialogPath(suggested string) (string, error) {
	return zenity.SelectFileSave(
		zenity.Title("Save Mesh Snapshot"),
		zenity.Filename(suggested),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
}

// Saver writes snapshots. The zero value is not usable; use New.
type Saver struct {
	path PathFunc
	now  func() time.Time
}

// New returns a Saver that asks path for the destination.
func New(path PathFunc) *Saver {
	return &Saver{path: path, now: time.Now}
}

// SuggestedName is the default file name offered in the dialog.
func (s *Saver) SuggestedName() string {
	return "mesh-" + s.now().Format("20060102-150405") + ".png"
}

// Save asks for a destination and writes img there. It returns the written
// path, or "" and a nil error if the dialog was cancelled.
func (s *Saver) Save(img image.Image) (string, error) {
	path, err := s.path(s.SuggestedName())
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("snapshot dialog: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(path), ".png") {
		path += ".png"
	}
	if err := WritePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("snapshot: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	return nil
}

// FromPremultiplied wraps RGBA pixels as read back from a GPU surface, which
// are alpha-premultiplied like image.RGBA.
func FromPremultiplied(pix []byte, width, height int) *image.RGBA {
	return &image.RGBA{
		Pix:    pix,
		Stride: 4 * width,
		Rect:   image.Rect(0, 0, width, height),
	}
}
