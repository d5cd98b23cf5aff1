package snapshot

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	pix := make([]byte, 4*2*2)
	img := FromPremultiplied(pix, 2, 2)
	img.Set(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	return img
}

func TestSaveWritesPNG(t *testing.T) {
	dir := t.TempDir()
	var suggested string
	s := New(func(name string) (string, error) {
		suggested = name
		return filepath.Join(dir, "frame"), nil
	})
	s.now = func() time.Time { return time.Date(2024, 3, 5, 6, 7, 8, 0, time.UTC) }

	path, err := s.Save(testImage())
	require.NoError(t, err)
	assert.Equal(t, "mesh-20240305-060708.png", suggested)
	assert.Equal(t, filepath.Join(dir, "frame.png"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, a := img.At(1, 0).RGBA()
	assert.Equal(t, []uint32{10, 20, 30, 255}, []uint32{r >> 8, g >> 8, b >> 8, a >> 8})
}

func TestSaveCanceled(t *testing.T) {
	s := New(func(string) (string, error) { return "", ErrCanceled })
	path, err := s.Save(testImage())
	assert.NoError(t, err)
	assert.Empty(t, path)
}

func TestSaveDialogError(t *testing.T) {
	boom := errors.New("no display")
	s := New(func(string) (string, error) { return "", boom })
	_, err := s.Save(testImage())
	assert.ErrorIs(t, err, boom)
}

func TestWritePNGBadPath(t *testing.T) {
	err := WritePNG(filepath.Join(t.TempDir(), "missing", "x.png"), testImage())
	assert.Error(t, err)
}
