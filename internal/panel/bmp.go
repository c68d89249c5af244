package panel

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// BMP writes every frame to a bitmap file, lit pixels white on black. The
// file is replaced atomically so a viewer never sees half a frame.
type BMP struct {
	Path  string
	Scale int
}

func NewBMP(path string, scale int) *BMP {
	if scale < 1 {
		scale = 1
	}
	return &BMP{Path: path, Scale: scale}
}

// Render returns the frame as a grayscale image enlarged by Scale. It goes
// through RGBA: with a gray destination the scaler draws nothing for a 1-bit
// source.
func (b *BMP) Render(frame *image1bit.VerticalLSB) *image.Gray {
	src := frame.Bounds()
	r := image.Rect(0, 0, src.Dx()*b.Scale, src.Dy()*b.Scale)
	rgba := image.NewRGBA(r)
	xdraw.NearestNeighbor.Scale(rgba, r, frame, src, xdraw.Src, nil)

	dst := image.NewGray(r)
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			dst.Pix[y*dst.Stride+x] = rgba.Pix[y*rgba.Stride+x*4]
		}
	}
	return dst
}

func (b *BMP) Flush(frame *image1bit.VerticalLSB) error {
	dir := filepath.Dir(b.Path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(b.Path)+".*")
	if err != nil {
		return fmt.Errorf("panel: create bmp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := bmp.Encode(tmp, b.Render(frame)); err != nil {
		tmp.Close()
		return fmt.Errorf("panel: encode bmp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("panel: write bmp: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.Path); err != nil {
		return fmt.Errorf("panel: replace %s: %w", b.Path, err)
	}
	return nil
}

func (b *BMP) Close() error { return nil }
