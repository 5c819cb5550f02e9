// Package texture decodes images for upload as diffuse textures.
package texture

import (
	"fmt"
	"image"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// Init loads the SDL_image codecs for PNG and JPEG.
func Init() error {
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		return fmt.Errorf("IMG_Init failed: %w", err)
	}
	return nil
}

// Quit unloads the SDL_image codecs.
func Quit() {
	img.Quit()
}

// Decode decodes any image format SDL_image understands into RGBA with the
// first row at the bottom, ready for glTexImage2D.
func Decode(data []byte) (*image.RGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image data")
	}

	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, fmt.Errorf("wrapping image data: %w", err)
	}
	surface, err := img.LoadRW(rw, true)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	defer surface.Free()

	// ABGR8888 is R,G,B,A in memory on little-endian machines.
	rgba, err := surface.ConvertFormat(sdl.PIXELFORMAT_ABGR8888, 0)
	if err != nil {
		return nil, fmt.Errorf("converting image to RGBA: %w", err)
	}
	defer rgba.Free()

	if err := rgba.Lock(); err != nil {
		return nil, fmt.Errorf("locking surface: %w", err)
	}
	defer rgba.Unlock()

	w, h := int(rgba.W), int(rgba.H)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	pixels := rgba.Pixels()
	pitch := int(rgba.Pitch)
	for y := 0; y < h; y++ {
		copy(out.Pix[y*out.Stride:y*out.Stride+w*4], pixels[y*pitch:y*pitch+w*4])
	}

	FlipVertical(out)
	return out, nil
}

// FlipVertical mirrors an image top to bottom in place. Image files store
// the top row first; OBJ texture coordinates put v=0 at the bottom.
func FlipVertical(m *image.RGBA) {
	h := m.Rect.Dy()
	rowLen := m.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := m.Pix[top*m.Stride : top*m.Stride+rowLen]
		b := m.Pix[bottom*m.Stride : bottom*m.Stride+rowLen]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
