package texture

import (
	"bytes"
	"fmt"
	"image"
	"path"
	"strings"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
)

// TGA image types.
const (
	TGATypeUncompressed = 2
	TGATypeRLE          = 10
)

const tgaHeaderSize = 18

// DecodeFile decodes data using the decoder for name's extension. TGA has no
// magic number, so it is routed by extension. BMP and TIFF decode in Go;
// everything else goes to SDL_image.
func DecodeFile(name string, data []byte) (*image.RGBA, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".tga":
		return DecodeTGA(data)
	case ".bmp", ".tif", ".tiff":
		return DecodeStd(data)
	}
	return Decode(data)
}

// DecodeStd decodes any format registered with the image package into RGBA
// with the first row at the bottom.
func DecodeStd(data []byte) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	b := src.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), src, b.Min, draw.Src)
	FlipVertical(out)
	return out, nil
}

// DecodeTGA decodes uncompressed or RLE true-color TGA data into RGBA with
// the first row at the bottom.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topToBottom := data[17]&0x20 != 0

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d", bpp)
	}
	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, fmt.Errorf("TGA data truncated")
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		bpp:         bpp / 8,
		topToBottom: topToBottom,
	}
	var err error
	if imageType == TGATypeUncompressed {
		err = d.raw(width * height)
	} else {
		err = d.rle(width * height)
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	pos         int
	bpp         int
	topToBottom bool
	n           int // pixels written
}

// next reads one BGR(A) pixel.
func (d *tgaDecoder) next() ([4]byte, error) {
	if d.pos+d.bpp > len(d.src) {
		return [4]byte{}, fmt.Errorf("TGA pixel data truncated")
	}
	p := d.src[d.pos:]
	d.pos += d.bpp
	a := byte(255)
	if d.bpp == 4 {
		a = p[3]
	}
	return [4]byte{p[2], p[1], p[0], a}, nil
}

// put stores the next pixel in file order. Files are bottom-up unless the
// descriptor says otherwise, which already matches OpenGL row order.
func (d *tgaDecoder) put(c [4]byte) {
	w := d.img.Rect.Dx()
	x, y := d.n%w, d.n/w
	if d.topToBottom {
		y = d.img.Rect.Dy() - 1 - y
	}
	i := y*d.img.Stride + x*4
	copy(d.img.Pix[i:i+4], c[:])
	d.n++
}

func (d *tgaDecoder) raw(total int) error {
	for d.n < total {
		c, err := d.next()
		if err != nil {
			return err
		}
		d.put(c)
	}
	return nil
}

func (d *tgaDecoder) rle(total int) error {
	for d.n < total {
		if d.pos >= len(d.src) {
			return fmt.Errorf("TGA RLE data truncated")
		}
		packet := d.src[d.pos]
		d.pos++
		count := min(int(packet&0x7F)+1, total-d.n)

		if packet&0x80 != 0 {
			c, err := d.next()
			if err != nil {
				return err
			}
			for range count {
				d.put(c)
			}
			continue
		}
		for range count {
			c, err := d.next()
			if err != nil {
				return err
			}
			d.put(c)
		}
	}
	return nil
}
