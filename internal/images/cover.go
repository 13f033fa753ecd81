package images

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/shelfstack/bookstore-api/internal/httperr"
)

const (
	maxCoverWidth = 1024
	webpQuality   = 85
)

// NormalizeCover decodes an uploaded cover (jpeg, png, gif or webp),
// downscales anything wider than maxCoverWidth and re-encodes as webp.
// Every stored cover ends up in the same format at a bounded size.
func NormalizeCover(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_cover_image")
	}

	src = scaleDown(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scaleDown(src image.Image) image.Image {
	b := src.Bounds()
	if b.Dx() <= maxCoverWidth {
		return src
	}

	h := b.Dy() * maxCoverWidth / b.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxCoverWidth, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
