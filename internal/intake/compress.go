package intake

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"

	// Decoders for the accepted source types.
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// TargetSize scales width and height so the longer edge is at most
// MaxDimension, preserving the aspect ratio. Images that already fit are
// returned unchanged.
func TargetSize(width, height int) (int, int) {
	longer := max(width, height)
	if longer <= MaxDimension {
		return width, height
	}
	ratio := float64(MaxDimension) / float64(longer)
	w := int(math.Round(float64(width) * ratio))
	h := int(math.Round(float64(height) * ratio))
	return max(w, 1), max(h, 1)
}

// Compress decodes f, downsizes it to fit MaxDimension and re-encodes it as
// JPEG. The payload keeps the source file name.
func Compress(ctx context.Context, f File) (Payload, error) {
	if err := ctx.Err(); err != nil {
		return Payload{}, err
	}

	src, _, err := image.Decode(bytes.NewReader(f.Data))
	if err != nil {
		return Payload{}, fmt.Errorf("%w %s: %v", ErrDecode, f.Name, err)
	}

	b := src.Bounds()
	w, h := TargetSize(b.Dx(), b.Dy())

	// JPEG has no alpha channel; transparent pixels become white.
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	if w == b.Dx() && h == b.Dy() {
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	}

	if err := ctx.Err(); err != nil {
		return Payload{}, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return Payload{}, fmt.Errorf("failed to encode %s: %w", f.Name, err)
	}

	return Payload{
		Name:        f.Name,
		ContentType: "image/jpeg",
		Width:       w,
		Height:      h,
		Data:        buf.Bytes(),
	}, nil
}
