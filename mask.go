package grove

import (
	"image"

	"golang.org/x/image/draw"
)

// buildOpacityTable renders img into an alpha-only buffer. The result holds
// one byte of opacity per source pixel and is indexed in img's coordinates.
func buildOpacityTable(img image.Image) *image.Alpha {
	b := img.Bounds()
	mask := image.NewAlpha(b)
	draw.Draw(mask, b, img, b.Min, draw.Src)
	return mask
}

// averageColor returns the alpha-weighted mean color of img. Fully
// transparent images report a transparent black.
func averageColor(img image.Image) Color {
	b := img.Bounds()
	var r, g, bl, a float64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			cr, cg, cb, ca := img.At(x, y).RGBA()
			r += float64(cr)
			g += float64(cg)
			bl += float64(cb)
			a += float64(ca)
		}
	}
	if a == 0 {
		return Color{}
	}
	// Channels are premultiplied, so dividing by total alpha un-premultiplies.
	n := float64(b.Dx() * b.Dy())
	return Color{R: r / a, G: g / a, B: bl / a, A: a / n / 0xffff}
}
