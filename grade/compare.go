package grade

import (
	"image"

	"golang.org/x/image/draw"
)

// Compare places before and after side by side for visual review. Both
// halves carry the exact source pixels; for equal-sized inputs the result is
// twice the width at the same height.
func Compare(before, after image.Image) *image.NRGBA {
	bb := before.Bounds()
	ab := after.Bounds()

	w := bb.Dx() + ab.Dx()
	h := max(bb.Dy(), ab.Dy())

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(out, image.Rect(0, 0, bb.Dx(), bb.Dy()), before, bb.Min, draw.Src)
	draw.Draw(out, image.Rect(bb.Dx(), 0, w, ab.Dy()), after, ab.Min, draw.Src)
	return out
}
