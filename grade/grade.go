// Package grade implements the per-pixel color-grading transform. A Grader
// precomputes lookup tables and channel gains for one preset and then maps
// input images to recolored images of identical dimensions. The transform is
// deterministic and has no cross-pixel dependency.
package grade

import (
	"image"
	"math"

	"recolor/preset"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
)

const (
	neutralTemp = 6500
	// slider-to-degrees factor for the per-band hue shifts
	hueSliderScale = 0.3
	// blend strength factor for the color-grading tints
	gradingScale = 0.3
	// saturation gain factor for the primary calibration
	calibrationScale = 0.5
)

type gradingStep struct {
	tint colorful.Color
	sat  float64
	lum  float64
}

// Grader applies one preset's grading recipe. Safe for concurrent use once
// built, since Apply only reads the precomputed state.
type Grader struct {
	gainR, gainG, gainB float64
	exposure            float64
	contrast            float64
	vibrance            float64
	satShift            float64
	lutR, lutG, lutB    [256]uint8
	hueAdj              [8]float64
	satAdj              [8]float64
	lumAdj              [8]float64
	shadows             gradingStep
	midtones            gradingStep
	highlights          gradingStep
	global              gradingStep
	grain               float64
	calR, calG, calB    float64
}

// New builds a Grader for the named preset.
func New(p preset.Preset) (*Grader, error) {
	set, err := preset.Lookup(p)
	if err != nil {
		return nil, err
	}

	g := &Grader{
		gainR:    1 + (set.WhiteBalance.Temperature-neutralTemp)/5000,
		gainG:    1 + set.WhiteBalance.Tint/100,
		gainB:    1 + (neutralTemp-set.WhiteBalance.Temperature)/5000,
		exposure: math.Pow(2, set.Tone.Exposure),
		contrast: 1 + set.Tone.Contrast/200,
		vibrance: 1 + set.Vibrance/100,
		satShift: set.Saturation / 255,
		grain:    set.GrainAmount / 255,
		calR:     1 + set.Calibration.RedSaturation/100*calibrationScale,
		calG:     1 + set.Calibration.GreenSaturation/100*calibrationScale,
		calB:     1 + set.Calibration.BlueSaturation/100*calibrationScale,
	}

	rgb := buildLUT(set.Curves.RGB)
	g.lutR = composeLUT(rgb, buildLUT(set.Curves.Red))
	g.lutG = composeLUT(rgb, buildLUT(set.Curves.Green))
	g.lutB = composeLUT(rgb, buildLUT(set.Curves.Blue))

	hue := set.HSL.Hue.Values()
	sat := set.HSL.Saturation.Values()
	lum := set.HSL.Luminance.Values()
	for i := range hue {
		g.hueAdj[i] = hue[i] * hueSliderScale
		g.satAdj[i] = 1 + sat[i]/100
		g.lumAdj[i] = lum[i] / 255
	}

	g.shadows = newGradingStep(set.Grading.Shadows)
	g.midtones = newGradingStep(set.Grading.Midtones)
	g.highlights = newGradingStep(set.Grading.Highlights)
	g.global = newGradingStep(set.Grading.Global)

	return g, nil
}

func newGradingStep(b preset.GradingBand) gradingStep {
	return gradingStep{
		tint: colorful.Hsl(b.Hue, 1, 0.5),
		sat:  b.Saturation / 100 * gradingScale,
		lum:  b.Luminance / 255,
	}
}

// Apply recolors img. The result has the same bounds as the input; the input
// is never modified. Alpha passes through untouched.
func (g *Grader) Apply(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	src := image.NewNRGBA(bounds)
	draw.Draw(src, bounds, img, bounds.Min, draw.Src)

	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			i := src.PixOffset(x, y)
			r, gg, b := g.pixel(x-bounds.Min.X, y-bounds.Min.Y,
				src.Pix[i], src.Pix[i+1], src.Pix[i+2])
			out.Pix[i] = r
			out.Pix[i+1] = gg
			out.Pix[i+2] = b
			out.Pix[i+3] = src.Pix[i+3]
		}
	}
	return out
}

// Apply is the one-shot form: it builds a Grader for the preset and recolors
// a single image with it.
func Apply(img image.Image, p preset.Preset) (*image.NRGBA, error) {
	g, err := New(p)
	if err != nil {
		return nil, err
	}
	return g.Apply(img), nil
}

func (g *Grader) pixel(x, y int, r8, g8, b8 uint8) (uint8, uint8, uint8) {
	r := float64(r8) / 255
	gg := float64(g8) / 255
	b := float64(b8) / 255

	// white balance
	r = clamp01(r * g.gainR)
	gg = clamp01(gg * g.gainG)
	b = clamp01(b * g.gainB)

	// exposure and contrast about mid-gray
	r = clamp01((r*g.exposure-0.5)*g.contrast + 0.5)
	gg = clamp01((gg*g.exposure-0.5)*g.contrast + 0.5)
	b = clamp01((b*g.exposure-0.5)*g.contrast + 0.5)

	// vibrance and saturation
	c := colorful.Color{R: r, G: gg, B: b}
	h, s, v := c.Hsv()
	c = colorful.Hsv(h, clamp01(s*g.vibrance+g.satShift), v)

	// tone curves
	c.R = float64(g.lutR[quantize(c.R)]) / 255
	c.G = float64(g.lutG[quantize(c.G)]) / 255
	c.B = float64(g.lutB[quantize(c.B)]) / 255

	// per-band hue/saturation/luminance
	h, s, l := c.Hsl()
	i, j, wi, wj := bandWeights(h)
	h = wrapHue(h + g.hueAdj[i]*wi + g.hueAdj[j]*wj)
	s = clamp01(s * (g.satAdj[i]*wi + g.satAdj[j]*wj))
	l = clamp01(l + g.lumAdj[i]*wi + g.lumAdj[j]*wj)
	c = colorful.Hsl(h, s, l)

	// shadows/midtones/highlights/global grading
	_, _, l = c.Hsl()
	ws := (1 - l) * (1 - l)
	wh := l * l
	wm := clamp01(1 - ws - wh)
	c = g.shadows.apply(c, ws)
	c = g.midtones.apply(c, wm)
	c = g.highlights.apply(c, wh)
	c = g.global.apply(c, 1)

	r, gg, b = c.R, c.G, c.B

	// grain
	if g.grain != 0 {
		n := grainNoise(x, y) * g.grain
		r += n
		gg += n
		b += n
	}

	// primary calibration about luma
	luma := 0.2126*r + 0.7152*gg + 0.0722*b
	r = clamp01(luma + (r-luma)*g.calR)
	gg = clamp01(luma + (gg-luma)*g.calG)
	b = clamp01(luma + (b-luma)*g.calB)

	return quantize(r), quantize(gg), quantize(b)
}

func (s gradingStep) apply(c colorful.Color, w float64) colorful.Color {
	if amt := w * s.sat; amt > 0 {
		c = c.BlendLab(s.tint, amt).Clamped()
	}
	if s.lum != 0 && w > 0 {
		h, sat, l := c.Hsl()
		c = colorful.Hsl(h, sat, clamp01(l+w*s.lum))
	}
	return c
}

// bandCenters are the hue-band anchors, in degrees, red first.
var bandCenters = [8]float64{0, 30, 60, 120, 180, 240, 280, 315}

// bandWeights splits a hue between its two nearest band centers, wrapping
// magenta back around to red.
func bandWeights(h float64) (i, j int, wi, wj float64) {
	h = wrapHue(h)
	for k := 1; k < len(bandCenters); k++ {
		if h < bandCenters[k] {
			t := (h - bandCenters[k-1]) / (bandCenters[k] - bandCenters[k-1])
			return k - 1, k, 1 - t, t
		}
	}
	t := (h - bandCenters[7]) / (360 - bandCenters[7])
	return 7, 0, 1 - t, t
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func quantize(v float64) uint8 {
	return uint8(clamp(math.Round(v*255), 0, 255))
}

// grainNoise hashes a pixel position into [-1, 1] so grain stays identical
// between runs.
func grainNoise(x, y int) float64 {
	h := uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xD1B54A32D192ED03 ^ 0xA24BAED4963EE407
	h ^= h >> 33
	h *= 0xFF51AFD7ED558CCD
	h ^= h >> 33
	return float64(h&0xFFFF)/32767.5 - 1
}
