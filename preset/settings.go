package preset

// Settings holds the full grading recipe for one preset. Values follow
// Lightroom-style ranges: temperature in kelvin, exposure in stops, most
// sliders in [-100, 100].
type Settings struct {
	WhiteBalance WhiteBalance
	Tone         Tone
	Vibrance     float64
	Saturation   float64
	Curves       Curves
	HSL          HSL
	Grading      Grading
	GrainAmount  float64
	Calibration  Calibration
}

type WhiteBalance struct {
	Temperature float64 // kelvin, 6500 is neutral
	Tint        float64
}

type Tone struct {
	Exposure float64 // stops
	Contrast float64
}

// CurvePoint is one control point of a tone curve, both coordinates in
// [0, 255]. Curves must be sorted by X and span the full input range.
type CurvePoint struct {
	X, Y float64
}

type Curves struct {
	RGB   []CurvePoint
	Red   []CurvePoint
	Green []CurvePoint
	Blue  []CurvePoint
}

// Bands holds one adjustment value per hue band.
type Bands struct {
	Red     float64
	Orange  float64
	Yellow  float64
	Green   float64
	Aqua    float64
	Blue    float64
	Purple  float64
	Magenta float64
}

// Values returns the band adjustments in hue order, red first.
func (b Bands) Values() [8]float64 {
	return [8]float64{b.Red, b.Orange, b.Yellow, b.Green, b.Aqua, b.Blue, b.Purple, b.Magenta}
}

// HSL carries the per-band hue, saturation and luminance adjustments.
type HSL struct {
	Hue        Bands
	Saturation Bands
	Luminance  Bands
}

// GradingBand tints one tonal range toward a hue.
type GradingBand struct {
	Hue        float64 // degrees
	Saturation float64
	Luminance  float64
}

type Grading struct {
	Shadows    GradingBand
	Midtones   GradingBand
	Highlights GradingBand
	Global     GradingBand
}

// Calibration scales each primary's saturation about luma.
type Calibration struct {
	RedSaturation   float64
	GreenSaturation float64
	BlueSaturation  float64
}

// ares is a dark, contrasty look that drains everything but reds and pushes
// the remaining color toward neon red.
var ares = Settings{
	WhiteBalance: WhiteBalance{Temperature: 7500, Tint: 40},
	Tone:         Tone{Exposure: -0.2, Contrast: 70},
	Vibrance:     15,
	Saturation:   20,
	Curves: Curves{
		// high-contrast S-curve
		RGB: []CurvePoint{{0, 0}, {32, 10}, {128, 128}, {220, 245}, {255, 255}},
		// midtone lift in red, shadows and highlights protected
		Red:   []CurvePoint{{0, 0}, {60, 50}, {128, 180}, {255, 255}},
		Green: []CurvePoint{{0, 0}, {128, 128}, {255, 255}},
		Blue:  []CurvePoint{{0, 0}, {128, 128}, {255, 255}},
	},
	HSL: HSL{
		Hue: Bands{Orange: -20, Yellow: -40, Green: -60, Aqua: -60, Blue: -60, Purple: -60, Magenta: -40},
		Saturation: Bands{
			Red: 80, Orange: -40, Yellow: -90, Green: -100,
			Aqua: -100, Blue: -100, Purple: -70, Magenta: -70,
		},
		Luminance: Bands{Red: 20, Yellow: -30, Blue: -30, Purple: -30},
	},
	Grading: Grading{
		// hue 0 is pure red; strong shadow saturation reddens dark areas
		Shadows:    GradingBand{Hue: 0, Saturation: 60, Luminance: -20},
		Midtones:   GradingBand{Hue: 0, Saturation: 40},
		Highlights: GradingBand{Hue: 0, Saturation: 20},
		Global:     GradingBand{Hue: 0, Saturation: 10},
	},
	GrainAmount: 5,
	Calibration: Calibration{RedSaturation: 40, GreenSaturation: -40, BlueSaturation: -40},
}

// legacy is a cooler, moody look that mutes warm colors and pushes shadows
// and midtones into teal.
var legacy = Settings{
	WhiteBalance: WhiteBalance{Temperature: 4000, Tint: -10},
	Tone:         Tone{Exposure: -0.1, Contrast: 50},
	Vibrance:     15,
	Saturation:   10,
	Curves: Curves{
		// gentle S-curve
		RGB: []CurvePoint{{0, 0}, {50, 30}, {128, 128}, {205, 230}, {255, 255}},
		Red: []CurvePoint{{0, 0}, {128, 115}, {255, 255}},
		Green: []CurvePoint{{0, 0}, {128, 128}, {255, 255}},
		// lifted blue shadows for the cool cast
		Blue: []CurvePoint{{0, 10}, {128, 140}, {255, 255}},
	},
	HSL: HSL{
		Hue: Bands{
			Red: -20, Orange: -30, Yellow: -50, Green: -80,
			Aqua: -20, Blue: -40, Purple: -20, Magenta: -20,
		},
		Saturation: Bands{
			Red: -80, Orange: -90, Yellow: -90, Green: -60,
			Aqua: 50, Blue: 60, Purple: -50, Magenta: -50,
		},
		Luminance: Bands{Aqua: 20, Blue: 20},
	},
	Grading: Grading{
		// hue 180 is cyan/teal
		Shadows:    GradingBand{Hue: 180, Saturation: 40},
		Midtones:   GradingBand{Hue: 180, Saturation: 30},
		Highlights: GradingBand{Hue: 180, Saturation: 20},
		Global:     GradingBand{Hue: 180, Saturation: 10},
	},
	GrainAmount: 5,
	Calibration: Calibration{RedSaturation: -20, GreenSaturation: -20, BlueSaturation: 20},
}
