package canvas

import "image/color"

// Color is a straight (non premultiplied) rgba color with 8 bits per channel.
// The zero value is fully transparent black.
type Color struct {
	R, G, B, A uint8
}

var Transparent = Color{}
var Black = Color{A: 0xff}
var White = Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// RGBA creates a new Color from the given channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

func colorOf(c color.Color) Color {
	return Color(color.NRGBAModel.Convert(c).(color.NRGBA))
}
