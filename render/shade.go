// Package render maps scalar field values to terminal output: an ASCII
// shade ramp for plain dumps and RGB colors for tcell heat-map display.
package render

import "github.com/gdamore/tcell/v2"

// shadeRamp orders runes from empty to dense
var shadeRamp = []rune(" .:-=+*#%@")

// ShadeRune maps a value in [0, 1] to a rune on the density ramp. Values
// outside the range are clamped.
func ShadeRune(value float64) rune {
	if value <= 0 {
		return shadeRamp[0]
	}
	if value >= 1 {
		return shadeRamp[len(shadeRamp)-1]
	}
	return shadeRamp[int(value*float64(len(shadeRamp)))]
}

// HeightColor maps a value in [0, 1] to a terrain gradient:
// deep water → shallows → lowland green → highland brown → snow.
func HeightColor(value float64) tcell.Color {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	if value < 0.3 { // Deep to shallow water
		t := value / 0.3
		r := int32(10 + (60-10)*t)
		g := int32(30 + (120-30)*t)
		b := int32(90 + (200-90)*t)
		return tcell.NewRGBColor(r, g, b)
	} else if value < 0.5 { // Shore to lowland green
		t := (value - 0.3) / 0.2
		r := int32(60 + (50-60)*t)
		g := int32(120 + (160-120)*t)
		b := int32(200 - (200-60)*t)
		return tcell.NewRGBColor(r, g, b)
	} else if value < 0.75 { // Green to highland brown
		t := (value - 0.5) / 0.25
		r := int32(50 + (140-50)*t)
		g := int32(160 - (160-100)*t)
		b := int32(60 - (60-50)*t)
		return tcell.NewRGBColor(r, g, b)
	}
	// Brown to snow
	t := (value - 0.75) / 0.25
	r := int32(140 + (250-140)*t)
	g := int32(100 + (250-100)*t)
	b := int32(50 + (250-50)*t)
	return tcell.NewRGBColor(r, g, b)
}
