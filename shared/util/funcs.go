package util

import "image/color"

// HexColor converte uma cor 0xRRGGBB em color.RGBA opaca.
func HexColor(hex uint32) color.RGBA {
	return color.RGBA{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}

// RGBA converte um array [r, g, b, a] (formato do config.json) em color.RGBA.
func RGBA(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
