package ui

import "image/color"

var boardColor = color.NRGBA{R: 45, G: 62, B: 80, A: 255}
var headerColor = color.NRGBA{R: 33, G: 47, B: 61, A: 255}
var hiddenColor = color.NRGBA{R: 171, G: 178, B: 185, A: 255}
var revealedColor = color.NRGBA{R: 144, G: 238, B: 144, A: 255}
var mineColor = color.NRGBA{R: 240, G: 128, B: 128, A: 255}
var wonTint = color.NRGBA{R: 0, G: 127, B: 0, A: 255}
var lostTint = color.NRGBA{R: 127, G: 0, B: 0, A: 255}
var whiteColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Classic per-digit palette, index 1 to 8.
var digitColors = [9]color.NRGBA{
	{},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 123, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 123, A: 255},
	{R: 123, G: 0, B: 0, A: 255},
	{R: 0, G: 123, B: 123, A: 255},
	{R: 0, G: 0, B: 0, A: 255},
	{R: 123, G: 123, B: 123, A: 255},
}
