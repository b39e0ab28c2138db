package raster

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Attribution lines rendered on every export.
const (
	attributionLine     = "Made with Gemini"
	attributionNanoLine = "Edit your images with Nano Banana at gemini.google"
)

// drawCenteredText renders text horizontally centered on cx with its vertical
// middle at cy, at the requested pixel height. The bundled bitmap face is
// rendered at native size and rescaled so caption sizes stay proportional to
// the composite width rather than fixed in absolute units.
func drawCenteredText(dst draw.Image, text string, cx, cy, heightPx int, col color.Color) {
	if text == "" || heightPx <= 0 {
		return
	}
	face := basicfont.Face7x13
	drawer := &font.Drawer{Src: image.NewUniform(col), Face: face}
	textW := drawer.MeasureString(text).Ceil()
	textH := face.Metrics().Height.Ceil()
	if textW == 0 || textH == 0 {
		return
	}

	tmp := image.NewRGBA(image.Rect(0, 0, textW, textH))
	drawer.Dst = tmp
	drawer.Dot = fixed.P(0, face.Metrics().Ascent.Ceil())
	drawer.DrawString(text)

	scale := float64(heightPx) / float64(textH)
	outW := int(float64(textW) * scale)
	if outW <= 0 {
		return
	}
	target := image.Rect(cx-outW/2, cy-heightPx/2, cx-outW/2+outW, cy-heightPx/2+heightPx)
	xdraw.ApproxBiLinear.Scale(dst, target, tmp, tmp.Bounds(), xdraw.Over, nil)
}

// scaleTo resizes an image to exactly w x h.
func scaleTo(img image.Image, w, h int) image.Image {
	if img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		return img
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(out, out.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return out
}
