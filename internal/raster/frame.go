package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// frameBackground is the dark slate used behind framed exports.
var frameBackground = color.RGBA{R: 17, G: 24, B: 39, A: 255}

// FrameImage crops an image to the given ratio and renders it onto a padded
// dark canvas with an optional caption and the attribution footer. All
// paddings and font sizes scale with the image width.
func FrameImage(img image.Image, ratio, label string) (image.Image, error) {
	cropped, err := Crop(img, ratio)
	if err != nil {
		return nil, err
	}

	w := cropped.Bounds().Dx()
	h := cropped.Bounds().Dy()

	sidePadding := int(float64(w) * 0.04)
	topPadding := int(float64(w) * 0.04)
	bottomPadding := int(float64(w) * 0.18)
	if label != "" {
		bottomPadding = int(float64(w) * 0.24)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w+sidePadding*2, h+topPadding+bottomPadding))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{frameBackground}, image.Point{}, draw.Src)
	draw.Draw(canvas, image.Rect(sidePadding, topPadding, sidePadding+w, topPadding+h), cropped, cropped.Bounds().Min, draw.Src)

	cx := canvas.Bounds().Dx() / 2
	if label != "" {
		labelSize := maxInt(24, int(float64(w)*0.08))
		labelY := h + topPadding + (bottomPadding-int(float64(w)*0.10))/2
		drawCenteredText(canvas, label, cx, labelY, labelSize, color.RGBA{255, 255, 255, 230})
	}

	footerSize := maxInt(12, int(float64(w)*0.05))
	footerY := canvas.Bounds().Dy() - int(float64(w)*0.11)
	drawCenteredText(canvas, attributionLine, cx, footerY, footerSize, color.RGBA{255, 255, 255, 102})

	nanoSize := maxInt(8, int(float64(w)*0.035))
	nanoY := canvas.Bounds().Dy() - int(float64(w)*0.05)
	drawCenteredText(canvas, attributionNanoLine, cx, nanoY, nanoSize, color.RGBA{255, 255, 255, 102})

	return canvas, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
