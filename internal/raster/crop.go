package raster

import (
	"fmt"
	"image"
	"image/draw"
	"strconv"
	"strings"
)

// ParseRatio parses an "W:H" aspect ratio string such as "1:1" or "9:16".
func ParseRatio(ratio string) (w, h int, err error) {
	parts := strings.Split(ratio, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: invalid aspect ratio %q", ErrTransform, ratio)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(parts[0]))
	h, errH := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: invalid aspect ratio %q", ErrTransform, ratio)
	}
	return w, h, nil
}

// Crop center-crops an image to the target aspect ratio. The crop happens
// once along whichever axis has excess extent; the other axis is kept whole.
func Crop(img image.Image, ratio string) (image.Image, error) {
	targetW, targetH, err := ParseRatio(ratio)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	origW := bounds.Dx()
	origH := bounds.Dy()
	if origW == 0 || origH == 0 {
		return nil, fmt.Errorf("%w: empty source image", ErrTransform)
	}

	origAspect := float64(origW) / float64(origH)
	targetAspect := float64(targetW) / float64(targetH)

	var srcX, srcY, srcW, srcH int
	if origAspect > targetAspect {
		srcH = origH
		srcW = int(float64(origH) * targetAspect)
		srcX = (origW - srcW) / 2
		srcY = 0
	} else {
		srcW = origW
		srcH = int(float64(origW) / targetAspect)
		srcX = 0
		srcY = (origH - srcH) / 2
	}

	out := image.NewRGBA(image.Rect(0, 0, srcW, srcH))
	src := image.Rect(bounds.Min.X+srcX, bounds.Min.Y+srcY, bounds.Min.X+srcX+srcW, bounds.Min.Y+srcY+srcH)
	draw.Draw(out, out.Bounds(), img, src.Min, draw.Src)
	return out, nil
}
