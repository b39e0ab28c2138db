package raster

import (
	"fmt"
	"image"
	"image/draw"
	"strings"
)

// FilterKind enumerates the supported pixel filters.
type FilterKind string

const (
	FilterNone    FilterKind = "none"
	FilterVintage FilterKind = "vintage"
	FilterBW      FilterKind = "bw"
	FilterSepia   FilterKind = "sepia"
	FilterCool    FilterKind = "cool"
	FilterWarm    FilterKind = "warm"
)

// NormalizeFilter sanitizes free-form input into a supported filter kind.
func NormalizeFilter(kind string) (FilterKind, error) {
	switch FilterKind(strings.ToLower(strings.TrimSpace(kind))) {
	case FilterNone, "":
		return FilterNone, nil
	case FilterVintage:
		return FilterVintage, nil
	case FilterBW:
		return FilterBW, nil
	case FilterSepia:
		return FilterSepia, nil
	case FilterCool:
		return FilterCool, nil
	case FilterWarm:
		return FilterWarm, nil
	default:
		return FilterNone, fmt.Errorf("%w: unsupported filter %q", ErrTransform, kind)
	}
}

// ApplyFilter applies a fixed per-pixel channel mix to the image. FilterNone
// returns the input unchanged.
func ApplyFilter(img image.Image, kind FilterKind) (image.Image, error) {
	if kind == FilterNone {
		return img, nil
	}

	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)

	px := out.Pix
	for i := 0; i < len(px); i += 4 {
		r := float64(px[i])
		g := float64(px[i+1])
		b := float64(px[i+2])

		var nr, ng, nb float64
		switch kind {
		case FilterBW:
			gray := r*0.299 + g*0.587 + b*0.114
			nr, ng, nb = gray, gray, gray
		case FilterSepia:
			nr = r*0.393 + g*0.769 + b*0.189
			ng = r*0.349 + g*0.686 + b*0.168
			nb = r*0.272 + g*0.534 + b*0.131
		case FilterVintage:
			nr = r*0.5 + g*0.7 + b*0.2
			ng = r*0.45 + g*0.65 + b*0.15
			nb = r*0.4 + g*0.5 + b*0.1
		case FilterCool:
			nr = r * 0.9
			ng = g
			nb = b * 1.1
		case FilterWarm:
			nr = r * 1.1
			ng = g
			nb = b * 0.9
		default:
			return nil, fmt.Errorf("%w: unsupported filter %q", ErrTransform, kind)
		}

		px[i] = clampChannel(nr)
		px[i+1] = clampChannel(ng)
		px[i+2] = clampChannel(nb)
	}
	return out, nil
}

func clampChannel(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
