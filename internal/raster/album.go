package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// StitchAlbum composes the given images into a single album: every image is
// cropped to the common ratio and normalized to the first tile's dimensions,
// laid out on a white grid, then wrapped in a dark outer frame carrying a
// title header and the two-line attribution footer. When labels is non-nil it
// must carry one caption per image, rendered at the bottom of each tile.
func StitchAlbum(images []image.Image, ratio, title string, labels []string) (image.Image, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: no images to stitch", ErrTransform)
	}
	if labels != nil && len(labels) != len(images) {
		return nil, fmt.Errorf("%w: %d labels for %d images", ErrTransform, len(labels), len(images))
	}

	tiles := make([]image.Image, len(images))
	for i, img := range images {
		cropped, err := Crop(img, ratio)
		if err != nil {
			return nil, err
		}
		tiles[i] = cropped
	}

	tileW := tiles[0].Bounds().Dx()
	tileH := tiles[0].Bounds().Dy()
	for i, tile := range tiles {
		tiles[i] = scaleTo(tile, tileW, tileH)
	}

	cols := 2
	if len(tiles) > 4 {
		cols = 3
	}
	rows := (len(tiles) + cols - 1) / cols
	padding := int(float64(tileW) * 0.05)

	grid := image.NewRGBA(image.Rect(0, 0, cols*tileW+(cols+1)*padding, rows*tileH+(rows+1)*padding))
	draw.Draw(grid, grid.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	for i, tile := range tiles {
		row := i / cols
		col := i % cols
		x := padding + col*(tileW+padding)
		y := padding + row*(tileH+padding)
		draw.Draw(grid, image.Rect(x, y, x+tileW, y+tileH), tile, tile.Bounds().Min, draw.Src)

		if labels != nil && labels[i] != "" {
			labelSize := maxInt(24, int(float64(tileW)*0.08))
			drawCenteredText(grid, labels[i], x+tileW/2, y+tileH-10-labelSize/2, labelSize, color.RGBA{0, 0, 0, 204})
		}
	}

	gridW := grid.Bounds().Dx()
	outerPadding := int(float64(gridW) * 0.05)
	titleSize := maxInt(48, int(float64(gridW)*0.07))
	footerSize := maxInt(24, int(float64(gridW)*0.025))
	titleSpacing := titleSize * 3 / 2
	footerSpacing := footerSize * 4

	final := image.NewRGBA(image.Rect(0, 0, gridW+outerPadding*2, grid.Bounds().Dy()+outerPadding*2+titleSpacing+footerSpacing))
	draw.Draw(final, final.Bounds(), &image.Uniform{frameBackground}, image.Point{}, draw.Src)

	cx := final.Bounds().Dx() / 2
	drawCenteredText(final, title, cx, outerPadding+titleSpacing/2, titleSize, color.RGBA{255, 255, 255, 230})
	draw.Draw(final, grid.Bounds().Add(image.Pt(outerPadding, outerPadding+titleSpacing)), grid, image.Point{}, draw.Src)

	drawCenteredText(final, attributionLine, cx, final.Bounds().Dy()-footerSpacing*2/3, footerSize, color.RGBA{255, 255, 255, 128})
	nanoSize := maxInt(18, int(float64(gridW)*0.022))
	drawCenteredText(final, attributionNanoLine, cx, final.Bounds().Dy()-footerSpacing/3, nanoSize, color.RGBA{255, 255, 255, 128})

	return final, nil
}
