// Package raster contains the pure image transforms used by the studio:
// data-URL encoding, aspect-ratio cropping, pixel filters, single-image
// framing and multi-image album stitching. Nothing in this package keeps
// state or performs I/O beyond in-memory buffers.
package raster

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	_ "image/jpeg"
)

// ErrTransform marks a local raster failure (decode, encode or layout).
// Callers surface it as a generic "couldn't prepare this image" message.
var ErrTransform = errors.New("raster: transform failed")

// ParseDataURL splits a data URL into its MIME type and decoded payload.
func ParseDataURL(s string) (mime string, data []byte, err error) {
	if !strings.HasPrefix(s, "data:") {
		return "", nil, fmt.Errorf("%w: not a data url", ErrTransform)
	}
	meta, payload, ok := strings.Cut(s[len("data:"):], ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: malformed data url", ErrTransform)
	}
	mime = strings.TrimSuffix(meta, ";base64")
	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrTransform, err)
	}
	return mime, data, nil
}

// DataURL encodes raw bytes as a base64 data URL with the given MIME type.
func DataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DecodeImage decodes a data URL into an in-memory image.
func DecodeImage(dataURL string) (image.Image, error) {
	_, raw, err := ParseDataURL(dataURL)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: decode image: %v", ErrTransform, err)
	}
	return img, nil
}

// EncodePNG renders an image as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("%w: encode png: %v", ErrTransform, err)
	}
	return buf.Bytes(), nil
}

// PNGDataURL renders an image as a PNG data URL.
func PNGDataURL(img image.Image) (string, error) {
	raw, err := EncodePNG(img)
	if err != nil {
		return "", err
	}
	return DataURL("image/png", raw), nil
}
