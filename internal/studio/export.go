package studio

import (
	"context"
	"fmt"
	"image"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pictureme/internal/instruction"
	"pictureme/internal/raster"
	"pictureme/internal/storage"
	"pictureme/pkg/zip"
)

// plainExportTemplates are the templates whose exports skip the per-image
// caption: their labels are pose or wardrobe names, not display copy.
var plainExportTemplates = map[instruction.TemplateID]bool{
	instruction.TemplateHeadshots:     true,
	instruction.TemplateEightiesMall:  true,
	instruction.TemplateStyleLookbook: true,
	instruction.TemplateFigurines:     true,
}

var slugCaser = cases.Lower(language.BrazilianPortuguese)

// Exporter renders framed downloads and stitched albums into the file store.
type Exporter struct {
	store *Store
	files *storage.FileStore
}

func NewExporter(store *Store, files *storage.FileStore) *Exporter {
	return &Exporter{store: store, files: files}
}

// DownloadImage crops and frames one image for download and returns the
// storage key it was written to.
func (e *Exporter) DownloadImage(ctx context.Context, imageURL, label, ratio string, template instruction.TemplateID) (string, error) {
	img, err := raster.DecodeImage(imageURL)
	if err != nil {
		return "", err
	}

	caption := label
	if plainExportTemplates[template] {
		caption = ""
	}
	framed, err := raster.FrameImage(img, ratio, caption)
	if err != nil {
		return "", err
	}
	data, err := raster.EncodePNG(framed)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("exports/picture-me-%s-%s.png", slug(label), ratioSlug(ratio))
	return e.files.Write(ctx, key, data)
}

// DownloadAlbum stitches every successful themed image into one framed album.
// Failures land in State.Error the same way generation failures do.
func (e *Exporter) DownloadAlbum(ctx context.Context, ratio string) (string, error) {
	e.store.Dispatch(DownloadAlbumStart{})
	defer e.store.Dispatch(DownloadAlbumFinish{})

	key, err := e.buildAlbum(ctx, ratio)
	if err != nil {
		message := err.Error()
		if message == "" {
			message = "O download do álbum falhou."
		}
		e.store.Dispatch(GenerationFailure{Message: message})
		return "", err
	}
	return key, nil
}

func (e *Exporter) buildAlbum(ctx context.Context, ratio string) (string, error) {
	state := e.store.State()

	var images []image.Image
	var labels []string
	for _, img := range state.GeneratedImages {
		if img.Status != StatusSuccess || img.ImageURL == "" {
			continue
		}
		decoded, err := raster.DecodeImage(img.ImageURL)
		if err != nil {
			return "", err
		}
		images = append(images, decoded)
		labels = append(labels, img.ID)
	}
	if len(images) == 0 {
		return "", validationErr("Não há imagens para criar um álbum.")
	}

	title := "Meu Álbum PictureMe"
	if tpl, ok := instruction.Lookup(state.Template); ok {
		title = "PictureMe: " + tpl.Name
	}
	if plainExportTemplates[state.Template] {
		labels = nil
	}

	album, err := raster.StitchAlbum(images, ratio, title, labels)
	if err != nil {
		return "", err
	}
	data, err := raster.EncodePNG(album)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("exports/picture-me-album-%s.png", ratioSlug(ratio))
	return e.files.Write(ctx, key, data)
}

// DownloadZip archives every successful image from both batches, raw and
// unframed, and returns the storage key of the archive.
func (e *Exporter) DownloadZip(ctx context.Context) (string, error) {
	state := e.store.State()

	var assets []zip.Asset
	appendBatch := func(images []GeneratedImage) error {
		for i, img := range images {
			if img.Status != StatusSuccess || img.ImageURL == "" {
				continue
			}
			mime, data, err := raster.ParseDataURL(img.ImageURL)
			if err != nil {
				return err
			}
			assets = append(assets, zip.Asset{
				Filename: fmt.Sprintf("picture-me-%s-%02d%s", slug(img.ID), i+1, zip.ExtensionForMIME(mime)),
				MIME:     mime,
				Data:     data,
			})
		}
		return nil
	}
	if err := appendBatch(state.GeneratedImages); err != nil {
		return "", err
	}
	if err := appendBatch(state.PromptGeneratedImages); err != nil {
		return "", err
	}
	if len(assets) == 0 {
		return "", validationErr("Não há imagens para baixar.")
	}

	archive, err := zip.ArchiveAssets(assets)
	if err != nil {
		return "", err
	}
	return e.files.Write(ctx, "exports/picture-me-imagens.zip", archive)
}

// slug lowercases a Portuguese label and joins its words with dashes so it is
// safe inside a filename.
func slug(label string) string {
	lowered := slugCaser.String(strings.TrimSpace(label))
	fields := strings.Fields(lowered)
	if len(fields) == 0 {
		return "imagem"
	}
	joined := strings.Join(fields, "-")
	var b strings.Builder
	for _, r := range joined {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			// Accented letters stay readable; anything else is dropped.
			if r > 127 {
				b.WriteRune(r)
			}
		}
	}
	if b.Len() == 0 {
		return "imagem"
	}
	return b.String()
}

func ratioSlug(ratio string) string {
	return strings.ReplaceAll(ratio, ":", "x")
}
