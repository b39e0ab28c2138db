package studio

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pictureme/internal/infra"
	"pictureme/internal/instruction"
)

// GenerationClient produces images from instructions. Reference images travel
// as data URLs.
type GenerationClient interface {
	GenerateImage(ctx context.Context, instr string, refImages ...string) (string, error)
	EditImage(ctx context.Context, instr, baseImage, maskImage string) (string, error)
}

// StyleSuggester supplies the shared art-direction style for the mall shoot.
type StyleSuggester interface {
	Suggest(ctx context.Context, brief string) (string, error)
}

const (
	variationCount  = 2
	albumStyleBrief = "A specific, creative, and detailed style for an 80s mall portrait studio photoshoot."
)

// Orchestrator validates generation requests synchronously and runs the model
// calls on background goroutines. Every async completion goes through
// Store.DispatchAt with the epoch captured at start, so results landing after
// the user moved to a new workspace are dropped.
type Orchestrator struct {
	store     *Store
	client    GenerationClient
	suggester StyleSuggester
	logger    *infra.Logger
	wg        sync.WaitGroup
}

func NewOrchestrator(store *Store, client GenerationClient, suggester StyleSuggester, logger *infra.Logger) *Orchestrator {
	return &Orchestrator{
		store:     store,
		client:    client,
		suggester: suggester,
		logger:    logger,
	}
}

// Wait blocks until all in-flight generation goroutines have finished.
func (o *Orchestrator) Wait() {
	o.wg.Wait()
}

func (o *Orchestrator) spawn(fn func(ctx context.Context), ctx context.Context) {
	detached := context.WithoutCancel(ctx)
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		fn(detached)
	}()
}

// configFromState resolves the session settings into the flat snapshot the
// instruction builder consumes.
func configFromState(state State) instruction.Config {
	lookbookStyle := state.Lookbook.Style
	if lookbookStyle == "Other" {
		lookbookStyle = state.Lookbook.CustomStyle
	}
	return instruction.Config{
		Style:              state.Style,
		AspectRatio:        state.AspectRatio,
		CameraShot:         state.CameraShot,
		CameraLens:         state.CameraLens,
		AlbumStyle:         state.CurrentAlbumStyle,
		LookbookStyle:      lookbookStyle,
		HairColors:         state.Hair.Colors,
		PosterTitle:        strings.TrimSpace(state.RetroPoster.Title),
		NeonColor:          state.CyberpunkCity.NeonColor,
		HeadshotPose:       state.Headshots.Pose,
		HeadshotExpression: state.Headshots.Expression,
		BackgroundBlur:     state.Headshots.BackgroundBlur,
	}
}

// GenerateFromTemplate starts a themed batch: one image per template item,
// generated sequentially so progress advances one slot at a time.
func (o *Orchestrator) GenerateFromTemplate(ctx context.Context) error {
	state := o.store.State()
	if state.UploadedImage == "" || state.Template == instruction.TemplateNone {
		return validationErr("Por favor, carregue uma foto e selecione um tema.")
	}
	tpl, ok := instruction.Lookup(state.Template)
	if !ok {
		return validationErr("Por favor, carregue uma foto e selecione um tema.")
	}

	prompts := tpl.Prompts
	if state.Template == instruction.TemplateHairStyler {
		var selected []instruction.PromptOption
		for _, p := range prompts {
			for _, id := range state.Hair.SelectedStyles {
				if p.ID == id {
					selected = append(selected, p)
					break
				}
			}
		}
		if state.Hair.CustomActive {
			if custom := strings.TrimSpace(state.Hair.CustomStyle); custom != "" {
				selected = append(selected, instruction.PromptOption{ID: custom, Base: custom})
			}
		}
		if len(selected) == 0 {
			return validationErr("Por favor, selecione pelo menos um penteado.")
		}
		prompts = selected
	}

	if state.Template == instruction.TemplateEightiesMall {
		_, epoch := o.store.Dispatch(SettingUpStart{})
		o.spawn(func(ctx context.Context) {
			style, err := o.suggester.Suggest(ctx, albumStyleBrief)
			if err != nil {
				o.logger.Warn().Err(err).Msg("studio: album style suggestion failed")
				o.store.DispatchAt(epoch, GenerationFailure{Message: "Não conseguimos gerar um estilo. Tente novamente."})
				return
			}
			_, epoch, ok := o.store.DispatchAt(epoch, SetAlbumStyle{Style: style})
			if !ok {
				return
			}

			cfg := configFromState(state)
			cfg.AlbumStyle = style
			_, epoch, ok = o.store.DispatchAt(epoch, GenerationStart{
				Placeholders: placeholders(prompts, SourceTheme),
				Source:       SourceTheme,
			})
			if !ok {
				return
			}
			o.runBatch(ctx, epoch, SourceTheme, state, prompts, func(p instruction.PromptOption, _ int) string {
				return instruction.Build(state.Template, p, cfg)
			})
		}, ctx)
		return nil
	}

	cfg := configFromState(state)
	_, epoch := o.store.Dispatch(GenerationStart{
		Placeholders: placeholders(prompts, SourceTheme),
		Source:       SourceTheme,
	})
	o.spawn(func(ctx context.Context) {
		o.runBatch(ctx, epoch, SourceTheme, state, prompts, func(p instruction.PromptOption, _ int) string {
			return instruction.Build(state.Template, p, cfg)
		})
	}, ctx)
	return nil
}

// GenerateFromPrompt starts a free-form batch of PromptImageCount renders of
// the custom prompt.
func (o *Orchestrator) GenerateFromPrompt(ctx context.Context) error {
	state := o.store.State()
	prompt := strings.TrimSpace(state.CustomPrompt)
	if prompt == "" {
		return validationErr("Por favor, insira um prompt.")
	}
	count := state.PromptImageCount
	if count < 1 {
		count = 1
	}

	items := make([]instruction.PromptOption, count)
	for i := range items {
		items[i] = instruction.PromptOption{ID: state.CustomPrompt, Base: state.CustomPrompt}
	}

	cfg := configFromState(state)
	hasReference := state.UploadedImage != ""
	_, epoch := o.store.Dispatch(GenerationStart{
		Placeholders: placeholders(items, SourcePrompt),
		Source:       SourcePrompt,
	})
	o.spawn(func(ctx context.Context) {
		o.runBatch(ctx, epoch, SourcePrompt, state, items, func(_ instruction.PromptOption, i int) string {
			return instruction.BuildFromPrompt(prompt, i, count, hasReference, cfg)
		})
	}, ctx)
	return nil
}

// RegenerateImage reruns one slot with its stored instruction, byte for byte.
func (o *Orchestrator) RegenerateImage(ctx context.Context, index int, source Source) error {
	state := o.store.State()
	images := imagesOf(state, source)
	if index < 0 || index >= len(images) || images[index].ModelInstruction == "" {
		return validationErr("Não foi possível encontrar a instrução original para recriar.")
	}
	target := images[index]

	_, epoch := o.store.Dispatch(RegenerateImage{Index: index, Source: source})
	o.spawn(func(ctx context.Context) {
		url, err := o.client.GenerateImage(ctx, target.ModelInstruction, state.UploadedImage)
		if err != nil {
			o.logger.Warn().Err(err).Int("index", index).Msg("studio: regeneration failed")
			failed := target
			failed.Status = StatusFailed
			failed.ImageURL = ""
			_, epoch, ok := o.store.DispatchAt(epoch, GenerationFailure{Message: fmt.Sprintf("A recriação para %q falhou.", target.ID)})
			if !ok {
				return
			}
			o.store.DispatchAt(epoch, GenerationProgress{Index: index, Source: source, Image: failed})
			return
		}
		done := target
		done.Status = StatusSuccess
		done.ImageURL = url
		_, epoch, ok := o.store.DispatchAt(epoch, GenerationProgress{Index: index, Source: source, Image: done})
		if !ok {
			return
		}
		o.store.DispatchAt(epoch, GenerationComplete{})
	}, ctx)
	return nil
}

// CreateVariations renders two alternates of an image concurrently and
// attaches whatever settles, success or failure. baseImageURL overrides the
// uploaded photo as the reference when non-empty.
func (o *Orchestrator) CreateVariations(ctx context.Context, parentIndex int, source Source, baseImageURL string) error {
	state := o.store.State()
	images := imagesOf(state, source)
	if parentIndex < 0 || parentIndex >= len(images) || images[parentIndex].ModelInstruction == "" {
		return validationErr("Informação original não encontrada.")
	}
	parent := images[parentIndex]

	base := baseImageURL
	if base == "" {
		base = state.UploadedImage
	}

	_, epoch := o.store.Dispatch(CreateVariationsStart{ParentIndex: parentIndex, Source: source})
	o.spawn(func(ctx context.Context) {
		variations := make([]Variation, variationCount)
		var wg sync.WaitGroup
		for i := 0; i < variationCount; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				v := Variation{
					ID:               fmt.Sprintf("Variação %d", i+1),
					ModelInstruction: parent.ModelInstruction,
					Source:           parent.Source,
				}
				url, err := o.client.GenerateImage(ctx, parent.ModelInstruction, base)
				if err != nil {
					v.Status = StatusFailed
				} else {
					v.Status = StatusSuccess
					v.ImageURL = url
				}
				variations[i] = v
			}(i)
		}
		wg.Wait()
		o.store.DispatchAt(epoch, CreateVariationsSuccess{ParentIndex: parentIndex, Source: source, Variations: variations})
	}, ctx)
	return nil
}

// EditImage applies a masked edit to the image selected in the edit modal.
func (o *Orchestrator) EditImage(ctx context.Context, editPrompt, maskDataURL string) error {
	state := o.store.State()
	if state.EditingImageInfo == nil {
		return validationErr("Nenhuma imagem selecionada para edição.")
	}
	info := *state.EditingImageInfo

	_, epoch := o.store.Dispatch(EditImageStart{})
	o.spawn(func(ctx context.Context) {
		url, err := o.client.EditImage(ctx, editPrompt, info.ImageURL, maskDataURL)
		if err != nil {
			o.logger.Warn().Err(err).Msg("studio: image edit failed")
			message := err.Error()
			if message == "" {
				message = "Falha ao editar a imagem."
			}
			o.store.DispatchAt(epoch, EditImageFailure{
				Source:         info.Source,
				Index:          info.Index,
				VariationIndex: info.VariationIndex,
				Message:        message,
			})
			return
		}
		o.store.DispatchAt(epoch, EditImageSuccess{
			Source:         info.Source,
			Index:          info.Index,
			VariationIndex: info.VariationIndex,
			NewImageURL:    url,
		})
	}, ctx)
	return nil
}

// UseImageAsBase promotes a generated image to be the new reference photo.
// The current workspace is snapshotted to history first.
func (o *Orchestrator) UseImageAsBase(imageURL string) {
	o.store.Dispatch(UploadImageSuccess{ImageURL: imageURL})
}

// runBatch generates the prompts in order, reporting each completed slot.
// A stale epoch stops the batch immediately.
func (o *Orchestrator) runBatch(ctx context.Context, epoch uint64, source Source, state State, prompts []instruction.PromptOption, build func(instruction.PromptOption, int) string) {
	for i, p := range prompts {
		instr := build(p, i)
		img := GeneratedImage{
			ID:               p.ID,
			ModelInstruction: instr,
			Source:           source,
			Template:         state.Template,
		}
		url, err := o.client.GenerateImage(ctx, instr, state.UploadedImage)
		if err != nil {
			o.logger.Warn().Err(err).Int("index", i).Str("source", string(source)).Msg("studio: image generation failed")
			img.Status = StatusFailed
		} else {
			img.Status = StatusSuccess
			img.ImageURL = url
		}
		if _, _, ok := o.store.DispatchAt(epoch, GenerationProgress{Index: i, Source: source, Image: img}); !ok {
			return
		}
	}
	o.store.DispatchAt(epoch, GenerationComplete{})
}

func placeholders(prompts []instruction.PromptOption, source Source) []GeneratedImage {
	out := make([]GeneratedImage, len(prompts))
	for i, p := range prompts {
		id := p.ID
		if id == "" {
			id = fmt.Sprintf("Image %d", i+1)
		}
		out[i] = GeneratedImage{
			ID:         id,
			Status:     StatusPending,
			Source:     source,
			Variations: []Variation{},
		}
	}
	return out
}
