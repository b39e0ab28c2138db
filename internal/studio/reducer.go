package studio

import (
	"time"

	"github.com/google/uuid"

	"pictureme/internal/instruction"
	"pictureme/internal/raster"
)

// ErrTooManyHairStyles is surfaced in State.Error when a hair update exceeds
// the batch cap.
const ErrTooManyHairStyles = "Você pode selecionar no máximo 6 estilos."

// Reduce applies one action to the state and returns the next state. The
// input is never mutated: every update copies the slice or struct it touches
// and shares the rest.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case UploadImageStart:
		state.Status = SessionUploading
		state.Error = ""
		return state

	case UploadImageSuccess:
		state.History = snapshotHistory(state)
		state.Status = SessionIdle
		state.UploadedImage = a.ImageURL
		state.OriginalUploadedImage = a.ImageURL
		state.ActiveFilter = raster.FilterNone
		state.GeneratedImages = nil
		state.PromptGeneratedImages = nil
		return state

	case UploadImageFailure:
		state.Status = SessionError
		state.Error = a.Message
		return state

	case SetCameraOpen:
		state.CameraOpen = a.Open
		return state

	case DismissError:
		state.Error = ""
		return state

	case StartOver:
		next := NewState()
		next.History = snapshotHistory(state)
		return next

	case SelectTemplate:
		initial := NewState()
		state.Template = a.Template
		state.Hair = initial.Hair
		state.Headshots = initial.Headshots
		state.Lookbook = initial.Lookbook
		state.RetroPoster = initial.RetroPoster
		state.CyberpunkCity = initial.CyberpunkCity
		return state

	case ApplyFilter:
		state.ActiveFilter = a.Filter
		state.UploadedImage = a.Image
		return state

	case UpdateGenerationSettings:
		if a.AspectRatio != nil {
			state.AspectRatio = *a.AspectRatio
		}
		if a.Style != nil {
			state.Style = *a.Style
		}
		if a.CameraShot != nil {
			state.CameraShot = *a.CameraShot
		}
		if a.CameraLens != nil {
			state.CameraLens = *a.CameraLens
		}
		if a.PromptImageCount != nil {
			state.PromptImageCount = *a.PromptImageCount
		}
		if a.CustomPrompt != nil {
			state.CustomPrompt = *a.CustomPrompt
		}
		return state

	case UpdateHairOptions:
		if a.SelectedStyles != nil && len(*a.SelectedStyles) > MaxHairStyles {
			state.Error = ErrTooManyHairStyles
			return state
		}
		hair := state.Hair
		if a.Colors != nil {
			hair.Colors = *a.Colors
		}
		if a.SelectedStyles != nil {
			hair.SelectedStyles = *a.SelectedStyles
		}
		if a.CustomStyle != nil {
			hair.CustomStyle = *a.CustomStyle
		}
		if a.CustomActive != nil {
			hair.CustomActive = *a.CustomActive
		}
		state.Hair = hair
		return state

	case UpdateHeadshotOptions:
		hs := state.Headshots
		if a.Expression != nil {
			hs.Expression = *a.Expression
		}
		if a.Pose != nil {
			hs.Pose = *a.Pose
		}
		if a.BackgroundBlur != nil {
			hs.BackgroundBlur = *a.BackgroundBlur
		}
		state.Headshots = hs
		return state

	case UpdateLookbookOptions:
		lb := state.Lookbook
		if a.Style != nil {
			lb.Style = *a.Style
		}
		if a.CustomStyle != nil {
			lb.CustomStyle = *a.CustomStyle
		}
		state.Lookbook = lb
		return state

	case UpdateRetroPosterOptions:
		if a.Title != nil {
			state.RetroPoster = RetroPosterOptions{Title: *a.Title}
		}
		return state

	case UpdateCyberpunkOptions:
		if a.NeonColor != nil {
			state.CyberpunkCity = CyberpunkOptions{NeonColor: *a.NeonColor}
		}
		return state

	case GenerationStart:
		state.History = snapshotHistory(state)
		state.Error = ""
		state.Progress = 0
		if a.Source == SourcePrompt {
			state.Status = SessionPromptLoading
			state.GeneratedImages = nil
			state.PromptGeneratedImages = a.Placeholders
		} else {
			state.Status = SessionLoading
			state.GeneratedImages = a.Placeholders
			state.PromptGeneratedImages = nil
		}
		return state

	case SettingUpStart:
		state.Status = SessionSettingUp
		return state

	case SetAlbumStyle:
		state.CurrentAlbumStyle = a.Style
		return state

	case GenerationProgress:
		images := imagesOf(state, a.Source)
		if a.Index < 0 || a.Index >= len(images) {
			return state
		}
		images = updateImageAt(images, a.Index, func(img *GeneratedImage) {
			variations := img.Variations
			*img = a.Image
			if img.Variations == nil {
				img.Variations = variations
			}
		})
		state = withImages(state, a.Source, images)
		state.Progress = batchProgress(images)
		return state

	case GenerationComplete:
		state.Status = SessionSuccess
		state.Progress = 100
		return state

	case GenerationFailure:
		state.Status = SessionError
		state.Error = a.Message
		return state

	case RegenerateImage:
		images := imagesOf(state, a.Source)
		if a.Index >= 0 && a.Index < len(images) {
			images = updateImageAt(images, a.Index, func(img *GeneratedImage) {
				img.Status = StatusPending
			})
			state = withImages(state, a.Source, images)
		}
		if a.Source == SourcePrompt {
			state.Status = SessionPromptLoading
		} else {
			state.Status = SessionLoading
		}
		state.Error = ""
		return state

	case CreateVariationsStart:
		return withImages(state, a.Source, setGeneratingVariations(imagesOf(state, a.Source), a.ParentIndex, true))

	case CreateVariationsSuccess:
		images := imagesOf(state, a.Source)
		if a.ParentIndex < 0 || a.ParentIndex >= len(images) {
			return state
		}
		images = updateImageAt(images, a.ParentIndex, func(img *GeneratedImage) {
			img.GeneratingVariations = false
			merged := make([]Variation, 0, len(img.Variations)+len(a.Variations))
			merged = append(merged, img.Variations...)
			merged = append(merged, a.Variations...)
			img.Variations = merged
		})
		return withImages(state, a.Source, images)

	case CreateVariationsFailure:
		state = withImages(state, a.Source, setGeneratingVariations(imagesOf(state, a.Source), a.ParentIndex, false))
		state.Error = a.Message
		return state

	case DownloadAlbumStart:
		state.DownloadingAlbum = true
		return state

	case DownloadAlbumFinish:
		state.DownloadingAlbum = false
		return state

	case OpenEditModal:
		info := a.Info
		state.EditingImageInfo = &info
		return state

	case CloseEditModal:
		state.EditingImageInfo = nil
		return state

	case EditImageStart:
		if state.EditingImageInfo == nil {
			return state
		}
		info := *state.EditingImageInfo
		state = withImages(state, info.Source, setEditing(imagesOf(state, info.Source), info.Index, info.VariationIndex, true, ""))
		state.Status = SessionLoading
		return state

	case EditImageSuccess:
		state = withImages(state, a.Source, setEditing(imagesOf(state, a.Source), a.Index, a.VariationIndex, false, a.NewImageURL))
		state.EditingImageInfo = nil
		state.Status = SessionSuccess
		return state

	case EditImageFailure:
		state = withImages(state, a.Source, setEditing(imagesOf(state, a.Source), a.Index, a.VariationIndex, false, ""))
		state.EditingImageInfo = nil
		state.Status = SessionError
		state.Error = a.Message
		return state

	case LoadHistorySession:
		for _, session := range state.History {
			if session.ID != a.SessionID {
				continue
			}
			state.Status = SessionSuccess
			state.UploadedImage = session.OriginalUploadedImage
			state.OriginalUploadedImage = session.OriginalUploadedImage
			state.GeneratedImages = session.GeneratedImages
			state.PromptGeneratedImages = session.PromptGeneratedImages
			state.Template = session.Template
			state.EditingImageInfo = nil
			state.Error = ""
			state.Progress = 100
			return state
		}
		return state

	case ClearHistory:
		state.History = nil
		return state

	default:
		return state
	}
}

// snapshotHistory prepends the current workspace to history when it holds any
// generated images. Theme batches name the session after their template.
func snapshotHistory(state State) []Session {
	if len(state.GeneratedImages) == 0 && len(state.PromptGeneratedImages) == 0 {
		return state.History
	}

	name := "Geração de Prompt"
	var template instruction.TemplateID
	if len(state.GeneratedImages) > 0 {
		name = "Geração de Tema"
		if tpl, ok := instruction.Lookup(state.GeneratedImages[0].Template); ok {
			template = state.GeneratedImages[0].Template
			name = tpl.Name
		}
	}

	session := Session{
		ID:                    "sid-" + uuid.NewString(),
		Name:                  name,
		Timestamp:             time.Now().UTC(),
		Template:              template,
		OriginalUploadedImage: state.OriginalUploadedImage,
		GeneratedImages:       state.GeneratedImages,
		PromptGeneratedImages: state.PromptGeneratedImages,
	}

	history := make([]Session, 0, len(state.History)+1)
	history = append(history, session)
	history = append(history, state.History...)
	return history
}

func imagesOf(state State, source Source) []GeneratedImage {
	if source == SourcePrompt {
		return state.PromptGeneratedImages
	}
	return state.GeneratedImages
}

func withImages(state State, source Source, images []GeneratedImage) State {
	if source == SourcePrompt {
		state.PromptGeneratedImages = images
	} else {
		state.GeneratedImages = images
	}
	return state
}

// updateImageAt copies the slice and the touched element before applying fn.
func updateImageAt(images []GeneratedImage, index int, fn func(*GeneratedImage)) []GeneratedImage {
	next := make([]GeneratedImage, len(images))
	copy(next, images)
	img := next[index]
	fn(&img)
	next[index] = img
	return next
}

func setGeneratingVariations(images []GeneratedImage, index int, on bool) []GeneratedImage {
	if index < 0 || index >= len(images) {
		return images
	}
	return updateImageAt(images, index, func(img *GeneratedImage) {
		img.GeneratingVariations = on
	})
}

// setEditing toggles the editing flag on an image or one of its variations,
// optionally swapping in a new image URL.
func setEditing(images []GeneratedImage, index int, variationIndex *int, on bool, newURL string) []GeneratedImage {
	if index < 0 || index >= len(images) {
		return images
	}
	return updateImageAt(images, index, func(img *GeneratedImage) {
		if variationIndex != nil {
			vi := *variationIndex
			if vi < 0 || vi >= len(img.Variations) {
				return
			}
			variations := make([]Variation, len(img.Variations))
			copy(variations, img.Variations)
			variations[vi].Editing = on
			if newURL != "" {
				variations[vi].ImageURL = newURL
			}
			img.Variations = variations
			return
		}
		img.Editing = on
		if newURL != "" {
			img.ImageURL = newURL
		}
	})
}

func batchProgress(images []GeneratedImage) float64 {
	if len(images) == 0 {
		return 0
	}
	completed := 0
	for _, img := range images {
		if img.Status != StatusPending {
			completed++
		}
	}
	return float64(completed) / float64(len(images)) * 100
}
