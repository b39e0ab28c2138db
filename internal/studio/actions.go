package studio

import (
	"pictureme/internal/instruction"
	"pictureme/internal/raster"
)

// Action is a state transition request handled by Reduce. Option-update
// actions use pointer fields so absent fields leave the current value alone.
type Action interface {
	isAction()
}

type UploadImageStart struct{}

type UploadImageSuccess struct {
	ImageURL string
}

type UploadImageFailure struct {
	Message string
}

type SetCameraOpen struct {
	Open bool
}

type DismissError struct{}

type StartOver struct{}

type SelectTemplate struct {
	Template instruction.TemplateID
}

type ApplyFilter struct {
	Filter raster.FilterKind
	Image  string
}

type UpdateGenerationSettings struct {
	AspectRatio      *string
	Style            *string
	CameraShot       *string
	CameraLens       *string
	PromptImageCount *int
	CustomPrompt     *string
}

type UpdateHairOptions struct {
	Colors         *[]string
	SelectedStyles *[]string
	CustomStyle    *string
	CustomActive   *bool
}

type UpdateHeadshotOptions struct {
	Expression     *string
	Pose           *string
	BackgroundBlur *string
}

type UpdateLookbookOptions struct {
	Style       *string
	CustomStyle *string
}

type UpdateRetroPosterOptions struct {
	Title *string
}

type UpdateCyberpunkOptions struct {
	NeonColor *string
}

type GenerationStart struct {
	Placeholders []GeneratedImage
	Source       Source
}

type SettingUpStart struct{}

type SetAlbumStyle struct {
	Style string
}

// GenerationProgress replaces the slot at Index with the completed image,
// keeping any variations already attached to it.
type GenerationProgress struct {
	Index  int
	Source Source
	Image  GeneratedImage
}

type GenerationComplete struct{}

type GenerationFailure struct {
	Message string
}

type RegenerateImage struct {
	Index  int
	Source Source
}

type CreateVariationsStart struct {
	ParentIndex int
	Source      Source
}

type CreateVariationsSuccess struct {
	ParentIndex int
	Source      Source
	Variations  []Variation
}

type CreateVariationsFailure struct {
	ParentIndex int
	Source      Source
	Message     string
}

type DownloadAlbumStart struct{}

type DownloadAlbumFinish struct{}

type OpenEditModal struct {
	Info EditingImageInfo
}

type CloseEditModal struct{}

type EditImageStart struct{}

type EditImageSuccess struct {
	Source         Source
	Index          int
	VariationIndex *int
	NewImageURL    string
}

type EditImageFailure struct {
	Source         Source
	Index          int
	VariationIndex *int
	Message        string
}

type LoadHistorySession struct {
	SessionID string
}

type ClearHistory struct{}

func (UploadImageStart) isAction()         {}
func (UploadImageSuccess) isAction()       {}
func (UploadImageFailure) isAction()       {}
func (SetCameraOpen) isAction()            {}
func (DismissError) isAction()             {}
func (StartOver) isAction()                {}
func (SelectTemplate) isAction()           {}
func (ApplyFilter) isAction()              {}
func (UpdateGenerationSettings) isAction() {}
func (UpdateHairOptions) isAction()        {}
func (UpdateHeadshotOptions) isAction()    {}
func (UpdateLookbookOptions) isAction()    {}
func (UpdateRetroPosterOptions) isAction() {}
func (UpdateCyberpunkOptions) isAction()   {}
func (GenerationStart) isAction()          {}
func (SettingUpStart) isAction()           {}
func (SetAlbumStyle) isAction()            {}
func (GenerationProgress) isAction()       {}
func (GenerationComplete) isAction()       {}
func (GenerationFailure) isAction()        {}
func (RegenerateImage) isAction()          {}
func (CreateVariationsStart) isAction()    {}
func (CreateVariationsSuccess) isAction()  {}
func (CreateVariationsFailure) isAction()  {}
func (DownloadAlbumStart) isAction()       {}
func (DownloadAlbumFinish) isAction()      {}
func (OpenEditModal) isAction()            {}
func (CloseEditModal) isAction()           {}
func (EditImageStart) isAction()           {}
func (EditImageSuccess) isAction()         {}
func (EditImageFailure) isAction()         {}
func (LoadHistorySession) isAction()       {}
func (ClearHistory) isAction()             {}
