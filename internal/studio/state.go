// Package studio holds the session state of the photo studio and the
// operations that drive it: a pure reducer over typed actions, an
// epoch-guarded store, and an orchestrator that runs generation batches
// against the image model.
package studio

import (
	"time"

	"pictureme/internal/instruction"
	"pictureme/internal/raster"
)

// ImageStatus tracks one generated image through its lifecycle.
type ImageStatus string

const (
	StatusPending ImageStatus = "pending"
	StatusSuccess ImageStatus = "success"
	StatusFailed  ImageStatus = "failed"
)

// SessionStatus is the coarse state of the whole workspace.
type SessionStatus string

const (
	SessionIdle          SessionStatus = "idle"
	SessionUploading     SessionStatus = "uploading"
	SessionSettingUp     SessionStatus = "setting_up"
	SessionLoading       SessionStatus = "loading"
	SessionPromptLoading SessionStatus = "prompt_loading"
	SessionSuccess       SessionStatus = "success"
	SessionError         SessionStatus = "error"
)

// Source tells which batch an image belongs to: a template run or a free-form
// prompt run.
type Source string

const (
	SourceTheme  Source = "theme"
	SourcePrompt Source = "prompt"
)

// Variation is a secondary render attached to a parent image.
type Variation struct {
	ID               string      `json:"id"`
	Status           ImageStatus `json:"status"`
	ImageURL         string      `json:"imageUrl,omitempty"`
	ModelInstruction string      `json:"modelInstruction,omitempty"`
	Source           Source      `json:"source"`
	Editing          bool        `json:"isEditing,omitempty"`
}

// GeneratedImage is one slot in a generation batch. ModelInstruction is kept
// verbatim so regeneration and variations reuse the exact text that produced
// the image.
type GeneratedImage struct {
	ID                   string                 `json:"id"`
	Status               ImageStatus            `json:"status"`
	ImageURL             string                 `json:"imageUrl,omitempty"`
	ModelInstruction     string                 `json:"modelInstruction,omitempty"`
	Source               Source                 `json:"source"`
	Template             instruction.TemplateID `json:"template,omitempty"`
	GeneratingVariations bool                   `json:"isGeneratingVariations,omitempty"`
	Editing              bool                   `json:"isEditing,omitempty"`
	Variations           []Variation            `json:"variations"`
}

// EditingImageInfo identifies the image (or variation) targeted by the mask
// editor.
type EditingImageInfo struct {
	ImageURL       string `json:"imageUrl"`
	ID             string `json:"id"`
	Source         Source `json:"source"`
	Index          int    `json:"index"`
	VariationIndex *int   `json:"variationIndex,omitempty"`
}

// Session is a finished workspace snapshot kept in history.
type Session struct {
	ID                    string                 `json:"id"`
	Name                  string                 `json:"name"`
	Timestamp             time.Time              `json:"timestamp"`
	Template              instruction.TemplateID `json:"template,omitempty"`
	OriginalUploadedImage string                 `json:"originalUploadedImage,omitempty"`
	GeneratedImages       []GeneratedImage       `json:"generatedImages"`
	PromptGeneratedImages []GeneratedImage       `json:"promptGeneratedImages"`
}

// HairOptions configures the hair styler template.
type HairOptions struct {
	Colors         []string `json:"colors"`
	SelectedStyles []string `json:"selectedStyles"`
	CustomStyle    string   `json:"customStyle"`
	CustomActive   bool     `json:"isCustomActive"`
}

// HeadshotOptions configures the professional headshot template.
type HeadshotOptions struct {
	Expression     string `json:"expression"`
	Pose           string `json:"pose"`
	BackgroundBlur string `json:"backgroundBlur"`
}

// LookbookOptions configures the fashion lookbook template.
type LookbookOptions struct {
	Style       string `json:"style"`
	CustomStyle string `json:"customStyle"`
}

// RetroPosterOptions configures the retro poster template.
type RetroPosterOptions struct {
	Title string `json:"title"`
}

// CyberpunkOptions configures the cyberpunk city template.
type CyberpunkOptions struct {
	NeonColor string `json:"neonColor"`
}

// State is the full session state. Reducers treat it as immutable: updates
// copy the path they touch and share everything else.
type State struct {
	UploadedImage         string                 `json:"uploadedImage,omitempty"`
	OriginalUploadedImage string                 `json:"originalUploadedImage,omitempty"`
	ActiveFilter          raster.FilterKind      `json:"activeFilter"`
	GeneratedImages       []GeneratedImage       `json:"generatedImages"`
	PromptGeneratedImages []GeneratedImage       `json:"promptGeneratedImages"`
	History               []Session              `json:"history"`
	Status                SessionStatus          `json:"status"`
	Error                 string                 `json:"error,omitempty"`
	CameraOpen            bool                   `json:"isCameraOpen"`
	DownloadingAlbum      bool                   `json:"isDownloadingAlbum"`
	Progress              float64                `json:"progress"`
	EditingImageInfo      *EditingImageInfo      `json:"editingImageInfo,omitempty"`
	AspectRatio           string                 `json:"generationAspectRatio"`
	Style                 string                 `json:"generationStyle"`
	CameraShot            string                 `json:"cameraShotType"`
	CameraLens            string                 `json:"cameraLensType"`
	PromptImageCount      int                    `json:"promptImageCount"`
	CustomPrompt          string                 `json:"customPrompt"`
	Template              instruction.TemplateID `json:"template,omitempty"`
	CurrentAlbumStyle     string                 `json:"currentAlbumStyle,omitempty"`
	Hair                  HairOptions            `json:"hair"`
	Headshots             HeadshotOptions        `json:"headshots"`
	Lookbook              LookbookOptions        `json:"lookbook"`
	RetroPoster           RetroPosterOptions     `json:"retroPoster"`
	CyberpunkCity         CyberpunkOptions       `json:"cyberpunkCity"`
}

// NewState returns the initial session state.
func NewState() State {
	return State{
		ActiveFilter:     raster.FilterNone,
		Status:           SessionIdle,
		AspectRatio:      "1:1",
		Style:            "Fotorrealista",
		CameraShot:       "Padrão",
		CameraLens:       "Padrão",
		PromptImageCount: 1,
		Hair: HairOptions{
			Colors:         []string{},
			SelectedStyles: []string{},
		},
		Headshots: HeadshotOptions{
			Expression:     "Friendly Smile",
			Pose:           instruction.PoseForward,
			BackgroundBlur: "Médio",
		},
		CyberpunkCity: CyberpunkOptions{NeonColor: "Cyan"},
	}
}

// AspectRatios lists the supported export and generation ratios.
var AspectRatios = []string{"1:1", "9:16", "16:9"}

// GenerationStyles lists the art styles offered for generation.
var GenerationStyles = []string{
	"Fotorrealista", "Arte Fantasia", "Anime", "Ghibli", "Desenho Animado",
	"Pintura a Óleo", "Aquarela", "Arte Steampunk", "Arte Cyberpunk", "Pixel Art",
	"Pôster Retrô", "Cinematic", "Fotografia de Produto", "Arte Abstrata",
	"Ilustração Vetorial", "Neo-Noir", "Dystopian", "Surrealismo", "Minimalista",
	"Abstrato Geométrico", "Arte Conceitual", "Estilo HQ de mangá",
	"Arte de Pintura Digital", "Fotografia de Rua",
}

// MaxHairStyles caps how many hairstyles one batch may carry.
const MaxHairStyles = 6
