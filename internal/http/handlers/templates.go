package handlers

import (
	"net/http"

	"pictureme/internal/instruction"
	"pictureme/internal/studio"
)

type templateEntry struct {
	ID string `json:"id"`
	instruction.Template
}

// Templates lists the catalog in display order, plus the generation option
// vocabulary the client needs to render settings.
func (a *App) Templates(w http.ResponseWriter, r *http.Request) {
	entries := make([]templateEntry, 0, len(instruction.Order))
	for _, id := range instruction.Order {
		t, ok := instruction.Lookup(id)
		if !ok {
			continue
		}
		entries = append(entries, templateEntry{ID: string(id), Template: t})
	}
	a.json(w, http.StatusOK, map[string]any{
		"templates":    entries,
		"aspectRatios": studio.AspectRatios,
		"styles":       studio.GenerationStyles,
	})
}

type selectTemplateRequest struct {
	Template string `json:"template"`
}

// SelectTemplate switches the active template and resets its option bundles.
func (a *App) SelectTemplate(w http.ResponseWriter, r *http.Request) {
	var req selectTemplateRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	id := instruction.TemplateID(req.Template)
	if id != instruction.TemplateNone {
		if _, ok := instruction.Lookup(id); !ok {
			a.error(w, http.StatusBadRequest, "bad_request", "unknown template")
			return
		}
	}
	a.Store.Dispatch(studio.SelectTemplate{Template: id})
	a.state(w, http.StatusOK)
}

type settingsRequest struct {
	AspectRatio      *string `json:"aspectRatio"`
	Style            *string `json:"style"`
	CameraShot       *string `json:"cameraShot"`
	CameraLens       *string `json:"cameraLens"`
	PromptImageCount *int    `json:"promptImageCount"`
	CustomPrompt     *string `json:"customPrompt"`
}

// UpdateSettings patches the generation settings. Absent fields keep their
// current values.
func (a *App) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.PromptImageCount != nil && (*req.PromptImageCount < 1 || *req.PromptImageCount > 4) {
		a.error(w, http.StatusBadRequest, "bad_request", "promptImageCount must be between 1 and 4")
		return
	}
	a.Store.Dispatch(studio.UpdateGenerationSettings{
		AspectRatio:      req.AspectRatio,
		Style:            req.Style,
		CameraShot:       req.CameraShot,
		CameraLens:       req.CameraLens,
		PromptImageCount: req.PromptImageCount,
		CustomPrompt:     req.CustomPrompt,
	})
	a.state(w, http.StatusOK)
}

type hairOptionsRequest struct {
	Colors         *[]string `json:"colors"`
	SelectedStyles *[]string `json:"selectedStyles"`
	CustomStyle    *string   `json:"customStyle"`
	CustomActive   *bool     `json:"isCustomActive"`
}

func (a *App) UpdateHairOptions(w http.ResponseWriter, r *http.Request) {
	var req hairOptionsRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	// The reducer rejects oversized selections too; checking here keeps the
	// rejection out of the session state.
	if req.SelectedStyles != nil && len(*req.SelectedStyles) > studio.MaxHairStyles {
		a.error(w, http.StatusUnprocessableEntity, "validation", studio.ErrTooManyHairStyles)
		return
	}
	a.Store.Dispatch(studio.UpdateHairOptions{
		Colors:         req.Colors,
		SelectedStyles: req.SelectedStyles,
		CustomStyle:    req.CustomStyle,
		CustomActive:   req.CustomActive,
	})
	a.state(w, http.StatusOK)
}

type headshotOptionsRequest struct {
	Expression     *string `json:"expression"`
	Pose           *string `json:"pose"`
	BackgroundBlur *string `json:"backgroundBlur"`
}

func (a *App) UpdateHeadshotOptions(w http.ResponseWriter, r *http.Request) {
	var req headshotOptionsRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Store.Dispatch(studio.UpdateHeadshotOptions{
		Expression:     req.Expression,
		Pose:           req.Pose,
		BackgroundBlur: req.BackgroundBlur,
	})
	a.state(w, http.StatusOK)
}

type lookbookOptionsRequest struct {
	Style       *string `json:"style"`
	CustomStyle *string `json:"customStyle"`
}

func (a *App) UpdateLookbookOptions(w http.ResponseWriter, r *http.Request) {
	var req lookbookOptionsRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Store.Dispatch(studio.UpdateLookbookOptions{Style: req.Style, CustomStyle: req.CustomStyle})
	a.state(w, http.StatusOK)
}

type retroPosterOptionsRequest struct {
	Title *string `json:"title"`
}

func (a *App) UpdateRetroPosterOptions(w http.ResponseWriter, r *http.Request) {
	var req retroPosterOptionsRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Store.Dispatch(studio.UpdateRetroPosterOptions{Title: req.Title})
	a.state(w, http.StatusOK)
}

type cyberpunkOptionsRequest struct {
	NeonColor *string `json:"neonColor"`
}

func (a *App) UpdateCyberpunkOptions(w http.ResponseWriter, r *http.Request) {
	var req cyberpunkOptionsRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Store.Dispatch(studio.UpdateCyberpunkOptions{NeonColor: req.NeonColor})
	a.state(w, http.StatusOK)
}
