package handlers

import (
	"net/http"

	"pictureme/internal/studio"
)

// GenerateTemplate kicks off a batch for the selected template. Validation
// failures report synchronously; generation itself runs in the background and
// lands in the state snapshot.
func (a *App) GenerateTemplate(w http.ResponseWriter, r *http.Request) {
	if err := a.Studio.GenerateFromTemplate(r.Context()); err != nil {
		a.fail(w, err)
		return
	}
	a.state(w, http.StatusAccepted)
}

// GeneratePrompt kicks off a free-form prompt batch.
func (a *App) GeneratePrompt(w http.ResponseWriter, r *http.Request) {
	if err := a.Studio.GenerateFromPrompt(r.Context()); err != nil {
		a.fail(w, err)
		return
	}
	a.state(w, http.StatusAccepted)
}

type regenerateRequest struct {
	Index  int           `json:"index"`
	Source studio.Source `json:"source"`
}

// Regenerate re-runs a single slot with its stored instruction.
func (a *App) Regenerate(w http.ResponseWriter, r *http.Request) {
	var req regenerateRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Studio.RegenerateImage(r.Context(), req.Index, req.Source); err != nil {
		a.fail(w, err)
		return
	}
	a.state(w, http.StatusAccepted)
}

type variationsRequest struct {
	Index        int           `json:"index"`
	Source       studio.Source `json:"source"`
	BaseImageURL string        `json:"baseImageUrl"`
}

// Variations renders two alternates of an existing result.
func (a *App) Variations(w http.ResponseWriter, r *http.Request) {
	var req variationsRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Studio.CreateVariations(r.Context(), req.Index, req.Source, req.BaseImageURL); err != nil {
		a.fail(w, err)
		return
	}
	a.state(w, http.StatusAccepted)
}

type openEditRequest struct {
	ImageURL       string        `json:"imageUrl"`
	ID             string        `json:"id"`
	Source         studio.Source `json:"source"`
	Index          int           `json:"index"`
	VariationIndex *int          `json:"variationIndex"`
}

func (a *App) OpenEditModal(w http.ResponseWriter, r *http.Request) {
	var req openEditRequest
	if err := decode(r, &req); err != nil || req.ImageURL == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Store.Dispatch(studio.OpenEditModal{Info: studio.EditingImageInfo{
		ImageURL:       req.ImageURL,
		ID:             req.ID,
		Source:         req.Source,
		Index:          req.Index,
		VariationIndex: req.VariationIndex,
	}})
	a.state(w, http.StatusOK)
}

func (a *App) CloseEditModal(w http.ResponseWriter, r *http.Request) {
	a.Store.Dispatch(studio.CloseEditModal{})
	a.state(w, http.StatusOK)
}

type editRequest struct {
	Prompt      string `json:"prompt"`
	MaskDataURL string `json:"maskDataUrl"`
}

// Edit applies a masked edit to the image selected via OpenEditModal.
func (a *App) Edit(w http.ResponseWriter, r *http.Request) {
	var req editRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Studio.EditImage(r.Context(), req.Prompt, req.MaskDataURL); err != nil {
		a.fail(w, err)
		return
	}
	a.state(w, http.StatusAccepted)
}
