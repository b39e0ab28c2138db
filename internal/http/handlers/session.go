package handlers

import (
	"net/http"

	"pictureme/internal/raster"
	"pictureme/internal/studio"
)

// State returns the full session snapshot.
func (a *App) State(w http.ResponseWriter, r *http.Request) {
	a.state(w, http.StatusOK)
}

type uploadRequest struct {
	ImageDataURL string `json:"imageDataUrl"`
}

// Upload accepts a data-URL encoded photo and makes it the session's
// reference image. Any in-flight generation becomes stale.
func (a *App) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.Config.MaxUploadBytes)
	var req uploadRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	a.Store.Dispatch(studio.UploadImageStart{})
	if _, err := raster.DecodeImage(req.ImageDataURL); err != nil {
		a.Store.Dispatch(studio.UploadImageFailure{Message: "Não foi possível ler a imagem enviada."})
		a.error(w, http.StatusUnprocessableEntity, "validation", "Não foi possível ler a imagem enviada.")
		return
	}
	a.Store.Dispatch(studio.UploadImageSuccess{ImageURL: req.ImageDataURL})
	a.state(w, http.StatusOK)
}

type cameraRequest struct {
	Open bool `json:"open"`
}

func (a *App) SetCamera(w http.ResponseWriter, r *http.Request) {
	var req cameraRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Store.Dispatch(studio.SetCameraOpen{Open: req.Open})
	a.state(w, http.StatusOK)
}

func (a *App) StartOver(w http.ResponseWriter, r *http.Request) {
	a.Store.Dispatch(studio.StartOver{})
	a.state(w, http.StatusOK)
}

func (a *App) DismissError(w http.ResponseWriter, r *http.Request) {
	a.Store.Dispatch(studio.DismissError{})
	a.state(w, http.StatusOK)
}

type filterRequest struct {
	Filter string `json:"filter"`
}

// ApplyFilter re-derives the working image from the original upload with the
// requested pixel filter.
func (a *App) ApplyFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	kind, err := raster.NormalizeFilter(req.Filter)
	if err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown filter")
		return
	}

	state := a.Store.State()
	if state.OriginalUploadedImage == "" {
		a.error(w, http.StatusUnprocessableEntity, "validation", "Por favor, carregue uma foto primeiro.")
		return
	}

	working := state.OriginalUploadedImage
	if kind != raster.FilterNone {
		img, err := raster.DecodeImage(state.OriginalUploadedImage)
		if err != nil {
			a.fail(w, err)
			return
		}
		filtered, err := raster.ApplyFilter(img, kind)
		if err != nil {
			a.fail(w, err)
			return
		}
		working, err = raster.PNGDataURL(filtered)
		if err != nil {
			a.fail(w, err)
			return
		}
	}

	a.Store.Dispatch(studio.ApplyFilter{Filter: kind, Image: working})
	a.state(w, http.StatusOK)
}

type useAsBaseRequest struct {
	ImageURL string `json:"imageUrl"`
}

// UseAsBase promotes a generated result to the session's reference image.
func (a *App) UseAsBase(w http.ResponseWriter, r *http.Request) {
	var req useAsBaseRequest
	if err := decode(r, &req); err != nil || req.ImageURL == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Studio.UseImageAsBase(req.ImageURL)
	a.state(w, http.StatusOK)
}
