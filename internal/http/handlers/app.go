// Package handlers exposes the studio engine over HTTP. Handlers are thin:
// they decode a request, call into the studio packages and return the fresh
// state snapshot.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"pictureme/internal/infra"
	"pictureme/internal/prefs"
	"pictureme/internal/providers/genai"
	"pictureme/internal/raster"
	"pictureme/internal/studio"
)

type App struct {
	Config   *infra.Config
	Logger   *infra.Logger
	Store    *studio.Store
	Studio   *studio.Orchestrator
	Exporter *studio.Exporter
	Prefs    *prefs.Store
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]string{"error": errCode, "message": message})
}

// fail maps studio and model errors onto HTTP responses.
func (a *App) fail(w http.ResponseWriter, err error) {
	var vErr *studio.ValidationError
	if errors.As(err, &vErr) {
		a.error(w, http.StatusUnprocessableEntity, "validation", vErr.Message)
		return
	}
	var mErr *genai.ModelError
	if errors.As(err, &mErr) {
		code := http.StatusBadGateway
		if mErr.Reason == genai.ReasonBlocked {
			code = http.StatusUnprocessableEntity
		}
		a.error(w, code, "model", mErr.Message)
		return
	}
	if errors.Is(err, raster.ErrTransform) {
		a.error(w, http.StatusUnprocessableEntity, "transform", "Não foi possível preparar esta imagem.")
		return
	}
	a.Logger.Error().Err(err).Msg("handler failure")
	a.error(w, http.StatusInternalServerError, "internal", err.Error())
}

// state responds with the current session snapshot.
func (a *App) state(w http.ResponseWriter, code int) {
	a.json(w, code, map[string]any{"state": a.Store.State()})
}

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}
