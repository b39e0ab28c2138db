package handlers

import (
	"net/http"

	"pictureme/internal/studio"
)

// History lists past sessions, most recent first.
func (a *App) History(w http.ResponseWriter, r *http.Request) {
	state := a.Store.State()
	sessions := state.History
	if sessions == nil {
		sessions = []studio.Session{}
	}
	a.json(w, http.StatusOK, map[string]any{"history": sessions})
}

type loadHistoryRequest struct {
	SessionID string `json:"sessionId"`
}

// LoadHistory restores a saved session into the workspace. Unknown ids leave
// the state untouched.
func (a *App) LoadHistory(w http.ResponseWriter, r *http.Request) {
	var req loadHistoryRequest
	if err := decode(r, &req); err != nil || req.SessionID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	a.Store.Dispatch(studio.LoadHistorySession{SessionID: req.SessionID})
	a.state(w, http.StatusOK)
}

func (a *App) ClearHistory(w http.ResponseWriter, r *http.Request) {
	a.Store.Dispatch(studio.ClearHistory{})
	a.state(w, http.StatusOK)
}
