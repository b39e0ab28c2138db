package handlers

import "net/http"

// Onboarding reports whether the client has finished the intro tour.
func (a *App) Onboarding(w http.ResponseWriter, r *http.Request) {
	p, err := a.Prefs.Load()
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, p)
}

type onboardingRequest struct {
	Completed bool `json:"completed"`
}

func (a *App) SetOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if err := a.Prefs.SetOnboardingComplete(req.Completed); err != nil {
		a.fail(w, err)
		return
	}
	p, err := a.Prefs.Load()
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, p)
}
