// Package httpapi wires the studio handlers onto a chi router.
package httpapi

import (
	stdhttp "net/http"

	"pictureme/internal/http/handlers"
	appmw "pictureme/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(app *handlers.App) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(appmw.RequestID, chimw.RealIP, chimw.Recoverer)
	if len(app.Config.CORSOrigins) > 0 {
		r.Use(appmw.CORS(app.Config.CORSOrigins))
	}
	if app.Logger != nil {
		r.Use(appmw.Logger(*app.Logger))
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/session", func(r chi.Router) {
		r.Get("/", app.State)
		r.Post("/upload", app.Upload)
		r.Post("/camera", app.SetCamera)
		r.Post("/start-over", app.StartOver)
		r.Post("/dismiss-error", app.DismissError)
		r.Post("/filter", app.ApplyFilter)
		r.Post("/use-as-base", app.UseAsBase)
		r.Post("/template", app.SelectTemplate)
		r.Patch("/settings", app.UpdateSettings)
		r.Patch("/options/hair", app.UpdateHairOptions)
		r.Patch("/options/headshots", app.UpdateHeadshotOptions)
		r.Patch("/options/lookbook", app.UpdateLookbookOptions)
		r.Patch("/options/retro-poster", app.UpdateRetroPosterOptions)
		r.Patch("/options/cyberpunk", app.UpdateCyberpunkOptions)
	})

	r.Get("/v1/templates", app.Templates)

	r.Route("/v1/generate", func(r chi.Router) {
		if app.Config.GenerateLimit > 0 && app.Config.GenerateWindow > 0 {
			r.Use(appmw.RateLimit(app.Config.GenerateLimit, app.Config.GenerateWindow))
		}
		r.Post("/template", app.GenerateTemplate)
		r.Post("/prompt", app.GeneratePrompt)
	})

	r.Route("/v1/images", func(r chi.Router) {
		r.Post("/regenerate", app.Regenerate)
		r.Post("/variations", app.Variations)
		r.Post("/edit/open", app.OpenEditModal)
		r.Post("/edit/close", app.CloseEditModal)
		r.Post("/edit", app.Edit)
	})

	r.Route("/v1/exports", func(r chi.Router) {
		r.Post("/image", app.ExportImage)
		r.Post("/album", app.ExportAlbum)
		r.Post("/zip", app.ExportZip)
	})

	r.Route("/v1/history", func(r chi.Router) {
		r.Get("/", app.History)
		r.Post("/load", app.LoadHistory)
		r.Post("/clear", app.ClearHistory)
	})

	r.Get("/v1/onboarding", app.Onboarding)
	r.Post("/v1/onboarding", app.SetOnboarding)

	// Export keys map one-to-one onto files under the storage root.
	if dir := app.Config.StorageDir; dir != "" {
		fs := stdhttp.StripPrefix("/files/", stdhttp.FileServer(stdhttp.Dir(dir)))
		r.Get("/files/*", fs.ServeHTTP)
	}

	return r
}
