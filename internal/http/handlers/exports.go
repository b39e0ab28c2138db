package handlers

import (
	"net/http"

	"pictureme/internal/instruction"
)

type exportImageRequest struct {
	ImageURL string `json:"imageUrl"`
	Label    string `json:"label"`
	Ratio    string `json:"ratio"`
	Template string `json:"template"`
}

// ExportImage frames one result and writes it to the export store. The
// response carries the storage key, served under /exports/.
func (a *App) ExportImage(w http.ResponseWriter, r *http.Request) {
	var req exportImageRequest
	if err := decode(r, &req); err != nil || req.ImageURL == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Ratio == "" {
		req.Ratio = a.Store.State().AspectRatio
	}
	key, err := a.Exporter.DownloadImage(r.Context(), req.ImageURL, req.Label, req.Ratio, instruction.TemplateID(req.Template))
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"key": key})
}

type exportAlbumRequest struct {
	Ratio string `json:"ratio"`
}

// ExportAlbum stitches the successful theme results into one sheet.
func (a *App) ExportAlbum(w http.ResponseWriter, r *http.Request) {
	var req exportAlbumRequest
	if err := decode(r, &req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Ratio == "" {
		req.Ratio = a.Store.State().AspectRatio
	}
	key, err := a.Exporter.DownloadAlbum(r.Context(), req.Ratio)
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"key": key})
}

// ExportZip archives every successful result of the workspace.
func (a *App) ExportZip(w http.ResponseWriter, r *http.Request) {
	key, err := a.Exporter.DownloadZip(r.Context())
	if err != nil {
		a.fail(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]string{"key": key})
}
