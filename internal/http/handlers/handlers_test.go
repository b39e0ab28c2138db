package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"pictureme/internal/http/handlers"
	"pictureme/internal/http/httpapi"
	"pictureme/internal/infra"
	"pictureme/internal/prefs"
	"pictureme/internal/raster"
	"pictureme/internal/storage"
	"pictureme/internal/studio"
)

type stubClient struct{}

func (stubClient) GenerateImage(ctx context.Context, instruction string, refImages ...string) (string, error) {
	return "data:image/png;base64,stub", nil
}

func (stubClient) EditImage(ctx context.Context, instruction, baseImage, maskImage string) (string, error) {
	return "data:image/png;base64,edited", nil
}

type stubSuggester struct{}

func (stubSuggester) Suggest(ctx context.Context, brief string) (string, error) {
	return "Neon grid with fog", nil
}

type testEnv struct {
	server *httptest.Server
	studio *studio.Orchestrator
	store  *studio.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &infra.Config{
		MaxUploadBytes: 15 << 20,
		StorageDir:     t.TempDir(),
	}
	logger := infra.Logger(zerolog.New(io.Discard))

	store := studio.NewStore()
	orchestrator := studio.NewOrchestrator(store, stubClient{}, stubSuggester{}, &logger)

	files, err := storage.NewFileStore(cfg.StorageDir)
	if err != nil {
		t.Fatalf("NewFileStore returned error: %v", err)
	}
	prefStore, err := prefs.NewStore(filepath.Join(t.TempDir(), "prefs.json"))
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	app := &handlers.App{
		Config:   cfg,
		Logger:   &logger,
		Store:    store,
		Studio:   orchestrator,
		Exporter: studio.NewExporter(store, files),
		Prefs:    prefStore,
	}

	server := httptest.NewServer(httpapi.NewRouter(app))
	t.Cleanup(server.Close)
	return &testEnv{server: server, studio: orchestrator, store: store}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		payload = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, e.server.URL+path, payload)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, data
}

type stateResponse struct {
	State studio.State `json:"state"`
}

func decodeState(t *testing.T, data []byte) studio.State {
	t.Helper()
	var resp stateResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	return resp.State
}

func photoDataURL(t *testing.T) string {
	t.Helper()
	url, err := raster.PNGDataURL(image.NewRGBA(image.Rect(0, 0, 8, 8)))
	if err != nil {
		t.Fatalf("PNGDataURL returned error: %v", err)
	}
	return url
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)
	resp, _ := env.do(t, http.MethodGet, "/v1/healthz", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestUploadAcceptsValidImage(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/v1/session/upload", map[string]string{
		"imageDataUrl": photoDataURL(t),
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	state := decodeState(t, body)
	if state.UploadedImage == "" || state.OriginalUploadedImage == "" {
		t.Fatal("upload must set both image fields")
	}
	if state.Status != studio.SessionIdle {
		t.Fatalf("status = %q, want idle", state.Status)
	}
}

func TestUploadRejectsGarbage(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodPost, "/v1/session/upload", map[string]string{
		"imageDataUrl": "data:image/png;base64,not-an-image",
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
}

func TestSelectTemplateRejectsUnknown(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodPost, "/v1/session/template", map[string]string{
		"template": "no-such-template",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGenerateTemplateRequiresPhotoAndTemplate(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodPost, "/v1/generate/template", nil)
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
	var errResp map[string]string
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if errResp["message"] != "Por favor, carregue uma foto e selecione um tema." {
		t.Fatalf("message = %q", errResp["message"])
	}
}

func TestTemplateGenerationFlow(t *testing.T) {
	env := newTestEnv(t)

	env.do(t, http.MethodPost, "/v1/session/upload", map[string]string{"imageDataUrl": photoDataURL(t)})
	env.do(t, http.MethodPost, "/v1/session/template", map[string]string{"template": "decades"})

	resp, _ := env.do(t, http.MethodPost, "/v1/generate/template", nil)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", resp.StatusCode)
	}
	env.studio.Wait()

	_, body := env.do(t, http.MethodGet, "/v1/session/", nil)
	state := decodeState(t, body)
	if len(state.GeneratedImages) != 6 {
		t.Fatalf("got %d generated images, want 6", len(state.GeneratedImages))
	}
	for i, img := range state.GeneratedImages {
		if img.Status != studio.StatusSuccess {
			t.Fatalf("image %d status = %q", i, img.Status)
		}
	}
	if state.Status != studio.SessionSuccess {
		t.Fatalf("session status = %q", state.Status)
	}
}

func TestHairOptionsCapIsRejected(t *testing.T) {
	env := newTestEnv(t)

	styles := make([]string, 7)
	for i := range styles {
		styles[i] = fmt.Sprintf("style-%d", i)
	}
	resp, body := env.do(t, http.MethodPatch, "/v1/session/options/hair", map[string]any{
		"selectedStyles": styles,
	})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", resp.StatusCode, body)
	}
}

func TestTemplatesEndpointListsCatalog(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/v1/templates", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var payload struct {
		Templates []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"templates"`
		AspectRatios []string `json:"aspectRatios"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("decode templates: %v", err)
	}
	if len(payload.Templates) != 13 {
		t.Fatalf("got %d templates, want 13", len(payload.Templates))
	}
	if payload.Templates[0].ID != "decades" {
		t.Fatalf("first template = %q, want decades", payload.Templates[0].ID)
	}
	if len(payload.AspectRatios) != 3 {
		t.Fatalf("got %d aspect ratios", len(payload.AspectRatios))
	}
}

func TestOnboardingRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	_, body := env.do(t, http.MethodGet, "/v1/onboarding", nil)
	var p prefs.Preferences
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("decode prefs: %v", err)
	}
	if p.HasCompletedOnboarding {
		t.Fatal("fresh store must report onboarding incomplete")
	}

	env.do(t, http.MethodPost, "/v1/onboarding", map[string]bool{"completed": true})

	_, body = env.do(t, http.MethodGet, "/v1/onboarding", nil)
	if err := json.Unmarshal(body, &p); err != nil {
		t.Fatalf("decode prefs: %v", err)
	}
	if !p.HasCompletedOnboarding {
		t.Fatal("flag must be set after POST")
	}
}
