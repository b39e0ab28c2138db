package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"pictureme/internal/http/handlers"
	httpapi "pictureme/internal/http/httpapi"
	"pictureme/internal/infra"
	"pictureme/internal/prefs"
	"pictureme/internal/providers/genai"
	"pictureme/internal/providers/stylesuggest"
	"pictureme/internal/storage"
	"pictureme/internal/studio"
)

func main() {
	// Load .env (optional)
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	client, err := genai.NewClient(genai.Options{
		APIKey:     cfg.GeminiAPIKey,
		BaseURL:    cfg.GeminiBaseURL,
		ImageModel: cfg.GeminiImageModel,
		TextModel:  cfg.GeminiTextModel,
		Logger:     &logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build generation client")
	}
	if cfg.GeminiAPIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY not set, serving synthetic images")
	}

	suggester, err := newSuggester(cfg, client)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build style suggester")
	}

	files, err := storage.NewFileStore(cfg.StorageDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open storage dir")
	}
	prefStore, err := prefs.NewStore(cfg.PrefsPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open prefs store")
	}

	store := studio.NewStore()
	orchestrator := studio.NewOrchestrator(store, client, suggester, &logger)
	exporter := studio.NewExporter(store, files)

	app := &handlers.App{
		Config:   cfg,
		Logger:   &logger,
		Store:    store,
		Studio:   orchestrator,
		Exporter: exporter,
		Prefs:    prefStore,
	}

	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	// Let in-flight generation batches land before exiting.
	orchestrator.Wait()
	logger.Info().Msg("server stopped")
}

// newSuggester picks the album-style provider from configuration. Every
// provider falls back to the same static descriptor on failure.
func newSuggester(cfg *infra.Config, client *genai.Client) (stylesuggest.Suggester, error) {
	fallback := stylesuggest.NewStatic()
	switch cfg.StyleProvider {
	case "openai":
		return stylesuggest.NewOpenAI(stylesuggest.OpenAIOptions{
			APIKey:   cfg.OpenAIAPIKey,
			Model:    cfg.OpenAIModel,
			BaseURL:  cfg.OpenAIBaseURL,
			Fallback: fallback,
		})
	case "static":
		return fallback, nil
	default:
		return stylesuggest.NewGemini(client, fallback), nil
	}
}
