package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vocalog/diary-api/api"
	"github.com/vocalog/diary-api/api/types"
	"github.com/vocalog/diary-api/internal/database"
	"github.com/vocalog/diary-api/internal/models"
	"github.com/vocalog/diary-api/internal/services/cleanup"
	"github.com/vocalog/diary-api/internal/services/curation"
	"github.com/vocalog/diary-api/internal/services/enrichment"
	"github.com/vocalog/diary-api/internal/services/episodes"
	"github.com/vocalog/diary-api/internal/services/feed"
	"github.com/vocalog/diary-api/internal/services/inference"
	"github.com/vocalog/diary-api/internal/services/profiles"
	"github.com/vocalog/diary-api/internal/services/shards"
	"github.com/vocalog/diary-api/pkg/config"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Voice Diary API server with the configured settings.

The server accepts WAV recordings, runs background transcription and
emotion analysis over them, and serves episodes, curation, the
personal feed and profile progress.

Example:
  diary-api serve
  diary-api serve --port 9090
  diary-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := config.Init(); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Use config values if flags not provided
	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	if cfg.Environment == "production" || cfg.Environment == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	for _, dir := range []string{cfg.Storage.AudioDir, cfg.Storage.WorkDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating storage directory %s: %w", dir, err)
		}
	}

	// Services over the shared database
	episodeService := episodes.NewService(episodes.NewRepository(db.DB))
	shardService := shards.NewService(shards.NewRepository(db.DB),
		shards.WithAnalysisVersion(cfg.Enrichment.AnalysisVersion))
	curationService := curation.NewService(curation.NewRepository(db.DB))
	feedService := feed.NewService(feed.NewRepository(db.DB))
	profileService := profiles.NewService(profiles.NewRepository(db.DB))

	// Analysis adapters; emotion always runs locally on the signal
	transcriber, semantic, analysisSource := buildAdapters(cfg)
	emotion := inference.NewLocalEmotionAnalyzer()

	pipeline := enrichment.NewPipeline(shardService, transcriber, emotion, semantic,
		enrichment.WithSource(analysisSource),
		enrichment.WithVersion(cfg.Enrichment.AnalysisVersion))
	dispatcher := enrichment.NewDispatcher(pipeline, cfg.Enrichment.Workers, cfg.Enrichment.MaxQueueSize)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if cfg.Features.EnableEnrichment {
		if err := dispatcher.Start(ctx); err != nil {
			return fmt.Errorf("starting enrichment dispatcher: %w", err)
		}
		defer dispatcher.Stop()
	}

	// Sweep staged uploads a crashed request left in the work dir
	sweeper := cleanup.NewService(cfg.Storage.WorkDir, cleanup.DefaultMaxAge, cleanup.DefaultSweepInterval)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	deps := &types.Dependencies{
		DB:               db,
		EpisodeService:   episodeService,
		ShardService:     shardService,
		CurationService:  curationService,
		FeedService:      feedService,
		ProfileService:   profileService,
		Dispatcher:       dispatcher,
		Transcriber:      transcriber,
		EmotionAnalyzer:  emotion,
		SemanticAnalyzer: semantic,
		AudioDir:         cfg.Storage.AudioDir,
		WorkDir:          cfg.Storage.WorkDir,
		DefaultProfileID: cfg.Profile.DefaultID,
		AnalysisSource:   analysisSource,
		AnalysisVersion:  cfg.Enrichment.AnalysisVersion,
	}

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDependencies(deps)
	server.SetMaxBodyBytes(cfg.Storage.MaxUploadBytes)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	fmt.Printf("Voice Diary API listening at %s (analysis source: %s)\n", address, analysisSource)

	// Wait for interrupt signal, command context cancellation or a
	// server error
	select {
	case <-stop:
		fmt.Println("\nShutting down server...")
	case <-ctx.Done():
		fmt.Println("\nShutting down server...")
	case err := <-serverErr:
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		fmt.Println("Shutting down server...")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Server forced to shutdown: %v\n", err)
		return err
	}

	fmt.Println("Server gracefully stopped")
	return nil
}

// buildAdapters picks the analysis providers. With an OpenAI key the
// transcription and semantic stages go to the cloud; otherwise
// everything stays local and the transcript is left to the user.
func buildAdapters(cfg *config.Config) (inference.Transcriber, inference.SemanticAnalyzer, string) {
	if cfg.OpenAI.APIKey != "" {
		client := inference.NewOpenAIClient(inference.OpenAIConfig{
			APIKey:    cfg.OpenAI.APIKey,
			BaseURL:   cfg.OpenAI.BaseURL,
			ChatModel: cfg.OpenAI.Model,
			Timeout:   cfg.OpenAI.Timeout,
		})
		return client, client, models.AnalysisSourceCloud
	}
	return inference.NewNullTranscriber(), inference.NewStaticSemanticAnalyzer(), models.AnalysisSourceLocal
}
