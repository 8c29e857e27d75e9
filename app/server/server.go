package server

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"legalmind/analysis"
	"legalmind/app/api"
	"legalmind/app/middleware"
	"legalmind/chunker"
	"legalmind/config"
	"legalmind/ingest"
	"legalmind/model"
	"legalmind/store"
)

var fiberConfig = fiber.Config{
	ErrorHandler: api.ErrorHandler,
	BodyLimit:    32 * 1024 * 1024,
}

type Server struct {
	listenAddr string
	cfg        *config.AppConfig
	logger     *slog.Logger
	kv         store.KVStore
}

func NewServer(addr string, cfg *config.AppConfig) *Server {
	return &Server{
		listenAddr: addr,
		cfg:        cfg,
		logger:     slog.Default(),
	}
}

func (s *Server) Stop() {
	if s.kv != nil {
		if err := s.kv.Close(); err != nil {
			s.logger.Error("error closing store", "error", err)
		}
	}
	s.logger.Info("server stopped")
}

func (s *Server) Run() {
	kv, err := openStore(s.cfg.Store)
	if err != nil {
		log.Fatal("error opening store: ", err)
		return
	}
	s.kv = kv

	contextStore := store.NewContextStore(kv)

	pool := model.KeyPoolFromEnv()
	if pool.Len() == 0 {
		s.logger.Warn("no API keys configured, all model calls will fail")
	}
	client := model.NewClient(pool, s.cfg.Model.BaseURL, s.cfg.Model.Model, time.Duration(s.cfg.Model.TimeoutSecs)*time.Second)

	orchestrator := analysis.NewOrchestrator(client)
	textChunker := chunker.New(s.cfg.Chunker.MaxChunkSize, s.cfg.Chunker.Overlap)
	ingestor := ingest.NewIngestor(contextStore, orchestrator, textChunker)

	var (
		app             = fiber.New(fiberConfig)
		checkHandler    = api.NewCheckHandler()
		chatHandler     = api.NewChatHandler(contextStore, client, s.cfg.Search.MaxChunks)
		analyzeHandler  = api.NewAnalyzeHandler(ingestor)
		documentHandler = api.NewDocumentHandler(contextStore)
		check           = app.Group("/check")
		apiv1           = app.Group("/api/v1")
	)

	app.Use(middleware.RequestLogger())

	check.Get("/healthy", checkHandler.HandleHealthy)
	apiv1.Post("/chat", chatHandler.HandleChat)
	apiv1.Post("/analyze", analyzeHandler.HandleAnalyze)
	apiv1.Post("/analyze/file", analyzeHandler.HandleAnalyzeFile)
	apiv1.Get("/documents/:id", documentHandler.HandleGetDocument)
	apiv1.Delete("/documents/:id", documentHandler.HandleDeleteDocument)
	apiv1.Get("/sessions", documentHandler.HandleListSessions)
	apiv1.Get("/sessions/:id", documentHandler.HandleGetSession)

	if err := app.Listen(s.listenAddr); err != nil {
		s.logger.Error("error to start server", "error", err.Error())
	}
}

// openStore builds the configured KV backend. The postgres backend reads
// its connection details from PG_* environment variables.
func openStore(cfg config.StoreConfig) (store.KVStore, error) {
	switch cfg.Type {
	case "badger":
		return store.NewBadgerStore(cfg.Badger.Path)
	case "postgres":
		ctx := context.Background()
		port, _ := strconv.Atoi(os.Getenv("PG_PORT"))
		connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			os.Getenv("PG_HOST"), port, os.Getenv("PG_USER"), os.Getenv("PG_PASS"), os.Getenv("PG_DB_NAME"))
		pg, err := store.NewPostgresStore(ctx, connStr)
		if err != nil {
			return nil, err
		}
		if err := pg.Init(ctx); err != nil {
			pg.Close()
			return nil, err
		}
		return pg, nil
	case "memory":
		return store.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Type)
	}
}
