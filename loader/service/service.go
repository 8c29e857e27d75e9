// Package service runs the batch ingest pipeline: watch for extracted
// text files, push each through the analyze+store pipeline, and archive
// the originals.
package service

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"legalmind/config"
	"legalmind/ingest"
	"legalmind/loader/internal"
)

type Service struct {
	logger   *slog.Logger
	ingestor *ingest.Ingestor
	loader   *internal.TextLoader
}

func New(ingestor *ingest.Ingestor, cfg config.LoaderConfig) *Service {
	return &Service{
		logger:   slog.Default(),
		ingestor: ingestor,
		loader:   internal.NewTextLoader(cfg),
	}
}

func (s *Service) Stop() {
	s.logger.Info("loader service stopped")
}

func (s *Service) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fileChan := make(chan string, 10)
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(fileChan)
		s.loader.WatchFiles(ctx, fileChan)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		s.processFiles(ctx, fileChan)
	}()

	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	<-sigch
	s.logger.Info("received shutdown signal, shutting down gracefully")

	cancel()
	signal.Stop(sigch)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("all workers stopped")
	case <-shutdownCtx.Done():
		s.logger.Warn("timeout waiting for workers, forcing shutdown")
	}

	s.Stop()
}

func (s *Service) processFiles(ctx context.Context, fileChan <-chan string) {
	for path := range fileChan {
		if ctx.Err() != nil {
			return
		}

		documentName, text, err := s.loader.ReadDocument(path)
		if err != nil {
			s.logger.Error("skipping file", "path", path, "error", err)
			s.loader.MoveToArchive(path, true)
			continue
		}

		result, err := s.ingestor.Ingest(ctx, text, documentName)
		if err != nil {
			s.logger.Error("ingestion failed", "path", path, "error", err)
			s.loader.MoveToArchive(path, true)
			continue
		}

		s.logger.Info("file ingested", "path", path, "documentId", result.DocumentID)
		s.loader.MoveToArchive(path, false)
	}
}
