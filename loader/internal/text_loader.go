// Package internal implements the file side of the batch loader: a
// polling watcher over the source directory and the archive/bad moves
// that record each file's outcome.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"legalmind/config"
)

// TextLoader watches a directory for extracted-text documents. A file is
// picked up only after it has stopped changing for the monitoring window,
// so partially-copied files are never ingested.
type TextLoader struct {
	cfg    config.LoaderConfig
	logger *slog.Logger

	fileMutex       sync.Mutex
	fileFirstSeen   map[string]time.Time
	filesProcessing map[string]bool
}

func NewTextLoader(cfg config.LoaderConfig) *TextLoader {
	createDirectories(cfg.SourceDir, cfg.ArchiveDir, cfg.BadDir)
	return &TextLoader{
		cfg:             cfg,
		logger:          slog.Default(),
		fileFirstSeen:   make(map[string]time.Time),
		filesProcessing: make(map[string]bool),
	}
}

// WatchFiles polls the source directory and sends ready file paths on
// fileChan until the context is cancelled.
func (l *TextLoader) WatchFiles(ctx context.Context, fileChan chan<- string) {
	l.logger.Info("monitoring folder", "dir", l.cfg.SourceDir)

	monitoringTime := time.Duration(l.cfg.MonitoringSecs) * time.Second
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("file watcher stopped")
			return
		case <-ticker.C:
			files, err := os.ReadDir(l.cfg.SourceDir)
			if err != nil {
				l.logger.Error("error reading source directory", "error", err)
				continue
			}

			for _, file := range files {
				if file.IsDir() {
					continue
				}
				filePath := filepath.Join(l.cfg.SourceDir, file.Name())

				l.fileMutex.Lock()
				if l.filesProcessing[filePath] {
					l.fileMutex.Unlock()
					continue
				}
				firstSeen, seen := l.fileFirstSeen[filePath]
				if !seen {
					l.fileFirstSeen[filePath] = time.Now()
					l.logger.Info("new file detected", "path", filePath)
					l.fileMutex.Unlock()
					continue
				}
				l.fileMutex.Unlock()

				if time.Since(firstSeen) <= monitoringTime {
					continue
				}

				l.fileMutex.Lock()
				l.filesProcessing[filePath] = true
				l.fileMutex.Unlock()

				select {
				case fileChan <- filePath:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// ReadDocument reads an extracted-text file. Only plain-text formats are
// accepted; extraction from PDFs or images happens upstream.
func (l *TextLoader) ReadDocument(path string) (documentName, text string, err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".txt" && ext != ".md" {
		return "", "", fmt.Errorf("unsupported file type %q", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), ext)
	return name, string(data), nil
}

// MoveToArchive moves a processed file out of the source directory, to
// the bad directory when ingestion failed.
func (l *TextLoader) MoveToArchive(path string, failed bool) {
	targetDir := l.cfg.ArchiveDir
	if failed {
		targetDir = l.cfg.BadDir
	}
	target := filepath.Join(targetDir, filepath.Base(path))
	if err := os.Rename(path, target); err != nil {
		l.logger.Error("error moving file", "path", path, "target", target, "error", err)
		return
	}

	l.fileMutex.Lock()
	delete(l.fileFirstSeen, path)
	delete(l.filesProcessing, path)
	l.fileMutex.Unlock()
}

func createDirectories(dirs ...string) {
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("error creating directory", "dir", dir, "error", err)
		}
	}
}
