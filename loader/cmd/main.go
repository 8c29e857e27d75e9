package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"legalmind/analysis"
	"legalmind/chunker"
	"legalmind/config"
	"legalmind/ingest"
	"legalmind/loader/service"
	"legalmind/model"
	"legalmind/store"
)

func init() {
	mustLoadEnvVariables()
}

func main() {
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatal("error loading config: ", err)
	}

	// The loader always runs on the embedded store.
	badgerPath := "data/legalmind"
	if cfg.Store.Badger != nil {
		badgerPath = cfg.Store.Badger.Path
	}
	kv, err := store.NewBadgerStore(badgerPath)
	if err != nil {
		log.Fatal("error opening store: ", err)
	}
	defer kv.Close()

	pool := model.KeyPoolFromEnv()
	client := model.NewClient(pool, cfg.Model.BaseURL, cfg.Model.Model, time.Duration(cfg.Model.TimeoutSecs)*time.Second)

	ingestor := ingest.NewIngestor(
		store.NewContextStore(kv),
		analysis.NewOrchestrator(client),
		chunker.New(cfg.Chunker.MaxChunkSize, cfg.Chunker.Overlap),
	)

	service.New(ingestor, cfg.Loader).Run()
}

func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.yaml"
}

func mustLoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
}
