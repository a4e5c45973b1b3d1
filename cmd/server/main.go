package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"saripos/internal/ai"
	"saripos/internal/archive"
	"saripos/internal/auth"
	"saripos/internal/config"
	"saripos/internal/handlers"
	"saripos/internal/models"
	"saripos/internal/router"
	"saripos/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, using environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	auth.Configure(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)

	// All state lives in this one store. Nothing is persisted; a
	// restart starts the day over from the seed data.
	s := store.New(models.Settings{
		StoreName:         cfg.StoreName,
		Address:           cfg.StoreAddress,
		TaxID:             cfg.StoreTaxID,
		ReceiptFooter:     "This serves as your official receipt",
		PaperWidth:        58,
		FontSize:          12,
		LowStockThreshold: cfg.LowStockThreshold,
	})
	if err := s.Seed(cfg.SeedAdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed store")
	}

	advisor := ai.New(cfg.GeminiAPIKey, cfg.GeminiModel)
	if !advisor.Enabled() {
		log.Info().Msg("GEMINI_API_KEY not set, advisory flows will answer with fallbacks")
	}

	// Optional durable copy of settled sales. Never read back.
	var arc *archive.Archive
	if cfg.ArchiveDSN != "" {
		arc, err = archive.Open(cfg.ArchiveDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to open sales archive")
		}
		log.Info().Msg("sales archive enabled")
	}

	r := router.New(handlers.New(s, advisor, arc), cfg.Origins())

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info().Str("addr", addr).Msg("🚀 POS server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
