package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ecowatt/solardevis/internal/config"
	"github.com/ecowatt/solardevis/internal/gemini"
	"github.com/ecowatt/solardevis/internal/store"
)

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Erreur ouverture base: %v", err)
	}

	defaults, err := cfg.DefaultQuoteConfig()
	if err != nil {
		// The built-in defaults still apply; only the preset overlay failed.
		log.Printf("pricing preset ignored: %v", err)
	}

	var gen gemini.Generator
	if cfg.GeminiAPIKey != "" {
		gen = gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	} else {
		log.Printf("GEMINI_API_KEY absent: l'analyse IA renverra un message d'indisponibilité")
	}
	analyzer := gemini.NewAnalyzer(gen)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: withLogging(NewApp(db, analyzer, defaults)),
	}

	go func() {
		log.Printf("Server listening on %s (db=%s)", srv.Addr, cfg.DatabasePath)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
