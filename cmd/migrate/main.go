package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/config"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/db"
)

// Applies the booking schema and exits. Safe to run repeatedly: every
// statement is guarded with IF NOT EXISTS.
func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.DBUrl)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer conn.Close(ctx)

	for i, stmt := range db.Schema {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			log.Fatalf("failed to apply schema statement %d: %v", i+1, err)
		}
	}

	log.Printf("schema applied: %d statements", len(db.Schema))
}
