package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/config"
	dbpkg "github.com/ayush27prasad/avatar-voice-agent-backend/internal/db"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/middleware"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/routes"
	"github.com/ayush27prasad/avatar-voice-agent-backend/internal/session"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	sessions := session.NewStore(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, sessions, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
