package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AayushiWani/TY-Miniproject/config"
	deps "github.com/AayushiWani/TY-Miniproject/internal/debs"
	api "github.com/AayushiWani/TY-Miniproject/internal/http/rest"
)

const (
	allowConnectionsAfterShutdown = 1 * time.Second
)

func main() {
	cfg := config.New()
	deps := deps.New(cfg)

	a := &api.API{
		Config: cfg,
		Deps:   deps,
	}
	go deps.WebSocket.Run()
	go func() {
		log.Printf("Server running on port %v ...", cfg.Port)
		log.Fatal(a.Serve())
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	<-stopChan

	log.Println("Request to shutdown server. Waiting for", allowConnectionsAfterShutdown)
	waitTimer := time.NewTimer(allowConnectionsAfterShutdown)
	<-waitTimer.C

	log.Println("Shutting down server...")

	if err := a.Shutdown(); err != nil {
		log.Println("error shutting down server:", err)
	}

	deps.DB.Close()
	log.Println("Database connections closed.")
}
