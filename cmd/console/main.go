package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/smart-condominium/condo-console/condoapi"
	"github.com/smart-condominium/condo-console/gateway"
	"github.com/smart-condominium/condo-console/internal/config"
	"github.com/smart-condominium/condo-console/server"
	"github.com/smart-condominium/condo-console/session"
	"github.com/smart-condominium/condo-console/session/filestore"
)

func main() {
	for {
		if err := run(); err != nil {
			log.Fatalf("Error running console: %s\n", err)
			time.Sleep(1 * time.Second)
		} else {
			break
		}
	}
	log.Printf("Console stopped\n")
}

func run() (returnError error) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered from panic: %v\n", r)
			debug.PrintStack()
			returnError = errors.New("panic recovered")
		}
	}()

	// Missing .env is fine, the environment may be set directly
	_ = godotenv.Load()

	c := config.New()
	displayAppname(c.GetAppName())

	logger := newLogger(c.GetEnv())

	store := filestore.New(c.GetDataFolder())
	sessions := session.NewManager(store, logger)
	gw := gateway.New(c.GetAPIBaseURL(), sessions,
		gateway.WithTimeout(c.GetRequestTimeout()),
		gateway.WithLogger(logger),
	)
	api := condoapi.New(gw)

	// Restore whatever session the previous run left behind before the
	// first request can hit the route guard.
	sessions.Hydrate()

	httpServer := &http.Server{Addr: c.GetPort(), Handler: server.New(c, sessions, api, logger)}
	go listenAndServe(httpServer)
	waitForStopSignal()
	returnError = shutdown(httpServer)
	return returnError
}

func newLogger(env string) zerolog.Logger {
	if env == "DEV" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

func listenAndServe(server *http.Server) error {
	log.Printf("Console listening on %s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server.ListenAndServe %w", err)
	}
	return nil
}

func waitForStopSignal() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
}

func shutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}

func displayAppname(appname string) {
	myFigure := figure.NewFigure(appname, "cybermedium", true)
	myFigure.Print()
	fmt.Println()
}
