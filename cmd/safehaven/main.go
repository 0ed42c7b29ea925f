package main

import (
	"fmt"
	"os"

	"github.com/safehavenapp/safehaven/internal/app"
	"github.com/safehavenapp/safehaven/internal/config"
	"github.com/safehavenapp/safehaven/internal/logging"
	"github.com/safehavenapp/safehaven/internal/server"
	"github.com/safehavenapp/safehaven/internal/store"
)

func main() {
	fmt.Println("SafeHaven - Emergency Reporting Backend")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(cfg.LogDir)

	st, err := store.New(cfg.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("failed to initialize store")
	}
	defer st.Close()

	application := app.New(app.Config{
		Store:  st,
		Logger: logger,
	})

	if err := application.LoadReports(); err != nil {
		logger.WithError(err).Warn("failed to load persisted reports; starting with an empty log")
	}

	srv := server.New(server.Config{App: application})

	logger.WithField("addr", cfg.Addr).Info("starting server")
	if err := srv.ListenAndServe(cfg.Addr); err != nil {
		logger.WithError(err).Fatal("server failed")
	}
}
