package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	groqclient "yt-companion/infrastructure/clients/groq"
	ytclient "yt-companion/infrastructure/clients/youtube"
	"yt-companion/infrastructure/configuration"
	"yt-companion/infrastructure/logger"
	"yt-companion/infrastructure/persistence"
	httpHandler "yt-companion/interfaces/http"
	"yt-companion/server"
	"yt-companion/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env still has precedence)
	configuration.LoadEnvFromFile("config.env", ".env")

	cfg, err := configuration.Load()
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Configuration loading failed")
		os.Exit(1)
	}

	psqlDb, err := persistence.NewPostgreSQLDB(cfg)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot connect to PostgreSQL")
		os.Exit(1)
	}
	logger.GetLogger().WithField("PSQLDb", psqlDb.Ping()).Info("Database connected.")

	sessionRepository := persistence.NewSessionRepository(psqlDb)
	noteRepository := persistence.NewNoteRepository(psqlDb)
	commentRepository := persistence.NewCommentRepository(psqlDb)
	auditRepository := persistence.NewAuditRepository(psqlDb)

	youtubeFactory := ytclient.NewFactory()
	suggestionClient := groqclient.NewSuggestionClient(cfg)

	authUsecase := usecase.NewAuthUsecase(cfg, sessionRepository, auditRepository)
	videoUsecase := usecase.NewVideoUsecase(noteRepository, auditRepository, suggestionClient)
	commentUsecase := usecase.NewCommentUsecase(commentRepository, auditRepository)
	noteUsecase := usecase.NewNoteUsecase(noteRepository, auditRepository)
	logUsecase := usecase.NewLogUsecase(auditRepository)

	authHandler := httpHandler.NewAuthHandler(authUsecase, cfg.Frontend.URL)
	videoHandler := httpHandler.NewVideoHandler(videoUsecase)
	commentHandler := httpHandler.NewCommentHandler(commentUsecase)
	noteHandler := httpHandler.NewNoteHandler(noteUsecase)
	logHandler := httpHandler.NewLogHandler(logUsecase)

	router := server.InitiateRouter(
		cfg,
		authHandler,
		videoHandler,
		commentHandler,
		noteHandler,
		logHandler,
		sessionRepository,
		youtubeFactory,
	)

	port := cfg.App.Port
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}
