package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"namada_governance_bot/configs"
	"namada_governance_bot/internal/db"
	"namada_governance_bot/internal/db/repositories"
	"namada_governance_bot/internal/di"
	discordbot "namada_governance_bot/internal/discord_bot"
	"namada_governance_bot/internal/events"
	"namada_governance_bot/internal/poller"
	"namada_governance_bot/internal/queries"
	"namada_governance_bot/internal/services"
	"namada_governance_bot/internal/store"
	tgbot "namada_governance_bot/internal/tg_bot"
	"namada_governance_bot/internal/tg_bot/commands"
	"namada_governance_bot/internal/tg_bot/handlers"

	"github.com/go-co-op/gocron"
	"github.com/go-pg/pg/v10"
	"go.uber.org/zap"
)

const healthCheckPath = "/governance-bot/healthcheck"

func main() {
	config, err := configs.LoadGovernanceBotConfig()
	logger := di.NewLogger(config.App, config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	repository, database, err := newStateRepository(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to open state storage", "error", err)
	}

	proposalStore, err := store.Load(repository, logger)
	if err != nil {
		logger.Fatalw("failed to load state", "error", err)
	}

	nodeService := services.NewNodeService(config.Node, services.NewExecRunner(config.Node.CommandTimeout))
	proposalQueries := queries.NewProposalQueries(proposalStore, config.Bot.MessageLimit)

	logger.Info("starting bot")
	bot, err := tgbot.NewBot(
		config.Bot,
		handlers.NewCommandHandler(logger, []commands.Command{
			commands.NewStartCommand(proposalStore, nodeService, proposalQueries, logger),
			commands.NewProposalsCommand(nodeService, proposalQueries, logger),
			commands.NewGetProposalCommand(nodeService, proposalQueries, logger),
		}),
		logger,
	)
	if err != nil {
		logger.Fatalw("failed to start bot", "error", err)
	}

	announcers, closers := newAnnouncers(config, logger)

	ctx, cancel := context.WithCancel(context.Background())

	scheduler := gocron.NewScheduler(time.UTC)
	cycle := poller.NewPollCycle(nodeService, proposalStore, bot, config.Bot.MessageLimit, logger, announcers...)
	if _, err = poller.Schedule(ctx, scheduler, cycle, config.Poll); err != nil {
		logger.Fatalw("failed to schedule poll cycle", "error", err)
	}
	scheduler.StartAsync()
	logger.Infow("poll cycle scheduled", "interval", config.Poll.Interval)

	botDone := make(chan struct{})
	go func() {
		defer close(botDone)
		bot.Start(ctx)
	}()

	logger.Info("setting up health check server")
	server := settingUpHealthCheckServer(config.App.HealthCheckAddr, logger)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	scheduler.Stop()
	cancel()
	<-botDone

	if err = proposalStore.Flush(); err != nil {
		logger.Errorw("failed to persist state", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shutdown http server", "error", err)
	}

	for _, closer := range closers {
		if err = closer(); err != nil {
			logger.Errorw("failed to close announcer", "error", err)
		}
	}

	if database != nil {
		if err = database.Close(); err != nil {
			logger.Errorw("failed to close db", "error", err)
		}
	}

	_ = logger.Sync()
}

// newStateRepository uses PostgreSQL when DB_URL is set and a JSON file
// otherwise. The returned database is nil in the second case.
func newStateRepository(config configs.DB, logger *zap.SugaredLogger) (repositories.StateRepository, *pg.DB, error) {
	if config.URL == "" {
		logger.Infow("using file state storage", "path", config.StateFile)
		repository, err := repositories.NewFileStateRepository(config.StateFile)
		return repository, nil, err
	}

	logger.Info("starting db")
	database, err := db.StartDB(config, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("db started")

	return repositories.NewStateRepository(database), database, nil
}

func newAnnouncers(config configs.GovernanceBotConfig, logger *zap.SugaredLogger) ([]poller.Announcer, []func() error) {
	var (
		announcers []poller.Announcer
		closers    []func() error
	)

	if config.Discord.Enabled() {
		announcer, err := discordbot.NewAnnouncer(config.Discord, logger)
		if err != nil {
			logger.Errorw("discord announcer disabled", "error", err)
		} else {
			announcers = append(announcers, announcer)
		}
	}

	if config.Redis.Enabled() {
		publisher, err := events.NewRedisPublisher(config.Redis, logger)
		if err != nil {
			logger.Errorw("redis publisher disabled", "error", err)
		} else {
			announcers = append(announcers, publisher)
			closers = append(closers, publisher.Close)
		}
	}

	return announcers, closers
}

func settingUpHealthCheckServer(addr string, logger *zap.SugaredLogger) *http.Server {
	server := &http.Server{Addr: addr, Handler: newHealthCheckMux()}

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("failed to start http server", "error", err)
		}
	}()

	return server
}

func newHealthCheckMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc(healthCheckPath, healthCheckHandler)
	return mux
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("I'm alive"))
}
