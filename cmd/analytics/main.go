package main

import (
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/analyticsservice"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/ingestservice"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/verification"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/application/withdrawalservice"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/infrastructure/database"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/infrastructure/mail"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/balancerepo"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/eventrepo"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/videorepo"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/repositories/withdrawalrepo"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/server"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/server/handlers"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/server/websocket"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/logger"
)

func main() {
	logger := logger.New()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	var (
		eventRepo      eventrepo.IEventRepository
		balanceRepo    balancerepo.IBalanceRepository
		videoRepo      videorepo.IVideoRepository
		withdrawalRepo withdrawalrepo.IWithdrawalRepository
	)

	switch cfg.Database.Driver {
	case "postgres":
		db, err := database.New(&cfg.Database.Postgres)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to postgres")
		}
		defer db.ShutDown()

		eventRepo = eventrepo.New(db.Db, logger)
		balanceRepo = balancerepo.New(db.Db, logger)
		videoRepo = videorepo.New(db.Db, logger)
		withdrawalRepo = withdrawalrepo.New(db.Db, logger)

	case "mongo":
		mdb, err := database.NewMongo(&cfg.Database.Mongo)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to mongodb")
		}
		defer mdb.ShutDown()

		eventRepo = eventrepo.NewMongo(mdb.Db, logger)
		balanceRepo = balancerepo.NewMongo(mdb.Db, logger)
		videoRepo = videorepo.NewMongo(mdb.Db, logger)
		withdrawalRepo = withdrawalrepo.NewMongo(mdb.Db, logger)

	default:
		logger.Fatal().Str("driver", cfg.Database.Driver).Msg("Unknown database driver")
	}

	wsManager := websocket.NewManager()
	mailer := mail.New(cfg.SMTP, logger)
	codes := verification.NewStore(cfg.Verification.CodeTTL.Std())

	ingestService := ingestservice.New(eventRepo, balanceRepo, wsManager, cfg.Rates, logger)
	analyticsService := analyticsservice.New(eventRepo, balanceRepo, cfg.Analytics, logger)
	withdrawalService := withdrawalservice.New(
		codes,
		mailer,
		withdrawalRepo,
		cfg.SMTP.CompanyEmail,
		int(cfg.Verification.CodeTTL.Std().Minutes()),
		logger,
	)

	h := handlers.New(
		ingestService,
		analyticsService,
		withdrawalService,
		videoRepo,
		wsManager,
		logger,
		cfg,
	)

	srv := server.New(cfg, h, logger)
	srv.Start()
}
