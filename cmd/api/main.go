package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loanledger-backend/internal/adapter/http"
	"loanledger-backend/internal/adapter/middleware"
	"loanledger-backend/internal/adapter/repository/gormrepo"
	"loanledger-backend/internal/config"
	"loanledger-backend/internal/infrastructure/cache"
	"loanledger-backend/internal/infrastructure/db"
	"loanledger-backend/internal/infrastructure/logger"
	"loanledger-backend/internal/notification"
	"loanledger-backend/internal/seed"
	ledgeruc "loanledger-backend/internal/usecase/ledger"
	loanuc "loanledger-backend/internal/usecase/loan"
	offeruc "loanledger-backend/internal/usecase/offer"
	paymentuc "loanledger-backend/internal/usecase/payment"
	reportuc "loanledger-backend/internal/usecase/report"
	useruc "loanledger-backend/internal/usecase/user"
)

func main() {
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatalw("config load failed", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		zlog.Fatalw("config invalid", "error", err)
	}

	ctx := context.Background()

	gdb, err := db.Open(cfg)
	if err != nil {
		zlog.Fatalw("db open failed", "driver", cfg.DBDriver, "error", err)
	}
	if err := db.Migrate(gdb); err != nil {
		zlog.Fatalw("db migrate failed", "error", err)
	}
	if err := seed.Run(ctx, gdb, zlog, int64(cfg.SeedMinUsers)); err != nil {
		zlog.Fatalw("seed failed", "error", err)
	}

	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zlog.Fatalw("redis open failed", "addr", cfg.RedisAddr, "error", err)
	}

	feed := notification.NewFeed(rdb, zlog)

	userRepo := gormrepo.NewUserRepository(gdb)
	loanRepo := gormrepo.NewLoanRepository(gdb)
	offerRepo := gormrepo.NewOfferRepository(gdb)
	paymentRepo := gormrepo.NewPaymentRepository(gdb)
	ledgerRepo := gormrepo.NewLedgerRepository(gdb)
	reportRepo := gormrepo.NewReportRepository(gdb)
	tx := gormrepo.NewGormUoW(gdb)

	handlers := httpadp.Handlers{
		Health:       httpadp.NewHandler(),
		User:         httpadp.NewUserHandler(useruc.NewUsecase(userRepo, tx, feed)),
		Loan:         httpadp.NewLoanHandler(loanuc.NewUsecase(loanRepo, tx, feed)),
		Payment:      httpadp.NewPaymentHandler(paymentuc.NewUsecase(paymentRepo, tx, feed)),
		Offer:        httpadp.NewOfferHandler(offeruc.NewUsecase(offerRepo, feed)),
		Finance:      httpadp.NewFinanceHandler(),
		Ledger:       httpadp.NewLedgerHandler(ledgeruc.NewUsecase(ledgerRepo, feed)),
		Notification: httpadp.NewNotificationHandler(feed),
		Report:       httpadp.NewReportHandler(reportuc.NewUsecase(reportRepo)),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.Idempotency(rdb, zlog, time.Duration(cfg.IdempTTLSecs)*time.Second))

	httpadp.RegisterRoutes(e, handlers)

	addr := ":" + cfg.AppPort
	zlog.Infow("listening", "addr", addr, "driver", cfg.DBDriver)
	if err := e.Start(addr); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}
