package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"retail/internal/config"
	"retail/internal/handler"
	"retail/internal/infra/db"
	infraRepo "retail/internal/infra/repository"
	"retail/internal/observability/logging"
	"retail/internal/observability/metrics"
	"retail/internal/server"
	"retail/internal/usecase"
	"retail/internal/validator"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	//.envがあれば読む（本番は環境変数のみ）
	_ = godotenv.Load()

	//deferを確実に走らせるためos.Exitはここだけで呼ぶ
	if err := run(); err != nil {
		slog.Error("api", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.NewLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	//DB接続
	gormDB, err := db.Connect(cfg, db.WithLogger(logger, logging.ParseLevel(cfg.LogLevel)))
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("db handle: %w", err)
	}
	defer sqlDB.Close()

	if err := db.Migrate(gormDB); err != nil {
		return fmt.Errorf("db migrate: %w", err)
	}

	//Repository（GORM実装）生成
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	storeRepo := infraRepo.NewStoreGormRepository(gormDB)
	personRepo := infraRepo.NewPersonGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	detailsRepo := infraRepo.NewOrderDetailsGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	v := validator.NewRecordValidator(validator.SystemClock{})
	recorder := metrics.NewRecorder(prometheus.DefaultRegisterer)

	//Usecase生成
	productUC := usecase.NewProductUsecase(productRepo, v, recorder, logger)
	storeUC := usecase.NewStoreUsecase(storeRepo, v, recorder, logger)
	personUC := usecase.NewPersonUsecase(personRepo, v, recorder, logger)
	orderUC := usecase.NewOrderUsecase(orderRepo, detailsRepo, txm, v, recorder, logger)

	//Handler生成
	e := server.New(logger)
	server.RegisterRoutes(e, cfg, server.Handlers{
		Product: handler.NewProductHandler(productUC),
		Store:   handler.NewStoreHandler(storeUC),
		Person:  handler.NewPersonHandler(personUC),
		Order:   handler.NewOrderHandler(orderUC),
	}, sqlDB, prometheus.DefaultGatherer)

	//Server起動
	addr := cfg.Port
	if !strings.HasPrefix(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("server starting", slog.String("addr", addr), slog.String("env", cfg.GoEnv))
	if err := server.Start(ctx, e, addr); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
