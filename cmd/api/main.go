package main

import (
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	"app/internal/infra/display"
	infraRepo "app/internal/infra/repository"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/internal/validator"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

func main() {
	//.envは無くてもよい
	_ = godotenv.Load()

	// Logger
	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	if cfg.GoEnv == "dev" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	//永続ストア選択：DB設定があればpostgres、無ければファイル
	var kv repo.KVStore
	if cfg.DatabaseURL != "" {
		gormDB, err := db.Connect()
		if err != nil {
			logger.Fatal().Err(err).Msg("db connect failed")
		}
		if err := gormDB.AutoMigrate(&model.KVEntry{}); err != nil {
			logger.Fatal().Err(err).Msg("db migrate failed")
		}
		kv = infraRepo.NewKVGormStore(gormDB)
	} else {
		fileKV, err := infraRepo.NewKVFileStore(cfg.CartStoreFile, cfg.CartStoreMaxValueBytes)
		if err != nil {
			logger.Fatal().Err(err).Msg("kv file store init failed")
		}
		kv = fileKV
	}

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	displayPort := display.NewLogDisplay(logger)

	//Repository生成
	productRepo := infraRepo.NewProductMemRepository()
	communityRepo := infraRepo.NewCommunityMemRepository(clock.Now())

	//Usecase生成
	carts := usecase.NewCartSessions(kv, displayPort, logger)
	catalogUC := usecase.NewCatalogUsecase(productRepo)
	communityUC := usecase.NewCommunityUsecase(communityRepo, validator.NewContentValidator(), idGen, clock, logger)
	visitUC := usecase.NewVisitUsecase(kv, logger)

	//Handler生成
	cartH := handler.NewCartHandler(carts)
	productH := handler.NewProductHandler(catalogUC)
	communityH := handler.NewCommunityHandler(communityUC)
	visitH := handler.NewVisitHandler(visitUC)

	//Server起動
	addr := ":8080"
	if cfg.Port != "" {
		if cfg.Port[0] != ':' {
			addr = ":" + cfg.Port
		} else {
			addr = cfg.Port
		}
	}

	logger.Info().Str("addr", addr).Str("env", cfg.GoEnv).Msg("starting gentle souls api")

	if err := server.Start(addr, cfg, logger, cartH, productH, communityH, visitH); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
