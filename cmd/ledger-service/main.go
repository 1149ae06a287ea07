package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/radieske/bet-ledger-service/internal/ledger-service/csvimport"
	lhttp "github.com/radieske/bet-ledger-service/internal/ledger-service/http"
	kpub "github.com/radieske/bet-ledger-service/internal/ledger-service/producer"
	"github.com/radieske/bet-ledger-service/internal/ledger-service/refdata"
	"github.com/radieske/bet-ledger-service/internal/ledger-service/repo"
	"github.com/radieske/bet-ledger-service/internal/shared/cache"
	"github.com/radieske/bet-ledger-service/internal/shared/config"
	"github.com/radieske/bet-ledger-service/internal/shared/db"
	skafka "github.com/radieske/bet-ledger-service/internal/shared/kafka"
	"github.com/radieske/bet-ledger-service/internal/shared/logger"
	"github.com/radieske/bet-ledger-service/internal/shared/metrics"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, _ := logger.New(cfg.ServiceName, cfg.Env)
	defer log.Sync()

	// Postgres
	pg, err := db.ConnectPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("pg", zap.Error(err))
	}
	defer pg.Close()

	// Redis (cache de dados de referência)
	rdb, err := cache.ConnectRedis(cfg.RedisAddr)
	if err != nil {
		log.Fatal("redis", zap.Error(err))
	}

	// Kafka writer (topic bets_imported)
	writer := skafka.NewWriter(cfg.KafkaBrokers, cfg.TopicBetsImported)
	defer writer.Close()

	// deps
	repository := repo.NewPostgres(pg)
	refCache := refdata.NewCache(rdb, repository, time.Duration(cfg.RefDataTTLSeconds)*time.Second, log)
	importer := csvimport.NewImporter(repository, cfg.CSVImportBatchSize)
	publ := kpub.NewKafkaPublisher(writer)

	// HTTP público
	api := lhttp.NewServer(log, repository, refCache, importer, publ)
	apiSrv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler: api.Router(),
	}

	// metrics/health em porta separada
	metrics.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		if err := pg.PingContext(ctx); err != nil {
			return err
		}
		return rdb.Ping(ctx).Err()
	})
	log.Info("metrics/health", zap.String("addr", fmt.Sprintf(":%s", cfg.MetricsPort)))

	log.Info("ledger-service listening", zap.String("addr", fmt.Sprintf(":%s", cfg.HTTPPort)))
	if err := apiSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("api", zap.Error(err))
	}
}
