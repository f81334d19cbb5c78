package main

import (
	"go.uber.org/zap"

	"tradeboard/internal/config"
	"tradeboard/internal/pkg"
	"tradeboard/internal/repository/sqldb"
	"tradeboard/internal/simulator"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		panic(err)
	}

	logger, err := pkg.NewLogger("populate_db.log")
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db, err := sqldb.Open(cfg.Database)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	if err := simulator.NewSeeder(db, logger).Run(); err != nil {
		logger.Fatal("seed failed", zap.Error(err))
	}
}
