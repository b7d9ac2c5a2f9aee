package main

import (
	"context"
	"io"
	"log"
	"os"

	"toystore/internal/config"
	"toystore/internal/http/handlers"
	applog "toystore/internal/log"
	"toystore/internal/repos"
	"toystore/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer f.Close()
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	store, closeStore := openStore(cfg)
	defer closeStore()

	app := handlers.NewApp(cfg, handlers.NewDeps(store))

	log.Printf("server listening on port %s, visit http://localhost:%s", cfg.Port, cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

// openStore builds the one storage client shared by every request. A Mongo
// deployment that fails its startup ping is logged and still served.
func openStore(cfg config.Config) (services.ToyStore, func()) {
	ctx := context.Background()

	if cfg.DBDriver == config.DriverMongo {
		client, err := repos.ConnectMongo(ctx, cfg.MongoURI)
		if err != nil {
			log.Fatal(err)
		}
		if err := repos.PingMongo(ctx, client); err != nil {
			applog.Error(nil, "store.ping.fail", err, map[string]any{"store": config.DriverMongo})
		} else {
			applog.Info(nil, "store.connected", map[string]any{"store": config.DriverMongo, "db": cfg.DBName})
		}
		coll := client.Database(cfg.DBName).Collection(cfg.Collection)
		return repos.NewMongoToyRepo(coll), func() { _ = client.Disconnect(ctx) }
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.SeedDemo {
		if err := repos.SeedDemo(db); err != nil {
			applog.Error(nil, "store.seed.fail", err, nil)
		}
	}
	applog.Info(nil, "store.connected", map[string]any{"store": config.DriverSQLite, "dsn": cfg.DBDSN})
	return repos.NewToyRepo(db), func() { _ = db.Close() }
}
