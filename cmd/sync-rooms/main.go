// sync-rooms — синхронизация каталога номеров из PMS в локальную БД.
// Движок валидации читает каталог только локально, поэтому утилиту
// нужно запускать после изменения состава номеров в PMS.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Gunvolt24/moa_wifi/config"
	"github.com/Gunvolt24/moa_wifi/internal/pms"
	"github.com/Gunvolt24/moa_wifi/internal/repo/postgres"
	"github.com/Gunvolt24/moa_wifi/pkg/logger"
	"github.com/joho/godotenv"
)

func main() {
	timeout := flag.Duration("timeout", 2*time.Minute, "общий таймаут синхронизации")
	dryRun := flag.Bool("dry-run", false, "только показать номера, без записи в БД")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := pms.NewClient(cfg.PMS, logg)
	rooms, err := client.Resources(ctx)
	if err != nil {
		logg.Errorf(ctx, "fetch resources: %v", err)
		os.Exit(1)
	}
	logg.Infof(ctx, "fetched %d rooms from pms", len(rooms))

	if *dryRun {
		for _, room := range rooms {
			fmt.Printf("%s\t%s\n", room.ID, room.Name)
		}
		return
	}

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		logg.Errorf(ctx, "postgres pool: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	catalog := postgres.NewRoomCatalog(pool)

	synced, failed := 0, 0
	for _, room := range rooms {
		if err := catalog.Upsert(ctx, room); err != nil {
			logg.Warnf(ctx, "upsert room %s (%s): %v", room.Name, room.ID, err)
			failed++
			continue
		}
		synced++
	}

	logg.Infof(ctx, "room sync complete: %d synced, %d failed", synced, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
