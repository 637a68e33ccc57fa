package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/nicobh12/inventory-app/internal/config"
	"github.com/nicobh12/inventory-app/internal/infra"
	"github.com/nicobh12/inventory-app/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("error cargando configuración")
	}

	// Logger estructurado — dev: consola, prod: JSON
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	cmd := "status"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	store, err := infra.Open(infra.Options{Path: cfg.DBPath, BusyTimeoutMS: cfg.BusyTimeoutMS})
	if err != nil {
		log.Fatal().Err(err).Msg("error abriendo el almacén")
	}
	defer store.Close()

	// Los eventos del almacén se reenvían al log; un host embebedor puede
	// suscribirse igual que aquí para refrescar su UI.
	go func() {
		for ev := range store.Events().Subscribe() {
			log.Debug().Str("evento", string(ev.Type)).Str("detalle", ev.Detail).Msg("evento del almacén")
		}
	}()

	ctx := context.Background()
	backups := service.NewBackupService(store, cfg.BackupDir)

	switch cmd {
	case "init":
		// Open ya dejó esquema y semillas listos; sólo confirmamos.
		log.Info().Str("path", store.Path()).Msg("almacén inicializado")

	case "backup":
		resp, err := backups.CrearBackup(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("error creando backup")
		}
		log.Info().Str("path", resp.Path).Int64("bytes", resp.SizeBytes).Msg("backup creado")

	case "status":
		estado, err := backups.EstadoAlmacen(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("error consultando estado")
		}
		log.Info().
			Str("path", estado.Path).
			Bool("existe", estado.Existe).
			Int64("bytes", estado.SizeBytes).
			Msg("estado del almacén")

	default:
		fmt.Fprintf(os.Stderr, "uso: %s [init|backup|status]\n", os.Args[0])
		os.Exit(2)
	}
}
