package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/galactic-marines/gm-automation/internal/config"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	_ "time/tzdata"
)

const usage = "usage: automation [serve|run|seed <file>|migrate]"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, using environment only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	setupLogging(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	command := "serve"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "serve":
		err = serve(ctx, cfg)
	case "run":
		err = runOnce(ctx, cfg)
	case "seed":
		if len(os.Args) < 3 {
			log.Fatal(usage)
		}
		err = seedFromFile(ctx, cfg, os.Args[2])
	case "migrate":
		err = migrateOnly(cfg)
	default:
		log.Fatalf("unknown command %q\n%s", command, usage)
	}

	if err != nil {
		log.Fatalf("%s failed: %v", command, err)
	}
}

func setupLogging(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}

	if cfg.LogFile != "" {
		log.SetOutput(io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogFileMaxSizeMB, // megabytes
			MaxAge:     cfg.LogFileMaxAgeDays,
			MaxBackups: cfg.LogFileMaxBackups,
			Compress:   true,
		}))
	}
}
