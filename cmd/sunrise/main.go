package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/robfig/cron/v3"

	"github.com/subtlepseudonym/sunrise"
	"github.com/subtlepseudonym/sunrise/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configFile := flag.String("config", config.Path(), "path to config file")
	flag.Parse()

	// manually set local timezone for docker container
	if tz := os.Getenv("TZ"); tz != "" {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			log.Fatalf("ERR: load tz location: %s", err)
		}
		time.Local = loc
	}

	cfg, err := config.Open(*configFile)
	if err != nil {
		log.Fatalf("ERR: read config file failed: %s", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("ERR: invalid config: %s", err)
	}

	logger, err := sunrise.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("ERR: create logger: %s", err)
	}
	slog.SetDefault(logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := sunrise.NewMetrics(registry)

	parser := sunrise.ScheduleParser{
		Location: cfg.Location,
		Logger:   logger,
		Metrics:  metrics,
	}

	var notifier sunrise.Notifier
	if cfg.MQTT != nil {
		mqttNotifier, err := sunrise.DialMQTT(*cfg.MQTT, logger)
		if err != nil {
			log.Fatalf("ERR: %s", err)
		}
		defer mqttNotifier.Close()
		notifier = mqttNotifier
	}

	now := time.Now() // used for logging cron entries
	scheduler := cron.New()
	for _, job := range cfg.Jobs {
		schedule, err := parser.Parse(job.Schedule)
		if err != nil {
			logger.Error("parse schedule", "job", job.Name, "error", err)
			continue
		}

		timeout, err := job.ParseTimeout()
		if err != nil {
			logger.Error("parse job timeout", "job", job.Name, "error", err)
			continue
		}

		scheduler.Schedule(schedule, sunrise.Job{
			Name:     job.Name,
			Command:  job.Command,
			Timeout:  timeout,
			Logger:   logger,
			Metrics:  metrics,
			Notifier: notifier,
		})
		logger.Info("registered job", "job", job.Name, "schedule", job.Schedule, "next", schedule.Next(now).Local().Format(time.RFC3339))
	}

	srv := sunrise.NewServer(cfg.ListenAddr, cfg.Location, scheduler, clockwork.NewRealClock(), registry, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	scheduler.Start()
	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown", "error", err)
	}

	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		logger.Warn("jobs still running at shutdown")
	}
}
