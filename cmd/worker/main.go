package main

import (
	"leadintake/internal/email"
	"leadintake/internal/notify"
	"leadintake/platform/config"
	"leadintake/platform/logger"

	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)

	if cfg.RedisURL == "" {
		log.Error("REDIS_URL is required for the notification worker")
		panic("REDIS_URL is required for the notification worker")
	}

	opt, err := notify.RedisClientOpt(cfg.RedisURL)
	if err != nil {
		log.Error("failed to parse redis url", "error", err)
		panic("failed to parse redis url: " + err.Error())
	}

	sender := email.NewSender(cfg, log)
	notifyModule := notify.New(sender, nil, cfg.ReviewerEmail, log)

	srv := asynq.NewServer(opt, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			cfg.QueueName: 1,
		},
	})

	log.Info("notification worker starting", "queue", cfg.QueueName)
	if err := srv.Run(notify.NewMux(notifyModule)); err != nil {
		log.Error("notification worker stopped", "error", err)
		panic("notification worker stopped: " + err.Error())
	}
}
