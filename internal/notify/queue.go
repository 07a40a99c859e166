package notify

import (
	"context"
	"crypto/tls"
	"fmt"

	"leadintake/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// QueueClient enqueues notification tasks on the asynq queue.
type QueueClient struct {
	client *asynq.Client
	queue  string
}

// NewQueueClient creates an asynq client from the queue configuration.
func NewQueueClient(cfg config.QueueConfig) (*QueueClient, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := RedisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	queue := cfg.GetQueueName()
	if queue == "" {
		queue = "default"
	}

	return &QueueClient{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *QueueClient) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueLeadCreated queues the lead notification task for the worker.
func (c *QueueClient) EnqueueLeadCreated(ctx context.Context, payload LeadCreatedPayload) error {
	task, err := NewLeadCreatedTask(payload)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.Queue(c.queue), asynq.MaxRetry(3))
	return err
}

// RedisClientOpt parses a redis URL into asynq connection options.
func RedisClientOpt(redisURL string) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		tlsConfig = opt.TLSConfig.Clone()
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
