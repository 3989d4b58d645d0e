package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"backend/insurance-platform/app/internal/config"
)

type Redis interface {
	GetUniversalClient() redis.UniversalClient
	Close() error

	// Set stores any JSON-serializable value under key.
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	// Get loads a JSON value stored by Set into outPtr.
	Get(ctx context.Context, key string, outPtr any) error
	Delete(ctx context.Context, key string) error
}

// Client wraps redis.UniversalClient to handle both single-node and cluster setups
type Client struct {
	client    redis.UniversalClient
	log       *zap.Logger
	isCluster bool
}

// NewUniversalRedisClient creates a Redis client that can handle both
// single-node and cluster configurations
func NewUniversalRedisClient(cfg config.RedisConfig, log *zap.Logger) (Redis, error) {
	hosts := strings.Split(cfg.Hosts, ",")
	for i, host := range hosts {
		hosts[i] = strings.TrimSpace(host)
	}

	var client redis.UniversalClient
	var isCluster bool

	if len(hosts) == 1 {
		client = redis.NewClient(&redis.Options{
			Addr:            hosts[0],
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			WriteTimeout:    time.Duration(cfg.WriteTimeout) * time.Second,
			ReadTimeout:     time.Duration(cfg.ReadTimeout) * time.Second,
			ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Second,
		})
		isCluster = false
	} else {
		client = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:           hosts,
			PoolSize:        cfg.PoolSize,
			MinIdleConns:    cfg.MinIdleConns,
			MaxIdleConns:    cfg.MaxIdleConns,
			WriteTimeout:    time.Duration(cfg.WriteTimeout) * time.Second,
			ReadTimeout:     time.Duration(cfg.ReadTimeout) * time.Second,
			ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Second,
		})
		isCluster = true
	}

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	log.Info("Redis client connected",
		zap.Strings("hosts", hosts),
		zap.Bool("is_cluster", isCluster),
	)

	return &Client{
		client:    client,
		log:       log,
		isCluster: isCluster,
	}, nil
}

func (r *Client) GetUniversalClient() redis.UniversalClient {
	return r.client
}

func (r *Client) Close() error {
	return r.client.Close()
}

func (r *Client) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, b, ttl).Err()
}

func (r *Client) Get(ctx context.Context, key string, outPtr any) error {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(b, outPtr)
}

func (r *Client) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func SkipNotFound(err error) error {
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
