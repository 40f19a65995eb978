// Package redis keeps the latest snapshot of every node in Redis for external readers.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/model"
	"github.com/redis/go-redis/v9"
)

// ErrSnapshotNotFound is returned when no snapshot was saved for a node or it expired.
var ErrSnapshotNotFound = errors.New("snapshot not found")

const snapshotKeyPrefix = "netstats"

type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

// snapshotKey builds "netstats:snapshot:<node>".
func snapshotKey(node string) string {
	return fmt.Sprintf("%s:snapshot:%s", snapshotKeyPrefix, node)
}

type Client struct {
	conn    *redis.Client
	ttl     time.Duration
	metrics Metrics
}

// NewClient connects and pings Redis. Saved snapshots expire after ttl; zero keeps them.
func NewClient(ctx context.Context, addr, username, password string, db int, ttl time.Duration, metrics Metrics) (*Client, error) {
	if addr == "" {
		return nil, errors.New("redis address is required")
	}
	if metrics == nil {
		return nil, errors.New("redis metrics is required")
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})
	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &Client{conn: conn, ttl: ttl, metrics: metrics}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// SaveSnapshot overwrites the node's snapshot document.
func (c *Client) SaveSnapshot(ctx context.Context, snapshot model.Snapshot) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.Observe("save_snapshot", err, start)
	}()

	raw, err := json.Marshal(snapshot.Document())
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err = c.conn.Set(ctx, snapshotKey(snapshot.Node), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads the node's snapshot document.
func (c *Client) LoadSnapshot(ctx context.Context, node string) (doc model.SnapshotDocument, err error) {
	start := time.Now()
	defer func() {
		if errors.Is(err, ErrSnapshotNotFound) {
			c.metrics.Observe("load_snapshot", nil, start)
			return
		}
		c.metrics.Observe("load_snapshot", err, start)
	}()

	raw, err := c.conn.Get(ctx, snapshotKey(node)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.SnapshotDocument{}, ErrSnapshotNotFound
		}
		return model.SnapshotDocument{}, fmt.Errorf("load snapshot: %w", err)
	}
	if err = json.Unmarshal(raw, &doc); err != nil {
		return model.SnapshotDocument{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return doc, nil
}
