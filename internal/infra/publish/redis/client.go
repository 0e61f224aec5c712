// Package redis publishes observed ledger events over Redis pub/sub so that
// out-of-process consumers can follow the chain without polling it.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// client wraps a go-redis connection used exclusively for publishing.
type client struct {
	conn *redis.Client
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}

// Close releases the underlying connection.
func (c *client) Close() error {
	return c.conn.Close()
}
