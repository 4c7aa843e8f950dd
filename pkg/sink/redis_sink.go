package sink

import (
	"context"
	"fmt"

	"github.com/gravito-framework/sysmon-go/pkg/types"
	"github.com/redis/go-redis/v9"
)

// listPusher is the slice of the Redis API the mirror needs
type listPusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisSink mirrors entries onto a Redis list, in the same text form as the file
type RedisSink struct {
	client listPusher
	key    string
}

// NewRedisSink creates a mirror that pushes to key
func NewRedisSink(client *redis.Client, key string) *RedisSink {
	return &RedisSink{client: client, key: key}
}

// Write implements Sink
func (s *RedisSink) Write(ctx context.Context, entry types.LogEntry) error {
	if err := s.client.RPush(ctx, s.key, Format(entry)).Err(); err != nil {
		return fmt.Errorf("failed to push log entry to %s: %w", s.key, err)
	}
	return nil
}

var _ Sink = (*RedisSink)(nil)
