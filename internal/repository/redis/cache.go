package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/bez-dna/bzd-messages/internal/config"
	"github.com/bez-dna/bzd-messages/internal/model"
)

const messageKeyPrefix = "bzd-messages:message:"

// MessageCache holds messages by id. Messages never change after creation, so entries
// are only evicted by TTL.
type MessageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(cfg *config.Config) *MessageCache {
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}), cfg.Redis.TTL)
}

func NewWithClient(client *redis.Client, ttl time.Duration) *MessageCache {
	return &MessageCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *MessageCache) Close() {
	_ = c.client.Close()
}

// GetMessage returns nil on a cache miss.
func (c *MessageCache) GetMessage(ctx context.Context, messageID uuid.UUID) (*model.Message, error) {
	data, err := c.client.Get(ctx, messageKey(messageID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message from cache: %v", err)
	}

	var message model.Message
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("failed to decode cached message: %v", err)
	}

	return &message, nil
}

func (c *MessageCache) SetMessage(ctx context.Context, message model.Message) error {
	data, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to encode message: %v", err)
	}

	if err := c.client.Set(ctx, messageKey(message.MessageID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to put message to cache: %v", err)
	}

	return nil
}

func messageKey(messageID uuid.UUID) string {
	return messageKeyPrefix + messageID.String()
}
