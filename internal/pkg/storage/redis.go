package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TeamCache caches provider team-search results (search term -> team id).
// Implementations must be safe for concurrent use. A nil TeamCache is a
// valid "no cache" configuration for callers.
type TeamCache interface {
	// GetTeamID returns the cached team id for a search term, with a found flag.
	GetTeamID(ctx context.Context, search string) (int, bool, error)

	// StoreTeamID caches the team id resolved for a search term.
	StoreTeamID(ctx context.Context, search string, teamID int) error

	// Close closes the underlying connection.
	Close() error
}

type RedisClient struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr, password string, db int, ttl time.Duration) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// Check connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{client: client, ttl: ttl}, nil
}

// GetTeamID looks up the cached id for a search term.
func (r *RedisClient) GetTeamID(ctx context.Context, search string) (int, bool, error) {
	value, err := r.client.Get(ctx, teamKey(search)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get team id: %w", err)
	}

	teamID, err := strconv.Atoi(value)
	if err != nil {
		// Stale or corrupted entry; treat as a miss.
		return 0, false, nil
	}
	return teamID, true, nil
}

// StoreTeamID caches the id resolved for a search term with the configured TTL.
func (r *RedisClient) StoreTeamID(ctx context.Context, search string, teamID int) error {
	return r.client.Set(ctx, teamKey(search), strconv.Itoa(teamID), r.ttl).Err()
}

// Close closes the connection to Redis.
func (r *RedisClient) Close() error {
	return r.client.Close()
}

func teamKey(search string) string {
	return fmt.Sprintf("team:%s", search)
}
