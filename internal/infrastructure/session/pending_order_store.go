package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/barrovivo/backend/internal/application/checkout"
	"github.com/barrovivo/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const pendingOrderKeyPrefix = "barrovivo:pending_order:"

// RedisPendingOrderStore keeps pending order references in Redis with a TTL
type RedisPendingOrderStore struct {
	client *redis.Client
}

// NewRedisPendingOrderStore connects to Redis and pings it
func NewRedisPendingOrderStore(addr, password string, db int) (*RedisPendingOrderStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisPendingOrderStore{client: client}, nil
}

// NewRedisPendingOrderStoreWithClient wraps an existing client, useful in tests
func NewRedisPendingOrderStoreWithClient(client *redis.Client) *RedisPendingOrderStore {
	return &RedisPendingOrderStore{client: client}
}

// Set stores the user's pending order reference with the given TTL
func (s *RedisPendingOrderStore) Set(ctx context.Context, userID, orderID uuid.UUID, ttl time.Duration) error {
	return s.client.Set(ctx, pendingOrderKeyPrefix+userID.String(), orderID.String(), ttl).Err()
}

// Get returns the user's pending order reference
func (s *RedisPendingOrderStore) Get(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	value, err := s.client.Get(ctx, pendingOrderKeyPrefix+userID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, shared.ErrNotFound
		}
		return uuid.Nil, err
	}

	orderID, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, shared.ErrNotFound
	}
	return orderID, nil
}

// Clear removes the user's pending order reference
func (s *RedisPendingOrderStore) Clear(ctx context.Context, userID uuid.UUID) error {
	return s.client.Del(ctx, pendingOrderKeyPrefix+userID.String()).Err()
}

// Close closes the underlying connection
func (s *RedisPendingOrderStore) Close() error {
	return s.client.Close()
}

// InMemoryPendingOrderStore is a process-local store for development and
// single-instance deployments without Redis.
type InMemoryPendingOrderStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]memoryEntry
}

type memoryEntry struct {
	orderID   uuid.UUID
	expiresAt time.Time
}

// NewInMemoryPendingOrderStore creates an empty in-memory store
func NewInMemoryPendingOrderStore() *InMemoryPendingOrderStore {
	return &InMemoryPendingOrderStore{entries: make(map[uuid.UUID]memoryEntry)}
}

// Set stores the user's pending order reference with the given TTL
func (s *InMemoryPendingOrderStore) Set(_ context.Context, userID, orderID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[userID] = memoryEntry{
		orderID:   orderID,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Get returns the user's pending order reference if it has not expired
func (s *InMemoryPendingOrderStore) Get(_ context.Context, userID uuid.UUID) (uuid.UUID, error) {
	s.mu.RLock()
	entry, ok := s.entries[userID]
	s.mu.RUnlock()

	if !ok {
		return uuid.Nil, shared.ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, userID)
		s.mu.Unlock()
		return uuid.Nil, shared.ErrNotFound
	}
	return entry.orderID, nil
}

// Clear removes the user's pending order reference
func (s *InMemoryPendingOrderStore) Clear(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, userID)
	return nil
}

// Ensure both stores satisfy the checkout boundary
var _ checkout.PendingOrderStore = (*RedisPendingOrderStore)(nil)
var _ checkout.PendingOrderStore = (*InMemoryPendingOrderStore)(nil)
