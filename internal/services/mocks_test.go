package services

import (
	"sync"
	"time"

	"farm_manager/internal/models"
	"farm_manager/internal/redis"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(eventType, key string, payload interface{}) error {
	args := m.Called(eventType, key, payload)
	return args.Error(0)
}

func (m *mockPublisher) Close() error { return nil }

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendTextMessage(phone, message string) error {
	args := m.Called(phone, message)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyOrderStatus(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

// memorySessions is an in-process SessionStore.
type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]redis.SessionData
	ttls     map[string]time.Duration
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: map[string]redis.SessionData{}, ttls: map[string]time.Duration{}}
}

func (m *memorySessions) SetSession(token string, data *redis.SessionData, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[token] = *data
	m.ttls[token] = ttl
	return nil
}

func (m *memorySessions) GetSession(token string) (*redis.SessionData, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.sessions[token]
	if !ok {
		return nil, models.ErrUnauthenticated
	}
	return &data, nil
}

func (m *memorySessions) DeleteSession(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}
