package testutil

import (
	"batlog/internal/models"
	"batlog/internal/providers"
	"batlog/internal/repositories"
	"context"
	"sync"

	"github.com/google/uuid"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu          sync.Mutex
	Data        map[string][]byte
	Generations map[string]uint64
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte), Generations: make(map[string]uint64)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Generation(owner string) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Generations[owner]
}

func (m *MockCache) Invalidate(owner string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Generations[owner]++
}

// MockAtBatRepository implements repositories.AtBatRepositoryInterface over an
// in-memory slice kept date-descending.
type MockAtBatRepository struct {
	mu      sync.Mutex
	Records []models.AtBat
	NextID  func() uuid.UUID

	CreateErr error
	ListErr   error
	UpdateErr error
	DeleteErr error
}

func (m *MockAtBatRepository) Create(_ context.Context, record *models.AtBat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.NextID != nil {
		record.ID = m.NextID()
	}
	m.Records = append([]models.AtBat{*record}, m.Records...)
	return nil
}

func (m *MockAtBatRepository) ListByOwner(_ context.Context, userID string, limit int) ([]models.AtBat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	out := make([]models.AtBat, 0)
	for _, r := range m.Records {
		if r.UserID == userID {
			out = append(out, r)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MockAtBatRepository) GetByID(_ context.Context, userID string, id string) (*models.AtBat, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.Records {
		if r.UserID == userID && r.ID.String() == id {
			clone := r
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *MockAtBatRepository) Update(_ context.Context, record *models.AtBat) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i, r := range m.Records {
		if r.UserID == record.UserID && r.ID == record.ID {
			m.Records[i] = *record
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (m *MockAtBatRepository) Delete(_ context.Context, userID string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, r := range m.Records {
		if r.UserID == userID && r.ID.String() == id {
			m.Records = append(m.Records[:i:i], m.Records[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// MockProfileRepository implements repositories.ProfileRepositoryInterface.
type MockProfileRepository struct {
	mu       sync.Mutex
	Profiles map[string]*models.Profile
	GetErr   error
}

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{Profiles: make(map[string]*models.Profile)}
}

func (m *MockProfileRepository) GetByUser(_ context.Context, userID string) (*models.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	profile, ok := m.Profiles[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	clone := *profile
	return &clone, nil
}

func (m *MockProfileRepository) Create(_ context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Profiles[profile.UserID] = profile
	return nil
}

func (m *MockProfileRepository) Update(_ context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Profiles[profile.UserID]; !ok {
		return repositories.ErrNotFound
	}
	m.Profiles[profile.UserID] = profile
	return nil
}

// MockCompressor implements providers.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}
