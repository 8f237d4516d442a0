package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/tuitiontrust/treasury/internal/domain"
)

// MockDonationRepository is a mock implementation of DonationRepository.
type MockDonationRepository struct {
	mu        sync.RWMutex
	donations map[string]*domain.Donation

	ExistsByTxHashFunc func(ctx context.Context, hash string) (bool, error)
	InsertFunc         func(ctx context.Context, donation *domain.Donation) (bool, error)
	ListRecentFunc     func(ctx context.Context, limit int) ([]*domain.Donation, error)
}

func NewMockDonationRepository() *MockDonationRepository {
	return &MockDonationRepository{
		donations: make(map[string]*domain.Donation),
	}
}

func (m *MockDonationRepository) ExistsByTxHash(ctx context.Context, hash string) (bool, error) {
	if m.ExistsByTxHashFunc != nil {
		return m.ExistsByTxHashFunc(ctx, hash)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.donations[hash]
	return ok, nil
}

func (m *MockDonationRepository) Insert(ctx context.Context, donation *domain.Donation) (bool, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, donation)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.donations[donation.TxHash]; ok {
		return false, nil
	}
	m.donations[donation.TxHash] = donation
	return true, nil
}

func (m *MockDonationRepository) ListRecent(ctx context.Context, limit int) ([]*domain.Donation, error) {
	if m.ListRecentFunc != nil {
		return m.ListRecentFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var donations []*domain.Donation
	for _, d := range m.donations {
		donations = append(donations, d)
		if len(donations) >= limit {
			break
		}
	}
	return donations, nil
}

// Count returns how many donations the mock holds.
func (m *MockDonationRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.donations)
}

// MockSchoolRepository is a mock implementation of SchoolRepository.
type MockSchoolRepository struct {
	mu      sync.RWMutex
	schools map[string]*domain.School

	ListEligibleFunc          func(ctx context.Context) ([]*domain.School, error)
	ListVerifiedByWalletsFunc func(ctx context.Context, wallets []string) ([]*domain.School, error)
	ExistingWalletsFunc       func(ctx context.Context, wallets []string) (map[string]bool, error)
	InsertFunc                func(ctx context.Context, school *domain.School) error
}

func NewMockSchoolRepository() *MockSchoolRepository {
	return &MockSchoolRepository{
		schools: make(map[string]*domain.School),
	}
}

func (m *MockSchoolRepository) ListEligible(ctx context.Context) ([]*domain.School, error) {
	if m.ListEligibleFunc != nil {
		return m.ListEligibleFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var schools []*domain.School
	for _, s := range m.schools {
		if s.Eligible() {
			schools = append(schools, s)
		}
	}
	return schools, nil
}

func (m *MockSchoolRepository) ListVerifiedByWallets(ctx context.Context, wallets []string) ([]*domain.School, error) {
	if m.ListVerifiedByWalletsFunc != nil {
		return m.ListVerifiedByWalletsFunc(ctx, wallets)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var schools []*domain.School
	for _, wallet := range wallets {
		if s, ok := m.schools[wallet]; ok && s.IsVerified {
			schools = append(schools, s)
		}
	}
	return schools, nil
}

func (m *MockSchoolRepository) ExistingWallets(ctx context.Context, wallets []string) (map[string]bool, error) {
	if m.ExistingWalletsFunc != nil {
		return m.ExistingWalletsFunc(ctx, wallets)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	existing := make(map[string]bool)
	for _, wallet := range wallets {
		if _, ok := m.schools[wallet]; ok {
			existing[wallet] = true
		}
	}
	return existing, nil
}

func (m *MockSchoolRepository) Insert(ctx context.Context, school *domain.School) error {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, school)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schools[school.WalletAddress] = school
	return nil
}

// Add seeds the mock registry directly.
func (m *MockSchoolRepository) Add(school *domain.School) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.schools[school.WalletAddress] = school
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return time.Now().UTC().Format("20060102150405") + "-" + string(rune('a'+m.counter%26))
}

// MockCache is an in-memory Cache.
type MockCache struct {
	mu     sync.RWMutex
	values map[string]string

	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key, value string, ttl time.Duration) error
}

func NewMockCache() *MockCache {
	return &MockCache{values: make(map[string]string)}
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[key], nil
}

func (m *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
