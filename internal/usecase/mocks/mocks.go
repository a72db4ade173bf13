package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// MockEntryRepository is a mock implementation of EntryRepository.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.LedgerEntry

	CreateFunc  func(ctx context.Context, entry *domain.LedgerEntry) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.LedgerEntry, error)
	UpdateFunc  func(ctx context.Context, entry *domain.LedgerEntry) error
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context) ([]domain.LedgerEntry, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{
		entries: make(map[string]*domain.LedgerEntry),
	}
}

func (m *MockEntryRepository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if entry, ok := m.entries[id]; ok {
		return entry, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockEntryRepository) Update(ctx context.Context, entry *domain.LedgerEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrEntryNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockEntryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockEntryRepository) List(ctx context.Context) ([]domain.LedgerEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]domain.LedgerEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		entries = append(entries, *entry)
	}
	return entries, nil
}

// MockSnapshotRepository is a mock implementation of SnapshotRepository.
type MockSnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[time.Time]*domain.NetWorthSnapshot

	UpsertFunc     func(ctx context.Context, snapshot *domain.NetWorthSnapshot) error
	GetByMonthFunc func(ctx context.Context, month time.Time) (*domain.NetWorthSnapshot, error)
	ListFunc       func(ctx context.Context) ([]domain.NetWorthSnapshot, error)
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		snapshots: make(map[time.Time]*domain.NetWorthSnapshot),
	}
}

func (m *MockSnapshotRepository) Upsert(ctx context.Context, snapshot *domain.NetWorthSnapshot) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, snapshot)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[domain.NormalizeMonth(snapshot.Month)] = snapshot
	return nil
}

func (m *MockSnapshotRepository) GetByMonth(ctx context.Context, month time.Time) (*domain.NetWorthSnapshot, error) {
	if m.GetByMonthFunc != nil {
		return m.GetByMonthFunc(ctx, month)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if snapshot, ok := m.snapshots[domain.NormalizeMonth(month)]; ok {
		return snapshot, nil
	}
	return nil, domain.ErrSnapshotNotFound
}

func (m *MockSnapshotRepository) List(ctx context.Context) ([]domain.NetWorthSnapshot, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	snapshots := make([]domain.NetWorthSnapshot, 0, len(m.snapshots))
	for _, snapshot := range m.snapshots {
		snapshots = append(snapshots, *snapshot)
	}
	return snapshots, nil
}

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc    func(ctx context.Context, account *domain.Account) error
	GetByIDFunc   func(ctx context.Context, id string) (*domain.Account, error)
	ListFunc      func(ctx context.Context) ([]domain.Account, error)
	SetActiveFunc func(ctx context.Context, id string, active bool, updatedAt time.Time) error
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if account, ok := m.accounts[id]; ok {
		return account, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) List(ctx context.Context) ([]domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	accounts := make([]domain.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		accounts = append(accounts, *account)
	}
	return accounts, nil
}

func (m *MockAccountRepository) SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	account, ok := m.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	account.Active = active
	account.UpdatedAt = updatedAt
	return nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category

	CreateFunc    func(ctx context.Context, category *domain.Category) error
	GetByIDFunc   func(ctx context.Context, id string) (*domain.Category, error)
	ListFunc      func(ctx context.Context) ([]domain.Category, error)
	SetActiveFunc func(ctx context.Context, id string, active bool, updatedAt time.Time) error
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]*domain.Category),
	}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if category, ok := m.categories[id]; ok {
		return category, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	categories := make([]domain.Category, 0, len(m.categories))
	for _, category := range m.categories {
		categories = append(categories, *category)
	}
	return categories, nil
}

func (m *MockCategoryRepository) SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, id, active, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	category, ok := m.categories[id]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	category.Active = active
	category.UpdatedAt = updatedAt
	return nil
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
	return fmt.Sprintf("test-id-%04d", m.counter)
}
