package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/dmitrijs2005/stockkeeper/internal/common"
	"github.com/dmitrijs2005/stockkeeper/internal/models"
)

// memStore is an in-memory UserStore, ItemStore and SettingsStore.
type memStore struct {
	mu       sync.Mutex
	users    map[string]string
	items    map[int64]models.InventoryItem
	nextID   int64
	settings models.NotificationSettings

	findCalls int
	err       error
}

func newMemStore() *memStore {
	return &memStore{users: map[string]string{}, items: map[int64]models.InventoryItem{}}
}

func (m *memStore) FindUser(ctx context.Context, username, password string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.findCalls++
	if m.err != nil {
		return false, m.err
	}
	p, ok := m.users[username]
	return ok && p == password, nil
}

func (m *memStore) CreateUser(ctx context.Context, username, password string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[username]; ok {
		return 0, common.ErrDuplicateUsername
	}
	m.users[username] = password
	m.nextID++
	return m.nextID, nil
}

func (m *memStore) CreateItem(ctx context.Context, name string, quantity, threshold int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, it := range m.items {
		if it.Name == name {
			return 0, common.ErrDuplicateName
		}
	}
	m.nextID++
	m.items[m.nextID] = models.InventoryItem{ID: m.nextID, Name: name, Quantity: quantity, Threshold: threshold}
	return m.nextID, nil
}

func (m *memStore) UpdateItemQuantity(ctx context.Context, id int64, quantity int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return 0, nil
	}
	it.Quantity = quantity
	m.items[id] = it
	return 1, nil
}

func (m *memStore) UpdateItem(ctx context.Context, id int64, name string, quantity, threshold int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return 0, nil
	}
	for _, it := range m.items {
		if it.Name == name && it.ID != id {
			return 0, common.ErrDuplicateName
		}
	}
	m.items[id] = models.InventoryItem{ID: id, Name: name, Quantity: quantity, Threshold: threshold}
	return 1, nil
}

func (m *memStore) DeleteItem(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, id)
	return nil
}

func (m *memStore) ListItems(ctx context.Context) ([]models.InventoryItem, error) {
	return m.list(func(models.InventoryItem) bool { return true })
}

func (m *memStore) ListLowStockItems(ctx context.Context) ([]models.InventoryItem, error) {
	return m.list(models.InventoryItem.IsLow)
}

func (m *memStore) list(keep func(models.InventoryItem) bool) ([]models.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.InventoryItem{}
	for _, it := range m.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) NotificationSettings(ctx context.Context) (models.NotificationSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return models.NotificationSettings{}, m.err
	}
	return m.settings, nil
}

func (m *memStore) SaveNotificationSettings(ctx context.Context, s models.NotificationSettings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = s
	return nil
}

func (m *memStore) ClearNotificationSettings(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.settings = models.NotificationSettings{}
	return nil
}

type sentMessage struct {
	to, body string
}

type fakeTransport struct {
	sent []sentMessage
	err  error
}

func (f *fakeTransport) Send(ctx context.Context, destination, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMessage{to: destination, body: body})
	return nil
}

var errBoom = errors.New("boom")
