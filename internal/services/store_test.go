// internal/services/store_test.go
package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/javajoker/inventory-tracker/internal/models"
)

var errStoreDown = errors.New("store unavailable")

// memoryStore is an in-process ProductStore for service tests.
type memoryStore struct {
	mu       sync.Mutex
	products []models.Product
	logs     []models.InventoryLog
	nextID   uint
	nextLog  uint

	// failCreateAfter makes CreateProduct fail once this many inserts succeeded (<0 disables).
	failCreateAfter int
	failUpdate      bool
	calls           []string
}

func newMemoryStore(products ...models.Product) *memoryStore {
	s := &memoryStore{failCreateAfter: -1}
	for _, p := range products {
		s.nextID++
		p.ID = s.nextID
		s.products = append(s.products, p)
	}
	return s
}

func (s *memoryStore) record(call string) {
	s.calls = append(s.calls, call)
}

func (s *memoryStore) ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ListProducts")

	var out []models.Product
	for _, p := range s.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.NameContains != "" && !strings.Contains(models.NameKey(p.Name), strings.ToLower(filter.NameContains)) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *memoryStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("GetProduct")

	for _, p := range s.products {
		if p.ID == id {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) FindByName(ctx context.Context, name string, excludeID uint) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("FindByName")

	for _, p := range s.products {
		if p.ID != excludeID && models.NameKey(p.Name) == models.NameKey(name) {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (s *memoryStore) CreateProduct(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("CreateProduct")

	if s.failCreateAfter == 0 {
		return errStoreDown
	}
	if s.failCreateAfter > 0 {
		s.failCreateAfter--
	}
	s.nextID++
	product.ID = s.nextID
	s.products = append(s.products, *product)
	return nil
}

func (s *memoryStore) UpdateProduct(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("UpdateProduct")

	if s.failUpdate {
		return errStoreDown
	}
	for i, p := range s.products {
		if p.ID == product.ID {
			s.products[i] = *product
			return nil
		}
	}
	return errors.New("no such product")
}

func (s *memoryStore) AppendLog(ctx context.Context, log *models.InventoryLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("AppendLog")

	s.nextLog++
	log.ID = s.nextLog
	s.logs = append(s.logs, *log)
	return nil
}

func (s *memoryStore) ListLogs(ctx context.Context, productID uint) ([]models.InventoryLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record("ListLogs")

	var out []models.InventoryLog
	for _, l := range s.logs {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp > out[j].Timestamp
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// WithTx snapshots the state and restores it when fn fails.
func (s *memoryStore) WithTx(ctx context.Context, fn func(ProductStore) error) error {
	s.mu.Lock()
	products := append([]models.Product(nil), s.products...)
	logs := append([]models.InventoryLog(nil), s.logs...)
	nextID, nextLog := s.nextID, s.nextLog
	s.record("WithTx")
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.products, s.logs, s.nextID, s.nextLog = products, logs, nextID, nextLog
		s.mu.Unlock()
		return err
	}
	return nil
}
