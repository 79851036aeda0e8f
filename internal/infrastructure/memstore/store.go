// Package memstore keeps payment records in process memory. Records live for
// the lifetime of the process; there is no expiry and no eviction.
package memstore

import (
	"context"

	"github.com/patrickmn/go-cache"

	"github.com/acquira/payment-gateway/internal/application"
	"github.com/acquira/payment-gateway/internal/domain"
)

type Store struct {
	records *cache.Cache
}

func NewStore() *Store {
	// No expiration and no janitor; nothing is ever cleaned up.
	return &Store{
		records: cache.New(cache.NoExpiration, 0),
	}
}

var _ application.PaymentStore = (*Store)(nil)

// Insert stores a copy of the record. The id must be unused; a duplicate
// insert fails without touching the existing entry.
func (s *Store) Insert(_ context.Context, payment *domain.Payment) error {
	if err := s.records.Add(payment.ID, *payment, cache.NoExpiration); err != nil {
		return domain.NewDuplicatePaymentError(payment.ID)
	}
	return nil
}

// Get returns a copy of the stored record, so callers never share memory
// with the store.
func (s *Store) Get(_ context.Context, id string) (*domain.Payment, error) {
	v, found := s.records.Get(id)
	if !found {
		return nil, domain.NewPaymentNotFoundError(id)
	}

	payment := v.(domain.Payment)
	return &payment, nil
}

// Count reports how many records are stored.
func (s *Store) Count() int {
	return s.records.ItemCount()
}
