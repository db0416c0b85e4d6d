package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thangamsteels/storefront/internal/models"
	"github.com/thangamsteels/storefront/internal/quantity"
	"github.com/thangamsteels/storefront/internal/storage"
)

var (
	// ErrInvalidQuantity marks a quantity below MOQ or off the order
	// increment. The mutation is rejected whole, nothing is applied.
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNotFound        = errors.New("not found")
)

const keyPrefix = "cart:"

// Store is the single source of truth for session carts. Each session's
// lines are loaded from storage on first touch and written back after
// every successful mutation. Storage failures are logged and degrade to
// an empty or unsaved cart, never to a caller-visible error.
type Store struct {
	kv  storage.KV
	log *slog.Logger

	mu       sync.Mutex
	sessions map[string]*state
}

type state struct {
	items []models.CartItem
	// loaded flips once the restore attempt for this session finished,
	// success or not. Until then saves are suppressed so an empty
	// in-memory cart cannot clobber a not-yet-loaded blob.
	loaded bool
}

func NewStore(kv storage.KV, log *slog.Logger) *Store {
	return &Store{
		kv:       kv,
		log:      log,
		sessions: make(map[string]*state),
	}
}

// load returns the session state, restoring it from storage first if
// this is the session's first touch. Callers hold s.mu.
func (s *Store) load(ctx context.Context, sessionID string) *state {
	if st, ok := s.sessions[sessionID]; ok {
		return st
	}

	st := &state{}
	data, err := s.kv.Get(ctx, keyPrefix+sessionID)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &st.items); err != nil {
			s.log.Warn("cart restore failed, starting empty", "session", sessionID, "error", err)
			st.items = nil
		}
	case errors.Is(err, storage.ErrNotFound):
		// first visit
	default:
		s.log.Warn("cart load failed, starting empty", "session", sessionID, "error", err)
	}
	st.loaded = true

	s.sessions[sessionID] = st
	return st
}

// save writes the session's lines back to storage. Failures are logged
// only. Callers hold s.mu.
func (s *Store) save(ctx context.Context, sessionID string, st *state) {
	if !st.loaded {
		return
	}
	data, err := json.Marshal(st.items)
	if err != nil {
		s.log.Error("cart marshal failed", "session", sessionID, "error", err)
		return
	}
	if err := s.kv.Put(ctx, keyPrefix+sessionID, data); err != nil {
		s.log.Warn("cart save failed", "session", sessionID, "error", err)
	}
}

// Add puts quantity units of the product into the cart. If the product
// is already a line, the quantities merge; a merge that falls off the
// order sequence is rejected and the existing line stays unchanged.
func (s *Store) Add(ctx context.Context, sessionID string, p models.Product, qty int) error {
	if !quantity.Valid(p, qty) {
		return fmt.Errorf("%w: %d for product %q (moq %d, increment %d)", ErrInvalidQuantity, qty, p.ID, p.MOQ, p.Increment)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load(ctx, sessionID)

	for i := range st.items {
		if st.items[i].ID != p.ID {
			continue
		}
		merged := st.items[i].Quantity + qty
		if !quantity.Valid(p, merged) {
			return fmt.Errorf("%w: merged quantity %d for product %q", ErrInvalidQuantity, merged, p.ID)
		}
		st.items[i].Quantity = merged
		s.save(ctx, sessionID, st)
		return nil
	}

	st.items = append(st.items, models.CartItem{Product: p, Quantity: qty})
	s.save(ctx, sessionID, st)
	return nil
}

// UpdateQuantity replaces a line's quantity, validated against that
// line's own MOQ and increment.
func (s *Store) UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load(ctx, sessionID)

	for i := range st.items {
		if st.items[i].ID != productID {
			continue
		}
		if !quantity.Valid(st.items[i].Product, qty) {
			return fmt.Errorf("%w: %d for product %q", ErrInvalidQuantity, qty, productID)
		}
		st.items[i].Quantity = qty
		s.save(ctx, sessionID, st)
		return nil
	}
	return fmt.Errorf("%w: product %q not in cart", ErrNotFound, productID)
}

// Remove drops a line. Removing an absent product is a no-op.
func (s *Store) Remove(ctx context.Context, sessionID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load(ctx, sessionID)

	for i := range st.items {
		if st.items[i].ID == productID {
			st.items = append(st.items[:i], st.items[i+1:]...)
			s.save(ctx, sessionID, st)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (s *Store) Clear(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load(ctx, sessionID)
	st.items = nil
	s.save(ctx, sessionID, st)
}

// Items returns the cart lines in insertion order.
func (s *Store) Items(ctx context.Context, sessionID string) []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load(ctx, sessionID)
	out := make([]models.CartItem, len(st.items))
	copy(out, st.items)
	return out
}

// Total is the sum of price times quantity across all lines.
func (s *Store) Total(ctx context.Context, sessionID string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load(ctx, sessionID)
	var total int64
	for _, it := range st.items {
		total += it.LineTotal()
	}
	return total
}

// Count is the sum of quantities across all lines.
func (s *Store) Count(ctx context.Context, sessionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.load(ctx, sessionID)
	count := 0
	for _, it := range st.items {
		count += it.Quantity
	}
	return count
}
