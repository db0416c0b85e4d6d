package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thangamsteels/storefront/internal/catalog"
	"github.com/thangamsteels/storefront/internal/models"
	"github.com/thangamsteels/storefront/internal/storage"
)

const sid = "session-1"

func testLogger() *slog.Logger {
	return slog.Default()
}

func product(t *testing.T, id string) models.Product {
	t.Helper()
	p, ok := catalog.Builtin().ByID(id)
	require.True(t, ok)
	return p
}

func TestAddValidatesQuantity(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemory(), testLogger())
	tmt := product(t, "tmt-bars-8mm") // moq 10, increment 5

	require.ErrorIs(t, s.Add(ctx, sid, tmt, 9), ErrInvalidQuantity)
	require.ErrorIs(t, s.Add(ctx, sid, tmt, 12), ErrInvalidQuantity)
	require.Empty(t, s.Items(ctx, sid))

	require.NoError(t, s.Add(ctx, sid, tmt, 10))
	items := s.Items(ctx, sid)
	require.Len(t, items, 1)
	require.Equal(t, 10, items[0].Quantity)
	require.Equal(t, int64(3800), s.Total(ctx, sid))
	require.Equal(t, 10, s.Count(ctx, sid))
}

func TestAddMergesExistingLine(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemory(), testLogger())
	tmt := product(t, "tmt-bars-8mm")

	require.NoError(t, s.Add(ctx, sid, tmt, 10))
	require.NoError(t, s.Add(ctx, sid, tmt, 20))

	items := s.Items(ctx, sid)
	require.Len(t, items, 1)
	require.Equal(t, 30, items[0].Quantity)
	require.Equal(t, int64(11400), s.Total(ctx, sid))
}

func TestAddRejectsInvalidMergeWholly(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemory(), testLogger())
	// moq 3, increment 2: 3 and 5 are each valid but 3+5=8 is off the
	// sequence {3,5,7,...}, so the merge must leave the line at 3.
	p := models.Product{ID: "odd", Name: "Odd", Price: 100, MOQ: 3, Increment: 2,
		Category: models.CategoryFabricated, InStock: true}

	require.NoError(t, s.Add(ctx, sid, p, 3))
	require.ErrorIs(t, s.Add(ctx, sid, p, 5), ErrInvalidQuantity)

	items := s.Items(ctx, sid)
	require.Len(t, items, 1)
	require.Equal(t, 3, items[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemory(), testLogger())
	tmt := product(t, "tmt-bars-8mm")

	require.ErrorIs(t, s.UpdateQuantity(ctx, sid, tmt.ID, 15), ErrNotFound)

	require.NoError(t, s.Add(ctx, sid, tmt, 10))
	require.ErrorIs(t, s.UpdateQuantity(ctx, sid, tmt.ID, 12), ErrInvalidQuantity)
	require.Equal(t, 10, s.Items(ctx, sid)[0].Quantity)

	require.NoError(t, s.UpdateQuantity(ctx, sid, tmt.ID, 25))
	require.Equal(t, 25, s.Items(ctx, sid)[0].Quantity)
}

func TestRemoveIsNoOpWhenAbsent(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemory(), testLogger())
	tmt := product(t, "tmt-bars-8mm")

	s.Remove(ctx, sid, "no-such-product")
	require.Empty(t, s.Items(ctx, sid))

	require.NoError(t, s.Add(ctx, sid, tmt, 10))
	s.Remove(ctx, sid, "no-such-product")
	require.Len(t, s.Items(ctx, sid), 1)

	s.Remove(ctx, sid, tmt.ID)
	require.Empty(t, s.Items(ctx, sid))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemory(), testLogger())

	require.NoError(t, s.Add(ctx, sid, product(t, "tmt-bars-8mm"), 10))
	require.NoError(t, s.Add(ctx, sid, product(t, "steel-beds"), 5))

	s.Clear(ctx, sid)
	require.Empty(t, s.Items(ctx, sid))
	require.Equal(t, int64(0), s.Total(ctx, sid))
	require.Equal(t, 0, s.Count(ctx, sid))
}

func TestTotalsAcrossLines(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemory(), testLogger())

	require.NoError(t, s.Add(ctx, sid, product(t, "tmt-bars-8mm"), 10)) // 3800
	require.NoError(t, s.Add(ctx, sid, product(t, "steel-beds"), 5))    // 15000

	require.Equal(t, int64(18800), s.Total(ctx, sid))
	require.Equal(t, 15, s.Count(ctx, sid))
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	s := NewStore(storage.NewMemory(), testLogger())
	tmt := product(t, "tmt-bars-8mm")

	require.NoError(t, s.Add(ctx, "session-a", tmt, 10))
	require.Empty(t, s.Items(ctx, "session-b"))
	require.Len(t, s.Items(ctx, "session-a"), 1)
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()

	s1 := NewStore(kv, testLogger())
	require.NoError(t, s1.Add(ctx, sid, product(t, "steel-beds"), 5))
	require.NoError(t, s1.Add(ctx, sid, product(t, "tmt-bars-8mm"), 10))
	want := s1.Items(ctx, sid)

	// a fresh store over the same storage restores the cart as-is,
	// fields and insertion order included
	s2 := NewStore(kv, testLogger())
	require.Equal(t, want, s2.Items(ctx, sid))
}

func TestCorruptBlobStartsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	require.NoError(t, kv.Put(ctx, "cart:"+sid, []byte("{not json")))

	s := NewStore(kv, testLogger())
	require.Empty(t, s.Items(ctx, sid))

	// the cart stays usable after the failed restore
	require.NoError(t, s.Add(ctx, sid, product(t, "tmt-bars-8mm"), 10))
	require.Len(t, s.Items(ctx, sid), 1)
}

// faultyKV fails every Get and records Puts.
type faultyKV struct {
	mu   sync.Mutex
	puts int
}

func (f *faultyKV) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}

func (f *faultyKV) Put(context.Context, string, []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	return nil
}

func (f *faultyKV) Delete(context.Context, string) error { return nil }
func (f *faultyKV) Close() error                         { return nil }

func TestLoadFailureNeverSurfaces(t *testing.T) {
	ctx := context.Background()
	kv := &faultyKV{}
	s := NewStore(kv, testLogger())

	// reads never write: a failed load must not overwrite the blob
	require.Empty(t, s.Items(ctx, sid))
	require.Equal(t, 0, kv.puts)

	// mutations still succeed and resume saving after the load attempt
	require.NoError(t, s.Add(ctx, sid, product(t, "tmt-bars-8mm"), 10))
	require.Equal(t, 1, kv.puts)
}
