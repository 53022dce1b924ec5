package cache

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync"
)

// Key identifies a cached query as an ordered tuple of scalars, e.g.
// Key{"followers", userID}. Two keys are the same entry when their tuples
// are equal. A prefix of a key is a family: invalidating Key{"notifications"}
// marks Key{"notifications", anyUserID} stale as well.
type Key []string

const keySeparator = "\x1f"

func (k Key) String() string {
	return strings.Join(k, keySeparator)
}

func (k Key) HasPrefix(family Key) bool {
	if len(family) > len(k) {
		return false
	}

	for i := range family {
		if k[i] != family[i] {
			return false
		}
	}

	return true
}

type entry struct {
	key       Key
	value     any
	fetchedAt time.Time
	stale     bool
}

// Store is a keyed cache of fetch results with per-read stale windows. One
// Store is constructed per server and torn down with it, never package
// state.
type Store struct {
	entries *xsync.MapOf[string, entry]
	now     func() time.Time

	// gen counts invalidations. A fetch that started under an older
	// generation stores its result already stale, so a mutation landing
	// while the fetch is in flight still forces the next read to refetch.
	gen atomic.Int64
}

func NewStore() *Store {
	return &Store{entries: xsync.NewMapOf[entry](), now: time.Now}
}

// NewStoreWithClock is for tests that need to move time forward.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{entries: xsync.NewMapOf[entry](), now: now}
}

// Invalidate marks every entry belonging to one of the given key families
// stale. The next read of a stale entry refetches regardless of how much of
// its stale window remains.
func (s *Store) Invalidate(families ...Key) {
	s.gen.Add(1)
	s.entries.Range(func(k string, e entry) bool {
		for _, family := range families {
			if e.key.HasPrefix(family) {
				e.stale = true
				s.entries.Store(k, e)
				break
			}
		}

		return true
	})
}

// Reset drops everything, e.g. on logout.
func (s *Store) Reset() {
	s.gen.Add(1)
	s.entries.Range(func(k string, _ entry) bool {
		s.entries.Delete(k)
		return true
	})
}

func (s *Store) Size() int {
	return s.entries.Size()
}

// GetOrFetch returns the cached value for key if it is younger than
// staleAfter and not invalidated, otherwise it calls fetch and caches the
// result. A result fetched on an already-canceled context is returned to
// nobody and never stored, so a torn-down consumer cannot pollute the
// cache. A result fetched while an invalidation landed is returned to its
// caller but stored already stale: the pre-mutation value must not outlive
// the in-flight read that loaded it.
func GetOrFetch[T any](
	ctx context.Context, s *Store, key Key, staleAfter time.Duration, fetch func(context.Context) (T, error),
) (T, error) {
	if e, ok := s.entries.Load(key.String()); ok {
		if !e.stale && s.now().Sub(e.fetchedAt) < staleAfter {
			if value, ok := e.value.(T); ok {
				return value, nil
			}
		}
	}

	startGen := s.gen.Load()

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if ctx.Err() != nil {
		var zero T
		return zero, ctx.Err()
	}

	s.entries.Store(key.String(), entry{
		key:       key,
		value:     value,
		fetchedAt: s.now(),
		stale:     s.gen.Load() != startGen,
	})
	return value, nil
}
