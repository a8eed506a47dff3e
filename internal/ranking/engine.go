// Package ranking maintains the ordered hot search list and implements the
// two competing promotions on it: buying a rank and collecting votes.
package ranking

import (
	"fmt"
	"sync"
	"time"

	"github.com/iho/hotsearch/internal/domain"
)

// IDGenerator generates unique entry IDs.
type IDGenerator interface {
	Generate() string
}

// Engine owns one ranking list. Position in the list is the rank, index 0
// being rank 1. All operations run under a single lock because both buying
// and voting read and then rewrite arbitrary spans of the list.
type Engine struct {
	mu      sync.Mutex
	entries []*domain.Entry
	idGen   IDGenerator
	now     func() time.Time
}

// New creates an empty Engine. A nil clock defaults to time.Now.
func New(idGen IDGenerator, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		idGen: idGen,
		now:   now,
	}
}

// Exists reports whether an entry with name exists, case insensitive.
func (e *Engine) Exists(name string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexOf(name) >= 0
}

// Count returns the number of entries on the list.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.entries)
}

// FindByName returns a copy of the entry matching name.
func (e *Engine) FindByName(name string) (*domain.Entry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	i := e.indexOf(name)
	if i < 0 {
		return nil, domain.ErrEntryNotFound
	}
	entry := *e.entries[i]
	return &entry, nil
}

// FindAll returns a copy of every entry in rank order.
func (e *Engine) FindAll() []domain.Entry {
	e.mu.Lock()
	defer e.mu.Unlock()

	all := make([]domain.Entry, len(e.entries))
	for i, entry := range e.entries {
		all[i] = *entry
	}
	return all
}

// IndexOf returns the 0-based position of the entry matching name, or -1.
func (e *Engine) IndexOf(name string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.indexOf(name)
}

// Add appends an unbought entry to the end of the list.
func (e *Engine) Add(name string) (*domain.Entry, error) {
	return e.add(name, false)
}

// AddBoosted appends an unbought entry whose votes count double.
func (e *Engine) AddBoosted(name string) (*domain.Entry, error) {
	return e.add(name, true)
}

func (e *Engine) add(name string, boosted bool) (*domain.Entry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.indexOf(name) >= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateName, name)
	}

	entry := &domain.Entry{
		ID:        e.idGen.Generate(),
		Name:      name,
		Boosted:   boosted,
		CreatedAt: e.now().UTC(),
	}
	e.entries = append(e.entries, entry)

	created := *entry
	return &created, nil
}

// BuyRank buys the 1-based rank for the named entry, adding amount to what
// the entry has already paid. The purchase displaces the current occupant
// only when the new total is strictly greater than the occupant's amount;
// otherwise ErrOutbid is returned and nothing changes.
func (e *Engine) BuyRank(name string, rank int, amount int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	oldIndex := e.indexOf(name)
	if oldIndex < 0 {
		return domain.ErrEntryNotFound
	}
	return e.buyRank(oldIndex, rank, amount)
}

// BuyHigherRank is BuyRank for callers that must not let a bought entry
// trade its rank for a worse one. Both checks run under the same lock.
func (e *Engine) BuyHigherRank(name string, rank int, amount int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	oldIndex := e.indexOf(name)
	if oldIndex < 0 {
		return domain.ErrEntryNotFound
	}

	if e.entries[oldIndex].IsBought() && rank > oldIndex+1 {
		return fmt.Errorf("%w: current rank %d", domain.ErrRankDemotion, oldIndex+1)
	}
	return e.buyRank(oldIndex, rank, amount)
}

func (e *Engine) buyRank(oldIndex, rank int, amount int64) error {
	if rank < 1 || rank > len(e.entries) {
		return fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidRank, rank, len(e.entries))
	}

	target := rank - 1
	entry := e.entries[oldIndex]
	newTotal, err := entry.AmountAfter(amount)
	if err != nil {
		return err
	}

	if oldIndex == target {
		entry.Amount = newTotal
		return nil
	}

	if occupant := e.entries[target]; occupant.Amount >= newTotal {
		return fmt.Errorf("%w: rank %d holds %d", domain.ErrOutbid, rank, occupant.Amount)
	}

	entry.Amount = newTotal
	e.move(oldIndex, target)
	return nil
}

// AddVotes adds votes to the named entry. A bought entry keeps its position.
// An unbought entry moves in front of the first unbought entry ahead of it
// with strictly fewer votes, after which bought entries shifted back by the
// move are returned to their slots.
func (e *Engine) AddVotes(name string, votes int64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	oldIndex := e.indexOf(name)
	if oldIndex < 0 {
		return domain.ErrEntryNotFound
	}

	entry := e.entries[oldIndex]
	total, err := entry.ApplyVotes(votes)
	if err != nil {
		return err
	}

	if entry.IsBought() {
		return nil
	}

	newIndex := oldIndex
	for i := 0; i < oldIndex; i++ {
		curr := e.entries[i]
		if !curr.IsBought() && curr.Votes < total {
			newIndex = i
			break
		}
	}

	if newIndex == oldIndex {
		return nil
	}

	e.move(oldIndex, newIndex)

	// Slot newIndex+1 now holds the unbought entry that was overtaken, so
	// restoration starts one further along.
	for i := newIndex + 2; i <= oldIndex; i++ {
		if e.entries[i].IsBought() {
			e.entries[i-1], e.entries[i] = e.entries[i], e.entries[i-1]
		}
	}

	return nil
}

func (e *Engine) indexOf(name string) int {
	for i, entry := range e.entries {
		if entry.Matches(name) {
			return i
		}
	}
	return -1
}

// move relocates the entry at from to index to, shifting the entries in
// between one slot toward from.
func (e *Engine) move(from, to int) {
	entry := e.entries[from]
	if from < to {
		copy(e.entries[from:to], e.entries[from+1:to+1])
	} else {
		copy(e.entries[to+1:from+1], e.entries[to:from])
	}
	e.entries[to] = entry
}
