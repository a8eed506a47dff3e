package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// BoostedVoteMultiplier is applied to every vote a boosted entry receives.
const BoostedVoteMultiplier = 2

// Entry represents a single hot search on the ranking list.
type Entry struct {
	CreatedAt time.Time
	ID        string
	Name      string
	Amount    int64 // total paid to hold the current position, 0 when unbought
	Votes     int64
	Boosted   bool
}

// IsBought reports whether the entry holds a purchased position.
func (e *Entry) IsBought() bool {
	return e.Amount > 0
}

// Matches reports whether name refers to this entry, case insensitive.
func (e *Entry) Matches(name string) bool {
	return strings.EqualFold(e.Name, name)
}

// AmountAfter returns the amount the entry would hold after paying amount
// more. Totals that do not fit in an int64 are rejected.
func (e *Entry) AmountAfter(amount int64) (int64, error) {
	if amount > math.MaxInt64-e.Amount {
		return 0, fmt.Errorf("%w: total would exceed %d", ErrInvalidAmount, int64(math.MaxInt64))
	}
	return e.Amount + amount, nil
}

// ApplyVotes adds votes to the entry and returns the new vote total. The
// entry is left unchanged when the total would not fit in an int64.
func (e *Entry) ApplyVotes(votes int64) (int64, error) {
	multiplier := int64(1)
	if e.Boosted {
		multiplier = BoostedVoteMultiplier
	}
	if votes > (math.MaxInt64-e.Votes)/multiplier {
		return e.Votes, fmt.Errorf("%w: total would exceed %d", ErrInvalidVotes, int64(math.MaxInt64))
	}
	e.Votes += EffectiveVotes(e.Boosted, votes)
	return e.Votes, nil
}

// EffectiveVotes returns the increment a vote of the given size produces.
func EffectiveVotes(boosted bool, votes int64) int64 {
	if boosted {
		return votes * BoostedVoteMultiplier
	}
	return votes
}
