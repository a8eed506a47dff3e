package ranking_test

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iho/hotsearch/internal/domain"
	"github.com/iho/hotsearch/internal/ranking"
)

type seqIDs struct {
	mu sync.Mutex
	n  int
}

func (g *seqIDs) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("id-%d", g.n)
}

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newEngine(t *testing.T, names ...string) *ranking.Engine {
	t.Helper()
	e := ranking.New(&seqIDs{}, func() time.Time { return fixedNow })
	for _, name := range names {
		_, err := e.Add(name)
		require.NoError(t, err)
	}
	return e
}

func order(e *ranking.Engine) []string {
	var names []string
	for _, entry := range e.FindAll() {
		names = append(names, entry.Name)
	}
	return names
}

func requireOrder(t *testing.T, e *ranking.Engine, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, order(e)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestEngine_AddManyUniqueNames(t *testing.T) {
	faker := gofakeit.New(42)
	e := newEngine(t)

	seen := make(map[string]bool)
	var added []string
	for len(added) < 50 {
		name := faker.Noun() + "-" + faker.Numerify("###")
		if seen[strings.ToLower(name)] {
			continue
		}
		seen[strings.ToLower(name)] = true

		var err error
		if faker.Bool() {
			_, err = e.AddBoosted(name)
		} else {
			_, err = e.Add(name)
		}
		require.NoError(t, err)
		added = append(added, name)
	}

	assert.Equal(t, len(added), e.Count())
	for i, name := range added {
		assert.True(t, e.Exists(name))
		assert.True(t, e.Exists(strings.ToUpper(name)))
		assert.Equal(t, i, e.IndexOf(name))
	}
}

func TestEngine_AddCreatesUnboughtEntry(t *testing.T) {
	e := newEngine(t)

	entry, err := e.Add("weather")
	require.NoError(t, err)

	assert.Equal(t, "id-1", entry.ID)
	assert.Equal(t, "weather", entry.Name)
	assert.Equal(t, fixedNow, entry.CreatedAt)
	assert.Zero(t, entry.Amount)
	assert.Zero(t, entry.Votes)
	assert.False(t, entry.Boosted)
	assert.False(t, entry.IsBought())

	boosted, err := e.AddBoosted("finals")
	require.NoError(t, err)
	assert.True(t, boosted.Boosted)
	requireOrder(t, e, "weather", "finals")
}

func TestEngine_AddDuplicateName(t *testing.T) {
	tests := []struct {
		name string
		add  func(e *ranking.Engine, name string) (*domain.Entry, error)
		dup  string
	}{
		{
			name: "same case",
			add:  (*ranking.Engine).Add,
			dup:  "Foo",
		},
		{
			name: "different case",
			add:  (*ranking.Engine).Add,
			dup:  "FOO",
		},
		{
			name: "boosted with different case",
			add:  (*ranking.Engine).AddBoosted,
			dup:  "foo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, "Foo", "Bar")

			entry, err := tt.add(e, tt.dup)

			require.ErrorIs(t, err, domain.ErrDuplicateName)
			assert.Nil(t, entry)
			assert.Equal(t, 2, e.Count())
			requireOrder(t, e, "Foo", "Bar")
		})
	}
}

func TestEngine_Queries(t *testing.T) {
	e := newEngine(t, "A", "B", "C")

	assert.True(t, e.Exists("b"))
	assert.False(t, e.Exists("D"))
	assert.Equal(t, 1, e.IndexOf("b"))
	assert.Equal(t, -1, e.IndexOf("D"))

	entry, err := e.FindByName("c")
	require.NoError(t, err)
	assert.Equal(t, "C", entry.Name)

	_, err = e.FindByName("D")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
}

func TestEngine_ReturnedEntriesAreCopies(t *testing.T) {
	e := newEngine(t, "A", "B")

	entry, err := e.FindByName("A")
	require.NoError(t, err)
	entry.Amount = 100
	entry.Votes = 100

	all := e.FindAll()
	all[0], all[1] = all[1], all[0]
	all[0].Votes = 7

	stored, err := e.FindByName("A")
	require.NoError(t, err)
	assert.Zero(t, stored.Amount)
	assert.Zero(t, stored.Votes)
	requireOrder(t, e, "A", "B")

	b, err := e.FindByName("B")
	require.NoError(t, err)
	assert.Zero(t, b.Votes)
}

func TestEngine_BuyOwnRankOnlyChangesAmount(t *testing.T) {
	e := newEngine(t, "A", "B", "C")

	require.NoError(t, e.BuyRank("B", 2, 3))
	require.NoError(t, e.BuyRank("b", 2, 4))

	entry, err := e.FindByName("B")
	require.NoError(t, err)
	assert.Equal(t, int64(7), entry.Amount)
	requireOrder(t, e, "A", "B", "C")
}

func TestEngine_BuyRankMovesEntry(t *testing.T) {
	tests := []struct {
		name   string
		buyer  string
		rank   int
		amount int64
		want   []string
	}{
		{
			name:   "move forward",
			buyer:  "D",
			rank:   2,
			amount: 1,
			want:   []string{"A", "D", "B", "C", "E"},
		},
		{
			name:   "move to the top",
			buyer:  "E",
			rank:   1,
			amount: 1,
			want:   []string{"E", "A", "B", "C", "D"},
		},
		{
			name:   "move backward",
			buyer:  "A",
			rank:   3,
			amount: 1,
			want:   []string{"B", "C", "A", "D", "E"},
		},
		{
			name:   "move to the bottom",
			buyer:  "B",
			rank:   5,
			amount: 1,
			want:   []string{"A", "C", "D", "E", "B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, "A", "B", "C", "D", "E")

			require.NoError(t, e.BuyRank(tt.buyer, tt.rank, tt.amount))

			requireOrder(t, e, tt.want...)
			assert.Equal(t, tt.rank-1, e.IndexOf(tt.buyer))
			entry, err := e.FindByName(tt.buyer)
			require.NoError(t, err)
			assert.Equal(t, tt.amount, entry.Amount)
		})
	}
}

func TestEngine_BuyRankOutbid(t *testing.T) {
	e := newEngine(t, "A", "B")

	require.NoError(t, e.BuyRank("B", 1, 10))
	requireOrder(t, e, "B", "A")

	b, err := e.FindByName("B")
	require.NoError(t, err)
	assert.Equal(t, int64(10), b.Amount)

	err = e.BuyRank("A", 1, 5)
	require.ErrorIs(t, err, domain.ErrOutbid)
	assert.Equal(t, domain.BuyOutbid, domain.BuyOutcomeOf(err))
	requireOrder(t, e, "B", "A")

	a, err := e.FindByName("A")
	require.NoError(t, err)
	assert.Zero(t, a.Amount)

	// Equal totals still lose.
	require.ErrorIs(t, e.BuyRank("A", 1, 10), domain.ErrOutbid)

	require.NoError(t, e.BuyRank("A", 1, 11))
	requireOrder(t, e, "A", "B")
}

func TestEngine_BuyRankAccumulatesAmount(t *testing.T) {
	e := newEngine(t, "A", "B")

	require.NoError(t, e.BuyRank("A", 1, 10))
	require.ErrorIs(t, e.BuyRank("B", 1, 6), domain.ErrOutbid)

	// The second offer builds on what B has already paid.
	require.NoError(t, e.BuyRank("B", 2, 6))
	require.NoError(t, e.BuyRank("B", 1, 5))

	requireOrder(t, e, "B", "A")
	b, err := e.FindByName("B")
	require.NoError(t, err)
	assert.Equal(t, int64(11), b.Amount)
}

func TestEngine_BuyRankErrors(t *testing.T) {
	tests := []struct {
		name    string
		entry   string
		rank    int
		wantErr error
		outcome domain.BuyOutcome
	}{
		{name: "unknown entry", entry: "Z", rank: 1, wantErr: domain.ErrEntryNotFound, outcome: domain.BuyNotFound},
		{name: "rank zero", entry: "A", rank: 0, wantErr: domain.ErrInvalidRank, outcome: domain.BuyInvalid},
		{name: "rank past the end", entry: "A", rank: 4, wantErr: domain.ErrInvalidRank, outcome: domain.BuyInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, "A", "B", "C")

			err := e.BuyRank(tt.entry, tt.rank, 10)

			require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, tt.outcome, domain.BuyOutcomeOf(err))
			requireOrder(t, e, "A", "B", "C")
		})
	}
}

func TestEngine_BuyRankRejectsAmountOverflow(t *testing.T) {
	e := newEngine(t, "A", "B", "C")
	require.NoError(t, e.BuyRank("B", 1, math.MaxInt64))

	for _, rank := range []int{1, 2} {
		err := e.BuyRank("B", rank, 1)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
		assert.Equal(t, domain.BuyInvalid, domain.BuyOutcomeOf(err))
	}

	b, err := e.FindByName("B")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), b.Amount)
	assert.True(t, b.IsBought())
	requireOrder(t, e, "B", "A", "C")

	require.ErrorIs(t, e.BuyRank("C", 1, math.MaxInt64), domain.ErrOutbid)
}

func TestEngine_BuyHigherRank(t *testing.T) {
	tests := []struct {
		name      string
		entry     string
		rank      int
		wantErr   error
		wantOrder []string
	}{
		{name: "bought entry keeps its rank", entry: "B", rank: 2, wantOrder: []string{"A", "B", "C"}},
		{name: "bought entry moves up", entry: "B", rank: 1, wantOrder: []string{"B", "A", "C"}},
		{name: "bought entry cannot move down", entry: "B", rank: 3, wantErr: domain.ErrRankDemotion, wantOrder: []string{"A", "B", "C"}},
		{name: "unbought entry may move down", entry: "A", rank: 3, wantOrder: []string{"B", "C", "A"}},
		{name: "unknown entry", entry: "Z", rank: 1, wantErr: domain.ErrEntryNotFound, wantOrder: []string{"A", "B", "C"}},
		{name: "rank past the end", entry: "A", rank: 4, wantErr: domain.ErrInvalidRank, wantOrder: []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, "A", "B", "C")
			require.NoError(t, e.BuyRank("B", 2, 5))

			err := e.BuyHigherRank(tt.entry, tt.rank, 10)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			requireOrder(t, e, tt.wantOrder...)
		})
	}
}

func TestEngine_AddVotesRejectsOverflow(t *testing.T) {
	e := newEngine(t, "A", "B")
	_, err := e.AddBoosted("S")
	require.NoError(t, err)

	require.NoError(t, e.AddVotes("B", math.MaxInt64))
	require.ErrorIs(t, e.AddVotes("B", 1), domain.ErrInvalidVotes)
	require.ErrorIs(t, e.AddVotes("S", math.MaxInt64/2+1), domain.ErrInvalidVotes)

	b, err := e.FindByName("B")
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), b.Votes)
	s, err := e.FindByName("S")
	require.NoError(t, err)
	assert.Zero(t, s.Votes)
	requireOrder(t, e, "B", "A", "S")
}

func TestEngine_AddVotesMovesUnboughtEntry(t *testing.T) {
	e := newEngine(t, "A", "B", "C")

	require.NoError(t, e.AddVotes("C", 5))

	requireOrder(t, e, "C", "A", "B")
	c, err := e.FindByName("C")
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.Votes)
}

func TestEngine_AddVotesRequiresStrictlyMoreVotes(t *testing.T) {
	e := newEngine(t, "A", "B")

	require.NoError(t, e.AddVotes("A", 5))
	requireOrder(t, e, "A", "B")

	require.NoError(t, e.AddVotes("B", 5))
	requireOrder(t, e, "A", "B")

	require.NoError(t, e.AddVotes("B", 1))
	requireOrder(t, e, "B", "A")
}

func TestEngine_AddVotesNeverMovesBackward(t *testing.T) {
	e := newEngine(t, "A", "B", "C")

	require.NoError(t, e.AddVotes("B", 3))
	requireOrder(t, e, "B", "A", "C")

	// C has fewer votes than A but sits behind it.
	require.NoError(t, e.AddVotes("A", 1))
	requireOrder(t, e, "B", "A", "C")
}

func TestEngine_AddVotesBoostedDoubles(t *testing.T) {
	e := newEngine(t, "regular")
	_, err := e.AddBoosted("boosted")
	require.NoError(t, err)

	require.NoError(t, e.AddVotes("regular", 3))
	require.NoError(t, e.AddVotes("boosted", 3))

	regular, err := e.FindByName("regular")
	require.NoError(t, err)
	boosted, err := e.FindByName("boosted")
	require.NoError(t, err)

	assert.Equal(t, int64(3), regular.Votes)
	assert.Equal(t, int64(6), boosted.Votes)
	requireOrder(t, e, "boosted", "regular")
}

func TestEngine_AddVotesUnknownEntry(t *testing.T) {
	e := newEngine(t, "A")

	require.ErrorIs(t, e.AddVotes("B", 1), domain.ErrEntryNotFound)
}

func TestEngine_BoughtEntryIgnoresVotes(t *testing.T) {
	e := newEngine(t, "A", "B", "C")
	require.NoError(t, e.BuyRank("C", 3, 1))

	require.NoError(t, e.AddVotes("C", 100))

	requireOrder(t, e, "A", "B", "C")
	c, err := e.FindByName("C")
	require.NoError(t, err)
	assert.Equal(t, int64(100), c.Votes)
}

func TestEngine_BoughtEntryKeepsSlotWhenOthersMove(t *testing.T) {
	e := newEngine(t, "A", "B", "C")
	require.NoError(t, e.BuyRank("B", 2, 5))

	require.NoError(t, e.AddVotes("C", 5))

	requireOrder(t, e, "C", "B", "A")
	assert.Equal(t, 1, e.IndexOf("B"))
}

func TestEngine_RestoresInterleavedBoughtEntries(t *testing.T) {
	tests := []struct {
		name   string
		names  []string
		bought []string
		voter  string
		want   []string
	}{
		{
			name:   "bought entries separated by an unbought one",
			names:  []string{"A", "B", "E", "D", "C"},
			bought: []string{"B", "D"},
			voter:  "C",
			want:   []string{"C", "B", "A", "D", "E"},
		},
		{
			name:   "adjacent bought entries",
			names:  []string{"A", "B", "D", "C"},
			bought: []string{"B", "D"},
			voter:  "C",
			want:   []string{"C", "B", "D", "A"},
		},
		{
			name:   "bought entry ahead of the overtaken one",
			names:  []string{"A", "B", "C", "D"},
			bought: []string{"A", "C"},
			voter:  "D",
			want:   []string{"A", "D", "C", "B"},
		},
		{
			name:   "bought entry behind the voter is untouched",
			names:  []string{"A", "B", "C", "D"},
			bought: []string{"D"},
			voter:  "C",
			want:   []string{"C", "A", "B", "D"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t, tt.names...)
			for _, name := range tt.bought {
				require.NoError(t, e.BuyRank(name, e.IndexOf(name)+1, 1))
			}

			require.NoError(t, e.AddVotes(tt.voter, 1))

			requireOrder(t, e, tt.want...)
		})
	}
}

func TestEngine_VotesNeverMoveBoughtEntries(t *testing.T) {
	faker := gofakeit.New(7)

	var names []string
	for i := 0; i < 12; i++ {
		names = append(names, fmt.Sprintf("entry-%02d", i))
	}
	e := newEngine(t, names...)

	bought := make(map[string]int)
	for _, name := range names {
		if faker.Number(0, 2) == 0 {
			require.NoError(t, e.BuyRank(name, e.IndexOf(name)+1, int64(faker.Number(1, 50))))
			bought[name] = e.IndexOf(name)
		}
	}

	for i := 0; i < 300; i++ {
		name := names[faker.Number(0, len(names)-1)]
		require.NoError(t, e.AddVotes(name, int64(faker.Number(1, 20))))

		for boughtName, index := range bought {
			require.Equal(t, index, e.IndexOf(boughtName), "bought %s moved after voting for %s", boughtName, name)
		}
	}
}

func TestEngine_IndependentLists(t *testing.T) {
	first := newEngine(t, "A")
	second := newEngine(t)

	_, err := second.Add("A")
	require.NoError(t, err)
	require.NoError(t, second.AddVotes("A", 3))

	a, err := first.FindByName("A")
	require.NoError(t, err)
	assert.Zero(t, a.Votes)
}

func TestEngine_ConcurrentVotes(t *testing.T) {
	e := newEngine(t, "A", "B", "C", "D")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := []string{"A", "B", "C", "D"}[i%4]
			assert.NoError(t, e.AddVotes(name, 1))
		}(i)
	}
	wg.Wait()

	var total int64
	for _, entry := range e.FindAll() {
		assert.Equal(t, int64(25), entry.Votes)
		total += entry.Votes
	}
	assert.Equal(t, int64(100), total)
	assert.Equal(t, 4, e.Count())
}
