package usecase

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/iho/hotsearch/internal/domain"
	"github.com/iho/hotsearch/internal/infrastructure/metrics"
)

// HotSearchUseCase validates requests before they reach the ranking list and
// records what happened to them.
type HotSearchUseCase struct {
	board      Board
	metrics    *metrics.Metrics
	logger     zerolog.Logger
	maxNameLen int
}

// NewHotSearchUseCase creates a new HotSearchUseCase. metrics may be nil.
func NewHotSearchUseCase(board Board, m *metrics.Metrics, logger zerolog.Logger, maxNameLen int) *HotSearchUseCase {
	if maxNameLen <= 0 {
		maxNameLen = domain.DefaultMaxNameLen
	}
	return &HotSearchUseCase{
		board:      board,
		metrics:    m,
		logger:     logger,
		maxNameLen: maxNameLen,
	}
}

// AddHotSearchInput represents input for adding a hot search.
type AddHotSearchInput struct {
	Name    string
	Boosted bool
}

// AddHotSearch adds a regular or boosted hot search to the end of the list.
func (uc *HotSearchUseCase) AddHotSearch(ctx context.Context, input AddHotSearchInput) (*domain.Entry, error) {
	name, err := domain.ValidateEntryName(input.Name, uc.maxNameLen)
	if err != nil {
		uc.recordError("add", err)
		return nil, err
	}

	var entry *domain.Entry
	if input.Boosted {
		entry, err = uc.board.AddBoosted(name)
	} else {
		entry, err = uc.board.Add(name)
	}
	if err != nil {
		uc.recordError("add", err)
		uc.logger.Warn().Err(err).Str("name", name).Msg("hot search rejected")
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RecordAdd(entry.Boosted, uc.board.Count())
	}
	uc.logger.Info().
		Str("id", entry.ID).
		Str("name", entry.Name).
		Bool("boosted", entry.Boosted).
		Msg("hot search added")

	return entry, nil
}

// BuyRankInput represents input for buying a rank.
type BuyRankInput struct {
	Name   string
	Rank   int // 1-based
	Amount int64
}

// BuyRank buys a rank for a hot search. The outcome tells the caller whether
// to ask for a higher offer, a different hot search or a different rank.
// A bought hot search may only buy its current or a better rank.
func (uc *HotSearchUseCase) BuyRank(ctx context.Context, input BuyRankInput) (domain.BuyOutcome, error) {
	if err := domain.ValidateAmount(input.Amount); err != nil {
		uc.recordError("buy", err)
		return domain.BuyInvalid, err
	}

	err := uc.board.BuyHigherRank(input.Name, input.Rank, input.Amount)
	outcome := domain.BuyOutcomeOf(err)
	if uc.metrics != nil {
		uc.metrics.RecordPurchase(outcome.String(), input.Amount)
	}

	if err != nil {
		if outcome != domain.BuyOutbid {
			uc.recordError("buy", err)
		}
		uc.logger.Warn().
			Err(err).
			Str("name", input.Name).
			Int("rank", input.Rank).
			Int64("amount", input.Amount).
			Str("outcome", outcome.String()).
			Msg("rank purchase rejected")
		return outcome, err
	}

	event := uc.logger.Info().
		Int("rank", input.Rank).
		Int64("amount", input.Amount)
	if entry, err := uc.board.FindByName(input.Name); err == nil {
		event = event.Str("name", entry.Name).Int64("total", entry.Amount)
	} else {
		event = event.Str("name", input.Name)
	}
	event.Msg("rank purchased")

	return outcome, nil
}

// VoteInput represents input for voting on a hot search.
type VoteInput struct {
	Name  string
	Votes int64
}

// Vote adds votes to a hot search and returns its updated state.
func (uc *HotSearchUseCase) Vote(ctx context.Context, input VoteInput) (*domain.Entry, error) {
	if err := domain.ValidateVotes(input.Votes); err != nil {
		uc.recordError("vote", err)
		return nil, err
	}

	if err := uc.board.AddVotes(input.Name, input.Votes); err != nil {
		uc.recordError("vote", err)
		uc.logger.Warn().Err(err).Str("name", input.Name).Msg("vote rejected")
		return nil, err
	}

	entry, err := uc.board.FindByName(input.Name)
	if err != nil {
		return nil, err
	}

	credited := domain.EffectiveVotes(entry.Boosted, input.Votes)
	if uc.metrics != nil {
		uc.metrics.RecordVotes(entry.Boosted, credited)
	}
	uc.logger.Info().
		Str("name", entry.Name).
		Int64("votes", credited).
		Int64("total", entry.Votes).
		Int("rank", uc.board.IndexOf(entry.Name)+1).
		Msg("votes added")

	return entry, nil
}

// GetHotSearch retrieves a hot search by name.
func (uc *HotSearchUseCase) GetHotSearch(ctx context.Context, name string) (*domain.Entry, error) {
	return uc.board.FindByName(name)
}

// RankOf returns the 1-based rank of a hot search.
func (uc *HotSearchUseCase) RankOf(ctx context.Context, name string) (int, error) {
	i := uc.board.IndexOf(name)
	if i < 0 {
		return 0, domain.ErrEntryNotFound
	}
	return i + 1, nil
}

// ListHotSearches returns all hot searches in rank order.
func (uc *HotSearchUseCase) ListHotSearches(ctx context.Context) []domain.Entry {
	return uc.board.FindAll()
}

func (uc *HotSearchUseCase) recordError(operation string, err error) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.RecordError(operation, errorReason(err))
}

func errorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateName):
		return "duplicate_name"
	case errors.Is(err, domain.ErrEntryNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidRank):
		return "invalid_rank"
	case errors.Is(err, domain.ErrRankDemotion):
		return "rank_demotion"
	case errors.Is(err, domain.ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInvalidVotes):
		return "invalid_votes"
	default:
		return "other"
	}
}
