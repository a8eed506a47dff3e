package usecase

import (
	"github.com/iho/hotsearch/internal/domain"
)

// Board is the ranking list the request layer operates on.
type Board interface {
	Exists(name string) bool
	Count() int
	FindByName(name string) (*domain.Entry, error)
	FindAll() []domain.Entry
	IndexOf(name string) int
	Add(name string) (*domain.Entry, error)
	AddBoosted(name string) (*domain.Entry, error)
	BuyRank(name string, rank int, amount int64) error
	BuyHigherRank(name string, rank int, amount int64) error
	AddVotes(name string, votes int64) error
}
