package domain

import "errors"

var (
	// Entry errors
	ErrDuplicateName = errors.New("hot search name already exists")
	ErrEntryNotFound = errors.New("hot search not found")

	// Purchase errors
	ErrInvalidRank  = errors.New("rank is out of range")
	ErrOutbid       = errors.New("rank is held by a higher or equal offer")
	ErrRankDemotion = errors.New("bought hot search cannot buy a lower rank")
)
