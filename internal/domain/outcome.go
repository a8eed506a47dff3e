package domain

import "errors"

// BuyOutcome classifies the result of a rank purchase for the calling layer.
type BuyOutcome int

const (
	BuySuccess BuyOutcome = iota
	BuyOutbid
	BuyNotFound
	BuyInvalid
)

func (o BuyOutcome) String() string {
	switch o {
	case BuySuccess:
		return "success"
	case BuyOutbid:
		return "outbid"
	case BuyNotFound:
		return "not_found"
	default:
		return "invalid"
	}
}

// BuyOutcomeOf maps an error returned by a rank purchase to its outcome.
func BuyOutcomeOf(err error) BuyOutcome {
	switch {
	case err == nil:
		return BuySuccess
	case errors.Is(err, ErrOutbid):
		return BuyOutbid
	case errors.Is(err, ErrEntryNotFound):
		return BuyNotFound
	default:
		return BuyInvalid
	}
}
