package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/iho/hotsearch/internal/domain"
)

var errUnterminatedQuote = errors.New("unterminated quote")

// splitArgs splits a command line on white space. Double quotes group words
// into one argument.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quoted  bool
		inArg   bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			inArg = true
		case unicode.IsSpace(r) && !quoted:
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if quoted {
		return nil, errUnterminatedQuote
	}
	if inArg {
		args = append(args, current.String())
	}
	if len(args) == 0 {
		return nil, errors.New("empty command")
	}
	return args, nil
}

// parsePositive parses a strictly positive integer argument.
func parsePositive(s, field string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", field, s)
	}
	return n, nil
}

// describeError turns a rejected request into a prompt for the user.
func describeError(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrDuplicateName):
		return "a hot search with this name already exists, choose another name"
	case errors.Is(err, domain.ErrEntryNotFound):
		return "hot search not found, check the name"
	case errors.Is(err, domain.ErrInvalidRank):
		return "rank is out of range, choose a rank on the list"
	case errors.Is(err, domain.ErrRankDemotion):
		return "a bought hot search can only buy its current or a better rank"
	case errors.Is(err, domain.ErrOutbid):
		return "rank is held by a higher or equal offer, raise your offer"
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidVotes):
		return err.Error()
	default:
		return "request failed: " + err.Error()
	}
}
