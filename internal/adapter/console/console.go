// Package console drives the hot search list from a line-oriented text
// session, one command per line.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iho/hotsearch/internal/domain"
	"github.com/iho/hotsearch/internal/usecase"
)

// HotSearchService defines the behavior needed by Console.
type HotSearchService interface {
	AddHotSearch(ctx context.Context, input usecase.AddHotSearchInput) (*domain.Entry, error)
	BuyRank(ctx context.Context, input usecase.BuyRankInput) (domain.BuyOutcome, error)
	Vote(ctx context.Context, input usecase.VoteInput) (*domain.Entry, error)
	GetHotSearch(ctx context.Context, name string) (*domain.Entry, error)
	RankOf(ctx context.Context, name string) (int, error)
	ListHotSearches(ctx context.Context) []domain.Entry
}

// Config configures a Console.
type Config struct {
	Service HotSearchService
	In      io.Reader
	Out     io.Writer
	Prompt  string // printed before each line when non-empty
	Echo    bool   // repeat each command, for scripted sessions
	Logger  zerolog.Logger
}

// Console reads commands from In and writes replies to Out.
type Console struct {
	svc    HotSearchService
	in     io.Reader
	out    io.Writer
	prompt string
	echo   bool
	logger zerolog.Logger
}

// New creates a new Console.
func New(cfg Config) *Console {
	return &Console{
		svc:    cfg.Service,
		in:     cfg.In,
		out:    cfg.Out,
		prompt: cfg.Prompt,
		echo:   cfg.Echo,
		logger: cfg.Logger,
	}
}

// Run processes commands until quit, end of input or ctx is done.
// Rejected commands are reported to Out and never end the session.
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)

	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printPrompt()
		if !scanner.Scan() {
			break
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if c.echo {
			fmt.Fprintln(c.out, line)
		}

		args, err := splitArgs(line)
		if err != nil {
			c.println(err.Error())
			continue
		}

		c.logger.Debug().Int("line", lineNo).Str("command", args[0]).Msg("command received")

		if quit := c.dispatch(ctx, args); quit {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}

func (c *Console) dispatch(ctx context.Context, args []string) (quit bool) {
	cmd, rest := strings.ToLower(args[0]), args[1:]

	switch cmd {
	case "add":
		c.add(ctx, rest, false)
	case "add-boosted":
		c.add(ctx, rest, true)
	case "buy":
		c.buy(ctx, rest)
	case "vote":
		c.vote(ctx, rest)
	case "show":
		c.show(ctx, rest)
	case "list":
		c.list(ctx)
	case "help":
		c.help()
	case "quit", "exit":
		c.println("bye")
		return true
	default:
		c.printf("unknown command %q, type help for a list of commands\n", cmd)
	}
	return false
}

func (c *Console) printPrompt() {
	if c.prompt != "" {
		fmt.Fprint(c.out, c.prompt)
	}
}

func (c *Console) println(msg string) {
	fmt.Fprintln(c.out, msg)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
