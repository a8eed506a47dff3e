package console

import (
	"context"

	"github.com/iho/hotsearch/internal/domain"
	"github.com/iho/hotsearch/internal/usecase"
)

const helpText = `commands:
  add <name>                     add a hot search
  add-boosted <name>             add a boosted hot search, its votes count double
  buy <name> <rank> <amount>     buy a rank for a hot search
  vote <name> <votes>            vote for a hot search
  show <name>                    show one hot search
  list                           list all hot searches
  help                           show this help
  quit                           leave the session
names containing spaces can be quoted: add "world cup"`

func (c *Console) add(ctx context.Context, args []string, boosted bool) {
	if len(args) != 1 {
		if boosted {
			c.println("usage: add-boosted <name>")
		} else {
			c.println("usage: add <name>")
		}
		return
	}

	entry, err := c.svc.AddHotSearch(ctx, usecase.AddHotSearchInput{Name: args[0], Boosted: boosted})
	if err != nil {
		c.println(describeError(err))
		return
	}

	if entry.Boosted {
		c.printf("boosted hot search %q added\n", entry.Name)
	} else {
		c.printf("hot search %q added\n", entry.Name)
	}
}

func (c *Console) buy(ctx context.Context, args []string) {
	if len(args) != 3 {
		c.println("usage: buy <name> <rank> <amount>")
		return
	}

	rank, err := parsePositive(args[1], "rank")
	if err != nil {
		c.println(err.Error())
		return
	}
	amount, err := parsePositive(args[2], "amount")
	if err != nil {
		c.println(err.Error())
		return
	}

	outcome, err := c.svc.BuyRank(ctx, usecase.BuyRankInput{Name: args[0], Rank: int(rank), Amount: amount})
	switch outcome {
	case domain.BuySuccess:
		c.printf("rank %d bought for %q\n", rank, args[0])
	case domain.BuyOutbid:
		c.printf("rank %d is held by a higher or equal offer, raise your offer\n", rank)
	default:
		c.println(describeError(err))
	}
}

func (c *Console) vote(ctx context.Context, args []string) {
	if len(args) != 2 {
		c.println("usage: vote <name> <votes>")
		return
	}

	votes, err := parsePositive(args[1], "votes")
	if err != nil {
		c.println(err.Error())
		return
	}

	entry, err := c.svc.Vote(ctx, usecase.VoteInput{Name: args[0], Votes: votes})
	if err != nil {
		c.println(describeError(err))
		return
	}

	rank, err := c.svc.RankOf(ctx, entry.Name)
	if err != nil {
		c.println(describeError(err))
		return
	}
	c.printf("%q now has %d votes, rank %d\n", entry.Name, entry.Votes, rank)
}

func (c *Console) show(ctx context.Context, args []string) {
	if len(args) != 1 {
		c.println("usage: show <name>")
		return
	}

	entry, err := c.svc.GetHotSearch(ctx, args[0])
	if err != nil {
		c.println(describeError(err))
		return
	}
	rank, err := c.svc.RankOf(ctx, entry.Name)
	if err != nil {
		c.println(describeError(err))
		return
	}

	c.printf("%d. %s %d\n", rank, entry.Name, entry.Votes)
	c.printf("   id: %s, amount: %d, boosted: %t\n", entry.ID, entry.Amount, entry.Boosted)
}

func (c *Console) list(ctx context.Context) {
	entries := c.svc.ListHotSearches(ctx)
	if len(entries) == 0 {
		c.println("hot search list is empty")
		return
	}

	for i, entry := range entries {
		c.printf("%d. %s %d\n", i+1, entry.Name, entry.Votes)
	}
}

func (c *Console) help() {
	c.println(helpText)
}
