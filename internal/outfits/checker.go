package outfits

import (
	"context"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	"github.com/leennnS/Clueless/internal/graphql"
)

// Checker counts the items placed in a range of outfits, issuing one GraphQL
// query per outfit id and writing one "<outfitId> <count>" line per id.
type Checker struct {
	client graphql.Client
	out    io.Writer
}

// NewChecker constructs a Checker that queries through client and writes
// results to out.
func NewChecker(client graphql.Client, out io.Writer) *Checker {
	return &Checker{
		client: client,
		out:    out,
	}
}

// Run queries every outfit id from first through last inclusive, strictly in
// order, and prints the id and item count for each. The first failed query
// aborts the run; no line is written for the failing id.
func (c *Checker) Run(ctx context.Context, first, last int) error {
	for outfitID := first; outfitID <= last; outfitID++ {
		data, err := c.client.Execute(ctx, itemCountQuery, map[string]any{"outfitId": outfitID})
		if err != nil {
			return fmt.Errorf("outfit %d: %w", outfitID, err)
		}

		// An absent outfitItemsByOutfit path counts as zero items.
		items := gjson.GetBytes(data, "outfitItemsByOutfit").Array()

		if _, err := fmt.Fprintf(c.out, "%d %d\n", outfitID, len(items)); err != nil {
			return fmt.Errorf("write result for outfit %d: %w", outfitID, err)
		}
	}
	return nil
}
