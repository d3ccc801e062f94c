package outfits

import (
	"context"
	"fmt"
	"io"

	"github.com/leennnS/Clueless/internal/graphql"
)

// Fetcher dumps the raw server response for a single outfit: the HTTP status
// code on one line, the response body on the next.
type Fetcher struct {
	client graphql.Client
	out    io.Writer
}

// NewFetcher constructs a Fetcher that queries through client and writes
// results to out.
func NewFetcher(client graphql.Client, out io.Writer) *Fetcher {
	return &Fetcher{
		client: client,
		out:    out,
	}
}

// Run issues one detail query for outfitID and prints the status code and
// body. The body is written exactly as received, with no decoding or
// re-serialization, even for non-2xx responses.
func (f *Fetcher) Run(ctx context.Context, outfitID int) error {
	resp, err := f.client.Do(ctx, itemDetailQuery, map[string]any{"outfitId": outfitID})
	if err != nil {
		return fmt.Errorf("outfit %d: %w", outfitID, err)
	}

	if _, err := fmt.Fprintf(f.out, "%d\n%s\n", resp.StatusCode, resp.Body); err != nil {
		return fmt.Errorf("write response for outfit %d: %w", outfitID, err)
	}
	return nil
}
