package placeorder

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/acme/order-taking/internal/domain"
)

// BatchResult holds the outcome for one order of a batch; Events and Err are
// mutually exclusive.
type BatchResult struct {
	Events []domain.PlaceOrderEvent
	Err    error
}

// PlaceOrders runs independent pipeline invocations concurrently, at most
// limit at a time (limit <= 0 means unbounded). Results are returned in
// input order; one order's rejection never affects another's.
func PlaceOrders(ctx context.Context, collaborators Collaborators, orders []UnvalidatedOrder, limit int) []BatchResult {
	results := make([]BatchResult, len(orders))

	var group errgroup.Group
	if limit > 0 {
		group.SetLimit(limit)
	}

	for i, order := range orders {
		i, order := i, order
		group.Go(func() error {
			events, err := PlaceOrder(ctx, collaborators, order)
			results[i] = BatchResult{Events: events, Err: err}
			return nil
		})
	}

	// Workers only record per-order outcomes, so Wait never returns an error.
	_ = group.Wait()
	return results
}
