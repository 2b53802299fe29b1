package store

import "context"

// RunInSession wraps ctx with the session id and calls fn inside the provided TxRunner
func RunInSession(ctx context.Context, tx TxRunner, sessionID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithSession(ctx, sessionID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}

// Run calls fn inside the provided TxRunner without extra context scoping
func Run(ctx context.Context, tx TxRunner, fn func(ctx context.Context, q RowQuerier) error) error {
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
