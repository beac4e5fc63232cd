package report

import "context"

// Sink receives failures a top-level consumer chose to keep for later
// inspection.
type Sink interface {
	Record(ctx context.Context, failure error) error
	Close() error
}
