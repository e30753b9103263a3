package ports

import "context"

// Port: a boundary for retrieving map layouts from a data source.
type LayoutRepository interface {
	// Retrieve the symbol rows of a named layout.
	GetLayout(ctx context.Context, name string) ([]string, error)
	// List stored layout names in ascending order.
	ListLayouts(ctx context.Context) ([]string, error)
}
