package ports

import (
	"context"

	"hrdash/domain/dataset"
)

// DatasetLoaderPort provides the memoized employee dataset
type DatasetLoaderPort interface {
	Load(ctx context.Context) (*dataset.Dataset, error)
}
