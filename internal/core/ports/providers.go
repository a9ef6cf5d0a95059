package ports

import (
	"context"

	"github.com/dealdesk/dcverify/internal/core/domain"
)

// SchemaFetcher is the boundary to the live platform. A failure here is a
// connection or configuration problem, never a verification failure.
type SchemaFetcher interface {
	Type() string
	FetchSchema(ctx context.Context, objectName string) (*domain.ActualObjectSchema, error)
}

// ObjectExplorer exposes the read-only exploration operations used by the
// objects and fields commands.
type ObjectExplorer interface {
	ListObjects(ctx context.Context) ([]domain.ObjectIdentity, error)
	FieldCounts(ctx context.Context, objects []domain.ObjectIdentity) (map[int]int, error)
}
