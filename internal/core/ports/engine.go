package ports

import (
	"context"

	"github.com/dealdesk/dcverify/internal/core/domain"
)

type SchemaVerifier interface {
	Verify(ctx context.Context, objectName string) (*domain.VerificationReport, error)
}
