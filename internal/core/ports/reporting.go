package ports

import (
	"context"

	"github.com/dealdesk/dcverify/internal/core/domain"
)

type Reporter interface {
	Report(ctx context.Context, report *domain.VerificationReport) error
}
