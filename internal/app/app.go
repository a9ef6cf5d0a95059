package app

import (
	"context"

	"github.com/dealdesk/dcverify/internal/config"
	"github.com/dealdesk/dcverify/internal/core/domain"
	"github.com/dealdesk/dcverify/internal/core/ports"
)

// Application wires the verification engine to its reporters. The CLI layer
// translates the returned report's exit code into the process exit status.
type Application struct {
	Engine    ports.SchemaVerifier
	Fetcher   ports.SchemaFetcher
	Explorer  ports.ObjectExplorer
	Reporters []ports.Reporter
	Logger    ports.Logger
	Config    *config.Config
}

// Run executes one verification pass and renders the report through every
// configured reporter. It returns an error only when verification could not
// be performed at all; a failed verification is reported through the
// report's exit code, not as an error.
func (a *Application) Run(ctx context.Context) (*domain.VerificationReport, error) {
	report, err := a.Engine.Verify(ctx, a.Config.Verify.ObjectName)
	if err != nil {
		a.Logger.Errorf(ctx, err, "Schema verification aborted")
		return nil, err
	}

	for _, reporter := range a.Reporters {
		if err := reporter.Report(ctx, report); err != nil {
			a.Logger.Errorf(ctx, err, "Reporter failed")
			return nil, err
		}
	}

	return report, nil
}
