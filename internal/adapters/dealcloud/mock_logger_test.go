package dealcloud

import (
	"context"

	"github.com/dealdesk/dcverify/internal/core/ports"
)

type noopLogger struct{}

func (noopLogger) Debugf(context.Context, string, ...any)        {}
func (noopLogger) Infof(context.Context, string, ...any)         {}
func (noopLogger) Warnf(context.Context, string, ...any)         {}
func (noopLogger) Errorf(context.Context, error, string, ...any) {}
func (noopLogger) WithFields(map[string]any) ports.Logger        { return noopLogger{} }
