package observability

import (
	"context"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sugerdarco/IPL-Data-Platform/internal/config"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

// InitUptrace configures global OpenTelemetry providers for Uptrace. The returned logger mirrors
// records to the Uptrace log pipeline when UPTRACE_LOGS_ENABLED is set; otherwise it is logger.
func InitUptrace(cfg config.Config, logger *logging.Logger) (func(context.Context) error, *logging.Logger, error) {
	if logger == nil {
		logger = logging.Default()
	}
	noop := func(context.Context) error { return nil }

	if !cfg.UptraceEnabled {
		logger.Info("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return noop, logger, nil
	}
	if strings.TrimSpace(cfg.UptraceDSN) == "" {
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return noop, logger, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithLoggingEnabled(cfg.UptraceLogsEnabled),
	)

	out := logger
	if cfg.UptraceLogsEnabled {
		out = mirrorToUptrace(logger, cfg.LogLevel, cfg.ServiceVersion)
	}

	out.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"service_version", cfg.ServiceVersion,
		"environment", cfg.AppEnv,
		"logs_enabled", cfg.UptraceLogsEnabled,
	)

	return uptrace.Shutdown, out, nil
}

func mirrorToUptrace(logger *logging.Logger, level zapcore.LevelEnabler, serviceVersion string) *logging.Logger {
	mirror := newUptraceLogCore(level, serviceVersion)
	return logging.FromZap(logger.Zap().WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, mirror)
	})))
}
