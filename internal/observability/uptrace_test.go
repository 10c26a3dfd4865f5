package observability

import (
	"context"
	"testing"

	"github.com/sugerdarco/IPL-Data-Platform/internal/config"
	"github.com/sugerdarco/IPL-Data-Platform/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "ipl-data-platform",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	logger := logging.NewNop()
	shutdown, out, err := InitUptrace(cfg, logger)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if out != logger {
		t.Fatalf("expected logger to be returned unchanged")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EmptyDSN(t *testing.T) {
	shutdown, _, err := InitUptrace(config.Config{UptraceEnabled: true}, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}
