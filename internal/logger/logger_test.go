package logger_test

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"

	"github.com/deppfellow/catalog-api/internal/config"
	"github.com/deppfellow/catalog-api/internal/logger"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level    zerolog.Level
		expected tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.PanicLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			qt.Assert(t, logger.GetPgxTraceLogLevel(tt.level), qt.Equals, int(tt.expected))
		})
	}
}

func TestNewLoggerWithService_Level(t *testing.T) {
	c := qt.New(t)

	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	log := logger.NewLogger(cfg)
	c.Assert(log.GetLevel(), qt.Equals, zerolog.WarnLevel)
}

func TestNewLoggerService_Disabled(t *testing.T) {
	c := qt.New(t)

	service := logger.NewLoggerService(config.DefaultObservabilityConfig())
	c.Assert(service.GetApplication(), qt.IsNil)

	// Shutdown without an agent is a no-op.
	service.Shutdown()

	var nilService *logger.LoggerService
	c.Assert(nilService.GetApplication(), qt.IsNil)
}
