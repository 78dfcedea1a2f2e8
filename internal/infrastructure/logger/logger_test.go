package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"trace", zerolog.TraceLevel},
		{"", zerolog.InfoLevel},
		{"unknown", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewLoggerFormatsOutput(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		level      string
		assertions func(t *testing.T, output string)
	}{
		{
			name:   "console format is human readable",
			format: "console",
			level:  "info",
			assertions: func(t *testing.T, output string) {
				if strings.HasPrefix(strings.TrimSpace(output), "{") || !strings.Contains(output, "hello") {
					t.Fatalf("expected console output, got %q", output)
				}
			},
		},
		{
			name:   "json format carries message and caller",
			format: "json",
			level:  "debug",
			assertions: func(t *testing.T, output string) {
				if !strings.HasPrefix(strings.TrimSpace(output), "{") {
					t.Fatalf("expected json output to start with '{', got %q", output)
				}
				if !strings.Contains(output, `"message":"hello"`) || !strings.Contains(output, `"caller"`) {
					t.Fatalf("expected message and caller fields, got %q", output)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(Config{Format: tt.format, Level: tt.level}, &buf)
			log.Info().Msg("hello")

			output := buf.String()
			if output == "" {
				t.Fatalf("expected log output, got empty string")
			}

			tt.assertions(t, output)
		})
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Format: "json", Level: "warn"}, &buf)

	log.Info().Msg("quiet")
	log.Warn().Msg("loud")

	if strings.Contains(buf.String(), "quiet") || !strings.Contains(buf.String(), "loud") {
		t.Fatalf("expected only warn output, got %q", buf.String())
	}
}

func TestNewLoggerAddsService(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(Config{Format: "json", Service: "ledgerexport"}, &buf)

	log.Info().Msg("hello")

	if !strings.Contains(buf.String(), `"service":"ledgerexport"`) {
		t.Fatalf("expected service field, got %q", buf.String())
	}
}

func TestInstallSetsContextFallback(t *testing.T) {
	prevLogger, prevDefault, prevLevel := zlog.Logger, zerolog.DefaultContextLogger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		zlog.Logger, zerolog.DefaultContextLogger = prevLogger, prevDefault
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	Install(NewWithWriter(Config{Format: "json", Level: "warn"}, &buf))

	zerolog.Ctx(context.Background()).Warn().Msg("from context")
	zerolog.Ctx(context.Background()).Info().Msg("filtered")

	if !strings.Contains(buf.String(), "from context") || strings.Contains(buf.String(), "filtered") {
		t.Fatalf("expected the installed logger behind zerolog.Ctx, got %q", buf.String())
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Fatalf("expected global level warn, got %v", zerolog.GlobalLevel())
	}
}
