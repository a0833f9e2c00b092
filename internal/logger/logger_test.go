package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := InitWithWriter(Config{Level: "warn", Format: "json"}, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	l.Info().Msg("hidden")
	l.Warn().Str("section", "skills").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"section":"skills"`)
	assert.Contains(t, out, `"message":"visible"`)
	assert.Contains(t, out, `"time":`)
}

func TestInitWithWriter_DefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := InitWithWriter(Config{Level: "chatty"}, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	assert.Equal(t, zerolog.InfoLevel, l.GetLevel())
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "debug"}, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	Component("server").Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"server"`)
}

func TestCtx_FallsBackToProcessLogger(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(Config{Level: "info"}, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.TraceLevel) })

	Ctx(context.Background()).Info().Msg("fallback")
	Ctx(WithContext(context.Background())).Info().Msg("attached")

	assert.Contains(t, buf.String(), "fallback")
	assert.Contains(t, buf.String(), "attached")
}
