package slogpretty

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer

	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).With(slog.String("op", "test"))

	log.Info("activities loaded", slog.Int("count", 3))

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "activities loaded")
	assert.Contains(t, out, `"count": 3`)
	assert.Contains(t, out, `"op": "test"`)
}

func TestPrettyHandlerGroups(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer

	opts := PrettyHandlerOptions{SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug}}
	log := slog.New(opts.NewPrettyHandler(&buf)).
		With(slog.String("op", "test")).
		WithGroup("upstream").
		With(slog.String("operation", "signup"))

	log.Info("request finished", slog.Int("status", 400), slog.Group("body", slog.String("detail", "Activity is full")))

	var fields map[string]interface{}
	out := buf.String()
	start := strings.Index(out, "{")
	require.GreaterOrEqual(t, start, 0)
	require.NoError(t, json.Unmarshal([]byte(out[start:]), &fields))

	assert.Equal(t, "test", fields["op"])

	upstream, ok := fields["upstream"].(map[string]interface{})
	require.True(t, ok, "grouped attrs should be nested under the group name")
	assert.Equal(t, "signup", upstream["operation"])
	assert.Equal(t, float64(400), upstream["status"])

	body, ok := upstream["body"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Activity is full", body["detail"])
}
