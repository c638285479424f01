package stellar

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSilentByDefault(t *testing.T) {
	assert.False(t, Logger().Enabled(context.Background(), slog.LevelError))
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	dc := NewContext(8, 8)
	dc.Draw(make([]Vertex, 5), screenUniforms(), overhead, FlatShader{})

	assert.Contains(t, buf.String(), "dropping trailing vertices")
	assert.Contains(t, buf.String(), "count=2")

	SetLogger(nil)
	buf.Reset()
	dc.Draw(make([]Vertex, 4), screenUniforms(), overhead, FlatShader{})
	assert.Empty(t, buf.String())
}
