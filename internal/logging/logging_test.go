package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"msg":"vocabulary built"`},
		{format: "text", want: `msg="vocabulary built"`},
		{format: "xml", want: `msg="vocabulary built"`},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.format, slog.LevelInfo)
			logger.Debug("hidden")
			logger.Info("vocabulary built", "classes", 12)

			assert.Contains(t, buf.String(), tt.want)
			assert.NotContains(t, buf.String(), "hidden")
		})
	}
}
