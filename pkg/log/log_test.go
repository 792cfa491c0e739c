package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetFormat(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    LogFormat
		wantErr bool
	}{
		{"json", "json", JSON, false},
		{"empty is json", "", JSON, false},
		{"text", "text", Text, false},
		{"pretty", "pretty", Pretty, false},
		{"unknown", "yaml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SetFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, GetLogFormat())
		})
	}
}

func TestSetOutputAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	assert.NoError(t, SetLevelString("error"))
	defer SetLevelString("info")

	Info().Msg("hidden")
	assert.Empty(t, buf.String())

	Error().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Equal(t, ErrorLevel, GetLevel())

	assert.Error(t, SetLevelString("loud"))
}
