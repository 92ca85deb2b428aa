package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/changed/internal/ui/output"
)

func TestProfile(t *testing.T) {
	tests := []struct {
		name    string
		noColor string
		mode    output.Mode
		want    termenv.Profile
	}{
		{name: "no color detect", noColor: "1", mode: output.Detect, want: termenv.Ascii},
		{name: "no color basic", noColor: "1", mode: output.Basic, want: termenv.Ascii},
		{name: "basic", noColor: "", mode: output.Basic, want: termenv.ANSI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NO_COLOR", tt.noColor)
			assert.Equal(t, tt.want, output.Profile(tt.mode))
		})
	}
}

func TestProfile_Detect(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	p := output.Profile(output.Detect)
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii)
}

func TestNew(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	out := output.New(&buf, output.Detect)

	_, _ = out.WriteString(out.String("scenario").Foreground(out.Color("#22A06B")).String())
	assert.Equal(t, "scenario", buf.String())
}

func TestNew_NilWriter(t *testing.T) {
	assert.NotNil(t, output.New(nil, output.Basic))
}
