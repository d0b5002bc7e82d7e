package cli

import (
	"strings"
	"testing"

	"github.com/rustpress-net/chroma/internal/colour"
)

func TestFormatPalette(t *testing.T) {
	palette := colour.NewPalette([]colour.RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 128, B: 255},
	})

	tests := []struct {
		name    string
		format  string
		want    []string
		wantErr bool
	}{
		{
			name:   "hex lines",
			format: "hex",
			want:   []string{"#ff0000", "#0080ff"},
		},
		{
			name:   "rgb lines",
			format: "rgb",
			want:   []string{"rgb(255, 0, 0)", "rgb(0, 128, 255)"},
		},
		{
			name:   "json",
			format: "json",
			want:   []string{`"count": 2`, `"hex": "#ff0000"`},
		},
		{
			name:    "unsupported",
			format:  "toml",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatPalette(palette, tt.format, false)
			if (err != nil) != tt.wantErr {
				t.Fatalf("formatPalette() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("formatPalette(%s) output missing %q:\n%s", tt.format, want, got)
				}
			}
		})
	}
}
