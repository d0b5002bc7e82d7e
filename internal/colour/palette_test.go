package colour

import (
	"strings"
	"testing"
)

func TestNewPalette(t *testing.T) {
	colors := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}

	palette := NewPalette(colors)

	if palette == nil {
		t.Fatal("NewPalette returned nil")
	}

	if palette.Len() != 3 {
		t.Errorf("Expected palette length 3, got %d", palette.Len())
	}
}

func TestPaletteToHex(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	})

	want := []string{"#ff0000", "#00ff00", "#0000ff"}
	got := palette.ToHex()

	if len(got) != len(want) {
		t.Fatalf("ToHex() returned %d colours, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ToHex()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestPaletteToJSON(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
	})

	jsonBytes, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	jsonStr := string(jsonBytes)
	expectedStrings := []string{
		`"count": 2`,
		`"hex": "#ff0000"`,
		`"hex": "#00ff00"`,
		`"r": 255`,
		`"g": 255`,
	}

	for _, expected := range expectedStrings {
		if !strings.Contains(jsonStr, expected) {
			t.Errorf("ToJSON() output missing expected string: %s", expected)
		}
	}
}

func TestPaletteGet(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
	})

	tests := []struct {
		name    string
		index   int
		wantErr bool
	}{
		{
			name:  "valid index",
			index: 0,
		},
		{
			name:  "last index",
			index: 1,
		},
		{
			name:    "negative index",
			index:   -1,
			wantErr: true,
		},
		{
			name:    "index out of bounds",
			index:   2,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := palette.Get(tt.index)
			if (err != nil) != tt.wantErr {
				t.Errorf("Get() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPaletteAll(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	})

	count := 0
	palette.All()(func(i int, c RGB) bool {
		if i != count {
			t.Errorf("Expected index %d, got %d", count, i)
		}
		if c != palette.Colors[i] {
			t.Errorf("Colour at index %d = %+v, want %+v", i, c, palette.Colors[i])
		}
		count++
		return true
	})

	if count != 3 {
		t.Errorf("Expected to iterate over 3 colours, got %d", count)
	}
}

func TestPaletteString(t *testing.T) {
	if got := NewPalette(nil).String(); got != "Empty palette" {
		t.Errorf("String() = %q, want %q", got, "Empty palette")
	}

	got := NewPalette([]RGB{{R: 255, G: 0, B: 0}}).String()
	if !strings.Contains(got, "#ff0000") {
		t.Errorf("String() = %q, missing hex code", got)
	}
}
