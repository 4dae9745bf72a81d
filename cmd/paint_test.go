package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/stars/internal/config"
	"github.com/marcus/stars/pkg/widget"
)

func TestPaintPlain(t *testing.T) {
	tests := []struct {
		name   string
		length int
		value  float64
		half   bool
		want   string
	}{
		{"half value", 5, 3.5, true, "FFFHO 3.5/5\n"},
		{"whole mode floors", 5, 3.5, false, "FFFOO 3/5\n"},
		{"zero", 4, 0, false, "OOOO 0/4\n"},
		{"clamped", 3, 9, false, "FFF 3/3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Length, cfg.Value, cfg.AllowHalf = tt.length, tt.value, tt.half

			var buf bytes.Buffer
			if err := paint(&buf, cfg, true); err != nil {
				t.Fatalf("paint: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("paint = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestPaintStyled(t *testing.T) {
	cfg := config.Default()
	cfg.Length, cfg.Value = 3, 2
	cfg.Glyphs = widget.Glyphs{Filled: "#", Half: "+", Outline: "."}

	var buf bytes.Buffer
	if err := paint(&buf, cfg, false); err != nil {
		t.Fatalf("paint: %v", err)
	}
	got := ansi.Strip(buf.String())
	if !strings.HasPrefix(got, "# # . ") || !strings.Contains(got, "2/3") {
		t.Errorf("paint = %q", got)
	}
}
