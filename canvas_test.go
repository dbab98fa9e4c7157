package canvas

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestFormatText(t *testing.T) {
	tests := []struct {
		f    Format
		name string
	}{
		{PackedRGB, "packed-rgb"},
		{PlanarRGBA, "planar-rgba"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := tt.f.MarshalText()
			if err != nil || string(b) != tt.name {
				t.Fatalf("MarshalText = %q, %v", b, err)
			}
			var got Format
			if err := got.UnmarshalText([]byte(tt.name)); err != nil || got != tt.f {
				t.Errorf("UnmarshalText(%q) = %v, %v", tt.name, got, err)
			}
		})
	}
	var f Format
	if err := f.UnmarshalText([]byte("rgb565")); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := Format(9).MarshalText(); err == nil {
		t.Error("expected error marshaling unknown format")
	}
	if s := Format(9).String(); s != "Format(9)" {
		t.Errorf("String = %q", s)
	}
}

func TestBoundsPolicyText(t *testing.T) {
	tests := []struct {
		p    BoundsPolicy
		name string
	}{
		{DropOutOfRange, "drop"},
		{ReportOutOfRange, "report"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.p.String() != tt.name {
				t.Errorf("String = %q, want %q", tt.p.String(), tt.name)
			}
			var got BoundsPolicy
			if err := got.UnmarshalText([]byte(tt.name)); err != nil || got != tt.p {
				t.Errorf("UnmarshalText(%q) = %v, %v", tt.name, got, err)
			}
		})
	}
	var p BoundsPolicy
	if err := p.UnmarshalText([]byte("panic")); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestFormatWriterSelection(t *testing.T) {
	pix := make([]byte, 4)
	c := RGBA{R: 1, G: 2, B: 3, A: 4}

	PlanarRGBA.writer()(pix, 0, c)
	if !bytes.Equal(pix, []byte{1, 2, 3, 4}) {
		t.Errorf("planar = %v", pix)
	}
	PackedRGB.writer()(pix, 0, c)
	if !bytes.Equal(pix, []byte{3, 2, 1, 0}) {
		t.Errorf("packed = %v, want little-endian (R<<16)|(G<<8)|B", pix)
	}
}

// --- Logger ---

func TestLoggerDefaultsSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}

func TestLoopLogsOutOfRangeFrames(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	surface := NewMemorySurface(8, 8, PackedRGB)
	renderer := RenderFunc(func(s *PixelSink) {
		_ = s.WritePixel(100, 100, RGBA{})
	})
	l, err := NewLoop(surface, renderer, LoopConfig{Debug: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := l.HandleEvent(Event{Type: EventRedraw}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"loop started", "out-of-range writes", "dropped=1", "canvas: frame"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
