package css

import (
	"errors"
	"testing"

	"github.com/jmylchreest/tincture/pkg/adapter"
	"github.com/jmylchreest/tincture/pkg/colour"
)

func TestComponents(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want colour.RGBA
	}{
		{name: "long hex", ref: "#1FB7FA", want: colour.Sky},
		{name: "short hex", ref: "#f00", want: colour.Red},
		{name: "hex with alpha", ref: "#000000ff", want: colour.Black},
		{name: "short hex with alpha", ref: "#fff0", want: colour.New(1, 1, 1, 0)},
		{name: "rgb", ref: "rgb(255, 0, 0)", want: colour.Red},
		{name: "rgba", ref: "rgba(0, 0, 255, 0.5)", want: colour.New(0, 0, 1, 0.5)},
		{name: "space separated", ref: "rgb(0 255 0 / 25%)", want: colour.New(0, 1, 0, 0.25)},
		{name: "percentages", ref: "rgb(100%, 50%, 0%)", want: colour.NewOpaque(1, 0.5, 0)},
		{name: "named", ref: "Teal", want: colour.FromWeb(0, 128, 128, 1)},
		{name: "palette name", ref: "graphite", want: colour.Graphite},
		{name: "transparent", ref: "transparent", want: colour.Clear},
		{name: "padded", ref: "  #000  ", want: colour.Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := adapter.FromNative[string](New(), tt.ref)
			if err != nil {
				t.Fatalf("Components(%q) error = %v", tt.ref, err)
			}
			if !colour.ApproxEqual(got, tt.want, 1e-9) {
				t.Errorf("Components(%q) = %v, want %v", tt.ref, got, tt.want)
			}
		})
	}
}

func TestComponentsHSL(t *testing.T) {
	tests := []struct {
		ref  string
		want string
	}{
		{ref: "hsl(0, 100%, 50%)", want: "FF0000"},
		{ref: "hsl(120deg, 100%, 50%)", want: "00FF00"},
		{ref: "hsl(240, 100%, 50%)", want: "0000FF"},
		{ref: "hsl(360, 100%, 50%)", want: "FF0000"},
		{ref: "hsl(-120, 100%, 50%)", want: "0000FF"},
		{ref: "hsl(-480, 100%, 50%)", want: "0000FF"},
		{ref: "hsl(1e300, 100%, 50%)", want: "FF0000"},
		{ref: "hsl(-1e300, 100%, 50%)", want: "FF0000"},
		{ref: "hsl(0, 0%, 100%)", want: "FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			rec, err := New().Components(tt.ref)
			if err != nil {
				t.Fatalf("Components(%q) error = %v", tt.ref, err)
			}
			if got := colour.Hex(colour.Decode(rec)); got != tt.want {
				t.Errorf("Components(%q) = %s, want %s", tt.ref, got, tt.want)
			}
		})
	}

	rec, err := New().Components("hsla(0, 100%, 50%, 0.3)")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Alpha != 0.3 {
		t.Errorf("hsla alpha = %v, want 0.3", rec.Alpha)
	}
}

func TestComponentsErrors(t *testing.T) {
	tests := []string{
		"",
		"#12345",
		"rgb(1, 2)",
		"rgb(a, b, c)",
		"hsl(x, 50%, 50%)",
		"cmyk(0, 0, 0, 0)",
		"notacolour",
	}

	for _, ref := range tests {
		t.Run(ref, func(t *testing.T) {
			if _, err := New().Components(ref); err == nil {
				t.Errorf("Components(%q) expected error", ref)
			}
		})
	}

	if _, err := New().Components("cmyk(0, 0, 0, 0)"); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Components(cmyk) error = %v, want ErrUnsupported", err)
	}
}

func TestNative(t *testing.T) {
	tests := []struct {
		name string
		in   colour.RGBA
		want string
	}{
		{name: "opaque", in: colour.Sky, want: "#1FB7FA"},
		{name: "translucent", in: colour.New(1, 0.5, 0, 0.5), want: "rgba(255, 128, 0, 0.5)"},
		{name: "shadow", in: colour.Shadow, want: "rgba(0, 0, 0, 0.33)"},
		{name: "clear", in: colour.Clear, want: "rgba(0, 0, 0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := adapter.ToNative[string](New(), tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Native(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNativeRoundTrip(t *testing.T) {
	for _, c := range []colour.RGBA{colour.Sky, colour.Orange, colour.Shadow, colour.FromWeb(12, 34, 56, 0.75)} {
		ref, err := New().Native(colour.Encode(c))
		if err != nil {
			t.Fatal(err)
		}
		rec, err := New().Components(ref)
		if err != nil {
			t.Fatalf("Components(%q) error = %v", ref, err)
		}
		if got := colour.Decode(rec); colour.ToWeb(got) != colour.ToWeb(c) || got.Alpha() != c.Alpha() {
			t.Errorf("round trip %v -> %q -> %v", c, ref, got)
		}
	}
}

func TestInfo(t *testing.T) {
	info := New().Info()
	if info.Name != "css" || info.ProtocolVersion != adapter.ProtocolVersion {
		t.Errorf("Info() = %+v", info)
	}
}
