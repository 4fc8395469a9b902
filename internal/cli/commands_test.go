package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/jmylchreest/tincture/internal/toolkit/css"
	"github.com/jmylchreest/tincture/pkg/adapter"
	"github.com/jmylchreest/tincture/pkg/colour"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("TINCTURE_PREVIEW", "never")
	t.Setenv("TINCTURE_TOOLKIT", "")

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "hex", args: []string{"convert", "sky", "-o", "hex"}, want: "#1FB7FA\n"},
		{name: "hex with alpha", args: []string{"convert", "shadow", "-o", "hex"}, want: "#00000054\n"},
		{name: "rgba", args: []string{"convert", "#f80", "-o", "rgba"}, want: "rgba(255, 136, 0, 1.00)\n"},
		{name: "web", args: []string{"convert", "teal", "-o", "web"}, want: "rgb(0, 128, 128)\n"},
		{name: "hsl", args: []string{"convert", "red", "-o", "hsl"}, want: "hsl(0.0, 100.0%, 50.0%)\n"},
		{name: "hsb", args: []string{"convert", "blue", "-o", "hsb"}, want: "hsb(240.0, 100.0%, 100.0%)\n"},
		{name: "several", args: []string{"convert", "red", "lime", "-o", "hex"}, want: "#FF0000\n#00FF00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("execute(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestConvertTable(t *testing.T) {
	got, _, err := execute(t, "convert", "sky")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Colour", "Hex", "sky", "#1FB7FA", "rgba(31, 183, 250, 1.00)"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "\x1b[") {
		t.Errorf("table output contains escape codes with previews disabled:\n%q", got)
	}

	got, _, err = execute(t, "convert", "sky", "--preview", "always")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "\x1b[48;2;31;183;250m") {
		t.Errorf("--preview always output missing swatch:\n%q", got)
	}
}

func TestConvertJSON(t *testing.T) {
	got, _, err := execute(t, "convert", "red", "shadow", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}

	var colours []colour.RGBA
	if err := json.Unmarshal([]byte(got), &colours); err != nil {
		t.Fatalf("output is not a JSON colour list: %v\n%s", err, got)
	}
	if len(colours) != 2 || colours[0] != colour.Red || colours[1] != colour.Shadow {
		t.Errorf("decoded %v", colours)
	}
}

func TestConvertErrors(t *testing.T) {
	if _, _, err := execute(t, "convert", "ultraviolet"); !errors.Is(err, ErrUnknownColour) {
		t.Errorf("unknown colour error = %v", err)
	}
	if _, _, err := execute(t, "convert", "red", "-o", "xml"); err == nil {
		t.Error("expected error for unknown output format")
	}
	if _, _, err := execute(t, "convert"); err == nil {
		t.Error("expected error without arguments")
	}
	if _, _, err := execute(t, "convert", "red", "--preview", "sometimes"); err == nil {
		t.Error("expected error for invalid --preview")
	}
}

func TestBlendCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "average", args: []string{"blend", "red", "blue", "-o", "hex"}, want: "#800080\n"},
		{name: "weighted", args: []string{"blend", "white", "black", "--mode", "weighted", "--midpoint", "0.25", "-o", "hex"}, want: "#BFBFBF\n"},
		{name: "multiply", args: []string{"blend", "white", "red", "--mode", "multiply", "-o", "hex"}, want: "#FF8080\n"},
		{name: "bounded", args: []string{"blend", "red", "lime", "--mode", "bounded", "-o", "hex"}, want: "#FFFF00\n"},
		{name: "fold", args: []string{"blend", "red", "lime", "blue", "--mode", "bounded", "-o", "hex"}, want: "#FFFFFF\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("execute(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}

	if _, _, err := execute(t, "blend", "red", "blue", "--mode", "screen"); err == nil {
		t.Error("expected error for unknown blend mode")
	}
	if _, _, err := execute(t, "blend", "red"); err == nil {
		t.Error("expected error for a single colour")
	}
}

func TestAdjustCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "darken", args: []string{"adjust", "red", "--darken", "0.2", "-o", "hsl"}, want: "hsl(0.0, 100.0%, 30.0%)\n"},
		{name: "tier", args: []string{"adjust", "red", "--tier", "secondary", "-o", "rgba"}, want: "rgba(255, 0, 0, 0.88)\n"},
		{name: "invert", args: []string{"adjust", "#336699", "--invert", "-o", "hex"}, want: "#CC9966\n"},
		{name: "alpha then opaque", args: []string{"adjust", "red", "--opaque", "--alpha", "0.5", "-o", "rgba"}, want: "rgba(255, 0, 0, 1.00)\n"},
		{name: "opaque false", args: []string{"adjust", "red", "--alpha", "0.5", "--opaque=false", "-o", "rgba"}, want: "rgba(255, 0, 0, 0.50)\n"},
		{name: "luminosity", args: []string{"adjust", "blue", "--luminosity", "0.9", "-o", "hsl"}, want: "hsl(240.0, 100.0%, 90.0%)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v", tt.args, err)
			}
			if got != tt.want {
				t.Errorf("execute(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}

	if _, _, err := execute(t, "adjust", "red"); err == nil {
		t.Error("expected error when no adjustment is selected")
	}
}

func TestContrastCommand(t *testing.T) {
	got, _, err := execute(t, "contrast", "white", "navy", "--json")
	if err != nil {
		t.Fatal(err)
	}

	var report struct {
		BackgroundDark bool        `json:"background_dark"`
		ForegroundDark bool        `json:"foreground_dark"`
		Visible        bool        `json:"visible"`
		Distance       float64     `json:"distance"`
		LightText      bool        `json:"light_text"`
		Text           colour.RGBA `json:"text"`
	}
	if err := json.Unmarshal([]byte(got), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, got)
	}
	if !report.BackgroundDark || report.ForegroundDark || !report.Visible || !report.LightText || report.Text != colour.White || report.Distance <= 0 {
		t.Errorf("report = %+v", report)
	}

	got, _, err = execute(t, "contrast", "white", "navy")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"visible", "true", "background tone", "dark", "#FFFFFF"} {
		if !strings.Contains(got, want) {
			t.Errorf("contrast output missing %q:\n%s", want, got)
		}
	}
}

func TestRandomCommand(t *testing.T) {
	first, _, err := execute(t, "random", "--count", "3", "--seed", "42", "-o", "hex")
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := execute(t, "random", "-n", "3", "--seed", "42", "-o", "hex")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("seeded runs differ:\n%s\n%s", first, second)
	}

	hexLine := regexp.MustCompile(`^#[0-9A-F]{6}$`)
	lines := strings.Split(strings.TrimSpace(first), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, line := range lines {
		if !hexLine.MatchString(line) {
			t.Errorf("line %q is not an opaque hex colour", line)
		}
	}

	if _, _, err := execute(t, "random", "--count", "0"); err == nil {
		t.Error("expected error for --count 0")
	}
}

func TestSeededSourceMatchesRandom(t *testing.T) {
	a := colour.Random(seededSource(7))
	b := colour.Random(seededSource(7))
	if a != b {
		t.Errorf("seededSource(7) not reproducible: %v vs %v", a, b)
	}
	if !colour.IsOpaque(a) {
		t.Errorf("Random() = %v, want opaque", a)
	}
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		name     string
		colours  []string
		template string
		want     string
	}{
		{name: "default", colours: []string{"sky"}, want: "#1FB7FA\n"},
		{name: "darken", colours: []string{"red"}, template: "{{ . | darken 0.2 | hsl }}", want: "hsl(0.0, 100.0%, 30.0%)\n"},
		{name: "with alpha", colours: []string{"red"}, template: "{{ . | withAlpha 0.5 | hexAlpha }}", want: "#FF000080\n"},
		{name: "blend", colours: []string{"white"}, template: `{{ . | blend "multiply" (colour "red") | hex }}`, want: "#FF8080\n"},
		{name: "channels", colours: []string{"red", "lime"}, template: "{{ red . }},{{ green . }}", want: "255,0\n0,255\n"},
		{name: "condition", colours: []string{"graphite", "navy"}, template: "{{ if isDark . }}dark{{ else }}light{{ end }}", want: "light\ndark\n"},
		{name: "packed", colours: []string{"red"}, template: "{{ packed . }}", want: "0xFFFF0000\n"},
		{name: "trim", colours: []string{"sky"}, template: `{{ hex . | trimPrefix "#" | toLower }}`, want: "1fb7fa\n"},
		{name: "foreground", colours: []string{"navy"}, template: "{{ foreground . | hex }}", want: "#FFFFFF\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"format"}, tt.colours...)
			if tt.template != "" {
				args = append(args, "--template", tt.template)
			}
			got, _, err := execute(t, args...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v", args, err)
			}
			if got != tt.want {
				t.Errorf("execute(%v) = %q, want %q", args, got, tt.want)
			}
		})
	}

	if _, _, err := execute(t, "format", "red", "--template", "{{ .Nope"); err == nil {
		t.Error("expected error for malformed template")
	}
	if _, _, err := execute(t, "format", "red", "--template", `{{ . | blend "screen" . }}`); err == nil {
		t.Error("expected error for unknown blend mode")
	}
}

func TestSampleCommand(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "swatch.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	got, _, err := execute(t, "sample", path, "-o", "hex")
	if err != nil {
		t.Fatal(err)
	}
	// Red and blue share HSL luminosity, so both extremes are the first pixel.
	if got != "#800080\n#FF0000\n#FF0000\n" {
		t.Errorf("sample output = %q", got)
	}

	if _, _, err := execute(t, "sample", filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("expected error for missing image")
	}
}

func TestVersionCommand(t *testing.T) {
	got, _, err := execute(t, "version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "tincture version ") {
		t.Errorf("version output = %q", got)
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := execute(t, "convert", "red", "-o", "hex", "--verbose")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(stderr, "configuration loaded") || !strings.Contains(stderr, "parsed colour") {
		t.Errorf("verbose stderr = %q", stderr)
	}

	_, stderr, err = execute(t, "convert", "red", "-o", "hex")
	if err != nil {
		t.Fatal(err)
	}
	if stderr != "" {
		t.Errorf("default stderr = %q, want empty", stderr)
	}
}

// inProcessToolkit serves the css binding without a child process.
type inProcessToolkit struct {
	toolkit css.Toolkit
	closed  bool
}

func (i *inProcessToolkit) Components(ref string) (colour.Record, error) {
	return i.toolkit.Components(ref)
}

func (i *inProcessToolkit) Native(rec colour.Record) (string, error) {
	return i.toolkit.Native(rec)
}

func (i *inProcessToolkit) Info() (adapter.ToolkitInfo, error) {
	return i.toolkit.Info(), nil
}

func (i *inProcessToolkit) Close() { i.closed = true }

func stubToolkit(t *testing.T) *inProcessToolkit {
	t.Helper()
	stub := &inProcessToolkit{toolkit: css.New()}

	original := launchToolkit
	launchToolkit = func(path string, _ *options) (toolkitClient, error) {
		if path != "/opt/css-toolkit" {
			t.Errorf("launched %q, want /opt/css-toolkit", path)
		}
		return stub, nil
	}
	t.Cleanup(func() { launchToolkit = original })
	return stub
}

func TestToolkitCommands(t *testing.T) {
	t.Run("resolve", func(t *testing.T) {
		stub := stubToolkit(t)
		got, _, err := execute(t, "toolkit", "resolve", "hsl(0, 100%, 50%)", "#1fb7fa", "-o", "hex", "--toolkit", "/opt/css-toolkit")
		if err != nil {
			t.Fatal(err)
		}
		if got != "#FF0000\n#1FB7FA\n" {
			t.Errorf("resolve output = %q", got)
		}
		if !stub.closed {
			t.Error("toolkit not closed")
		}
	})

	t.Run("native", func(t *testing.T) {
		stubToolkit(t)
		got, _, err := execute(t, "toolkit", "native", "sky", "shadow", "--toolkit", "/opt/css-toolkit")
		if err != nil {
			t.Fatal(err)
		}
		if got != "#1FB7FA\nrgba(0, 0, 0, 0.33)\n" {
			t.Errorf("native output = %q", got)
		}
	})

	t.Run("info", func(t *testing.T) {
		stubToolkit(t)
		got, _, err := execute(t, "toolkit", "info", "--toolkit", "/opt/css-toolkit")
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(got, "css") || !strings.Contains(got, adapter.ProtocolVersion) {
			t.Errorf("info output = %q", got)
		}
	})

	t.Run("resolve error", func(t *testing.T) {
		stubToolkit(t)
		if _, _, err := execute(t, "toolkit", "resolve", "cmyk(0, 0, 0, 0)", "--toolkit", "/opt/css-toolkit"); !errors.Is(err, css.ErrUnsupported) {
			t.Errorf("resolve error = %v, want ErrUnsupported", err)
		}
	})
}

func TestToolkitNotConfigured(t *testing.T) {
	_, _, err := execute(t, "toolkit", "native", "red")
	if !errors.Is(err, adapter.ErrNoToolkit) {
		t.Errorf("error = %v, want ErrNoToolkit", err)
	}
}
