package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag of c and its children back to its default.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the root command with args and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "color-tools-mcp dev")
	assert.Contains(t, out, "Git commit: unknown")
}

func TestCallCommand(t *testing.T) {
	out, err := run(t, "", "call", "color_complementary", `{"hex":"#ff0000"}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"hex": "#00ffff"`)

	out, err = run(t, "", "call", "color_darken", `{"rgb":{"r":255,"g":255,"b":255},"percent":100}`)
	require.NoError(t, err)
	assert.Contains(t, out, `"hex": "#010101"`)
}

func TestCallCommand_Errors(t *testing.T) {
	_, err := run(t, "", "call", "color_lighten", `{not json`)
	assert.ErrorContains(t, err, "not valid JSON")

	_, err = run(t, "", "call", "color_nope")
	assert.ErrorContains(t, err, "unknown tool")

	_, err = run(t, "", "call", "color_lighten", `{"hex":"#ff0000","percent":101}`)
	assert.ErrorContains(t, err, "between 0 and 100")

	_, err = run(t, "", "call")
	assert.Error(t, err, "tool name is required")
}

func TestCallCommand_List(t *testing.T) {
	out, err := run(t, "", "call", "--list")
	require.NoError(t, err)
	assert.Contains(t, out, "color_hex_to_rgb")
	assert.Contains(t, out, "color_tetradic")
}

func TestServeCommand(t *testing.T) {
	in := `{"jsonrpc":"2.0","id":1,"method":"initialize"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"color_rgb_to_hex","arguments":{"rgb":{"r":0,"g":128,"b":255}}}}` + "\n"

	out, err := run(t, in, "serve")
	require.NoError(t, err)
	assert.Contains(t, out, `"protocolVersion":"2024-11-05"`)
	assert.Contains(t, out, `#0080ff`)
}

func TestSwatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")

	out, err := run(t, "", "swatch", "#ff0000", "00ff00", "--out", path, "--cell-size", "12")
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	f, err := os.Open(path)
	require.NoError(t, err)
	img, err := png.Decode(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, 24, img.Bounds().Dx())
	assert.Equal(t, 12, img.Bounds().Dy())

	_, err = run(t, "", "swatch", "#ff0000", "--scheme", "--out", path, "--cell-size", "10")
	require.NoError(t, err)
	f, err = os.Open(path)
	require.NoError(t, err)
	img, err = png.Decode(f)
	f.Close()
	require.NoError(t, err)
	assert.Equal(t, 70, img.Bounds().Dx())
}

func TestSwatchCommand_InvalidColor(t *testing.T) {
	_, err := run(t, "", "swatch", "#ggg000", "--out", filepath.Join(t.TempDir(), "x.png"))
	assert.ErrorContains(t, err, "invalid hex color")
}

func TestConfigFlag_Unreadable(t *testing.T) {
	t.Cleanup(func() { viper.SetConfigFile("") })
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("swatch: [unclosed\n"), 0o600))

	for _, path := range []string{filepath.Join(dir, "missing.yaml"), bad} {
		_, err := run(t, "", "--config", path, "version")
		assert.ErrorContains(t, err, "failed to read config", path)
	}
}

func TestParseColors(t *testing.T) {
	colors, err := parseColors([]string{"#000000", "FFFFFF"})
	require.NoError(t, err)
	require.Len(t, colors, 2)
	assert.Equal(t, 255, colors[1].B)

	_, err = parseColors([]string{"#000"})
	assert.Error(t, err)
}
