package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RyanBlaney/sonido-poise/coach/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOutputResultYAMLUsesJSONKeys(t *testing.T) {
	v := struct {
		WordsPerMinute float64  `json:"words_per_minute"`
		Notes          []string `json:"notes"`
	}{WordsPerMinute: 142.5, Notes: []string{"Few filler words"}}

	var buf bytes.Buffer
	require.NoError(t, outputResult(&buf, v, "", false))

	out := buf.String()
	assert.Contains(t, out, "words_per_minute: 142.5")
	assert.Contains(t, out, "- Few filler words")
	assert.NotContains(t, out, "{")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 142.5, decoded["words_per_minute"])
}

func TestOutputResultJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "report.json")
	require.NoError(t, outputResult(nil, map[string]int{"filler_count": 3}, path, true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"filler_count": 3}`, string(data))
}

func TestReadTranscript(t *testing.T) {
	t.Cleanup(func() {
		transcript, transcriptFile = "", ""
	})

	transcript = "hello there"
	got, err := readTranscript()
	require.NoError(t, err)
	assert.Equal(t, "hello there", got)

	path := filepath.Join(t.TempDir(), "answer.txt")
	require.NoError(t, os.WriteFile(path, []byte("  um so yes\n"), 0o644))

	transcriptFile = path
	_, err = readTranscript()
	assert.Error(t, err)

	transcript = ""
	got, err = readTranscript()
	require.NoError(t, err)
	assert.Equal(t, "um so yes", got)
}

func TestVersionAndConfigCommands(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "poise dev\n", buf.String())

	buf.Reset()
	rootCmd.SetArgs([]string{"config"})
	require.NoError(t, rootCmd.Execute())
	assert.True(t, strings.HasPrefix(buf.String(), "sample_rate: 16000"))
	assert.Contains(t, buf.String(), "name: strict")
	assert.Contains(t, buf.String(), "timeout: 30s")

	// the printed config loads back
	path := filepath.Join(t.TempDir(), "poise.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	_, err := config.Load(path)
	assert.NoError(t, err)
}

func TestAnalyzeRequiresAudioArgument(t *testing.T) {
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	rootCmd.SetArgs([]string{"analyze"})
	assert.Error(t, rootCmd.Execute())
}
