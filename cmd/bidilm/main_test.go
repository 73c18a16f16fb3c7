package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ieee0824/bidilm/language"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCorpus(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func repeat(line string, n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = line
	}
	return lines
}

func TestSplitInputs(t *testing.T) {
	tests := []struct {
		inputs    []string
		wantPaths []string
		wantFrac  float64
		wantErr   bool
	}{
		{[]string{"a", "b", "0.3"}, []string{"a", "b"}, 0.3, false},
		{[]string{"a", "0"}, []string{"a"}, 0, false},
		{[]string{"a", "b"}, []string{"a", "b"}, 0.1, false},
		{[]string{"0.3"}, nil, 0, true},
		{[]string{"a", "1"}, nil, 0, true},
		{[]string{"a", "-0.2"}, nil, 0, true},
		{nil, nil, 0, true},
	}
	for _, tt := range tests {
		paths, frac, err := splitInputs(tt.inputs, 0.1)
		if tt.wantErr {
			assert.Error(t, err, "%v", tt.inputs)
			continue
		}
		require.NoError(t, err, "%v", tt.inputs)
		assert.Equal(t, tt.wantPaths, paths)
		assert.Equal(t, tt.wantFrac, frac)
	}
}

func TestRun(t *testing.T) {
	path := writeCorpus(t, repeat("the dog barks", 10)...)
	arpaDir := filepath.Join(t.TempDir(), "models")

	var out bytes.Buffer
	err := run(args{Inputs: []string{path, "0.3"}, Format: "text", SaveARPA: arpaDir}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 6, out.String())
	assert.Equal(t, "# Train Sentences = 7 (# words = 21) ", lines[0])
	assert.Equal(t, "# Test Sentences = 3 (# words = 9)", lines[1])
	assert.Equal(t, "Training...", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Word Perplexity = "))
	assert.Equal(t, "Testing...", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "Word Perplexity = "))

	for name, dir := range map[string]language.Direction{"forward.arpa": language.LeftToRight, "backward.arpa": language.RightToLeft} {
		f, err := os.Open(filepath.Join(arpaDir, name))
		require.NoError(t, err)
		m, err := language.LoadARPA(f)
		f.Close()
		require.NoError(t, err)
		assert.Equal(t, dir, m.Direction)
		assert.Contains(t, m.Vocab(), "dog")
	}
}

func TestRunEmptyTestSet(t *testing.T) {
	path := writeCorpus(t, repeat("a b", 4)...)

	var out bytes.Buffer
	require.NoError(t, run(args{Inputs: []string{path, "0"}, Format: "text"}, &out))
	assert.Contains(t, out.String(), "# Test Sentences = 0 (# words = 0)")
	assert.Contains(t, out.String(), "No tokens to evaluate")
}

func TestRunConfig(t *testing.T) {
	path := writeCorpus(t, repeat("a b c", 5)...)
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: text\ntest_fraction: 0.2\nlog: {level: error}\n"), 0o644))

	var out bytes.Buffer
	require.NoError(t, run(args{Inputs: []string{path}, Config: cfgPath}, &out))
	assert.Contains(t, out.String(), "# Train Sentences = 4 (# words = 12)")
	assert.Contains(t, out.String(), "# Test Sentences = 1 (# words = 3)")
}

func TestRunErrors(t *testing.T) {
	path := writeCorpus(t, "a b")
	var out bytes.Buffer

	assert.Error(t, run(args{Inputs: []string{path, "0.5"}, Format: "xml"}, &out))
	assert.Error(t, run(args{Inputs: []string{filepath.Join(t.TempDir(), "missing"), "0.5"}, Format: "text"}, &out))
	assert.Error(t, run(args{Inputs: []string{path, "0.5"}, Config: filepath.Join(t.TempDir(), "none.yaml")}, &out))
}

func TestLoadConfigOverrides(t *testing.T) {
	fwd, bwd := 0.8, 0.2
	cfg, err := loadConfig(args{Format: "text", Normalize: true, Forward: &fwd, Backward: &bwd})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.True(t, cfg.Normalize)
	assert.Equal(t, 0.8, cfg.Weights.Forward)
	assert.Equal(t, 0.2, cfg.Weights.Backward)
}
