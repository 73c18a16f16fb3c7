package corpus

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identical(n int) [][]string {
	sentences := make([][]string, n)
	for i := range sentences {
		sentences[i] = []string{"the", "dog", "barks"}
	}
	return sentences
}

func TestSplit(t *testing.T) {
	train, test := Split(identical(10), 0.3)
	assert.Len(t, train, 7)
	assert.Len(t, test, 3)
}

func TestSplitRounds(t *testing.T) {
	tests := []struct {
		n        int
		frac     float64
		wantTest int
	}{
		{10, 0.25, 3}, // 2.5 rounds up
		{10, 0.24, 2},
		{3, 0.5, 2},
		{1, 0.4, 0},
		{0, 0.5, 0},
	}
	for _, tt := range tests {
		train, test := Split(identical(tt.n), tt.frac)
		assert.Len(t, test, tt.wantTest, "n=%d frac=%g", tt.n, tt.frac)
		assert.Len(t, train, tt.n-tt.wantTest, "n=%d frac=%g", tt.n, tt.frac)
	}
}

func TestSplitZeroFraction(t *testing.T) {
	all := identical(5)
	train, test := Split(all, 0)
	assert.Equal(t, all, train)
	assert.Empty(t, test)
}

func TestSplitKeepsOrder(t *testing.T) {
	sentences := [][]string{{"a"}, {"b"}, {"c"}, {"d"}}
	train, test := Split(sentences, 0.5)
	assert.Equal(t, [][]string{{"a"}, {"b"}}, train)
	assert.Equal(t, [][]string{{"c"}, {"d"}}, test)
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 30, WordCount(identical(10)))
	assert.Zero(t, WordCount(nil))
	assert.Equal(t, 1, WordCount([][]string{{}, {"x"}}))
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("POS")
	require.NoError(t, err)
	assert.Equal(t, POS, f)

	f, err = ParseFormat("text")
	require.NoError(t, err)
	assert.Equal(t, Text, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestReadText(t *testing.T) {
	in := "the dog barks\n\n  a  cat   sleeps \n"
	sentences, err := ReadText(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"the", "dog", "barks"}, {"a", "cat", "sleeps"}}, sentences)
}

const posSample = `*x*                                                                     *x*
*x* Copyright (C) 1990 University of Pennsylvania                        *x*

======================================

[ Pierre/NNP Vinken/NNP ]
,/,
[ 61/CD years/NNS ]
old/JJ ./.

======================================

[ He/PRP ] said/VBD 1\/2/CD of/IN
[ it/PRP ]
======================================
`

func TestReadPOSTagged(t *testing.T) {
	sentences, err := ReadPOSTagged(strings.NewReader(posSample))
	require.NoError(t, err)
	require.Len(t, sentences, 2)
	assert.Equal(t, []string{"Pierre", "Vinken", ",", "61", "years", "old", "."}, sentences[0])
	assert.Equal(t, []string{"He", "said", "1/2", "of", "it"}, sentences[1])
}

func TestReadPOSTaggedPeriodEndsSentence(t *testing.T) {
	in := "The/DT end/NN ./. Next/JJ one/CD ./.\n"
	sentences, err := ReadPOSTagged(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"The", "end", "."}, {"Next", "one", "."}}, sentences)
}

func TestSplitTagged(t *testing.T) {
	tests := []struct {
		tok, word, tag string
	}{
		{"dog/NN", "dog", "NN"},
		{"1\\/2/CD", "1/2", "CD"},
		{"and\\/or/CC", "and/or", "CC"},
		{"untagged", "untagged", ""},
		{"//:", "/", ":"},
	}
	for _, tt := range tests {
		word, tag := splitTagged(tt.tok)
		assert.Equal(t, tt.word, word, tt.tok)
		assert.Equal(t, tt.tag, tag, tt.tok)
	}
}

func TestRead(t *testing.T) {
	_, err := Read(strings.NewReader("x"), Format("xml"))
	assert.Error(t, err)

	s, err := Read(strings.NewReader("a b\n"), Text)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}}, s)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b1\nb2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.txt"), []byte("c1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("h\n"), 0o644))

	sentences, err := Load([]string{dir}, Text)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a1"}, {"b1"}, {"b2"}, {"c1"}}, sentences)
}

func TestLoadFilesInArgumentOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "z.txt")
	second := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(first, []byte("z\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("a\n"), 0o644))

	sentences, err := Load([]string{first, second}, Text)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"z"}, {"a"}}, sentences)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load([]string{filepath.Join(t.TempDir(), "nope")}, Text)
	assert.Error(t, err)
}

func TestLoadNormalization(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "c.txt")
	// "é" as e + combining acute accent, and precomposed.
	require.NoError(t, os.WriteFile(path, []byte("cafe\u0301 caf\u00e9\n"), 0o644))

	raw, err := Load([]string{path}, Text)
	require.NoError(t, err)
	assert.NotEqual(t, raw[0][0], raw[0][1])

	normalized, err := Load([]string{path}, Text, WithNormalization())
	require.NoError(t, err)
	assert.Equal(t, normalized[0][0], normalized[0][1])
	assert.Equal(t, "caf\u00e9", normalized[0][0])
}
