// Package corpus loads tokenized sentences and splits them into training and
// test subsets.
package corpus

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// Format selects the reader used for corpus files.
type Format string

const (
	// Text has one sentence per line, tokens separated by whitespace.
	Text Format = "text"
	// POS is the LDC part-of-speech tagged format ("word/TAG" tokens).
	POS Format = "pos"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, POS:
		return f, nil
	}
	return "", errors.Errorf("unknown corpus format %q", s)
}

// Split partitions sentences into a training prefix and a test suffix holding
// round(len(sentences)*testFraction) sentences. The returned slices share
// storage with sentences.
func Split(sentences [][]string, testFraction float64) (train, test [][]string) {
	n := len(sentences)
	numTest := int(math.Round(float64(n) * testFraction))
	if numTest < 0 {
		numTest = 0
	}
	if numTest > n {
		numTest = n
	}
	return sentences[:n-numTest], sentences[n-numTest:]
}

// WordCount returns the total number of tokens in sentences.
func WordCount(sentences [][]string) int {
	count := 0
	for _, s := range sentences {
		count += len(s)
	}
	return count
}
