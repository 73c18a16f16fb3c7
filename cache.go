package bidilm

import (
	"encoding/binary"

	spooky "github.com/dgryski/go-spooky"
	lru "github.com/hashicorp/golang-lru/v2"
)

type sentenceKey [2]uint64

// scoreCache maps a sentence fingerprint to its log probability.
type scoreCache struct {
	lru *lru.Cache[sentenceKey, float64]
}

func newScoreCache(size int) *scoreCache {
	c, err := lru.New[sentenceKey, float64](size)
	if err != nil {
		// only returned for size <= 0
		panic(err)
	}
	return &scoreCache{lru: c}
}

// fingerprint hashes the token count and every token prefixed by its length,
// so no two distinct sentences share an encoding.
func fingerprint(sentence []string) sentenceKey {
	n := binary.MaxVarintLen64
	for _, w := range sentence {
		n += binary.MaxVarintLen64 + len(w)
	}
	buf := make([]byte, 0, n)
	buf = binary.AppendUvarint(buf, uint64(len(sentence)))
	for _, w := range sentence {
		buf = binary.AppendUvarint(buf, uint64(len(w)))
		buf = append(buf, w...)
	}

	var k sentenceKey
	spooky.Hash128(buf, &k[0], &k[1])
	return k
}

func (c *scoreCache) get(sentence []string) (float64, bool) {
	return c.lru.Get(fingerprint(sentence))
}

func (c *scoreCache) add(sentence []string, logProb float64) {
	c.lru.Add(fingerprint(sentence), logProb)
}

func (c *scoreCache) purge() {
	c.lru.Purge()
}

func (c *scoreCache) len() int {
	return c.lru.Len()
}
