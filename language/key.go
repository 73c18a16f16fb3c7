package language

import "strings"

// KeySeparator joins the two halves of a bigram key. Tokens containing it
// make BigramToken1/BigramToken2 ambiguous; corpus readers never produce such
// tokens because they split on whitespace.
const KeySeparator = "\n"

// BigramKey returns the canonical string key for the bigram (token1, token2).
func BigramKey(token1, token2 string) string {
	return token1 + KeySeparator + token2
}

// BigramToken1 returns the part of key before the first separator.
func BigramToken1(key string) string {
	if i := strings.Index(key, KeySeparator); i >= 0 {
		return key[:i]
	}
	return key
}

// BigramToken2 returns the part of key after the first separator, or "" if
// key has none.
func BigramToken2(key string) string {
	if i := strings.Index(key, KeySeparator); i >= 0 {
		return key[i+len(KeySeparator):]
	}
	return ""
}
