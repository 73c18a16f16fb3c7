package language

import "testing"

func TestBigramKey(t *testing.T) {
	tests := []struct {
		t1, t2 string
	}{
		{"東京", "タワー"},
		{StartToken, "a"},
		{"a", ""},
		{"", "b"},
	}
	for _, tt := range tests {
		key := BigramKey(tt.t1, tt.t2)
		if got := BigramToken1(key); got != tt.t1 {
			t.Errorf("BigramToken1(%q) = %q, want %q", key, got, tt.t1)
		}
		if got := BigramToken2(key); got != tt.t2 {
			t.Errorf("BigramToken2(%q) = %q, want %q", key, got, tt.t2)
		}
	}
}

func TestBigramKeyNoSeparator(t *testing.T) {
	if got := BigramToken1("abc"); got != "abc" {
		t.Errorf("BigramToken1 = %q, want %q", got, "abc")
	}
	if got := BigramToken2("abc"); got != "" {
		t.Errorf("BigramToken2 = %q, want empty", got)
	}
}

func TestBigramKeyAmbiguous(t *testing.T) {
	// A separator inside the first token splits at the wrong place.
	key := BigramKey("a\nb", "c")
	if got := BigramToken1(key); got != "a" {
		t.Errorf("BigramToken1 = %q, want %q", got, "a")
	}
	if got := BigramToken2(key); got != "b\nc" {
		t.Errorf("BigramToken2 = %q, want %q", got, "b\nc")
	}
}
