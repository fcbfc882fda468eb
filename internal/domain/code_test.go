package domain

import (
	"strings"
	"testing"
)

func TestNewConfirmationCodeShape(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := NewConfirmationCode()
		if err != nil {
			t.Fatalf("NewConfirmationCode returned error: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("code %q has length %d, want 6", code, len(code))
		}
		for _, ch := range code {
			if !strings.ContainsRune(codeAlphabet, ch) {
				t.Fatalf("code %q contains %q outside the alphabet", code, ch)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Fatalf("100 codes produced %d distinct values", len(seen))
	}
}

func TestCodeAlphabetExcludesAmbiguousChars(t *testing.T) {
	for _, ch := range "IO01" {
		if strings.ContainsRune(codeAlphabet, ch) {
			t.Fatalf("alphabet must not contain %q", ch)
		}
	}
}
