package search

import "strings"

// ═══════════════════════════════════════════════════════════════════════════════
// TOKENIZATION
// ═══════════════════════════════════════════════════════════════════════════════
// Tokens are maximal runs of non-whitespace bytes — nothing more clever
// than that. There is no lowercasing, no Unicode segmentation, and no
// stemming: matching is exact, byte for byte. A token is invalid if it
// contains any ASCII control byte (0x00-0x1F); the caller decides
// whether that means InvalidText (indexing) or InvalidQuery (querying).
//
// Example:
//
//	tokenize("cat in the  city") → ["cat", "in", "the", "city"]
// ═══════════════════════════════════════════════════════════════════════════════

// tokenize splits text on whitespace, collapsing runs of whitespace and
// discarding leading/trailing whitespace, same as strings.Fields.
func tokenize(text string) []string {
	return strings.Fields(text)
}

// hasControlByte reports whether s contains a byte in [0x00, 0x1F].
func hasControlByte(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] <= 0x1F {
			return true
		}
	}
	return false
}

// isStopWord reports whether token is in the index's stop-word set.
// Comparison is exact byte equality; there is no case folding.
func isStopWord(stopWords map[string]struct{}, token string) bool {
	_, ok := stopWords[token]
	return ok
}

// tokenizeNoStop splits text into tokens, validates every token is
// control-byte-free, and removes stop-words from the remaining set. The
// returned slice's length is the term-frequency normalization divisor:
// normalization is relative to non-stop-word tokens only.
//
// Returns a *Error of KindInvalidText on the first invalid token.
func tokenizeNoStop(stopWords map[string]struct{}, text string) ([]string, error) {
	raw := tokenize(text)
	words := make([]string, 0, len(raw))
	for _, tok := range raw {
		if hasControlByte(tok) {
			return nil, newError(KindInvalidText, "token %q contains a control character", tok)
		}
		if !isStopWord(stopWords, tok) {
			words = append(words, tok)
		}
	}
	return words, nil
}
