package extract

import "strings"

// snippet returns a context window of at most snippetWidth bytes centered
// on the match at [start, end). The window is trimmed inward to word
// boundaries so it never begins or ends mid-word, except when it touches
// the start or end of the body itself.
func snippet(body string, start, end int) string {
	matchLen := end - start
	if matchLen >= snippetWidth {
		return body[start:end]
	}

	margin := (snippetWidth - matchLen) / 2
	lo := start - margin
	hi := end + margin
	if lo < 0 {
		hi += -lo
		lo = 0
	}
	if hi > len(body) {
		lo -= hi - len(body)
		hi = len(body)
		if lo < 0 {
			lo = 0
		}
	}

	// Trim inward to the nearest word boundary, but never past the match.
	if lo > 0 && !boundary(body[lo-1]) {
		if i := strings.IndexFunc(body[lo:start], isSpace); i >= 0 {
			lo += i + 1
		} else {
			lo = start
		}
	}
	if hi < len(body) && !boundary(body[hi]) {
		if i := strings.LastIndexFunc(body[end:hi], isSpace); i >= 0 {
			hi = end + i
		} else {
			hi = end
		}
	}

	return strings.TrimSpace(body[lo:hi])
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func boundary(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
