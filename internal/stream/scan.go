// README: Quote-aware brace lexer; the single source of truth for "is this JSON region closed yet".
package stream

// Lexer is the character-level state machine used to find the end of a JSON
// object inside free-form model output. Braces occurring inside string
// literals are never counted. The zero value is ready to use.
//
// The same Lexer is used two ways: ScanBalance runs a fresh one over a full
// buffer, while the itinerary accumulator keeps one alive across stream
// increments so that a string literal split over a chunk boundary does not
// corrupt the balance.
type Lexer struct {
	InString   bool
	EscapeNext bool
	Depth      int
}

// Consume advances the lexer by one byte and reports whether this byte closed
// the outermost object, i.e. it is a '}' that returned the depth to zero.
func (l *Lexer) Consume(c byte) bool {
	if l.EscapeNext {
		l.EscapeNext = false
		return false
	}
	if l.InString && c == '\\' {
		l.EscapeNext = true
		return false
	}
	if c == '"' {
		l.InString = !l.InString
		return false
	}
	if l.InString {
		return false
	}
	switch c {
	case '{':
		l.Depth++
	case '}':
		// A '}' before any '{' is prose punctuation, not JSON.
		if l.Depth > 0 {
			l.Depth--
			if l.Depth == 0 {
				return true
			}
		}
	}
	return false
}

// ScanBalance walks s and returns the index of the '}' that closes the first
// balanced top-level object. It assumes s begins at or before the opening '{'
// of interest; locating the start is the caller's job. ok is false when the
// buffer ends before balance returns to zero.
func ScanBalance(s string) (closedAt int, ok bool) {
	var lex Lexer
	for i := 0; i < len(s); i++ {
		if lex.Consume(s[i]) {
			return i, true
		}
	}
	return -1, false
}
