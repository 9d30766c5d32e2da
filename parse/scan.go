package parse

// The scanners below are the shared lexical layer for every dialect state
// machine: each takes the input span and a start offset and returns the new
// offset, never consuming on failure.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// skipSpaces returns the offset of the first non-whitespace byte at or after
// pos.
func skipSpaces(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

// parseDoubleDigit reads a one- or two-digit field at pos. On success it
// returns the value and the offset past the digits; if pos does not start
// with a digit it fails without consuming.
func parseDoubleDigit(s string, pos int) (int32, int, bool) {
	if pos >= len(s) || !isDigit(s[pos]) {
		return 0, pos, false
	}
	result := int32(s[pos] - '0')
	pos++
	if pos < len(s) && isDigit(s[pos]) {
		result = int32(s[pos]-'0') + result*10
		pos++
	}
	return result, pos, true
}
