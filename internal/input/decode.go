package input

// TokenKind identifies a decoded unit of terminal input.
type TokenKind int

const (
	TokenKey       TokenKind = iota // A game key
	TokenClick                      // Mouse button press, 1-based cell X, Y
	TokenInterrupt                  // Ctrl-C
)

// Token is one decoded key press or mouse report.
type Token struct {
	Kind TokenKind
	Key  Key
	X, Y int
}

// Decode parses raw terminal bytes into tokens. Arrow keys arrive as CSI
// sequences (ESC [ A-D); mouse reports use SGR encoding (ESC [ < b ; x ; y M).
// Bytes of an escape sequence cut off at the end of buf are returned in rest.
// Unknown bytes and sequences are skipped.
func Decode(buf []byte) (tokens []Token, rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b != '\x1b' {
			if tok, ok := byteToken(b); ok {
				tokens = append(tokens, tok)
			}
			continue
		}

		// Lone ESC at the end may be the start of a sequence
		if i+1 >= len(buf) {
			return tokens, buf[i:]
		}
		if buf[i+1] != '[' {
			continue
		}
		if i+2 >= len(buf) {
			return tokens, buf[i:]
		}

		switch buf[i+2] {
		case 'C': // Right arrow
			tokens = append(tokens, Token{Kind: TokenKey, Key: KeyRight})
			i += 2
		case 'D': // Left arrow
			tokens = append(tokens, Token{Kind: TokenKey, Key: KeyLeft})
			i += 2
		case 'A', 'B': // Up/down arrows are unused
			i += 2
		case '<':
			tok, n, complete := decodeSGRMouse(buf[i+3:])
			if !complete {
				return tokens, buf[i:]
			}
			if tok != nil {
				tokens = append(tokens, *tok)
			}
			i += 2 + n
		default:
			i += 2
		}
	}
	return tokens, nil
}

// byteToken maps a single byte to a key token.
func byteToken(b byte) (Token, bool) {
	key := KeyNone
	switch b {
	case 'a', 'A', 'h', 'H':
		key = KeyLeft
	case 'd', 'D', 'l', 'L':
		key = KeyRight
	case ' ':
		key = KeyFire
	case 'q', 'Q':
		key = KeyQuit
	case 'p', 'P', '\r', '\n':
		key = KeyPlay
	case '\x03':
		return Token{Kind: TokenInterrupt}, true
	}
	if key == KeyNone {
		return Token{}, false
	}
	return Token{Kind: TokenKey, Key: key}, true
}

// maxMouseDigits bounds each number of a mouse report.
const maxMouseDigits = 5

// decodeSGRMouse parses "b;x;yM" or "b;x;ym" following "ESC [ <".
// Returns the click token (nil for releases, motion and other buttons),
// the number of bytes consumed, and whether the report was complete.
func decodeSGRMouse(buf []byte) (*Token, int, bool) {
	var fields [3]int
	field := 0
	digits := 0
	for n, b := range buf {
		switch {
		case b >= '0' && b <= '9':
			if digits == maxMouseDigits {
				return nil, n + 1, true // oversized, drop it
			}
			fields[field] = fields[field]*10 + int(b-'0')
			digits++
		case b == ';':
			if field == 2 || digits == 0 {
				return nil, n + 1, true // malformed, drop it
			}
			field++
			digits = 0
		case b == 'M' || b == 'm':
			if field != 2 || digits == 0 {
				return nil, n + 1, true
			}
			button := fields[0]
			// Left button press without modifiers or motion
			if b == 'M' && button == 0 {
				return &Token{Kind: TokenClick, X: fields[1], Y: fields[2]}, n + 1, true
			}
			return nil, n + 1, true
		default:
			return nil, n + 1, true
		}
	}
	return nil, len(buf), false
}
