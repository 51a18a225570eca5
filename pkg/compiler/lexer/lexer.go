package lexer

// Scanner performs lexical analysis on UAScript source. It never fails:
// characters it does not recognize are skipped, and an unterminated string
// consumes the rest of the input.
type Scanner struct {
	source []byte
	cursor int
}

// NewScanner creates a new scanner for the given source.
func NewScanner(source []byte) *Scanner {
	return &Scanner{source: source}
}

// Tokenize scans the whole source into an EOF-terminated token sequence,
// in source order.
func Tokenize(source string) []Token {
	s := NewScanner([]byte(source))
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens
		}
	}
}

// Next returns the next token from the source.
func (s *Scanner) Next() Token {
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]

		if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
			s.cursor++
			continue
		}

		if isLetter(ch) {
			return s.scanIdentifier()
		}
		if isDigit(ch) {
			return s.scanNumber()
		}

		switch ch {
		case '(':
			s.cursor++
			return Token{Kind: KindLParen, Text: "("}
		case ')':
			s.cursor++
			return Token{Kind: KindRParen, Text: ")"}
		case '{':
			s.cursor++
			return Token{Kind: KindLBrace, Text: "{"}
		case '}':
			s.cursor++
			return Token{Kind: KindRBrace, Text: "}"}
		case '+':
			s.cursor++
			return Token{Kind: KindPlus, Text: "+"}
		case '-':
			s.cursor++
			return Token{Kind: KindMinus, Text: "-"}
		case '*':
			if s.peek() == '*' {
				s.cursor += 2
				return Token{Kind: KindPower, Text: "**"}
			}
			s.cursor++
			return Token{Kind: KindStar, Text: "*"}
		case '%':
			s.cursor++
			return Token{Kind: KindPercent, Text: "%"}
		case '/':
			if s.peek() == '/' {
				s.skipComment()
				continue
			}
			s.cursor++
			return Token{Kind: KindSlash, Text: "/"}
		case '<':
			if s.peek() == '=' {
				s.cursor += 2
				return Token{Kind: KindLE, Text: "<="}
			}
			s.cursor++
			return Token{Kind: KindLT, Text: "<"}
		case '>':
			if s.peek() == '=' {
				s.cursor += 2
				return Token{Kind: KindGE, Text: ">="}
			}
			s.cursor++
			return Token{Kind: KindGT, Text: ">"}
		case '=':
			if s.peek() == '=' {
				s.cursor += 2
				return Token{Kind: KindEqEq, Text: "=="}
			}
			if s.peek() == '>' {
				s.cursor += 2
				return Token{Kind: KindArrow, Text: "=>"}
			}
			s.cursor++
			return Token{Kind: KindEq, Text: "="}
		case ',':
			s.cursor++
			return Token{Kind: KindComma, Text: ","}
		case ':':
			s.cursor++
			return Token{Kind: KindColon, Text: ":"}
		case ';':
			s.cursor++
			return Token{Kind: KindSemicolon, Text: ";"}
		case '"':
			return s.scanString()
		default:
			// Unrecognized character, skip it.
			s.cursor++
		}
	}
	return Token{Kind: KindEOF}
}

func (s *Scanner) skipComment() {
	for s.cursor < len(s.source) && s.source[s.cursor] != '\n' {
		s.cursor++
	}
}

func (s *Scanner) scanIdentifier() Token {
	start := s.cursor
	for s.cursor < len(s.source) {
		ch := s.source[s.cursor]
		if !isLetter(ch) && !isDigit(ch) {
			break
		}
		s.cursor++
	}

	text := string(s.source[start:s.cursor])
	if kind, ok := Keywords[text]; ok {
		return Token{Kind: kind, Text: text}
	}
	return Token{Kind: KindIdentifier, Text: text}
}

func (s *Scanner) scanNumber() Token {
	start := s.cursor
	for s.cursor < len(s.source) && (isDigit(s.source[s.cursor]) || s.source[s.cursor] == '.') {
		s.cursor++
	}
	// The run is kept as raw text; a malformed form like 1.2.3 is a
	// downstream concern, not rejected here.
	return Token{Kind: KindNumber, Text: string(s.source[start:s.cursor])}
}

func (s *Scanner) scanString() Token {
	s.cursor++ // opening quote
	start := s.cursor
	for s.cursor < len(s.source) && s.source[s.cursor] != '"' {
		s.cursor++
	}
	text := string(s.source[start:s.cursor])
	if s.cursor < len(s.source) {
		s.cursor++ // closing quote
	}
	return Token{Kind: KindString, Text: text}
}

func (s *Scanner) peek() byte {
	if s.cursor+1 >= len(s.source) {
		return 0
	}
	return s.source[s.cursor+1]
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isLetter is deliberately permissive: any non-ASCII byte counts as a
// letter so Cyrillic identifiers and keywords scan as single runs.
func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch > 127
}
