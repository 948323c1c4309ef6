package codec

// Bytes with a role in the grammar.
const (
	space       = ' '
	minus       = '-'
	slash       = '/'
	quote       = '\''
	colon       = ':'
	openBracket = '['
	doubleQuote = '"'
)

// Terminator words closing a bracketed group.
const (
	WordTuple = "t"
	WordList  = "l"
	WordSet   = "s"
	WordMap   = "m"
)

var (
	atomPrefix   = []byte("'a:")
	binaryPrefix = []byte("'b:")
)

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isWordBody(c byte) bool {
	return isDigit(c) || isAlpha(c)
}
