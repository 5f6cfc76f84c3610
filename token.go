package wordcodec

// Token is a word together with the whitespace byte that ended it. The last
// token of a stream has EOS set and no delimiter.
type Token struct {
	Word  []byte
	Delim byte
	EOS   bool
}

// Empty reports whether the token carries a zero-length word, as happens
// between two consecutive delimiters.
func (t Token) Empty() bool {
	return len(t.Word) == 0
}

// Len returns the number of source bytes the token covers.
func (t Token) Len() int {
	if t.EOS {
		return len(t.Word)
	}
	return len(t.Word) + 1
}

func isDelim(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n'
}
