package wordcodec

import (
	"bufio"
	"fmt"
	"io"
)

// Tokenizer splits a byte stream into words and the delimiters that follow
// them. It makes a single pass and cannot be rewound.
type Tokenizer struct {
	rd     *bufio.Reader
	buf    []byte
	maxLen int
	done   bool
}

// NewTokenizer returns a tokenizer reading from r.
func NewTokenizer(r io.Reader, opts ...Option) *Tokenizer {
	return newTokenizer(r, newConfig(opts))
}

func newTokenizer(r io.Reader, cfg Config) *Tokenizer {
	return &Tokenizer{
		rd:     bufio.NewReaderSize(r, cfg.bufferSize()),
		buf:    make([]byte, 0, 64),
		maxLen: cfg.MaxWordLength,
	}
}

// Next returns the next token. After the end-of-stream token has been
// returned every further call returns io.EOF.
//
// The returned Word aliases an internal buffer and is only valid until the
// next call.
func (t *Tokenizer) Next() (Token, error) {
	if t.done {
		return Token{}, io.EOF
	}
	t.buf = t.buf[:0]
	for {
		ch, err := t.rd.ReadByte()
		if err != nil {
			t.done = true
			if err == io.EOF {
				return Token{Word: t.buf, EOS: true}, nil
			}
			return Token{}, err
		}
		if isDelim(ch) {
			return Token{Word: t.buf, Delim: ch}, nil
		}
		if t.maxLen > 0 && len(t.buf) >= t.maxLen {
			t.done = true
			return Token{}, fmt.Errorf("%w: word exceeds %d bytes", ErrAllocation, t.maxLen)
		}
		t.buf = append(t.buf, ch)
	}
}
