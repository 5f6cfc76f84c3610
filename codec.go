package wordcodec

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Codec replaces whitespace separated words with their dictionary ids and
// back again.
type Codec struct {
	cfg Config
}

// Stats describes one compression or decompression run.
type Stats struct {
	Tokens   int64 // word/delimiter pairs read
	Words    int64 // non-empty words read
	Unique   int   // dictionary size
	BytesIn  int64
	BytesOut int64
}

// New creates a codec with the given options.
func New(opts ...Option) *Codec {
	return &Codec{cfg: newConfig(opts)}
}

// Compress encodes r into w and returns the dictionary it built. Every word
// is written as the decimal id of its first occurrence, delimiters are copied
// unchanged.
func (c *Codec) Compress(r io.Reader, w io.Writer) (*Interner, Stats, error) {
	var st Stats
	tk := newTokenizer(r, c.cfg)
	wr := bufio.NewWriterSize(w, c.cfg.bufferSize())
	dict := NewInterner()
	num := make([]byte, 0, 20)
	for {
		tok, err := tk.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, st, err
		}
		st.Tokens++
		st.BytesIn += int64(tok.Len())
		if !tok.Empty() {
			id, err := dict.Intern(string(tok.Word))
			if err != nil {
				return nil, st, err
			}
			num = strconv.AppendInt(num[:0], int64(id), 10)
			n, err := wr.Write(num)
			st.BytesOut += int64(n)
			if err != nil {
				return nil, st, err
			}
			st.Words++
		}
		if !tok.EOS {
			if err := wr.WriteByte(tok.Delim); err != nil {
				return nil, st, err
			}
			st.BytesOut++
		}
	}
	if err := wr.Flush(); err != nil {
		return nil, st, err
	}
	st.Unique = dict.Len()
	return dict, st, nil
}

// Decompress decodes r, produced by Compress, into w using dict.
func (c *Codec) Decompress(r io.Reader, w io.Writer, dict *Interner) (Stats, error) {
	st := Stats{Unique: dict.Len()}
	tk := newTokenizer(r, c.cfg)
	wr := bufio.NewWriterSize(w, c.cfg.bufferSize())
	for {
		tok, err := tk.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return st, err
		}
		st.Tokens++
		st.BytesIn += int64(tok.Len())
		if !tok.Empty() {
			word, err := decodeWord(tok.Word, dict)
			if err != nil {
				return st, fmt.Errorf("token %d: %w", st.Tokens, err)
			}
			n, err := wr.WriteString(word)
			st.BytesOut += int64(n)
			if err != nil {
				return st, err
			}
			st.Words++
		}
		if !tok.EOS {
			if err := wr.WriteByte(tok.Delim); err != nil {
				return st, err
			}
			st.BytesOut++
		}
	}
	return st, wr.Flush()
}

// decodeWord parses code as an unsigned decimal id and resolves it. A code
// that is a number but has no entry matches both ErrInvalidCode and
// ErrOutOfRange.
func decodeWord(code []byte, dict *Interner) (string, error) {
	id, err := strconv.ParseUint(string(code), 10, strconv.IntSize-1)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return "", fmt.Errorf("%w: %w: %q", ErrInvalidCode, ErrOutOfRange, code)
		}
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, code)
	}
	word, err := dict.Resolve(int(id))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCode, err)
	}
	return word, nil
}

// Compress encodes r into w with a default codec.
func Compress(r io.Reader, w io.Writer) (*Interner, error) {
	dict, _, err := New().Compress(r, w)
	return dict, err
}

// Decompress decodes r into w with a default codec.
func Decompress(r io.Reader, w io.Writer, dict *Interner) error {
	_, err := New().Decompress(r, w, dict)
	return err
}
