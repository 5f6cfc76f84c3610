package wordcodec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
)

// WriteTo writes the dictionary one word per line in id order.
func (d *Interner) WriteTo(w io.Writer) (int64, error) {
	wr := bufio.NewWriter(w)
	var total int64
	for _, word := range d.id2word {
		n, err := wr.WriteString(word)
		total += int64(n)
		if err != nil {
			return total, err
		}
		err = wr.WriteByte('\n')
		if err != nil {
			return total, err
		}
		total++
	}
	return total, wr.Flush()
}

// ReadFrom replaces the dictionary with the words read from r, assigning ids
// in line order. A duplicate word, an empty line or a line holding whitespace
// fails with ErrMalformedDictionary. The last line may omit its newline.
func (d *Interner) ReadFrom(r io.Reader) (int64, error) {
	d.reset()
	rd := bufio.NewReader(r)
	var total int64
	for line := 1; ; line++ {
		data, err := rd.ReadBytes('\n')
		total += int64(len(data))
		if err != nil && err != io.EOF {
			return total, err
		}
		if len(data) == 0 {
			return total, nil
		}
		word := bytes.TrimSuffix(data, []byte{'\n'})
		if len(word) == 0 {
			return total, fmt.Errorf("%w: line %d is empty", ErrMalformedDictionary, line)
		}
		if bytes.ContainsAny(word, " \t") {
			return total, fmt.Errorf("%w: line %d holds whitespace: %q", ErrMalformedDictionary, line, word)
		}
		if id, ok := d.word2id.Get(string(word)); ok {
			return total, fmt.Errorf("%w: line %d repeats %q first seen at id %d",
				ErrMalformedDictionary, line, word, id)
		}
		d.add(string(word))
		if err == io.EOF {
			return total, nil
		}
	}
}

// LoadInterner reads a dictionary written by WriteTo. The result is meant to
// be used read-only for decoding.
func LoadInterner(r io.Reader) (*Interner, error) {
	d := NewInterner()
	if _, err := d.ReadFrom(r); err != nil {
		return nil, err
	}
	return d, nil
}

// Sum64 returns the xxhash of the dictionary's serialized form.
func (d *Interner) Sum64() uint64 {
	h := xxhash.New()
	for _, word := range d.id2word {
		h.WriteString(word)
		h.Write([]byte{'\n'})
	}
	return h.Sum64()
}
