package wordcodec

import (
	"fmt"

	"github.com/cockroachdb/swiss"
	"golang.org/x/exp/slices"
)

// 大多数文本的不重复单词数量都超过这个值，避免前几次扩容
const initialDictSize = 128

// Interner is an append-only dictionary of unique words. A word's id is its
// insertion position and never changes once assigned.
//
// An Interner belongs to a single compression or decompression run and is not
// safe for concurrent use.
type Interner struct {
	word2id *swiss.Map[string, int]
	id2word []string
}

// NewInterner returns an empty dictionary.
func NewInterner() *Interner {
	return &Interner{
		word2id: swiss.New[string, int](initialDictSize),
		id2word: make([]string, 0, initialDictSize),
	}
}

// Len returns the number of words in the dictionary.
func (d *Interner) Len() int {
	return len(d.id2word)
}

// Intern returns the id of word, appending it at the next id when it has not
// been seen before.
func (d *Interner) Intern(word string) (int, error) {
	if len(word) == 0 {
		return 0, ErrEmptyWord
	}
	if id, ok := d.word2id.Get(word); ok {
		return id, nil
	}
	return d.add(word), nil
}

// Lookup returns the id of word without modifying the dictionary.
func (d *Interner) Lookup(word string) (int, bool) {
	return d.word2id.Get(word)
}

// Resolve returns the word stored at id.
func (d *Interner) Resolve(id int) (string, error) {
	if id < 0 || id >= len(d.id2word) {
		return "", fmt.Errorf("%w: id %d, dictionary size %d", ErrOutOfRange, id, len(d.id2word))
	}
	return d.id2word[id], nil
}

// Words returns a copy of the dictionary in id order.
func (d *Interner) Words() []string {
	return slices.Clone(d.id2word)
}

func (d *Interner) add(word string) int {
	id := len(d.id2word)
	d.id2word = append(d.id2word, word)
	d.word2id.Put(word, id)
	return id
}

func (d *Interner) reset() {
	d.word2id = swiss.New[string, int](initialDictSize)
	d.id2word = make([]string, 0, initialDictSize)
}
