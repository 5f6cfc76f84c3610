package wordcodec

import "errors"

var (
	// ErrStreamOpen indicates a source, dictionary or output file could not be opened.
	ErrStreamOpen = errors.New("open stream")
	// ErrAllocation indicates a word outgrew the configured buffer limit.
	ErrAllocation = errors.New("word buffer exhausted")
	// ErrMalformedDictionary indicates a dictionary stream breaks the
	// one-unique-word-per-line format.
	ErrMalformedDictionary = errors.New("malformed dictionary")
	// ErrInvalidCode indicates an encoded token is not a usable code.
	ErrInvalidCode = errors.New("invalid code")
	// ErrOutOfRange indicates an id has no dictionary entry.
	ErrOutOfRange = errors.New("id out of range")
	// ErrEmptyWord is returned when interning a zero-length word.
	ErrEmptyWord = errors.New("empty word")
)
