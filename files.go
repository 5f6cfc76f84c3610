package wordcodec

import (
	"errors"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/lwch/logging"
)

// streams tracks the files opened for one run so every exit path can release
// them.
type streams struct {
	files []*os.File
}

func (s *streams) open(name string) (*os.File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStreamOpen, err)
	}
	s.files = append(s.files, f)
	return f, nil
}

func (s *streams) create(name string) (*os.File, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStreamOpen, err)
	}
	s.files = append(s.files, f)
	return f, nil
}

func (s *streams) close() error {
	var errs []error
	for _, f := range s.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	s.files = nil
	return errors.Join(errs...)
}

// CompressFiles encodes the text file src into dst and writes the dictionary
// to dict. Output files left behind by a failed run are not valid.
func (c *Codec) CompressFiles(src, dict, dst string) (err error) {
	logging.Info("compressing %s into %s, dictionary written to %s", src, dst, dict)
	var s streams
	defer func() {
		if cerr := s.close(); err == nil {
			err = cerr
		}
		if err != nil {
			logging.Error("compress %s: %v", src, err)
		}
	}()

	in, err := s.open(src)
	if err != nil {
		return err
	}
	out, err := s.create(dst)
	if err != nil {
		return err
	}
	dictOut, err := s.create(dict)
	if err != nil {
		return err
	}

	words, st, err := c.Compress(in, out)
	if err != nil {
		return fmt.Errorf("compress %s: %w", src, err)
	}
	n, err := words.WriteTo(dictOut)
	if err != nil {
		return fmt.Errorf("write dictionary %s: %w", dict, err)
	}
	logging.Info("done, %s words (%s unique), %s => %s, dictionary %s [%016x]",
		humanize.Comma(st.Words), humanize.Comma(int64(st.Unique)),
		humanize.Bytes(uint64(st.BytesIn)), humanize.Bytes(uint64(st.BytesOut)),
		humanize.Bytes(uint64(n)), words.Sum64())
	return nil
}

// DecompressFiles decodes src into dst using the dictionary stored in dict.
// The dictionary is loaded before dst is created, so a missing or malformed
// dictionary leaves no output behind.
func (c *Codec) DecompressFiles(src, dict, dst string) (err error) {
	logging.Info("decompressing %s into %s, dictionary taken from %s", src, dst, dict)
	var s streams
	defer func() {
		if cerr := s.close(); err == nil {
			err = cerr
		}
		if err != nil {
			logging.Error("decompress %s: %v", src, err)
		}
	}()

	in, err := s.open(src)
	if err != nil {
		return err
	}
	dictIn, err := s.open(dict)
	if err != nil {
		return err
	}
	words, err := LoadInterner(dictIn)
	if err != nil {
		return fmt.Errorf("load dictionary %s: %w", dict, err)
	}
	logging.Info("dictionary loaded, %s words [%016x]", humanize.Comma(int64(words.Len())), words.Sum64())

	out, err := s.create(dst)
	if err != nil {
		return err
	}
	st, err := c.Decompress(in, out, words)
	if err != nil {
		return fmt.Errorf("decompress %s: %w", src, err)
	}
	logging.Info("done, %s words, %s => %s",
		humanize.Comma(st.Words), humanize.Bytes(uint64(st.BytesIn)), humanize.Bytes(uint64(st.BytesOut)))
	return nil
}

// CompressFiles encodes src with a default codec.
func CompressFiles(src, dict, dst string) error {
	return New().CompressFiles(src, dict, dst)
}

// DecompressFiles decodes src with a default codec.
func DecompressFiles(src, dict, dst string) error {
	return New().DecompressFiles(src, dict, dst)
}
