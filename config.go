package wordcodec

import "github.com/c2h5oh/datasize"

const defaultBufferSize = 64 * datasize.KB

// Config holds configuration for the codec.
type Config struct {
	BufferSize    datasize.ByteSize // Read and write buffer size (0 = 64KB)
	MaxWordLength int               // Maximum word length in bytes (0 = unlimited)
}

// Option is a functional option for configuring the codec.
type Option func(*Config)

// WithBufferSize sets the size of the buffers wrapped around every stream.
func WithBufferSize(size datasize.ByteSize) Option {
	return func(c *Config) {
		c.BufferSize = size
	}
}

// WithMaxWordLength caps the length of a single word. A longer word aborts
// the run with ErrAllocation.
func WithMaxWordLength(n int) Option {
	return func(c *Config) {
		c.MaxWordLength = n
	}
}

func newConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.BufferSize == 0 {
		cfg.BufferSize = defaultBufferSize
	}
	if cfg.MaxWordLength < 0 {
		cfg.MaxWordLength = 0
	}
	return cfg
}

func (c Config) bufferSize() int {
	return int(c.BufferSize.Bytes())
}
