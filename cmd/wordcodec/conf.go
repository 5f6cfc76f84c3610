package main

import (
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"
	"github.com/dustin/go-humanize"
	"github.com/lwch/logging"
	"github.com/lwch/wordcodec"
	"gopkg.in/yaml.v3"
)

type configure struct {
	BufferSize    datasize.ByteSize `yaml:"buffer_size"`
	MaxWordLength int               `yaml:"max_word_length"`
	Log           struct {
		Dir    string `yaml:"dir"`
		Size   string `yaml:"size"`
		Rotate int    `yaml:"rotate"`
	} `yaml:"log"`
}

func defaultConfigure() *configure {
	var cfg configure
	cfg.BufferSize = 64 * datasize.KB
	cfg.Log.Size = "50MB"
	cfg.Log.Rotate = 7
	return &cfg
}

func (cfg *configure) load(dir string) error {
	data, err := os.ReadFile(dir)
	if err != nil {
		return fmt.Errorf("read configure file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse configure file %s: %w", dir, err)
	}
	return nil
}

// setupLogging writes logs to stdout, and to rotated files as well when a log
// directory is configured.
func (cfg *configure) setupLogging() error {
	if cfg.Log.Dir == "" {
		return nil
	}
	size, err := humanize.ParseBytes(cfg.Log.Size)
	if err != nil {
		return fmt.Errorf("log size %q: %w", cfg.Log.Size, err)
	}
	logging.SetSizeRotate(logging.SizeRotateConfig{
		Dir:         cfg.Log.Dir,
		Name:        "wordcodec",
		Size:        int64(size),
		Rotate:      cfg.Log.Rotate,
		WriteStdout: true,
		WriteFile:   true,
	})
	return nil
}

func (cfg *configure) options() []wordcodec.Option {
	return []wordcodec.Option{
		wordcodec.WithBufferSize(cfg.BufferSize),
		wordcodec.WithMaxWordLength(cfg.MaxWordLength),
	}
}
