package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lwch/logging"
	"github.com/lwch/runtime"
	"github.com/lwch/wordcodec"
)

var conf = flag.String("conf", "", "configure file path")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [-conf file] compress|decompress -in <file> -dict <file> -out <file>\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	cfg := defaultConfigure()
	if len(*conf) > 0 {
		runtime.Assert(cfg.load(*conf))
	}
	runtime.Assert(cfg.setupLogging())
	defer logging.Flush()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}
	if err := run(cfg, args[0], args[1:]); err != nil {
		logging.Flush()
		os.Exit(1)
	}
}

func run(cfg *configure, cmd string, args []string) error {
	fs := flag.NewFlagSet(cmd, flag.ExitOnError)
	in := fs.String("in", "", "input file")
	dict := fs.String("dict", "", "dictionary file")
	out := fs.String("out", "", "output file")
	fs.Parse(args)
	if len(*in) == 0 || len(*dict) == 0 || len(*out) == 0 {
		fs.Usage()
		return fmt.Errorf("missing -in, -dict or -out")
	}

	codec := wordcodec.New(cfg.options()...)
	switch cmd {
	case "compress":
		return codec.CompressFiles(*in, *dict, *out)
	case "decompress":
		return codec.DecompressFiles(*in, *dict, *out)
	default:
		usage()
		return fmt.Errorf("unknown command: %s", cmd)
	}
}
