package main

import (
	"flag"
	"fmt"
	"os"

	"huffzip_go/pkg/huffman"
)

func main() {
	var decompress bool
	flag.BoolVar(&decompress, "d", false, "decompress instead of compress")
	out := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: huffzip [-d] [-o output] <file>")
		os.Exit(1)
	}
	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var result []byte
	if decompress {
		result, err = huffman.Decompress(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		result = huffman.Compress(data)
	}

	if *out == "" {
		os.Stdout.Write(result)
		return
	}
	if err := os.WriteFile(*out, result, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
