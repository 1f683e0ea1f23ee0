// Utility that converts JSON input into a binary NBT document.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	nbt "github.com/jfarrell/nbtgo"
	"github.com/jfarrell/nbtgo/interop"
)

func main() {
	inputFile := flag.StringP("input", "i", "", "read input from file")
	outputFile := flag.StringP("output", "o", "", "write output to file")
	docName := flag.StringP("name", "n", "", "top-level document name")
	compression := flag.StringP("compression", "c", "none", "output compression: none, gzip, zlib")
	littleEndian := flag.BoolP("little-endian", "l", false, "encode with little-endian byte order")
	flag.Parse()

	var r io.Reader = os.Stdin
	var w io.Writer = os.Stdout

	if len(*inputFile) > 0 {
		fin, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "unable to open input file:", err)
			os.Exit(1)
		}
		defer fin.Close()
		r = fin
	} else if len(flag.Args()) > 0 {
		r = bytes.NewReader([]byte(flag.Arg(0)))
	}

	if len(*outputFile) > 0 {
		fout, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "unable to create output file:", err)
			os.Exit(1)
		}
		defer fout.Close()
		w = fout
	}

	data, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	doc, err := interop.DecodeDocument(interop.JSON{}, data, *docName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	order := nbt.BigEndian
	if *littleEndian {
		order = nbt.LittleEndian
	}

	switch *compression {
	case "none":
		err = doc.Write(w, order)
	case "gzip":
		err = doc.WriteGzip(w, order)
	case "zlib":
		err = doc.WriteZlib(w, order)
	default:
		err = fmt.Errorf("unknown compression: %s", *compression)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
