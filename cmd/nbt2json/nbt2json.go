// Utility that converts a binary NBT document to its JSON representation.
package main

import (
	"bytes"
	"encoding/json"
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
	compression := flag.StringP("compression", "c", "none", "input compression: none, gzip, zlib")
	littleEndian := flag.BoolP("little-endian", "l", false, "decode with little-endian byte order")
	prettyPrint := flag.BoolP("pretty", "p", false, "pretty print the output")
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

	order := nbt.BigEndian
	if *littleEndian {
		order = nbt.LittleEndian
	}

	var doc *nbt.Document
	var err error
	switch *compression {
	case "none":
		doc, err = nbt.Read(r, order)
	case "gzip":
		doc, err = nbt.ReadGzip(r, order)
	case "zlib":
		doc, err = nbt.ReadZlib(r, order)
	default:
		err = fmt.Errorf("unknown compression: %s", *compression)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	native := interop.Native(doc)

	var out []byte
	if *prettyPrint {
		out, err = json.MarshalIndent(native, "", "    ")
	} else {
		out, err = interop.JSON{}.Marshal(native)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	w.Write(out)
	if w == os.Stdout {
		fmt.Println()
	}
}
