// A diagnostic utility to print an NBT document as a readable tag tree.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	nbt "github.com/jfarrell/nbtgo"
)

func abort(msg string) {
	fmt.Fprintln(os.Stderr, "nbtdump:", msg)
	os.Exit(1)
}

func main() {
	hexEncoded := flag.BoolP("hex", "x", false, "hex encoded input")
	inputFile := flag.StringP("input", "i", "", "read input from a file")
	compression := flag.StringP("compression", "c", "none", "input compression: none, gzip, zlib")
	littleEndian := flag.BoolP("little-endian", "l", false, "decode with little-endian byte order")
	flag.Parse()

	var r io.Reader

	if len(*inputFile) > 0 {
		// Read from file
		fin, err := os.Open(*inputFile)
		if err != nil {
			abort(fmt.Sprintf("unable to open file: %s", err))
		}
		defer fin.Close()
		r = fin
	} else if len(flag.Args()) > 0 {
		// Decode from command line
		r = bytes.NewReader([]byte(flag.Arg(0)))
	} else {
		// Read from stdin
		r = os.Stdin
	}

	if *hexEncoded {
		r = hex.NewDecoder(r)
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
		abort("unknown compression: " + *compression)
	}
	if err != nil {
		abort(err.Error())
	}

	fmt.Println(doc)
}
