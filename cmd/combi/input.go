package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/ianaindex"
)

type decodedFile struct {
	io.Reader
	io.Closer
}

// openInput opens name, or stdin for "-", decoding it from the named IANA
// character set when charset is not empty.
func openInput(name, charset string) (io.ReadCloser, error) {
	var f io.ReadCloser
	if name == "-" {
		f = io.NopCloser(os.Stdin)
	} else {
		file, err := os.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		f = file
	}
	if charset == "" {
		return f, nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("encoding %q: %w", charset, err)
	}
	if enc == nil {
		f.Close()
		return nil, fmt.Errorf("encoding %q: not supported", charset)
	}
	return decodedFile{Reader: enc.NewDecoder().Reader(f), Closer: f}, nil
}
