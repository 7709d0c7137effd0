// Package json implements a streaming, single-pass JSON lexer/parser
// core with exact numeric representations and a precise error
// taxonomy, plus a strict RFC 7159 mode and a lenient superset
// (unquoted literals, trailing commas, comments).
package json

import (
	"bufio"
	"io"
)

// Parse reads exactly one JSON value from data and returns it. It
// fails with MultipleRoots if a second top-level value follows the
// first, and with NoJson if no value is found at all. Parse
// assumes data is already UTF-8; callers reading bytes that might be
// UTF-16 or UTF-32 should call DetectEncoding first and transcode, or
// reject, before calling Parse.
func Parse(data []byte, opts Options) (Value, error) {
	p := newParser(data, opts)
	vals, err := p.run()
	if err != nil {
		return Value{}, err
	}
	if len(vals) > 1 {
		return Value{}, &ParseError{Kind: MultipleRoots, Msg: "input has more than one top-level value", Line: p.line, Offset: p.pos}
	}
	return vals[0], nil
}

// ParseMany reads a sequence of whitespace-separated JSON values from
// data and returns all of them. It fails with NoJson if data holds no
// values at all.
func ParseMany(data []byte, opts Options) ([]Value, error) {
	return newParser(data, opts).run()
}

// ParseString is Parse over a string input.
func ParseString(s string, opts Options) (Value, error) {
	return Parse([]byte(s), opts)
}

// ParseReader reads r to completion and parses exactly one JSON value
// from it. The parser operates on a complete in-memory byte slice, so
// ParseReader buffers the whole stream before parsing; it does not
// parse incrementally as bytes arrive.
func ParseReader(r io.Reader, opts Options) (Value, error) {
	data, err := readAll(r)
	if err != nil {
		return Value{}, err
	}
	return Parse(data, opts)
}

func readAll(r io.Reader) ([]byte, error) {
	br := bufio.NewReader(r)
	var out []byte
	buf := make([]byte, 4096)
	for {
		n, err := br.Read(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
	}
}
