package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// maxLineBytes bounds a single line of input; the rest of a longer line is discarded.
const maxLineBytes = 4096

type inputLine struct {
	text    string
	tooLong bool
	err     error
}

// lineReader reads lines on its own goroutine so a blocked read never holds
// up context cancellation.
type lineReader struct {
	r       *bufio.Reader
	lines   chan inputLine
	started bool
}

func newLineReader(in io.Reader) *lineReader {
	return &lineReader{
		r:     bufio.NewReaderSize(in, maxLineBytes),
		lines: make(chan inputLine),
	}
}

func (lr *lineReader) next(ctx context.Context) (inputLine, error) {
	if !lr.started {
		lr.started = true
		go lr.run()
	}
	select {
	case <-ctx.Done():
		return inputLine{}, ctx.Err()
	case l, ok := <-lr.lines:
		if !ok {
			return inputLine{}, ErrInputClosed
		}
		if l.err != nil {
			return inputLine{}, l.err
		}
		return l, nil
	}
}

func (lr *lineReader) run() {
	defer close(lr.lines)
	for {
		text, tooLong, err := readBoundedLine(lr.r)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				lr.lines <- inputLine{err: fmt.Errorf("read input: %w", err)}
			}
			return
		}
		lr.lines <- inputLine{text: text, tooLong: tooLong}
	}
}

func readBoundedLine(r *bufio.Reader) (string, bool, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := r.ReadLine()
		if err != nil {
			if len(buf) > 0 || tooLong {
				return string(buf), tooLong, nil
			}
			return "", false, err
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > maxLineBytes {
				buf = nil
				tooLong = true
			}
		}
		if !isPrefix {
			return string(buf), tooLong, nil
		}
	}
}
