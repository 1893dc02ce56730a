package lazy

import (
	"bufio"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/multierr"
)

// MaxLineSize bounds a single line read by Lines and OpenLines.
const MaxLineSize = 1 << 20

// Lines yields the lines of r with surrounding whitespace trimmed.
//
// When r is an io.Closer it is closed exactly once: on exhaustion, on a
// read error, or on the first call to Close, whichever comes first.
// A nil r yields no lines.
func Lines(r io.Reader) Iterator[string] {
	if r == nil {
		return Slice[string](nil)
	}
	return &lineIterator{reader: r}
}

// OpenLines yields the lines of the file at path. The file is opened on the
// first call to Next; an open failure is reported by Err.
func OpenLines(path string) Iterator[string] {
	return &lineIterator{
		open: func() (io.Reader, error) { return os.Open(path) },
	}
}

type lineIterator struct {
	open    func() (io.Reader, error)
	reader  io.Reader
	scanner *bufio.Scanner
	value   string
	err     error
	done    bool

	releaseOnce sync.Once
	releaseErr  error
	reported    bool
}

func (i *lineIterator) Next() bool {
	if i.done {
		return false
	}
	if i.reader == nil {
		r, err := i.open()
		if err != nil {
			i.err = err
			i.done = true
			return false
		}
		i.reader = r
	}
	if i.scanner == nil {
		i.scanner = bufio.NewScanner(i.reader)
		i.scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineSize)
	}

	if i.scanner.Scan() {
		i.value = strings.TrimSpace(i.scanner.Text())
		return true
	}

	i.done = true
	i.err = multierr.Append(i.scanner.Err(), i.release())
	i.reported = true
	return false
}

func (i *lineIterator) Value() string {
	return i.value
}

func (i *lineIterator) Err() error {
	return i.err
}

// Close returns nil when the release error was already reported by Err.
func (i *lineIterator) Close() error {
	i.done = true
	err := i.release()
	if i.reported {
		return nil
	}
	return err
}

func (i *lineIterator) release() error {
	i.releaseOnce.Do(func() {
		if closer, ok := i.reader.(io.Closer); ok {
			i.releaseErr = closer.Close()
		}
	})
	return i.releaseErr
}

// StringLines yields the lines of text split on "\n", untrimmed.
// An empty text yields a single empty line.
func StringLines(text string) Iterator[string] {
	return Slice(strings.Split(text, "\n"))
}
