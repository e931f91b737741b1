// Package liner frames complete server responses, including any literals they carry.
package liner

import (
	"bufio"
	"errors"
	"io"
	"regexp"
	"strconv"

	"github.com/ProtonMail/imapclient/limits"
)

// rxLiteral matches a line that ends in a literal length indicator.
var rxLiteral = regexp.MustCompile(`\{(\d+)\}\r\n$`)

type Liner struct {
	br     *bufio.Reader
	limits limits.Response
}

// Line is one framed response, or the error that stopped framing.
type Line struct {
	Raw []byte
	Err error
}

func New(r io.Reader, limits limits.Response) *Liner {
	return &Liner{br: bufio.NewReader(r), limits: limits}
}

// Lines returns a channel that will receive responses as they are read.
// The channel is closed after the first error, which is delivered as the last Line,
// or when done is closed.
func (l *Liner) Lines(done <-chan struct{}) <-chan Line {
	ch := make(chan Line)

	go func() {
		defer close(ch)

		for {
			raw, err := l.Read()

			select {
			case ch <- Line{Raw: raw, Err: err}:
			case <-done:
				return
			}

			if err != nil {
				return
			}
		}
	}()

	return ch
}

// Read reads a full response. Literals announced at the end of a line are read verbatim
// and the response continues on the line that follows them.
// The response length limit is enforced while reading, so an endless line fails early.
func (l *Liner) Read() ([]byte, error) {
	line, err := l.readLine(nil)
	if err != nil {
		if len(line) > 0 && err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}

		return nil, err
	}

	for {
		length, ok := shouldReadLiteral(line)
		if !ok {
			break
		}

		if err := l.limits.CheckLiteralSize(length); err != nil {
			return nil, err
		}

		if err := l.limits.CheckResponseLength(len(line) + length); err != nil {
			return nil, err
		}

		literal := make([]byte, length)

		if _, err := io.ReadFull(l.br, literal); err != nil {
			return nil, unexpectedEOF(err)
		}

		line = append(line, literal...)

		if line, err = l.readLine(line); err != nil {
			return nil, unexpectedEOF(err)
		}
	}

	return line, nil
}

// readLine appends the next line to line, failing as soon as the total exceeds the response length limit.
func (l *Liner) readLine(line []byte) ([]byte, error) {
	for {
		chunk, err := l.br.ReadSlice('\n')

		if err := l.limits.CheckResponseLength(len(line) + len(chunk)); err != nil {
			return nil, err
		}

		line = append(line, chunk...)

		if !errors.Is(err, bufio.ErrBufferFull) {
			return line, err
		}
	}
}

func shouldReadLiteral(line []byte) (int, bool) {
	match := rxLiteral.FindSubmatch(line)
	if match == nil {
		return 0, false
	}

	length, err := strconv.Atoi(string(match[1]))
	if err != nil {
		return -1, true
	}

	return length, true
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}

	return err
}
