package runner

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/jmgilman/go/runner/redact"
)

// combinedBuffer holds stdout and stderr lines in arrival order.
// Its mutex is the only lock shared by the two pumps.
type combinedBuffer struct {
	mu  sync.Mutex
	buf strings.Builder
}

// append adds a line and, while still holding the lock, mirrors it to w.
// Mirroring under the lock keeps passthrough output in the same order as
// the combined buffer.
func (c *combinedBuffer) append(line string, w io.Writer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf.WriteString(line)
	c.buf.WriteByte('\n')

	if w != nil {
		_, _ = io.WriteString(w, line+"\n")
	}
}

// String returns the combined output.
func (c *combinedBuffer) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// lineCapture pumps one output stream into its own buffer and the shared
// combined buffer.
type lineCapture struct {
	stream   Stream
	matcher  *redact.Matcher
	combined *combinedBuffer
	observer LineObserver
	mirror   io.Writer

	mu    sync.Mutex
	buf   strings.Builder
	lines int
}

func newLineCapture(stream Stream, m *redact.Matcher, combined *combinedBuffer, observer LineObserver, mirror io.Writer) *lineCapture {
	return &lineCapture{
		stream:   stream,
		matcher:  m,
		combined: combined,
		observer: observer,
		mirror:   mirror,
	}
}

// pump reads r until EOF and emits every line. A final line without a
// terminator is still emitted. A read end closed by the supervisor ends the
// pump without error.
func (c *lineCapture) pump(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			c.emit(trimEOL(line))
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
				return nil
			}
			return err
		}
	}
}

// emit redacts a line and fans it out. Raw text never leaves this method.
func (c *lineCapture) emit(raw string) {
	line := c.matcher.Apply(raw)

	c.mu.Lock()
	c.buf.WriteString(line)
	c.buf.WriteByte('\n')
	c.lines++
	c.mu.Unlock()

	c.combined.append(line, c.mirror)

	if c.observer != nil {
		c.observer(c.stream, line)
	}
}

// String returns the captured output of this stream.
func (c *lineCapture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Lines returns the number of lines captured so far.
func (c *lineCapture) Lines() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lines
}

// trimEOL strips a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	if !strings.HasSuffix(line, "\n") {
		return line
	}
	line = line[:len(line)-1]
	return strings.TrimSuffix(line, "\r")
}
