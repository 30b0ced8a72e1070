// Package input reads raw keyboard bytes without blocking the frame loop.
package input

import "bufio"

// Input represents the current frame's input state. The simulation
// consumes a single signal: quit requested. Raw bytes are exposed for
// diagnostics.
type Input struct {
	Quit    bool
	Closed  bool // Reader reached EOF (e.g. SSH session dropped)
	Pressed []byte
}

// Stream delivers input bytes via a channel so the frame loop can poll
// without blocking.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking)
// and maps them to the frame's input state. Escape sequences (arrow
// keys and the like) are skipped so a CSI prefix is not mistaken for a
// bare Escape press.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	inp := Input{Closed: s.closed, Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code> - consume and ignore
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x1b', '\x03', '\x04': // q, Escape, Ctrl-C, Ctrl-D
			inp.Quit = true
		}
	}

	return inp
}
