package input

import (
	"bufio"
	"time"
)

// Terminals report presses and auto-repeats but never releases, so a
// steering key that stops repeating is reported as released. Until the
// first repeat arrives the key is held for FirstReleaseAfter, longer than
// common key-repeat delays (250-600ms), so a held key never stutters. The
// cost is that a single tap moves the ship for that long. Once repeats flow
// the key is released ReleaseAfter after the last one.
const (
	FirstReleaseAfter = 650 * time.Millisecond
	ReleaseAfter      = 180 * time.Millisecond
)

// hold is a steering key currently held.
type hold struct {
	last     time.Time // Last press or repeat
	repeated bool
}

// expired reports whether the key should be released at now.
func (h hold) expired(now time.Time) bool {
	after := FirstReleaseAfter
	if h.repeated {
		after = ReleaseAfter
	}
	return now.Sub(h.last) >= after
}

// maxPending bounds an unfinished escape sequence carried between polls.
const maxPending = 32

// Stream delivers input bytes via a channel and turns them into events.
type Stream struct {
	ch      chan byte
	closed  bool
	pending []byte
	held    map[Key]hold // Steering keys currently held
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := NewStream()
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

// NewStream creates a stream with no reader attached. Bytes are fed with Feed.
func NewStream() *Stream {
	return &Stream{
		ch:   make(chan byte, 128),
		held: make(map[Key]hold),
	}
}

// Feed queues bytes as if they had been read. It blocks once the buffer is full.
func (s *Stream) Feed(b ...byte) {
	for _, c := range b {
		s.ch <- c
	}
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Poll drains all available bytes (non-blocking) and returns the events they
// produce, followed by releases for steering keys that stopped repeating.
func (s *Stream) Poll(now time.Time) []Event {
	buf := s.pending
	s.pending = nil

	// Drain all available bytes
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

	tokens, rest := Decode(buf)
	if len(rest) > 0 && len(rest) <= maxPending && !s.closed {
		s.pending = append(s.pending[:0], rest...)
	}

	var events []Event
	for _, tok := range tokens {
		events = s.apply(events, tok, now)
	}

	// Release steering keys that have not repeated recently
	for _, k := range []Key{KeyLeft, KeyRight} {
		h, ok := s.held[k]
		if ok && h.expired(now) {
			delete(s.held, k)
			events = append(events, KeyUp(k))
		}
	}

	if s.closed {
		events = append(events, Quit())
	}
	return events
}

// ReleaseAll forgets held keys, returning a release event for each.
func (s *Stream) ReleaseAll() []Event {
	var events []Event
	for _, k := range []Key{KeyLeft, KeyRight} {
		if _, ok := s.held[k]; ok {
			events = append(events, KeyUp(k))
		}
	}
	clear(s.held)
	return events
}

// apply converts a decoded token into events, tracking held steering keys.
func (s *Stream) apply(events []Event, tok Token, now time.Time) []Event {
	switch tok.Kind {
	case TokenInterrupt:
		return append(events, Quit())
	case TokenClick:
		return append(events, Click(tok.X, tok.Y))
	case TokenKey:
	default:
		return events
	}

	switch tok.Key {
	case KeyLeft, KeyRight:
		// Pressing one direction releases the other
		other := KeyRight
		if tok.Key == KeyRight {
			other = KeyLeft
		}
		if _, ok := s.held[other]; ok {
			delete(s.held, other)
			events = append(events, KeyUp(other))
		}
		_, already := s.held[tok.Key]
		s.held[tok.Key] = hold{last: now, repeated: already}
		if already {
			return events // auto-repeat keeps the key held
		}
	}
	return append(events, KeyDown(tok.Key))
}
