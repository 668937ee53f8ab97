package input

import (
	"testing"
	"time"
)

func TestDecodeKeys(t *testing.T) {
	tokens, rest := Decode([]byte("a l \x1b[C\x1b[Dqp\r\x1b[Ax"))
	if len(rest) != 0 {
		t.Fatalf("rest = %q, want empty", rest)
	}
	var got []Key
	for _, tok := range tokens {
		if tok.Kind != TokenKey {
			t.Fatalf("unexpected token %+v", tok)
		}
		got = append(got, tok.Key)
	}
	// Spaces between letters are fire presses
	want := []Key{KeyLeft, KeyFire, KeyRight, KeyFire, KeyRight, KeyLeft, KeyQuit, KeyPlay, KeyPlay}
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecodeInterrupt(t *testing.T) {
	tokens, _ := Decode([]byte{0x03})
	if len(tokens) != 1 || tokens[0].Kind != TokenInterrupt {
		t.Errorf("tokens = %+v, want interrupt", tokens)
	}
}

func TestDecodeMouse(t *testing.T) {
	tokens, rest := Decode([]byte("\x1b[<0;61;20M\x1b[<0;61;20m\x1b[<2;5;5M"))
	if len(rest) != 0 {
		t.Fatalf("rest = %q", rest)
	}
	if len(tokens) != 1 {
		t.Fatalf("tokens = %+v, want one left click", tokens)
	}
	if tokens[0].Kind != TokenClick || tokens[0].X != 61 || tokens[0].Y != 20 {
		t.Errorf("click = %+v, want (61,20)", tokens[0])
	}
}

func TestDecodeMouseDigitLimit(t *testing.T) {
	tokens, _ := Decode([]byte("\x1b[<0;12345;5M\x1b[<0;99999999999999999999;5M\x1b[<0;3;4M"))
	if len(tokens) != 2 {
		t.Fatalf("tokens = %+v, want the oversized report dropped", tokens)
	}
	if tokens[0].X != 12345 || tokens[0].Y != 5 {
		t.Errorf("first click = %+v, want (12345,5)", tokens[0])
	}
	if tokens[1].X != 3 || tokens[1].Y != 4 {
		t.Errorf("second click = %+v, want (3,4)", tokens[1])
	}
}

func TestDecodeSplitSequence(t *testing.T) {
	tests := []struct {
		name string
		in   string
		rest string
	}{
		{"lone escape", "a\x1b", "\x1b"},
		{"csi prefix", "\x1b[", "\x1b["},
		{"partial mouse", "\x1b[<0;12", "\x1b[<0;12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rest := Decode([]byte(tt.in))
			if string(rest) != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestStreamCarriesPartialSequence(t *testing.T) {
	s := NewStream()
	now := time.Now()

	for _, b := range []byte("\x1b[<0;10") {
		s.ch <- b
	}
	if events := s.Poll(now); len(events) != 0 {
		t.Fatalf("events = %+v, want none yet", events)
	}
	for _, b := range []byte(";4M") {
		s.ch <- b
	}
	events := s.Poll(now)
	if len(events) != 1 || events[0] != Click(10, 4) {
		t.Errorf("events = %+v, want click at (10,4)", events)
	}
}

func TestStreamHoldAndRelease(t *testing.T) {
	s := NewStream()
	start := time.Now()

	s.ch <- 'd'
	events := s.Poll(start)
	if len(events) != 1 || events[0] != KeyDown(KeyRight) {
		t.Fatalf("events = %+v, want right down", events)
	}

	// Auto-repeat keeps the key held without new events
	s.ch <- 'd'
	if events := s.Poll(start.Add(50 * time.Millisecond)); len(events) != 0 {
		t.Fatalf("repeat produced %+v", events)
	}

	// Still within the hold window of the repeat
	if events := s.Poll(start.Add(50*time.Millisecond + ReleaseAfter - time.Millisecond)); len(events) != 0 {
		t.Fatalf("released too early: %+v", events)
	}

	events = s.Poll(start.Add(50*time.Millisecond + ReleaseAfter))
	if len(events) != 1 || events[0] != KeyUp(KeyRight) {
		t.Errorf("events = %+v, want right up", events)
	}
}

func TestStreamHoldsUntilFirstRepeat(t *testing.T) {
	s := NewStream()
	start := time.Now()

	s.ch <- 'a'
	s.Poll(start)

	// Typical key-repeat delays are longer than the gap between repeats
	if events := s.Poll(start.Add(500 * time.Millisecond)); len(events) != 0 {
		t.Fatalf("released before the first repeat: %+v", events)
	}

	s.ch <- 'a'
	if events := s.Poll(start.Add(550 * time.Millisecond)); len(events) != 0 {
		t.Fatalf("first repeat produced %+v", events)
	}
	if events := s.Poll(start.Add(550*time.Millisecond + ReleaseAfter)); len(events) != 1 || events[0] != KeyUp(KeyLeft) {
		t.Errorf("events = %+v, want left up once repeats stop", events)
	}
}

func TestStreamTapReleases(t *testing.T) {
	s := NewStream()
	start := time.Now()

	s.ch <- 'd'
	s.Poll(start)

	if events := s.Poll(start.Add(FirstReleaseAfter - time.Millisecond)); len(events) != 0 {
		t.Fatalf("released too early: %+v", events)
	}
	if events := s.Poll(start.Add(FirstReleaseAfter)); len(events) != 1 || events[0] != KeyUp(KeyRight) {
		t.Errorf("events = %+v, want right up", events)
	}
}

func TestStreamOppositeDirectionReleases(t *testing.T) {
	s := NewStream()
	now := time.Now()

	s.ch <- 'a'
	s.Poll(now)
	s.ch <- 'd'
	events := s.Poll(now)

	if len(events) != 2 || events[0] != KeyUp(KeyLeft) || events[1] != KeyDown(KeyRight) {
		t.Errorf("events = %+v, want left up then right down", events)
	}
}

func TestStreamFirePerByte(t *testing.T) {
	s := NewStream()
	s.ch <- ' '
	s.ch <- ' '
	events := s.Poll(time.Now())
	if len(events) != 2 || events[0] != KeyDown(KeyFire) || events[1] != KeyDown(KeyFire) {
		t.Errorf("events = %+v, want two fire presses", events)
	}
}

func TestStreamClosedQuits(t *testing.T) {
	s := NewStream()
	close(s.ch)
	events := s.Poll(time.Now())
	if !s.Closed() {
		t.Fatal("stream should report closed")
	}
	if len(events) != 1 || events[0].Type != EventQuit {
		t.Errorf("events = %+v, want quit", events)
	}
}

func TestReleaseAll(t *testing.T) {
	s := NewStream()
	s.ch <- 'a'
	s.Poll(time.Now())

	events := s.ReleaseAll()
	if len(events) != 1 || events[0] != KeyUp(KeyLeft) {
		t.Errorf("events = %+v, want left up", events)
	}
	if events := s.ReleaseAll(); len(events) != 0 {
		t.Errorf("second ReleaseAll = %+v, want none", events)
	}
}
