package core

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
)

func TestPlaybackStartStop(t *testing.T) {
	mock := clock.NewMock()
	p := NewPlayback()

	p.Start(mock.Now())
	if !p.Playing() {
		t.Fatal("expected playing after start")
	}

	mock.Add(5 * time.Second)
	if got := p.Elapsed(mock.Now()); got != 5000 {
		t.Fatalf("elapsed = %d, want 5000", got)
	}

	p.Stop(mock.Now())
	if p.Playing() {
		t.Fatal("expected stopped after stop")
	}
	if got := p.Elapsed(mock.Now()); got != 5000 {
		t.Fatalf("elapsed after stop = %d, want 5000", got)
	}

	// Frozen clock does not advance.
	mock.Add(3 * time.Second)
	if got := p.Elapsed(mock.Now()); got != 5000 {
		t.Fatalf("elapsed while stopped = %d, want 5000", got)
	}
}

func TestPlaybackStartIdempotent(t *testing.T) {
	mock := clock.NewMock()
	p := NewPlayback()

	p.Start(mock.Now())
	anchor := p.startedAt

	mock.Add(2 * time.Second)
	p.Start(mock.Now())
	if !p.startedAt.Equal(anchor) {
		t.Fatalf("second start moved the anchor: %v != %v", p.startedAt, anchor)
	}
	if got := p.Elapsed(mock.Now()); got != 2000 {
		t.Fatalf("elapsed = %d, want 2000", got)
	}
}

func TestPlaybackStopWhileStoppedIsNoop(t *testing.T) {
	mock := clock.NewMock()
	mock.Add(1000 * time.Hour)
	p := NewPlayback()

	// The anchor is zero here; without the guard the arithmetic would
	// fold in a huge bogus segment.
	p.Stop(mock.Now())
	if got := p.Elapsed(mock.Now()); got != 0 {
		t.Fatalf("elapsed = %d, want 0", got)
	}
	if p.Playing() {
		t.Fatal("expected stopped")
	}
}

func TestPlaybackSetTime(t *testing.T) {
	mock := clock.NewMock()
	p := NewPlayback()

	p.SetTime(3723, false, mock.Now())
	if p.Playing() {
		t.Fatal("expected stopped after set time with stop")
	}
	if got := p.Elapsed(mock.Now()); got != 3723000 {
		t.Fatalf("elapsed = %d, want 3723000", got)
	}

	// Overrides mid-play state unconditionally.
	p.Start(mock.Now())
	mock.Add(10 * time.Second)
	p.SetTime(60, true, mock.Now())
	if !p.Playing() {
		t.Fatal("expected playing after set time with start")
	}
	mock.Add(1 * time.Second)
	if got := p.Elapsed(mock.Now()); got != 61000 {
		t.Fatalf("elapsed = %d, want 61000", got)
	}
}

func TestPlaybackReset(t *testing.T) {
	mock := clock.NewMock()

	// From playing.
	p := NewPlayback()
	p.Start(mock.Now())
	mock.Add(7 * time.Second)
	p.Reset()
	if p.Playing() || p.Elapsed(mock.Now()) != 0 {
		t.Fatalf("reset from playing: playing=%v elapsed=%d", p.Playing(), p.Elapsed(mock.Now()))
	}

	// From stopped with nonzero elapsed.
	p = NewPlayback()
	p.SetTime(300, false, mock.Now())
	p.Reset()
	if p.Playing() || p.Elapsed(mock.Now()) != 0 {
		t.Fatalf("reset from stopped: playing=%v elapsed=%d", p.Playing(), p.Elapsed(mock.Now()))
	}
}

func TestPlaybackElapsedSecondsRounding(t *testing.T) {
	mock := clock.NewMock()
	p := NewPlayback()

	p.Start(mock.Now())
	mock.Add(12400 * time.Millisecond)
	if got := p.ElapsedSeconds(mock.Now()); got != 12 {
		t.Fatalf("12400ms rounds to %d, want 12", got)
	}
	mock.Add(200 * time.Millisecond)
	if got := p.ElapsedSeconds(mock.Now()); got != 13 {
		t.Fatalf("12600ms rounds to %d, want 13", got)
	}
}

func TestPlaybackActive(t *testing.T) {
	mock := clock.NewMock()
	p := NewPlayback()

	if p.Active() {
		t.Fatal("fresh clock should be inactive")
	}
	p.Start(mock.Now())
	if !p.Active() {
		t.Fatal("playing clock should be active")
	}
	mock.Add(time.Second)
	p.Stop(mock.Now())
	if !p.Active() {
		t.Fatal("stopped clock with nonzero elapsed should be active")
	}
	p.Reset()
	if p.Active() {
		t.Fatal("reset clock should be inactive")
	}
}
