package core

import "time"

// Playback is the logical video clock for one room. The bot never
// touches real media; it only coordinates an elapsed-time value that
// clients use to drive local playback.
//
// Invariant: startedAt is non-zero iff playing is true. Elapsed time
// is derived, not stored: elapsedMS plus the time since startedAt
// while playing.
type Playback struct {
	playing   bool
	elapsedMS int64
	startedAt time.Time
}

// NewPlayback returns a stopped clock at zero.
func NewPlayback() *Playback {
	return &Playback{}
}

// Start begins advancing the clock. Re-issuing start while already
// playing is a no-op and does not reset the anchor timestamp.
func (p *Playback) Start(now time.Time) {
	if p.playing {
		return
	}
	p.playing = true
	p.startedAt = now
}

// Stop freezes the clock, folding the running segment into elapsedMS.
// A stop while already stopped must stay a no-op: the anchor is zero
// then and the naive arithmetic would produce a huge bogus elapsed.
func (p *Playback) Stop(now time.Time) {
	if !p.playing {
		return
	}
	p.elapsedMS += now.Sub(p.startedAt).Milliseconds()
	p.playing = false
	p.startedAt = time.Time{}
}

// SetTime positions the clock at the given whole-second offset,
// overriding any prior state. When startAfter is true the clock
// resumes advancing from that position immediately.
func (p *Playback) SetTime(seconds int64, startAfter bool, now time.Time) {
	p.elapsedMS = seconds * 1000
	if startAfter {
		p.playing = true
		p.startedAt = now
	} else {
		p.playing = false
		p.startedAt = time.Time{}
	}
}

// Reset restores the initial stopped-at-zero state.
func (p *Playback) Reset() {
	p.playing = false
	p.elapsedMS = 0
	p.startedAt = time.Time{}
}

// Playing reports whether the clock is advancing.
func (p *Playback) Playing() bool {
	return p.playing
}

// Elapsed returns the derived elapsed time in milliseconds.
func (p *Playback) Elapsed(now time.Time) int64 {
	if p.playing {
		return p.elapsedMS + now.Sub(p.startedAt).Milliseconds()
	}
	return p.elapsedMS
}

// ElapsedSeconds returns the derived elapsed time rounded to whole
// seconds, half up.
func (p *Playback) ElapsedSeconds(now time.Time) int64 {
	return (p.Elapsed(now) + 500) / 1000
}

// Active reports whether there is anything worth synchronizing:
// either the clock is running or it holds a nonzero position.
func (p *Playback) Active() bool {
	return p.playing || p.elapsedMS != 0
}
