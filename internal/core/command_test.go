package core

import "testing"

func TestParseCommandFixedForms(t *testing.T) {
	cases := []struct {
		text string
		kind CommandKind
	}{
		{"/video start", CommandStart},
		{"/video stop", CommandStop},
		{"/video status", CommandStatus},
		{"/video done", CommandDone},
	}
	for _, tc := range cases {
		cmd, ok := ParseCommand(tc.text)
		if !ok {
			t.Fatalf("ParseCommand(%q) not recognized", tc.text)
		}
		if cmd.Kind != tc.kind {
			t.Fatalf("ParseCommand(%q) kind = %v, want %v", tc.text, cmd.Kind, tc.kind)
		}
	}
}

func TestParseCommandTime(t *testing.T) {
	cases := []struct {
		text       string
		seconds    int64
		startAfter bool
	}{
		{"/video time 01:02:03", 3723, true},
		{"/video time 00:05:00", 300, true},
		{"/video time 42", 42, true},
		{"/video time 01:02:03 stop", 3723, false},
		{"/video time 1:30 stop", 90, false},
		// Non-numeric fields count as zero.
		{"/video time xx:30", 30, true},
		{"/video time 01:xx:03", 3603, true},
	}
	for _, tc := range cases {
		cmd, ok := ParseCommand(tc.text)
		if !ok {
			t.Fatalf("ParseCommand(%q) not recognized", tc.text)
		}
		if cmd.Kind != CommandSetTime {
			t.Fatalf("ParseCommand(%q) kind = %v, want set time", tc.text, cmd.Kind)
		}
		if cmd.Seconds != tc.seconds {
			t.Fatalf("ParseCommand(%q) seconds = %d, want %d", tc.text, cmd.Seconds, tc.seconds)
		}
		if cmd.StartAfter != tc.startAfter {
			t.Fatalf("ParseCommand(%q) startAfter = %v, want %v", tc.text, cmd.StartAfter, tc.startAfter)
		}
	}
}

func TestParseCommandRejectsUnknown(t *testing.T) {
	for _, text := range []string{
		"",
		"hello",
		"/video",
		"/video pause",
		"/video time",
		"/video time ",
		"/VIDEO START",
		"video start",
	} {
		if _, ok := ParseCommand(text); ok {
			t.Fatalf("ParseCommand(%q) unexpectedly recognized", text)
		}
	}
}

func TestCatchupText(t *testing.T) {
	if got := CatchupText(12, true); got != "/video catchup 12" {
		t.Fatalf("playing catchup = %q", got)
	}
	if got := CatchupText(3723, false); got != "/video catchup 3723 stop" {
		t.Fatalf("stopped catchup = %q", got)
	}
}
