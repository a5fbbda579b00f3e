package core

import (
	"strconv"
	"strings"
)

// CommandKind describes what a moderator asked the bot to do.
type CommandKind int

const (
	// CommandStart begins advancing the room's playback clock.
	CommandStart CommandKind = iota
	// CommandStop freezes the room's playback clock.
	CommandStop
	// CommandStatus requests a catchup broadcast without mutating state.
	CommandStatus
	// CommandSetTime positions the clock at an absolute offset.
	CommandSetTime
	// CommandDone resets the clock to stopped-at-zero.
	CommandDone
)

// Command is a parsed moderator instruction. It lives only for the
// duration of processing one chat message.
type Command struct {
	Kind       CommandKind
	Seconds    int64
	StartAfter bool
}

const (
	cmdStart   = "/video start"
	cmdStop    = "/video stop"
	cmdStatus  = "/video status"
	cmdDone    = "/video done"
	cmdTime    = "/video time "
	cmdCatchup = "/video catchup"
)

// ParseCommand matches text against the fixed command grammar.
// The grammar is case-sensitive; the specific forms are matched before
// the "/video time " prefix so nothing shadows them. Unrecognized text
// returns ok=false and is silently ignored by the caller.
func ParseCommand(text string) (Command, bool) {
	switch text {
	case cmdStart:
		return Command{Kind: CommandStart}, true
	case cmdStop:
		return Command{Kind: CommandStop}, true
	case cmdStatus:
		return Command{Kind: CommandStatus}, true
	case cmdDone:
		return Command{Kind: CommandDone}, true
	}

	if strings.HasPrefix(text, cmdTime) {
		args := strings.Fields(text[len(cmdTime):])
		if len(args) == 0 {
			return Command{}, false
		}
		return Command{
			Kind:       CommandSetTime,
			Seconds:    parseTimespec(args[0]),
			StartAfter: !(len(args) > 1 && args[1] == "stop"),
		}, true
	}

	return Command{}, false
}

// parseTimespec converts a colon-separated time value to total
// seconds. The rightmost field is seconds, the next minutes, the next
// hours, so "42", "05:00" and "01:02:03" are all valid. Non-numeric
// fields count as zero rather than failing the whole command.
func parseTimespec(spec string) int64 {
	fields := strings.Split(spec, ":")
	var total int64
	unit := int64(1)
	for i := len(fields) - 1; i >= 0; i-- {
		n, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			n = 0
		}
		total += n * unit
		unit *= 60
	}
	return total
}

// CatchupText renders the literal wire form of a catchup or status
// broadcast: "/video catchup <seconds>", with a trailing " stop" token
// when the room is not currently playing.
func CatchupText(seconds int64, playing bool) string {
	text := cmdCatchup + " " + strconv.FormatInt(seconds, 10)
	if !playing {
		text += " stop"
	}
	return text
}
