// Package console holds the developer console's state without any drawing: the line being typed,
// the submitted-line history and the log tail shown above the prompt. The terminal package feeds
// it one Keys value per frame, the same way graphics feeds the viewer one Frame.
package console

import (
	"unicode/utf8"

	"lathe-viewer/internal/commands"
	"lathe-viewer/internal/logger"
)

// Prompt prefixes the input line and echoed submissions.
const Prompt = "> "

const (
	maxHistory = 50
	// MaxLineLen is the widest log line shown; longer lines are cut with "...".
	MaxLineLen = 200
)

// Keys is the keyboard input of one frame.
type Keys struct {
	// Toggle opens or closes the console (ESC).
	Toggle bool
	// Text is what was typed or pasted this frame.
	Text      string
	Backspace bool
	Enter     bool
	// Up and Down walk the history of submitted lines.
	Up, Down bool
}

// Console is the console state. It starts closed.
type Console struct {
	log     *logger.Logger
	reg     *commands.Registry
	open    bool
	input   string
	history []string
	// browse indexes history while walking it; len(history) means a fresh line.
	browse int
}

// New returns a closed console that logs to log and runs "cmd ..." lines through reg.
func New(log *logger.Logger, reg *commands.Registry) *Console {
	return &Console{log: log, reg: reg}
}

// Open reports whether the console is shown and owns the keyboard and mouse.
func (c *Console) Open() bool { return c.open }

// Input returns the line being typed.
func (c *Console) Input() string { return c.input }

// Feed applies one frame of keys. The toggle frame does nothing else, so the key that opens the
// console never lands in the input. While closed only Toggle is read.
func (c *Console) Feed(k Keys) {
	if k.Toggle {
		c.open = !c.open
		return
	}
	if !c.open {
		return
	}
	switch {
	case k.Up && c.browse > 0:
		c.browse--
		c.input = c.history[c.browse]
	case k.Down && c.browse < len(c.history):
		c.browse++
		c.input = ""
		if c.browse < len(c.history) {
			c.input = c.history[c.browse]
		}
	}
	c.input += k.Text
	if k.Backspace && c.input != "" {
		_, size := utf8.DecodeLastRuneInString(c.input)
		c.input = c.input[:len(c.input)-size]
	}
	if k.Enter && c.input != "" {
		line := c.input
		c.input = ""
		c.Submit(line)
	}
}

// Submit echoes line to the log, records it in the history and runs it when it is a command.
// Command errors are logged.
func (c *Console) Submit(line string) {
	c.log.Log(Prompt + line)
	if n := len(c.history); n == 0 || c.history[n-1] != line {
		c.history = append(c.history, line)
		if len(c.history) > maxHistory {
			c.history = c.history[len(c.history)-maxHistory:]
		}
	}
	c.browse = len(c.history)

	args, isCmd := commands.Parse(line)
	if !isCmd {
		c.log.Warnf("not a command, try: cmd help")
		return
	}
	if err := c.reg.Execute(args); err != nil {
		c.log.Errorf("%v", err)
	}
}

// History returns the submitted lines, oldest first.
func (c *Console) History() []string { return c.history }

// Tail returns up to n of the newest log lines, each cut to MaxLineLen bytes.
func (c *Console) Tail(n int) []string {
	lines := c.log.Lines()
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		if len(l) > MaxLineLen {
			l = truncate(l, MaxLineLen-3) + "..."
		}
		out[i] = l
	}
	return out
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
