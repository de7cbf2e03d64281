package console

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"lathe-viewer/internal/commands"
	"lathe-viewer/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsole(t *testing.T) (*Console, *logger.Logger, *[]string) {
	t.Helper()
	log := logger.New("")
	reg := commands.NewRegistry()
	var ran []string
	reg.Register("spin", "toggle spin", func(fs *flag.FlagSet) func() error {
		fail := fs.Bool("fail", false, "return an error")
		return func() error {
			ran = append(ran, "spin")
			if *fail {
				return errors.New("motor jammed")
			}
			return nil
		}
	})
	return New(log, reg), log, &ran
}

// last returns the newest log line without its timestamp.
func last(t *testing.T, log *logger.Logger) string {
	t.Helper()
	lines := log.Lines()
	require.NotEmpty(t, lines)
	l := lines[len(lines)-1]
	return l[strings.Index(l, "] ")+2:]
}

func TestToggleFrameIgnoresOtherKeys(t *testing.T) {
	c, _, _ := newConsole(t)
	assert.False(t, c.Open())

	c.Feed(Keys{Text: "x"})
	assert.Empty(t, c.Input(), "closed console takes no text")

	c.Feed(Keys{Toggle: true, Text: "x"})
	assert.True(t, c.Open())
	assert.Empty(t, c.Input())

	c.Feed(Keys{Toggle: true})
	assert.False(t, c.Open())
}

func TestTypingAndBackspace(t *testing.T) {
	c, _, _ := newConsole(t)
	c.Feed(Keys{Toggle: true})

	c.Feed(Keys{Text: "año"})
	c.Feed(Keys{Backspace: true})
	assert.Equal(t, "añ", c.Input())
	c.Feed(Keys{Backspace: true})
	assert.Equal(t, "a", c.Input(), "backspace removes a whole rune")
	c.Feed(Keys{Backspace: true})
	c.Feed(Keys{Backspace: true})
	assert.Empty(t, c.Input())

	c.Feed(Keys{Enter: true})
	assert.Empty(t, c.History(), "empty line is not submitted")
}

func TestSubmitRunsCommands(t *testing.T) {
	c, log, ran := newConsole(t)
	c.Feed(Keys{Toggle: true})

	c.Feed(Keys{Text: "cmd spin", Enter: true})
	assert.Empty(t, c.Input())
	assert.Equal(t, []string{"spin"}, *ran)
	assert.Equal(t, Prompt+"cmd spin", last(t, log))

	c.Submit("cmd spin -fail")
	assert.Equal(t, "ERROR: spin: motor jammed", last(t, log))

	c.Submit("cmd lathe")
	assert.Equal(t, "ERROR: unknown command: lathe", last(t, log))

	c.Submit("hola")
	assert.Equal(t, "WARN: not a command, try: cmd help", last(t, log))
	assert.Len(t, *ran, 2)
}

func TestHistory(t *testing.T) {
	c, _, _ := newConsole(t)
	c.Feed(Keys{Toggle: true})
	c.Submit("cmd spin")
	c.Submit("cmd spin")
	c.Submit("cmd grid")
	assert.Equal(t, []string{"cmd spin", "cmd grid"}, c.History(), "repeats collapse")

	c.Feed(Keys{Up: true})
	assert.Equal(t, "cmd grid", c.Input())
	c.Feed(Keys{Up: true})
	assert.Equal(t, "cmd spin", c.Input())
	c.Feed(Keys{Up: true})
	assert.Equal(t, "cmd spin", c.Input(), "stops at the oldest line")

	c.Feed(Keys{Down: true})
	assert.Equal(t, "cmd grid", c.Input())
	c.Feed(Keys{Down: true})
	assert.Empty(t, c.Input(), "walking past the newest line clears the input")

	for i := 0; i < maxHistory+5; i++ {
		c.Submit("cmd n" + strings.Repeat("x", i))
	}
	assert.Len(t, c.History(), maxHistory)
}

func TestTail(t *testing.T) {
	c, log, _ := newConsole(t)
	for i := 0; i < 20; i++ {
		log.Infof("line %d", i)
	}
	tail := c.Tail(3)
	require.Len(t, tail, 3)
	assert.True(t, strings.HasSuffix(tail[2], "line 19"), tail[2])
	assert.True(t, strings.HasSuffix(tail[0], "line 17"), tail[0])

	log.Infof("%s", strings.Repeat("ñ", MaxLineLen))
	long := c.Tail(1)[0]
	assert.LessOrEqual(t, len(long), MaxLineLen)
	assert.True(t, strings.HasSuffix(long, "ñ..."), "cut on a rune boundary")
}
