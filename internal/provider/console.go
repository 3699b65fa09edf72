package provider

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// DefaultPrompt is printed before each line of console input.
const DefaultPrompt = "(bb) "

// Console is the second provider: a minimal interactive prompt on the
// controlling terminal that dumps stacks and resumes or kills the process.
type Console struct {
	// Prompt overrides DefaultPrompt when non-empty.
	Prompt string

	in         io.Reader
	out        io.Writer
	isTerminal func(fd int) bool
	exit       func(code int)
}

// NewConsole creates a Console provider bound to stdin/stderr.
func NewConsole(prompt string) *Console {
	return &Console{
		Prompt:     prompt,
		in:         os.Stdin,
		out:        os.Stderr,
		isTerminal: term.IsTerminal,
		exit:       os.Exit,
	}
}

// Name returns "console".
func (c *Console) Name() string { return "console" }

// Available reports whether stdin and stderr are terminals. Without a
// terminal there is nobody to prompt and the provider counts as absent.
func (c *Console) Available() bool {
	return c.isTerminal(int(os.Stdin.Fd())) && c.isTerminal(int(os.Stderr.Fd()))
}

// Breakpoint returns the interactive session entry point.
func (c *Console) Breakpoint() func() { return c.session }

func (c *Console) session() {
	prompt := c.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	c.writeStack(false)
	fmt.Fprint(c.out, prompt)

	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		switch ParseCommand(scanner.Text()) {
		case CmdContinue:
			return
		case CmdBacktrace:
			c.writeStack(false)
		case CmdGoroutines:
			c.writeStack(true)
		case CmdEnv:
			fmt.Fprintf(c.out, "PYDEBUG=%q BB=%q\n", os.Getenv("PYDEBUG"), os.Getenv("BB"))
		case CmdQuit:
			log.WithField("caller", "console").Warn("process terminated from breakpoint console")
			c.exit(1)
			return
		case CmdHelp:
			fmt.Fprintln(c.out, "commands: bt backtrace, grs goroutines, env, c continue, q quit, h help")
		default:
			fmt.Fprintln(c.out, "unknown command (h for help)")
		}
		fmt.Fprint(c.out, prompt)
	}
	if err := scanner.Err(); err != nil {
		log.WithField("caller", "console").WithError(err).Error("console input failed, resuming")
	}
}

// writeStack dumps the current goroutine's stack, or all stacks when all is set.
func (c *Console) writeStack(all bool) {
	buf := make([]byte, 64<<10)
	n := runtime.Stack(buf, all)
	c.out.Write(buf[:n])
}
