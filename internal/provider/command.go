package provider

import (
	"strings"
)

// Command represents a console session command.
type Command int

// Commands understood by the console breakpoint prompt.
const (
	// CmdUnknown is returned for input that matches no command.
	CmdUnknown Command = iota
	// CmdContinue resumes the suspended caller.
	CmdContinue
	// CmdBacktrace prints the stack of the goroutine that hit the breakpoint.
	CmdBacktrace
	// CmdGoroutines prints the stacks of all goroutines.
	CmdGoroutines
	// CmdEnv prints the debug-related environment variables.
	CmdEnv
	// CmdQuit terminates the process.
	CmdQuit
	// CmdHelp prints the command summary.
	CmdHelp
)

// ParseCommand maps a line of console input to a Command.
func ParseCommand(line string) Command {
	switch strings.TrimSpace(line) {
	case "c", "continue":
		return CmdContinue
	case "bt", "backtrace":
		return CmdBacktrace
	case "grs", "goroutines":
		return CmdGoroutines
	case "env":
		return CmdEnv
	case "q", "quit":
		return CmdQuit
	case "h", "help", "?":
		return CmdHelp
	}
	return CmdUnknown
}
