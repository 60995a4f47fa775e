package command

import (
	"errors"
	"fmt"
	"sync"
)

const (
	// MaxCommands is the number of commands a Registry can hold,
	// including the implicit help command.
	MaxCommands = 16
	// MaxOptions is the number of flags one command can declare.
	MaxOptions = 32
)

const (
	helpName        = "help"
	helpCode        = 'h'
	helpDescription = "show usage information"
)

var (
	ErrFinalized       = errors.New("command registry is already finalized")
	ErrTooManyCommands = fmt.Errorf("more than %d commands registered", MaxCommands)
	ErrTooManyOptions  = fmt.Errorf("more than %d options declared", MaxOptions)
)

// ConfigError reports a command table that cannot be dispatched on
// unambiguously.
type ConfigError struct {
	Command string
	Problem string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("command %q: %s", e.Command, e.Problem)
}

// Registry is an ordered collection of commands. The zero value is
// an empty registry ready to use.
type Registry struct {
	lock      sync.Mutex
	commands  []Command
	finalized bool
	help      int
}

// Add appends a command to the registry.
func (r *Registry) Add(cmd Command) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.finalized {
		return ErrFinalized
	}
	// keep a slot for help
	if len(r.commands) >= MaxCommands-1 {
		return ErrTooManyCommands
	}
	if len(cmd.Flags) > MaxOptions {
		return ErrTooManyOptions
	}
	cmd.Flags = append([]Flag(nil), cmd.Flags...)
	cmd.Synopses = append([]string(nil), cmd.Synopses...)
	r.commands = append(r.commands, cmd)
	return nil
}

// Lookup returns the index of the first command registered with the
// given code.
func (r *Registry) Lookup(code byte) (int, bool) {
	r.lock.Lock()
	defer r.lock.Unlock()
	for i, cmd := range r.commands {
		if cmd.Code == code {
			return i, true
		}
	}
	return -1, false
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.commands)
}

// Command returns the command at index i.
func (r *Registry) Command(i int) Command {
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.commands[i]
}

// HelpIndex returns the index of the implicit help command, or -1 if
// the registry has not been finalized.
func (r *Registry) HelpIndex() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	if !r.finalized {
		return -1
	}
	return r.help
}

// Finalize appends the help command and freezes the registry. It
// fails if command or flag identifiers collide.
func (r *Registry) Finalize() error {
	r.lock.Lock()
	defer r.lock.Unlock()
	if r.finalized {
		return ErrFinalized
	}
	cmds := append(r.commands[:len(r.commands):len(r.commands)], Command{
		Name:        helpName,
		Code:        helpCode,
		Description: helpDescription,
		Handler:     help,
	})
	if err := validate(cmds); err != nil {
		return err
	}
	r.help = len(r.commands)
	r.commands = cmds
	r.finalized = true
	return nil
}

func help(ctx *Context) int {
	return ctx.Shell.Usage(TopLevel, "")
}

func validCode(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9'
}

func validate(cmds []Command) error {
	codes := make(map[byte]string)
	names := make(map[string]bool)
	for _, cmd := range cmds {
		switch {
		case cmd.Name == "":
			return &ConfigError{Command: cmd.Name, Problem: "empty name"}
		case !validCode(cmd.Code):
			return &ConfigError{Command: cmd.Name, Problem: fmt.Sprintf("invalid code %q", cmd.Code)}
		case cmd.Handler == nil:
			return &ConfigError{Command: cmd.Name, Problem: "no handler"}
		case names[cmd.Name]:
			return &ConfigError{Command: cmd.Name, Problem: "name registered twice"}
		}
		if prev, dup := codes[cmd.Code]; dup {
			return &ConfigError{Command: cmd.Name, Problem: fmt.Sprintf("code %q already used by %q", cmd.Code, prev)}
		}
		codes[cmd.Code] = cmd.Name
		names[cmd.Name] = true

		flagCodes := make(map[byte]string)
		flagNames := make(map[string]bool)
		for _, f := range cmd.Flags {
			switch {
			case f.Name == "":
				return &ConfigError{Command: cmd.Name, Problem: fmt.Sprintf("flag -%c has no name", f.Code)}
			case !validCode(f.Code):
				return &ConfigError{Command: cmd.Name, Problem: fmt.Sprintf("flag --%s has invalid code %q", f.Name, f.Code)}
			case flagNames[f.Name]:
				return &ConfigError{Command: cmd.Name, Problem: fmt.Sprintf("flag --%s declared twice", f.Name)}
			}
			if prev, dup := flagCodes[f.Code]; dup {
				return &ConfigError{Command: cmd.Name, Problem: fmt.Sprintf("flag code %q of --%s already used by --%s", f.Code, f.Name, prev)}
			}
			flagCodes[f.Code] = f.Name
			flagNames[f.Name] = true
		}
	}
	return nil
}
