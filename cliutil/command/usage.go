package command

import (
	"fmt"
)

// Usage writes a usage message for sel. With a non-empty msg, the
// message goes to Stderr preceded by "Error: msg" and Usage returns
// 1; otherwise it goes to Stdout and Usage returns 0.
func (s *Shell) Usage(sel Selection, msg string) int {
	out := s.Stdout
	if msg != "" {
		out = s.Stderr
		fmt.Fprintf(out, "Error: %s\n", msg)
	}
	fmt.Fprintf(out, "%s\n", s.Banner)
	fmt.Fprintf(out, "usage:\n")

	r := s.Registry
	r.lock.Lock()
	defer r.lock.Unlock()
	sel = r.scope(sel)

	if sel == TopLevel {
		for _, cmd := range r.commands {
			id := fmt.Sprintf("--%s (-%c)", cmd.Name, cmd.Code)
			fmt.Fprintf(out, "  %s %-14s %s\n", s.Name, id, cmd.Description)
		}
	} else {
		cmd := r.commands[sel]
		for i, line := range cmd.Synopses {
			if i == 0 {
				fmt.Fprintf(out, "  %s --%s %s\n", s.Name, cmd.Name, line)
				continue
			}
			fmt.Fprintf(out, "              %s\n", line)
		}
		for _, f := range cmd.Flags {
			id := fmt.Sprintf("--%s (-%c)", f.Name, f.Code)
			fmt.Fprintf(out, "        %-15s %s\n", id, f.Help)
		}
	}

	if msg != "" {
		return 1
	}
	return 0
}
