package command

import (
	"fmt"
)

// Default is the registry commands add themselves to from their init
// functions.
var Default Registry

// Register adds cmd to the default registry. Registering too many
// commands or options is a programming error and panics.
func Register(cmd Command) {
	if err := Default.Add(cmd); err != nil {
		panic(fmt.Errorf("cannot register command %q: %v", cmd.Name, err))
	}
}
