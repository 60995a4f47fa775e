package cli

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"bazil.org/pki/cliutil/command"
	"bazil.org/pki/version"
	"github.com/spf13/viper"
	"github.com/tv42/jog"
)

// Config is taken from the environment, as PKI_DEBUG and PKI_NAME.
type Config struct {
	Debug bool
	// Name is the program name shown in usage messages.
	Name string
}

// LoadConfig reads the configuration from the environment. prog is
// the default program name.
func LoadConfig(prog string) Config {
	v := viper.New()
	v.SetEnvPrefix("pki")
	v.AutomaticEnv()
	v.SetDefault("debug", false)
	v.SetDefault("name", prog)
	return Config{
		Debug: v.GetBool("debug"),
		Name:  v.GetString("name"),
	}
}

// Stdin is where commands read their input from when no file is
// given.
var Stdin io.Reader = os.Stdin

// ReadInput returns the contents of path, or of Stdin if path is
// empty.
func ReadInput(path string) ([]byte, error) {
	if path == "" {
		buf, err := ioutil.ReadAll(Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %v", err)
		}
		return buf, nil
	}
	return ioutil.ReadFile(path)
}

// Fail logs err and returns the exit status for a failed command.
func Fail(err error) int {
	log.Printf("error: %v", err)
	return 1
}

// NewShell finalizes reg into a Shell set up according to cfg.
func NewShell(reg *command.Registry, cfg Config) (*command.Shell, error) {
	shell, err := command.NewShell(reg, cfg.Name)
	if err != nil {
		return nil, err
	}
	shell.Banner = fmt.Sprintf("pki %s", version.Version)
	if cfg.Debug {
		log := jog.New(nil)
		shell.Debug = log.Event
	}
	return shell, nil
}

// Main is primary entry point into the pki command line
// application.
func Main() (exitstatus int) {
	progName := filepath.Base(os.Args[0])
	log.SetFlags(0)
	log.SetPrefix(progName + ": ")

	cfg := LoadConfig(progName)
	shell, err := NewShell(&command.Default, cfg)
	if err != nil {
		log.Printf("invalid command table: %v", err)
		return 2
	}
	return shell.Run(os.Args)
}
