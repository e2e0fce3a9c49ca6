package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config is implemented by the configuration of an application
type Config interface {
	// Use is the one-line usage message of the application
	Use() string

	// EnvPrefix is the prefix of all the environment variables
	// read by the configuration
	EnvPrefix() string

	// Binders declares the flags of the configuration
	Binders() []Binder
}

// Parser resolves a Config from command line arguments,
// environment variables and an optional configuration file
type Parser struct {
	Config Config

	file *ConfigFile

	cmd *cobra.Command
	v   *viper.Viper
}

// Parse parses the arguments, without the program name, and
// configures all the binders of the Config
func (p *Parser) Parse(args []string) error {
	if p.cmd.PersistentFlags().Parsed() {
		return ErrAlreadyParsed
	}

	if err := p.cmd.PersistentFlags().Parse(args); err != nil {
		return ErrParseFlags{err}
	}

	// keep file first so that any parameters read from the file are used
	// as defaults for the other flags
	var binders []Binder
	binders = append(binders, p.file)
	binders = append(binders, p.Config.Binders()...)

	for _, c := range binders {
		if err := c.Configure(p.v); err != nil {
			return err
		}
	}

	return nil
}

// Args returns the positional arguments left after parsing
// the flags
func (p *Parser) Args() []string {
	return p.cmd.PersistentFlags().Args()
}

// ConfigFile returns the path of the configuration file
// that was loaded, if any
func (p *Parser) ConfigFile() string {
	return p.file.Path
}

func (p *Parser) Usage() error {
	return p.cmd.Usage()
}

// Generate creates the Parser for the app. The environment
// prefix defaults to app when config does not define one
func Generate(app string, config Config) (*Parser, error) {
	prefix := config.EnvPrefix()
	if len(prefix) == 0 {
		prefix = app
	}

	v := viper.New()
	// all environment variables start with prefix `prefix` and are set
	// by replacing `.` and `-` to _.
	v.SetEnvPrefix(prefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	use := config.Use()
	if len(use) == 0 {
		use = app
	}

	cmd := &cobra.Command{Use: use}
	file := ConfigFile{}
	var binders []Binder
	binders = append(binders, &file)
	binders = append(binders, config.Binders()...)

	for _, c := range binders {
		if err := c.Bind(v, cmd); err != nil {
			return nil, fmt.Errorf("failed to bind flags %s", err.Error())
		}
	}

	if err := v.BindPFlags(cmd.PersistentFlags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags %s", err.Error())
	}

	return &Parser{file: &file, Config: config, cmd: cmd, v: v}, nil
}
