package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Binder registers a set of flags and reads them back
// once the configuration has been parsed
type Binder interface {
	// Bind declares the flags on the command and the defaults
	// on viper
	Bind(v *viper.Viper, cmd *cobra.Command) error

	// Configure reads the values resolved by viper. Values
	// are resolved with the precedence flag, environment,
	// configuration file and default
	Configure(v *viper.Viper) error
}

const configFileKey = "config"

// ConfigFile binds the --config flag. When set, the file is
// loaded by viper so that its values act as defaults for the
// rest of the flags
type ConfigFile struct {
	Path string
}

// Bind implementation of Binder for ConfigFile
func (f *ConfigFile) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(configFileKey, "",
		"configuration file in any format supported by viper (yaml, json, toml)")
	return nil
}

// Configure implementation of Binder for ConfigFile
func (f *ConfigFile) Configure(v *viper.Viper) error {
	f.Path = v.GetString(configFileKey)
	if len(f.Path) == 0 {
		return nil
	}

	v.SetConfigFile(f.Path)
	if err := v.ReadInConfig(); err != nil {
		return ErrReadConfigFile{Path: f.Path, Cause: err}
	}

	return nil
}
