package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/suzuneyagi/bsts-lab/config"
	errs "github.com/suzuneyagi/bsts-lab/errors"
	"github.com/suzuneyagi/bsts-lab/logs"
)

const (
	typeFlag        = "type"
	concurrencyFlag = "concurrency"
	iterativeFlag   = "iterative"
	logLevelFlag    = "log-level"
	logFormatFlag   = "log-format"
)

// ValueType is the type the input tokens are parsed as
type ValueType string

const (
	ValueTypeInt    ValueType = "int"
	ValueTypeFloat  ValueType = "float"
	ValueTypeString ValueType = "string"
)

// SortConfig is the configuration of bstsort
type SortConfig struct {
	Type        ValueType
	Concurrency int
	Iterative   bool
	LogLevel    logrus.Level
	LogFormat   logs.FormatterType
}

// Use implementation of config.Config for SortConfig
func (c *SortConfig) Use() string {
	return "bstsort [flags] [file ...]"
}

// EnvPrefix implementation of config.Config for SortConfig
func (c *SortConfig) EnvPrefix() string {
	return "bstsort"
}

// Binders implementation of config.Config for SortConfig
func (c *SortConfig) Binders() []config.Binder {
	return []config.Binder{c}
}

// Bind implementation of config.Binder for SortConfig
func (c *SortConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String(typeFlag, string(ValueTypeInt), "type of the values: int, float or string")
	flags.Int(concurrencyFlag, 4, "number of inputs sorted in parallel")
	flags.Bool(iterativeFlag, false, "rewrite the tree links in a loop instead of recursively")
	flags.String(logLevelFlag, logrus.InfoLevel.String(), "minimum level of the log entries")
	flags.String(logFormatFlag, string(logs.FormatterTypePrefixed), "log format: prefixed, text or json")
	return nil
}

// Configure implementation of config.Binder for SortConfig
func (c *SortConfig) Configure(v *viper.Viper) error {
	c.Type = ValueType(v.GetString(typeFlag))
	switch c.Type {
	case ValueTypeInt, ValueTypeFloat, ValueTypeString:
	default:
		return errs.New(errs.ErrCodeInvalidType, "unsupported value type %q", c.Type)
	}

	level, err := logrus.ParseLevel(v.GetString(logLevelFlag))
	if err != nil {
		return err
	}

	c.LogLevel = level
	c.LogFormat = logs.FormatterType(v.GetString(logFormatFlag))
	c.Concurrency = v.GetInt(concurrencyFlag)
	c.Iterative = v.GetBool(iterativeFlag)
	return nil
}
