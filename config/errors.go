package config

import (
	"errors"
	"fmt"
)

// ErrAlreadyParsed is returned when Parse is called more than
// once on the same Parser
var ErrAlreadyParsed = errors.New("configuration has already been parsed")

// ErrParseFlags is returned when the command line flags
// cannot be parsed
type ErrParseFlags struct {
	Cause error
}

// Error implementation of error for ErrParseFlags
func (e ErrParseFlags) Error() string {
	return fmt.Sprintf("failed to parse flags: %s", e.Cause.Error())
}

// Unwrap returns the cause of the error
func (e ErrParseFlags) Unwrap() error {
	return e.Cause
}

// ErrReadConfigFile is returned when the configuration
// file cannot be loaded
type ErrReadConfigFile struct {
	Path  string
	Cause error
}

// Error implementation of error for ErrReadConfigFile
func (e ErrReadConfigFile) Error() string {
	return fmt.Sprintf("failed to read config file %s: %s", e.Path, e.Cause.Error())
}

// Unwrap returns the cause of the error
func (e ErrReadConfigFile) Unwrap() error {
	return e.Cause
}
