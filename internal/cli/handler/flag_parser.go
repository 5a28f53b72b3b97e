// Package handler provides flag parsing utilities
package handler

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/chores/internal/cli"
)

// FlagParser provides common flag extraction patterns.
// Rejected values wrap cli.ErrInvalidInput.
type FlagParser struct {
	cmd *cobra.Command
}

// NewFlagParser creates a new flag parser
func NewFlagParser(cmd *cobra.Command) *FlagParser {
	return &FlagParser{cmd: cmd}
}

// ParseID extracts a positive row id from an int64 flag
func (p *FlagParser) ParseID(flagName string) (int64, error) {
	id, err := p.cmd.Flags().GetInt64(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %s must be greater than 0", cli.ErrInvalidInput, flagName)
	}
	return id, nil
}

// ParseString extracts a required string flag
func (p *FlagParser) ParseString(flagName string) (string, error) {
	value, err := p.cmd.Flags().GetString(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%w: %s is required", cli.ErrInvalidInput, flagName)
	}
	return value, nil
}

// ParseStringOptional extracts an optional string flag as given
func (p *FlagParser) ParseStringOptional(flagName string) (string, error) {
	return p.cmd.Flags().GetString(flagName)
}

// ParseUint8 extracts an int flag that must fit in 0-255
func (p *FlagParser) ParseUint8(flagName string) (uint8, error) {
	value, err := p.cmd.Flags().GetInt(flagName)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	if value < 0 || value > math.MaxUint8 {
		return 0, fmt.Errorf("%w: %s must be between 0 and 255, got %d", cli.ErrInvalidInput, flagName, value)
	}
	return uint8(value), nil
}

// ParseChoice extracts a string flag restricted to the given values
func (p *FlagParser) ParseChoice(flagName string, choices ...string) (string, error) {
	value, err := p.ParseStringOptional(flagName)
	if err != nil {
		return "", fmt.Errorf("failed to parse %s flag: %w", flagName, err)
	}
	value = strings.TrimSpace(value)
	for _, c := range choices {
		if value == c {
			return value, nil
		}
	}
	return "", fmt.Errorf("%w: %s must be one of %s, got %q", cli.ErrInvalidInput, flagName, strings.Join(choices, ", "), value)
}

// OutputFormats extracts JSON and Quiet output flags.
// Commands without those flags get human-readable output.
func (p *FlagParser) OutputFormats() (jsonOutput bool, quietMode bool, err error) {
	if p.cmd.Flags().Lookup("json") != nil {
		jsonOutput, err = p.cmd.Flags().GetBool("json")
		if err != nil {
			return false, false, fmt.Errorf("failed to parse json flag: %w", err)
		}
	}

	if p.cmd.Flags().Lookup("quiet") != nil {
		quietMode, err = p.cmd.Flags().GetBool("quiet")
		if err != nil {
			return false, false, fmt.Errorf("failed to parse quiet flag: %w", err)
		}
	}

	return jsonOutput, quietMode, nil
}
