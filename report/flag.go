// Copyright © 2026 The Gomon Project.

package report

import (
	"errors"
	"strings"

	"github.com/zosmac/gocore"
)

type (
	// Format of a report.
	Format string

	// Options control the rendering of a report.
	Options struct {
		Format Format
		Pretty bool
		Color  bool
	}
)

const (
	// report formats.
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

var (
	// formats valid values for the report format.
	formats = gocore.ValidValue[Format]{}.Define(
		Text,
		JSON,
		YAML,
	)

	// flags defines the command line flags.
	flags = Options{
		Format: Text,
	}
)

// init initializes the command line flags.
func init() {
	s := strings.Join(formats.ValidValues(), "|")
	gocore.Flags.Var(
		&flags.Format,
		"format",
		"[-format "+s+"]",
		"Write the report in `format` "+s,
	)
	gocore.Flags.Var(
		&flags.Pretty,
		"pretty",
		"[-pretty]",
		"Produce JSON output in human readable format",
	)
	gocore.Flags.Var(
		&flags.Color,
		"color",
		"[-color]",
		"Colorize the severity headers of the text report",
	)
}

// ResetFlags restores the command line flags to their defaults so that the
// command line may be parsed again.
func ResetFlags() {
	flags = Options{
		Format: Text,
	}
}

// Configure returns the Options set by the command line flags.
func Configure() Options {
	return flags
}

// Set is a flag.Value interface method to enable Format as a command line flag.
func (f *Format) Set(format string) error {
	format = strings.ToLower(format)
	if formats.IsValid(Format(format)) {
		*f = Format(format)
		return nil
	}
	return errors.New("valid values are " + strings.Join(formats.ValidValues(), ", "))
}

// String is a flag.Value interface method to enable Format as a command line flag.
func (f *Format) String() string {
	return string(*f)
}
