package cli

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Format is how lookup results are printed.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

var (
	_          pflag.Value = (*Format)(nil)
	AllFormats             = []Format{FormatTable, FormatJSON, FormatYAML, FormatMarkdown}
)

func (f *Format) Set(val string) error {
	for _, format := range AllFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "Format"
}
