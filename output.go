package borderize

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/borderize/internal/borderize"
)

// OutputFormat represents the stylesheet output format
type OutputFormat = borderize.OutputFormat

// Output formats
const (
	OutputCSS  = borderize.OutputCSS
	OutputJSON = borderize.OutputJSON
)

// ErrUnknownFormat is returned for an output format other than css or json.
var ErrUnknownFormat = errors.New("unknown output format")

// DetermineOutputFormat selects the output format from the format flag.
// An empty flag means css.
func DetermineOutputFormat(formatFlag string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(formatFlag)) {
	case "", "css":
		return OutputCSS, nil
	case "json":
		return OutputJSON, nil
	}
	return "", fmt.Errorf("%w %q (want css or json)", ErrUnknownFormat, formatFlag)
}

// WriteOutput writes the style map in the specified format
func WriteOutput(w io.Writer, styles borderize.StyleMap, format OutputFormat) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, styles)
	default:
		return borderize.WriteCSS(w, styles)
	}
}
