package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
)

// IDGetter is implemented by single results for quiet mode output
type IDGetter interface {
	GetID() int64
}

// IDLister is implemented by list results for quiet mode output
type IDLister interface {
	IDs() []int64
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out defaults to os.Stdout and Err to os.Stderr
	Out io.Writer
	Err io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out != nil {
		return f.Out
	}
	return os.Stdout
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.Err != nil {
		return f.Err
	}
	return os.Stderr
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		switch v := data.(type) {
		case IDGetter:
			_, err := fmt.Fprintf(f.out(), "%d\n", v.GetID())
			return err
		case IDLister:
			for _, id := range v.IDs() {
				if _, err := fmt.Fprintf(f.out(), "%d\n", id); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    code,
				"message": message,
			},
		})
	}

	_, err := fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message)
	return err
}

// prettyPrint prints Stringers as they render themselves. Colors are
// downsampled to what the output supports.
func (f *OutputFormatter) prettyPrint(data any) error {
	if data == nil {
		return nil
	}
	if s, ok := data.(fmt.Stringer); ok {
		_, err := lipgloss.Fprintln(f.out(), s.String())
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
