package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
)

// Printer is implemented by results that know their human-readable form
type Printer interface {
	Print(w io.Writer) error
}

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Out and Err default to os.Stdout and os.Stderr
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

// Success outputs a successful operation result
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet && f.printIDs(data) {
		return nil
	}

	if f.JSON {
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if f.Quiet {
		return nil
	}

	// Human-readable format
	return f.prettyPrint(data)
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return json.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := fmt.Fprintf(f.errOut(), "Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.errOut(), "Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

// printIDs writes the id of data, or of every element of a slice of data,
// one per line. It reports false when data carries no ids.
func (f *OutputFormatter) printIDs(data any) bool {
	type idGetter interface{ GetID() int }

	if g, ok := data.(idGetter); ok {
		_, _ = fmt.Fprintf(f.out(), "%d\n", g.GetID())
		return true
	}

	v := reflect.ValueOf(data)
	if !v.IsValid() || v.Kind() != reflect.Slice {
		return false
	}
	ids := make([]int, 0, v.Len())
	for i := range v.Len() {
		g, ok := v.Index(i).Interface().(idGetter)
		if !ok {
			return false
		}
		ids = append(ids, g.GetID())
	}
	for _, id := range ids {
		_, _ = fmt.Fprintf(f.out(), "%d\n", id)
	}
	return true
}

// prettyPrint formats data for human-readable output
func (f *OutputFormatter) prettyPrint(data any) error {
	if p, ok := data.(Printer); ok {
		return p.Print(f.out())
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}
