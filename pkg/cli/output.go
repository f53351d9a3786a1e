package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/K3nguruh/validation/pkg/validation"
)

// writeResult prints errs sorted by alias.
func writeResult(w io.Writer, format outputFormat, errs validation.ErrorMap) error {
	if format == outputJSON {
		if errs == nil {
			errs = validation.ErrorMap{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(errs)
	}

	if errs.IsEmpty() {
		_, err := fmt.Fprintln(w, "all fields valid")
		return err
	}
	for _, alias := range errs.Fields() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", alias, errs[alias]); err != nil {
			return err
		}
	}
	return nil
}
