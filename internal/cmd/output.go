package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huectl/huectl/internal/filter"
	"github.com/huectl/huectl/internal/hue"
	"github.com/huectl/huectl/internal/outfmt"
)

var hueCheck = hue.CheckResponse

// printDoc renders a bridge document: decode, apply the --query filter,
// write JSON. Text mode falls back to the same JSON rendering for commands
// without a dedicated table view.
func printDoc(cmd *cobra.Command, doc json.RawMessage) error {
	var data any
	if err := json.Unmarshal(doc, &data); err != nil {
		return fmt.Errorf("unexpected response document: %w", err)
	}
	return printValue(cmd, data)
}

// printValue renders an already-decoded value with --query applied.
func printValue(cmd *cobra.Command, data any) error {
	if flags.Query != "" {
		// gojq only understands plain JSON values; round-trip typed values
		// through encoding/json first.
		norm, err := normalizeJSON(data)
		if err != nil {
			return err
		}
		filtered, err := filter.Apply(norm, flags.Query)
		if err != nil {
			return err
		}
		data = filtered
	}
	compact := flags.Compact || outfmt.IsCompact(cmd.Context())
	return outfmt.WriteJSONMaybeCompact(cmd.OutOrStdout(), data, compact)
}

func normalizeJSON(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// checkAndPrint surfaces embedded bridge errors from mutating calls, then
// prints the document. Read paths skip the check and pass documents through.
func checkAndPrint(cmd *cobra.Command, doc json.RawMessage) error {
	if err := hueCheck(doc); err != nil {
		return err
	}
	return printDoc(cmd, doc)
}
