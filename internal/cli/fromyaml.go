package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cjlib "github.com/constarg/cjlib-go"
	"github.com/constarg/cjlib-go/internal/convert"
)

// newFromYAMLCmd decodes a YAML document and dumps it as JSON, proving
// the OrderedMap/Value/Sequence layer is reachable from a non-JSON
// source through the same Document facade.
func newFromYAMLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "from-yaml <in.yaml> <out.json>",
		Short: "convert a YAML document to JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inPath, outPath := args[0], args[1]

			raw, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("read %s: %w", inPath, err)
			}

			root, err := convert.YAMLToValue(raw)
			if err != nil {
				return fmt.Errorf("convert %s: %w", inPath, err)
			}

			doc, err := cjlib.Open(outPath, cjlib.ModeCreate, newLogger())
			if err != nil {
				return fmt.Errorf("open %s: %w", outPath, err)
			}
			defer doc.Close()

			doc.SetRoot(root)
			return doc.Dump()
		},
	}
}
