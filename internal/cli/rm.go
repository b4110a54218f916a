package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cjlib "github.com/constarg/cjlib-go"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <file> <key>",
		Short: "remove key from file's root object and dump the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, key := args[0], args[1]

			doc, err := cjlib.Open(path, cjlib.ModeRead, newLogger())
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer doc.Close()

			if err := doc.Read(); err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			if _, err := doc.Remove(key); err != nil {
				return fmt.Errorf("remove %q: %w", key, err)
			}

			return doc.Dump()
		},
	}
}
