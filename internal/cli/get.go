package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cjlib "github.com/constarg/cjlib-go"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <key>",
		Short: "print the value stored under key in file's root object",
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

			v, err := doc.Get(key)
			if err != nil {
				return fmt.Errorf("get %q: %w", key, err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), v.String())
			return nil
		},
	}
}
