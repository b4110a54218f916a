package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	cjlib "github.com/constarg/cjlib-go"
)

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>",
		Short: "print file's document as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			doc, err := cjlib.Open(path, cjlib.ModeRead, newLogger())
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer doc.Close()

			if err := doc.Read(); err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			if debugFlag {
				fmt.Fprintln(cmd.ErrOrStderr(), spew.Sdump(doc.Root()))
			}

			if _, err := doc.WriteTo(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
