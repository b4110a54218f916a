package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	cjlib "github.com/constarg/cjlib-go"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <key> <json-value>",
		Short: "set key to a parsed JSON value in file's root object and dump the result",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, key, rawValue := args[0], args[1], args[2]

			doc, err := cjlib.Open(path, cjlib.ModeCreate, newLogger())
			if err != nil {
				return fmt.Errorf("open %s: %w", path, err)
			}
			defer doc.Close()

			if err := doc.Read(); err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			value, err := cjlib.ParseString(rawValue)
			if err != nil {
				return fmt.Errorf("parse value %q: %w", rawValue, err)
			}

			if _, err := doc.Remove(key); err != nil {
				// Absent key is fine for set; any other failure (e.g. a
				// non-object root) should surface.
				if info := cjlib.LastError(); info.Code != cjlib.KeyNotFound {
					return fmt.Errorf("set %q: %w", key, err)
				}
			}
			if err := doc.Set(key, value); err != nil {
				return fmt.Errorf("set %q: %w", key, err)
			}

			return doc.Dump()
		},
	}
}
