package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	cjlib "github.com/constarg/cjlib-go"
)

// newFmtCmd re-serialises one or more documents in place. Distinct
// Documents share no mutable state except the package-level error
// Reporter, so processing several files concurrently is safe: each
// goroutine owns one Document end to end and never touches another's
// tree.
func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file...>",
		Short: "re-serialise one or more documents in place",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := new(errgroup.Group)
			g.SetLimit(runtime.NumCPU())

			for _, path := range args {
				path := path
				g.Go(func() error {
					return reformatOne(path)
				})
			}
			return g.Wait()
		},
	}
}

func reformatOne(path string) error {
	doc, err := cjlib.Open(path, cjlib.ModeRead, newLogger())
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer doc.Close()

	if err := doc.Read(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := doc.Dump(); err != nil {
		return fmt.Errorf("dump %s: %w", path, err)
	}
	return nil
}
