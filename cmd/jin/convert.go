package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jin/internal/vocabulary"
)

func newConvertCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "convert [setType...]",
		Short: "Convert vocabulary source files into cached JSON",
		Long: `Convert vocabulary source files into cached JSON.
Up-to-date cache entries are reused unless --force is given.
All sets are converted when no set type is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			setTypes, err := parseSetTypes(args)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			loader, err := newLoader(cfg)
			if err != nil {
				return err
			}

			var failed int
			for _, setType := range setTypes {
				var cards []vocabulary.Card
				if force {
					cards, err = loader.Reload(ctx, setType)
					if err != nil {
						failed++
						_, _ = fmt.Fprintf(out, "%-10s failed: %v\n", setType, err)
						continue
					}
				} else {
					var ok bool
					cards, ok = loader.LoadSet(ctx, string(setType))
					if !ok {
						failed++
						_, _ = fmt.Fprintf(out, "%-10s failed: see log for details\n", setType)
						continue
					}
				}
				if len(cards) == 0 {
					failed++
					_, _ = fmt.Fprintf(out, "%-10s failed: no cards\n", setType)
					continue
				}
				_, _ = fmt.Fprintf(out, "%-10s %s cards\n", setType, humanize.Comma(int64(len(cards))))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d sets failed to convert", failed, len(setTypes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Convert sources even when the cache entry is up to date")
	return cmd
}
