package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [setType...]",
		Short: "Parse vocabulary source files without using the cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			setTypes, err := parseSetTypes(args)
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			loader, err := newLoader(cfg)
			if err != nil {
				return err
			}

			ok := color.New(color.FgGreen)
			fail := color.New(color.FgRed)

			var failed int
			for _, setType := range setTypes {
				cards, err := loader.ParseSource(setType)
				switch {
				case err != nil:
					failed++
					_, _ = fail.Fprintf(out, "✗ %-10s %v\n", setType, err)
				case len(cards) == 0:
					failed++
					_, _ = fail.Fprintf(out, "✗ %-10s no cards\n", setType)
				default:
					_, _ = ok.Fprintf(out, "✓ %-10s %d cards\n", setType, len(cards))
				}
			}

			if failed > 0 {
				return fmt.Errorf("validation failed with %d error(s)", failed)
			}
			_, _ = fmt.Fprintln(out, "All source files are valid.")
			return nil
		},
	}
}
