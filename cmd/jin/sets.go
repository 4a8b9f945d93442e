package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/jin/internal/vocabulary"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// outputFormat is a flag value restricted to the supported formats.
type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string {
	return string(*f)
}

func (f *outputFormat) Set(value string) error {
	switch value {
	case formatTable, formatJSON, formatYAML:
		*f = outputFormat(value)
		return nil
	}
	return fmt.Errorf("unsupported format %q: use table, json or yaml", value)
}

func (f *outputFormat) Type() string {
	return "format"
}

func newSetsCommand() *cobra.Command {
	format := outputFormat(formatTable)

	cmd := &cobra.Command{
		Use:   "sets",
		Short: "List the loadable vocabulary sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("loadConfig() > %w", err)
			}
			loader, err := newLoader(cfg)
			if err != nil {
				return err
			}

			descriptors, err := loader.Metadata(cmd.Context())
			if err != nil {
				return fmt.Errorf("loader.Metadata() > %w", err)
			}
			return writeDescriptors(cmd.OutOrStdout(), descriptors, string(format))
		},
	}

	cmd.Flags().VarP(&format, "format", "f", "Output format: table, json or yaml")
	return cmd
}

func writeDescriptors(w io.Writer, descriptors []vocabulary.SetDescriptor, format string) error {
	if descriptors == nil {
		descriptors = []vocabulary.SetDescriptor{}
	}

	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(descriptors); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case formatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(descriptors); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	}

	rows := make([][]string, 0, len(descriptors))
	for _, d := range descriptors {
		rows = append(rows, []string{
			string(d.Type),
			d.DisplayName,
			humanize.Comma(int64(d.CardCount)),
			strconv.Itoa(d.DifficultyTier),
		})
	}
	_, err := fmt.Fprintln(w, renderTable(
		[]string{"Type", "Name", "Cards", "Tier"},
		rows,
		[]text.Align{text.AlignLeft, text.AlignLeft, text.AlignRight, text.AlignRight},
	))
	return err
}

func renderTable(headers []string, rows [][]string, aligns []text.Align) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(headers))
		for i := range headers {
			r[i] = ""
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, len(headers))
	for i := range headers {
		align := text.AlignLeft
		if i < len(aligns) {
			align = aligns[i]
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
