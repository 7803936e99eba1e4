package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/exscan-go/pkg/exscan"
	"github.com/ukaji3/exscan-go/pkg/exscan/mapping"
	"github.com/ukaji3/exscan-go/pkg/exscan/output"
)

type searchFlags struct {
	partial bool
	endRow  int
	endCol  int
}

func (f *searchFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.partial, "partial", false, "Match cells containing the keyword instead of equal to it")
	cmd.Flags().IntVar(&f.endRow, "end-row", 0, "Only scan rows up to this one (0: all)")
	cmd.Flags().IntVar(&f.endCol, "end-col", 0, "Only scan columns up to this one (0: all)")
}

func (f *searchFlags) bound() exscan.Bound {
	return exscan.Bound{EndRow: f.endRow, EndCol: f.endCol}
}

func newLocateCommand() *cobra.Command {
	var flags searchFlags
	cmd := &cobra.Command{
		Use:   "locate [input.xlsx] [keyword]",
		Short: "List every cell matching a keyword",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openScanner(args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			coords, err := s.LocateKeyword(args[1], !flags.partial, flags.bound())
			if err != nil {
				return err
			}
			data, err := output.CoordinatesToJSON(coords, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(data)
		},
	}
	flags.register(cmd)
	return cmd
}

// anchorResult is the JSON shape of a consensus answer.
type anchorResult struct {
	Axis     exscan.Axis `json:"axis"`
	Keywords []string    `json:"keywords"`
	Found    bool        `json:"found"`
	Anchor   int         `json:"anchor,omitempty"`
}

func newConsensusCommand(axis exscan.Axis) *cobra.Command {
	var flags searchFlags
	use, short := "row", "Find the single row shared by all keywords"
	if axis == exscan.AxisCol {
		use, short = "col", "Find the single column shared by all keywords"
	}

	cmd := &cobra.Command{
		Use:   use + " [input.xlsx] [keyword...]",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openScanner(args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			keywords := args[1:]
			resolve := s.ConsensusRow
			if axis == exscan.AxisCol {
				resolve = s.ConsensusCol
			}
			anchor, err := resolve(keywords, !flags.partial, flags.bound())
			if err != nil {
				return err
			}
			data, err := output.Marshal(anchorResult{
				Axis:     axis,
				Keywords: keywords,
				Found:    anchor != exscan.NoAnchor,
				Anchor:   anchor,
			}, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(data)
		},
	}
	flags.register(cmd)
	return cmd
}

func newCellCommand() *cobra.Command {
	var (
		row, col             int
		rowOffset, colOffset int
		formula, cellBackend bool
		asString, debug      bool
	)
	cmd := &cobra.Command{
		Use:   "cell [input.xlsx]",
		Short: "Read the cell at a base position plus an offset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openScanner(args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			opts := []exscan.CellOption{exscan.At(row, col), exscan.Offset(rowOffset, colOffset)}
			if formula {
				opts = append(opts, exscan.WithFormula())
			}
			if cellBackend {
				opts = append(opts, exscan.WithCellBackend())
			}
			if debug {
				opts = append(opts, exscan.WithDebug())
				if !verbose {
					logrus.SetLevel(logrus.InfoLevel)
				}
			}

			v, err := s.GetCell(opts...)
			if err != nil {
				return err
			}
			if asString {
				return writeOutput([]byte(v.String()))
			}
			data, err := output.ValueToJSON(v, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(data)
		},
	}
	cmd.Flags().IntVar(&row, "row", 1, "Base row (1-based)")
	cmd.Flags().IntVar(&col, "col", 1, "Base column (1-based)")
	cmd.Flags().IntVar(&rowOffset, "row-offset", 0, "Rows below the base")
	cmd.Flags().IntVar(&colOffset, "col-offset", 0, "Columns right of the base")
	cmd.Flags().BoolVar(&formula, "formula", false, "Return formula text where the cell has one")
	cmd.Flags().BoolVar(&cellBackend, "cell-backend", false, "Read through the cell accessor instead of the bulk table")
	cmd.Flags().BoolVar(&asString, "string", false, "Print the raw string form instead of JSON")
	cmd.Flags().BoolVar(&debug, "debug", false, "Log how the cell was resolved")
	return cmd
}

func newRangeCommand() *cobra.Command {
	var q exscan.RangeQuery
	cmd := &cobra.Command{
		Use:   "range [input.xlsx]",
		Short: "Copy a rectangular block of cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openScanner(args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			grid, err := s.GetRange(q)
			if err != nil {
				return err
			}
			data, err := output.GridToJSON(grid, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(data)
		},
	}
	cmd.Flags().IntVar(&q.StartRow, "start-row", 0, "First row (0: first row of the sheet)")
	cmd.Flags().IntVar(&q.EndRow, "end-row", 0, "Last row, inclusive (0: last row of the sheet)")
	cmd.Flags().IntVar(&q.StartCol, "start-col", 0, "First column (0: first column of the sheet)")
	cmd.Flags().IntVar(&q.EndCol, "end-col", 0, "Last column, inclusive (0: last column of the sheet)")
	return cmd
}

func newExtractCommand() *cobra.Command {
	var mappingPath string
	cmd := &cobra.Command{
		Use:   "extract [input.xlsx]",
		Short: "Extract header, line items and totals using a field mapping",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := mapping.Default()
			if mappingPath != "" {
				loaded, err := mapping.Load(mappingPath)
				if err != nil {
					return err
				}
				m = loaded
			}

			s, err := openScanner(args[0])
			if err != nil {
				return err
			}
			defer s.Close()

			doc, err := exscan.Extract(s, m)
			if err != nil {
				return fmt.Errorf("extraction failed: %w", err)
			}
			data, err := output.ToJSON(doc, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			return writeOutput(data)
		},
	}
	cmd.Flags().StringVarP(&mappingPath, "mapping", "m", "", "YAML field mapping (default: built-in quotation layout)")
	return cmd
}

func newMappingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mapping",
		Short: "Print the built-in field mapping as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := mapping.Marshal(mapping.Default())
			if err != nil {
				return err
			}
			return writeOutput(data)
		},
	}
}
