// Package main provides the CLI entry point for exscan-go.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/exscan-go/pkg/exscan"
)

var (
	outputPath string
	pretty     bool
	sheetName  string
	verbose    bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exscan",
		Short: "Locate and extract keyword-anchored data from Excel files",
		Long: `exscan-go finds cells by the labels around them (for example "SUB-TOTAL" or a
table header row) and reads values relative to those anchors. Results are JSON.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().StringVar(&sheetName, "sheet", "", "Sheet to scan (default: active sheet)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details to stderr")

	rootCmd.AddCommand(
		newLocateCommand(),
		newConsensusCommand(exscan.AxisRow),
		newConsensusCommand(exscan.AxisCol),
		newCellCommand(),
		newRangeCommand(),
		newExtractCommand(),
		newMappingCommand(),
	)
	return rootCmd
}

func configureLogging() {
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

// openScanner validates the input path and creates a Scanner for it.
func openScanner(path string) (*exscan.Scanner, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return exscan.New(path, exscan.WithSheet(sheetName)), nil
}

// writeOutput writes data to the output file, or to stdout when none was given.
func writeOutput(data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(data))
	return nil
}
