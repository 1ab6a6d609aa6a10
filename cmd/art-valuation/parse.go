// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chdonahue/art-valuation/internal/pipeline"
	"github.com/chdonahue/art-valuation/internal/textract"
)

var parseCmd = &cobra.Command{
	Use:   "parse [text-dir]",
	Short: "Parse extracted text files into record YAML",
	Long: `Parse runs segmentation and field extraction over text files produced
by convert, writing one record YAML file per document. The intermediate
files feed catalog index and make rule calibration inspectable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	textDir := cfg.Conversion.TextDir
	if len(args) == 1 {
		textDir = args[0]
	}
	rules, err := pipeline.Rules(cfg.Parsing)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(textDir)
	if err != nil {
		return fmt.Errorf("reading text directory %s: %w", textDir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	report := &pipeline.RunReport{}
	for _, name := range names {
		path := filepath.Join(textDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		doc := textract.Document{SourcePath: path, Lines: textract.SplitLines(string(data))}
		records := pipeline.ParseDocument(doc, rules, report)

		outPath, err := pipeline.WriteRecords(cfg.Parsing.RecordsDir, path, records)
		if err != nil {
			return err
		}
		fmt.Printf("parsed:  %s (%d records) -> %s\n", path, len(records), outPath)
		report.DocumentsProcessed++
		report.RecordsParsed += len(records)
	}

	report.Summary(os.Stdout)
	return nil
}

func init() {
	parseCmd.Flags().String("records-dir", "records", "directory for record YAML files")
	parseCmd.Flags().String("rules", "", "YAML boundary rule table overriding the built-in artnet rules")

	rootCmd.AddCommand(parseCmd)
}
