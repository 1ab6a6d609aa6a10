// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chdonahue/art-valuation/internal/textract"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input-dir]",
	Short: "Extract text from auction listing PDFs",
	Long: `Convert runs the text-extraction stage on its own: every PDF in the
input directory becomes a .txt file in the text directory, page breaks
preserved as form feeds. Useful for inspecting what the parser will see
before calibrating boundary rules.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	if len(args) == 1 {
		cfg.InputDir = args[0]
	}
	if cfg.InputDir == "" {
		return fmt.Errorf("no input directory: pass it as an argument or set input_dir in the config")
	}
	if f := cmd.Flags().Lookup("text-dir"); f != nil && f.Changed {
		cfg.Conversion.TextDir, _ = cmd.Flags().GetString("text-dir")
	}

	extractor, err := textract.New(cfg.Conversion)
	if err != nil {
		return err
	}

	result, err := textract.ExtractBatch(extractor, cfg.InputDir, cfg.Conversion.TextDir, os.Stdout)
	if err != nil {
		return err
	}
	if result.Total() == 0 {
		fmt.Fprintln(os.Stderr, "no PDF files found")
	}
	return nil
}

func init() {
	convertCmd.Flags().String("text-dir", "text", "directory for extracted text files")
	convertCmd.Flags().String("backend", "pdflib", "text extraction backend: pdflib or pdftotext")
	convertCmd.Flags().Bool("fallback", false, "retry failed documents with pdftotext")

	rootCmd.AddCommand(convertCmd)
}
