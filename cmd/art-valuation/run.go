// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chdonahue/art-valuation/internal/pipeline"
	"github.com/chdonahue/art-valuation/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run [input-dir]",
	Short: "Run the whole pipeline: PDFs in, one CSV table out",
	Long: `Run processes every PDF in the input directory: text extraction,
record segmentation, field parsing, and table assembly. Documents that
cannot be read and fields that cannot be extracted are reported at the
end of the run; the table is written with whatever rows were produced.

The exit code is zero whenever the run completes, even with partial
extraction failures. Only environment problems (missing input
directory, unwritable output) fail the command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	if len(args) == 1 {
		cfg.InputDir = args[0]
	}
	if cfg.InputDir == "" {
		return fmt.Errorf("no input directory: pass it as an argument or set input_dir in the config")
	}

	_, err := pipeline.Run(cfg, os.Stdout)
	return err
}

// pipelineConfig merges flags over the viper config file.
func pipelineConfig(cmd *cobra.Command) types.PipelineConfig {
	cfg := types.PipelineConfig{
		InputDir: viper.GetString("input_dir"),
		Conversion: types.ConversionConfig{
			Backend:  types.ExtractionBackend(viper.GetString("conversion.backend")),
			Fallback: viper.GetBool("conversion.fallback"),
			TextDir:  viper.GetString("conversion.text_dir"),
		},
		Parsing: types.ParsingConfig{
			RulesFile:  viper.GetString("parsing.rules_file"),
			RecordsDir: viper.GetString("parsing.records_dir"),
		},
		Output: types.OutputConfig{
			Path:       viper.GetString("output.path"),
			ReportPath: viper.GetString("output.report_path"),
		},
		Catalog: types.CatalogConfig{
			Dir:        viper.GetString("catalog.dir"),
			MaxResults: viper.GetInt("catalog.max_results"),
		},
	}

	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		cfg.Output.Path, _ = cmd.Flags().GetString("output")
	}
	if f := cmd.Flags().Lookup("report"); f != nil && f.Changed {
		cfg.Output.ReportPath, _ = cmd.Flags().GetString("report")
	}
	if f := cmd.Flags().Lookup("rules"); f != nil && f.Changed {
		cfg.Parsing.RulesFile, _ = cmd.Flags().GetString("rules")
	}
	if f := cmd.Flags().Lookup("backend"); f != nil && f.Changed {
		backend, _ := cmd.Flags().GetString("backend")
		cfg.Conversion.Backend = types.ExtractionBackend(backend)
	}
	if f := cmd.Flags().Lookup("fallback"); f != nil && f.Changed {
		cfg.Conversion.Fallback, _ = cmd.Flags().GetBool("fallback")
	}
	if f := cmd.Flags().Lookup("records-dir"); f != nil && f.Changed {
		cfg.Parsing.RecordsDir, _ = cmd.Flags().GetString("records-dir")
	}
	if f := cmd.Flags().Lookup("catalog-dir"); f != nil && f.Changed {
		cfg.Catalog.Dir, _ = cmd.Flags().GetString("catalog-dir")
	}
	if f := cmd.Flags().Lookup("max-results"); f != nil && f.Changed {
		cfg.Catalog.MaxResults, _ = cmd.Flags().GetInt("max-results")
	}

	if cfg.Output.Path == "" {
		cfg.Output.Path = "artnet_results.csv"
	}
	if cfg.Conversion.TextDir == "" {
		cfg.Conversion.TextDir = "text"
	}
	if cfg.Parsing.RecordsDir == "" {
		cfg.Parsing.RecordsDir = "records"
	}
	if cfg.Catalog.Dir == "" {
		cfg.Catalog.Dir = "catalog"
	}
	return cfg
}

func init() {
	runCmd.Flags().StringP("output", "o", "artnet_results.csv", "output CSV file")
	runCmd.Flags().String("report", "", "optional YAML file for the run report")
	runCmd.Flags().String("rules", "", "YAML boundary rule table overriding the built-in artnet rules")
	runCmd.Flags().String("backend", "pdflib", "text extraction backend: pdflib or pdftotext")
	runCmd.Flags().Bool("fallback", false, "retry failed documents with pdftotext")

	rootCmd.AddCommand(runCmd)
}
