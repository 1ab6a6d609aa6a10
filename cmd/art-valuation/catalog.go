// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chdonahue/art-valuation/internal/catalog"
	"github.com/chdonahue/art-valuation/internal/pipeline"
	"github.com/chdonahue/art-valuation/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the record catalog (index, query, export)",
	Long: `Catalog manages a local SQLite database of parsed records. Use
subcommands to index record YAML files, query them with full-text
search and filters, or export the catalog.`,
}

// --- index subcommand ---

var catalogIndexCmd = &cobra.Command{
	Use:   "index",
	Short: "Ingest record YAML files into the catalog",
	Long: `Index reads record YAML files produced by parse and ingests them
into a SQLite database with FTS5 indexing over artist, title, and
description. Re-indexing a document replaces its rows.`,
	RunE: runCatalogIndex,
}

func runCatalogIndex(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	store, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	files, err := pipeline.ReadRecordsDir(cfg.Parsing.RecordsDir)
	if err != nil {
		return err
	}

	var summary catalog.IndexSummary
	for _, rf := range files {
		if err := store.Index(context.Background(), rf.Source, rf.Records); err != nil {
			return err
		}
		fmt.Printf("indexed: %s (%d records)\n", rf.Source, len(rf.Records))
		summary.Documents++
		summary.Records += len(rf.Records)
	}

	fmt.Printf("\nIndexed %d records from %d documents\n", summary.Records, summary.Documents)
	return nil
}

// --- query subcommand ---

var catalogQueryCmd = &cobra.Command{
	Use:   "query [search terms]",
	Short: "Query the catalog with full-text search and filters",
	Long: `Query searches the catalog using FTS5 full-text search over artist,
title, and description, structured filters (artist, house, source), or
a combination of both.`,
	RunE: runCatalogQuery,
}

func runCatalogQuery(cmd *cobra.Command, args []string) error {
	cfg := pipelineConfig(cmd)
	store, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide search terms, --artist, --house, or --source")
	}

	results, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatQueryOutput(results, jsonOutput)
}

func formatQueryOutput(results []types.Record, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-24s  %-36s  %-12s  %-24s  %s\n",
		"Rank", "Artist", "Title", "Sold For", "Auction House", "Lot")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 112))

	for i, r := range results {
		fmt.Fprintf(os.Stdout, "%-4d  %-24s  %-36s  %-12s  %-24s  %s\n",
			i+1,
			clip(r.Fields["artist"], 24),
			clip(r.Fields["title"], 36),
			clip(r.Fields["sold_for"], 12),
			clip(r.Fields["auction_house"], 24),
			r.Fields["lot_number"])
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to YAML or JSON",
	Long: `Export writes the full catalog (or a filtered subset) to export.yaml
or export.json in the catalog directory. Supports the same filter flags
as query for partial exports.`,
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := pipelineConfig(cmd)
	store, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := queryOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.yaml\n", cfg.Catalog.Dir)
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Printf("Exported to %s/export.json\n", cfg.Catalog.Dir)
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func queryOptsFromFlags(cmd *cobra.Command, args []string) catalog.QueryOptions {
	artist, _ := cmd.Flags().GetString("artist")
	house, _ := cmd.Flags().GetString("house")
	source, _ := cmd.Flags().GetString("source")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	return catalog.QueryOptions{
		Query:      strings.Join(args, " "),
		Artist:     artist,
		House:      house,
		Source:     source,
		MaxResults: maxResults,
	}
}

func init() {
	for _, c := range []*cobra.Command{catalogIndexCmd, catalogQueryCmd, catalogExportCmd} {
		c.Flags().String("catalog-dir", "catalog", "directory for the catalog database")
		c.Flags().String("records-dir", "records", "directory of record YAML files")
		c.Flags().String("artist", "", "filter by artist")
		c.Flags().String("house", "", "filter by auction house")
		c.Flags().String("source", "", "filter by source document path")
		c.Flags().Int("max-results", 20, "maximum number of query results")
	}
	catalogQueryCmd.Flags().Bool("json", false, "output results as JSON")
	catalogExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	catalogCmd.AddCommand(catalogIndexCmd, catalogQueryCmd, catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
