// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/chdonahue/art-valuation/pkg/types"
)

// RecordFile is the on-disk form of one document's parsed records,
// written by the parse subcommand and read back by catalog index. It
// lets the operator inspect intermediate results between calibration
// passes without re-running extraction.
type RecordFile struct {
	Source  string         `yaml:"source"`
	Records []types.Record `yaml:"records"`
}

// WriteRecords writes one document's records as YAML under dir, named
// after the source document.
func WriteRecords(dir, sourcePath string, records []types.Record) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating records directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))
	path := filepath.Join(dir, base+"-records.yaml")

	data, err := yaml.Marshal(RecordFile{Source: sourcePath, Records: records})
	if err != nil {
		return "", fmt.Errorf("marshaling records for %s: %w", sourcePath, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// ReadRecordsDir loads every record file under dir, in lexical file
// order so the original document traversal order is restored.
func ReadRecordsDir(dir string) ([]RecordFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading records directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "-records.yaml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	files := make([]RecordFile, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		var rf RecordFile
		if err := yaml.Unmarshal(data, &rf); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		files = append(files, rf)
	}
	return files, nil
}
