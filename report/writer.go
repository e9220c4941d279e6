package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"statesearch/searcher"
	"strconv"
	"time"
)

type SearchRecord struct {
	Instance string // Human-readable description of the initial state
	searcher.SearchMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	path := filepath.Join(w.baseDir, "search_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create search records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"instance", "outcome", "solution_depth", "expanded", "generated", "duplicates", "max_frontier", "start_time", "duration"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write search records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Instance,
			string(record.Outcome),
			strconv.Itoa(record.SolutionDepth),
			strconv.Itoa(record.Expanded),
			strconv.Itoa(record.Generated),
			strconv.Itoa(record.Duplicates),
			strconv.Itoa(record.MaxFrontier),
			record.StartTime.Format(time.RFC3339),
			record.Duration.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write search record row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush search records: %w", err)
	}
	return nil
}

// WriteLevels writes the number of states discovered at each depth.
func (w *Writer) WriteLevels(metric searcher.SearchMetric) error {
	path := filepath.Join(w.baseDir, "levels.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create levels file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write([]string{"depth", "states"})
	if err != nil {
		return fmt.Errorf("failed to write levels header: %w", err)
	}
	for depth, states := range metric.Levels {
		err = writer.Write([]string{strconv.Itoa(depth), strconv.Itoa(states)})
		if err != nil {
			return fmt.Errorf("failed to write levels row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush levels: %w", err)
	}
	return nil
}
