package filecsv

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"trending-videos/domain/model"
	"trending-videos/infrastructure/logger"
	"trending-videos/infrastructure/utils"
)

// NewFile creates (or truncates) the file at path for writing.
func NewFile(path string) (*os.File, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while open file")
		return nil, err
	}

	return file, nil
}

// TrendingFile writes per-region export files under one output directory.
type TrendingFile struct {
	outputDir string
}

func NewTrendingFile(outputDir string) *TrendingFile {
	return &TrendingFile{outputDir: outputDir}
}

// VideosPath is {output_dir}/{date}_{region}_videos.csv.
func (f *TrendingFile) VideosPath(regionCode string, date time.Time) string {
	return filepath.Join(f.outputDir, fmt.Sprintf("%s_%s_videos.csv", utils.FormatTrendingDate(date), regionCode))
}

// CategoriesPath is {output_dir}/{date}_{region}_categories.json.
func (f *TrendingFile) CategoriesPath(regionCode string, date time.Time) string {
	return filepath.Join(f.outputDir, fmt.Sprintf("%s_%s_categories.json", utils.FormatTrendingDate(date), regionCode))
}

// WriteVideos writes the unquoted header line followed by one line per row,
// cells joined with commas. Rows must already be quoted. An existing file is
// overwritten; a failure midway leaves a partial file.
func (f *TrendingFile) WriteVideos(regionCode string, date time.Time, rows [][]string) (string, error) {
	path := f.VideosPath(regionCode, date)
	err := f.write(path, func(w *bufio.Writer) error {
		if _, err := w.WriteString(strings.Join(model.VideoRecordHeader, ",") + "\n"); err != nil {
			return err
		}
		for _, row := range rows {
			if _, err := w.WriteString(strings.Join(row, ",") + "\n"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

// WriteCategories writes the id -> title map as an indented JSON object.
func (f *TrendingFile) WriteCategories(regionCode string, date time.Time, categories map[string]string) (string, error) {
	path := f.CategoriesPath(regionCode, date)
	err := f.write(path, func(w *bufio.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(categories)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}

func (f *TrendingFile) write(path string, fill func(w *bufio.Writer) error) (err error) {
	if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory %s: %w", f.outputDir, err)
	}
	file, err := NewFile(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	w := bufio.NewWriter(file)
	if err := fill(w); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
