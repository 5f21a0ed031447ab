// Package fileutils provides common file operations used throughout the application.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ResultsTimestampLayout is the time layout embedded in single-file result logs.
const ResultsTimestampLayout = "2006_01_02_15_04_05"

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ListFilesWithExtension returns the names of the regular entries directly in
// dirPath whose name ends with extension. Subdirectories are not descended.
func ListFilesWithExtension(dirPath, extension string) ([]string, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), extension) {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// OutputPathFor returns <outputDir>/<name without extension><ext>.
func OutputPathFor(outputDir, fileName, ext string) string {
	base := strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName))
	return filepath.Join(outputDir, base+ext)
}

// TimestampedLogName returns results_YYYY_MM_DD_HH_MM_SS.log for t.
func TimestampedLogName(t time.Time) string {
	return "results_" + t.Format(ResultsTimestampLayout) + ".log"
}
