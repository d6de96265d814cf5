package filecsv

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadRegionCodes returns one region code per non-blank line of the file at
// path, trimmed, in file order. Duplicates are kept.
func ReadRegionCodes(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open country code file: %w", err)
	}
	defer file.Close()

	var codes []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		code := strings.TrimSpace(scanner.Text())
		if code == "" {
			continue
		}
		codes = append(codes, code)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read country code file: %w", err)
	}
	return codes, nil
}
