package filecsv_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trending-videos/infrastructure/filecsv"
)

func TestReadRegionCodes(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{name: "one per line", content: "US\nCA\nGB\n", want: []string{"US", "CA", "GB"}},
		{name: "no trailing newline", content: "US\nCA", want: []string{"US", "CA"}},
		{name: "trailing whitespace and CRLF", content: "US  \r\nCA\t\r\n", want: []string{"US", "CA"}},
		{name: "blank lines skipped", content: "US\n\n   \nCA\n", want: []string{"US", "CA"}},
		{name: "duplicates kept", content: "US\nUS\n", want: []string{"US", "US"}},
		{name: "empty file", content: "", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "country_codes.txt")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			got, err := filecsv.ReadRegionCodes(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadRegionCodes_MissingFile(t *testing.T) {
	_, err := filecsv.ReadRegionCodes(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
