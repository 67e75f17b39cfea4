package spectra

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
)

// ReadTabDelimFile reads file paths and their half-lives from a
// tab-delimited manifest, preserving file order. Half-lives are returned
// as strings; they are only parsed when consumed.
func ReadTabDelimFile(fname string) ([]string, []string, error) {
	file, err := os.Open(fname)
	if err != nil {
		return nil, nil, &ErrOpenFile{Filename: fname, Err: err}
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = '\t'
	reader.FieldsPerRecord = 2

	var filePaths, halfLives []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, &ErrBadManifest{Filename: fname, Err: err}
		}
		filePaths = append(filePaths, record[0])
		halfLives = append(halfLives, record[1])
	}
	return filePaths, halfLives, nil
}

// SpectrumNameFromPath derives the spectrum base name from a file path:
// the text after the last '/' that occurs before the final character.
// Paths without a slash are returned whole; a path ending in '/' yields
// the enclosing directory segment, trailing slash included.
func SpectrumNameFromPath(path string) string {
	if path == "" {
		return ""
	}
	idx := strings.LastIndex(path[:len(path)-1], "/")
	return path[idx+1:]
}
