// Package pathutil provides small filesystem helpers: collision-free
// directory creation and sheet-name extraction from xlsx workbooks.
package pathutil

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// EnsureUniqueDir creates a directory at path, avoiding name collisions by
// appending an incrementing counter (" 0", " 1", ...) to the name until a
// free one is found. Parent directories are created as needed.
//
// Returns the path actually created.
func EnsureUniqueDir(path string) (string, error) {
	candidate := path
	for n := 0; ; n++ {
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("error checking directory %s: %w", candidate, err)
		}

		candidate = fmt.Sprintf("%s %d", path, n)
	}

	if err := os.MkdirAll(candidate, 0o755); err != nil {
		return "", fmt.Errorf("error creating directory %s: %w", candidate, err)
	}

	return candidate, nil
}

// workbook mirrors the part of xl/workbook.xml that declares sheets.
type workbook struct {
	Sheets struct {
		Sheets []struct {
			Name string `xml:"name,attr"`
		} `xml:"sheet"`
	} `xml:"sheets"`
}

// SheetNames extracts the sheet names of an xlsx workbook, in document
// order, from its zip-packaged metadata.
func SheetNames(r io.ReaderAt, size int64) ([]string, error) {
	zipReader, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook archive: %w", err)
	}

	return sheetNames(zipReader)
}

// SheetNamesFromFile is [SheetNames] for an xlsx file on disk.
func SheetNamesFromFile(path string) ([]string, error) {
	zipReader, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook %s: %w", path, err)
	}
	defer zipReader.Close()

	return sheetNames(&zipReader.Reader)
}

func sheetNames(zipReader *zip.Reader) ([]string, error) {
	metadata, err := zipReader.Open("xl/workbook.xml")
	if err != nil {
		return nil, fmt.Errorf("error reading workbook metadata: %w", err)
	}
	defer metadata.Close()

	var wb workbook
	if err := xml.NewDecoder(metadata).Decode(&wb); err != nil {
		return nil, fmt.Errorf("error decoding workbook metadata: %w", err)
	}

	names := make([]string, 0, len(wb.Sheets.Sheets))
	for _, sheet := range wb.Sheets.Sheets {
		names = append(names, sheet.Name)
	}

	return names, nil
}
