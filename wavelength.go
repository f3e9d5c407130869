package cubeview

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for file extensions that do not map
	// to a supported wavelength file format.
	ErrUnsupportedFormat = errors.New("unsupported wavelength file format")

	// ErrParse is returned for files in a recognized format whose content
	// cannot be parsed as a wavelength list.
	ErrParse = errors.New("parse error")

	// ErrMissingWavelength is returned for ENVI headers that do not contain
	// a wavelength field.
	ErrMissingWavelength = errors.New("missing wavelength field")
)

// A Format identifies a supported wavelength file format.
type Format int

const (
	// FormatTXT is a plain text file holding a single comma-separated list
	// of wavelengths.
	FormatTXT Format = 1 + iota

	// FormatCSV is a comma-delimited table with a header row naming a
	// wavelength column.
	FormatCSV

	// FormatHDR is an ENVI-style header with a brace-delimited wavelength
	// field.
	FormatHDR
)

// FormatForPath returns the Format implied by path's extension, matched
// case-insensitively.
func FormatForPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		return FormatTXT, nil
	case ".csv":
		return FormatCSV, nil
	case ".hdr":
		return FormatHDR, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Parse reads a wavelength list from r in format f.
func (f Format) Parse(r io.Reader) ([]float64, error) {
	switch f {
	case FormatTXT:
		return parseTXTWavelengths(r)
	case FormatCSV:
		return parseCSVWavelengths(r)
	case FormatHDR:
		return parseHDRWavelengths(r)
	default:
		return nil, fmt.Errorf("%w: Format(%d)", ErrUnsupportedFormat, int(f))
	}
}

// ReadWavelengths reads the spectral-axis wavelengths from the file at path,
// in file order. The format is chosen by the path's extension: .txt, .csv,
// or .hdr.
func ReadWavelengths(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readWavelengths(path, file)
}

// ReadWavelengthsFS is like [ReadWavelengths] but reads from fsys.
func ReadWavelengthsFS(fsys fs.FS, name string) ([]float64, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readWavelengths(name, file)
}

func readWavelengths(path string, r io.Reader) ([]float64, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	return format.Parse(r)
}

// parseTXTWavelengths reads the entire input as one comma-separated list of
// wavelengths.
func parseTXTWavelengths(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return splitWavelengths(string(data))
}

// parseCSVWavelengths reads a comma-delimited table and collects the column
// whose header is "wavelength", matched case-insensitively, in row order.
// The column may appear at any position.
func parseCSVWavelengths(r io.Reader) ([]float64, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	column := -1
	for i, name := range header {
		if strings.EqualFold(name, "wavelength") {
			column = i
			break
		}
	}
	if column < 0 {
		return nil, fmt.Errorf("%w: no wavelength column", ErrParse)
	}
	var wavelengths []float64
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		wavelength, err := strconv.ParseFloat(strings.TrimSpace(record[column]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid wavelength %q", ErrParse, record[column])
		}
		wavelengths = append(wavelengths, wavelength)
	}
	if len(wavelengths) == 0 {
		return nil, fmt.Errorf("%w: no wavelengths", ErrParse)
	}
	return wavelengths, nil
}

// parseHDRWavelengths scans an ENVI-style header for the wavelength field and
// parses its brace-delimited value. The key match is exact, so longer keys
// like "wavelength units" never qualify. Brace-delimited values may span
// multiple lines and are consumed whole, so text inside another field's value
// cannot be mistaken for a wavelength field. All other fields are ignored.
// The whole input is read before scanning, so lines and values carry no
// length limit.
func parseHDRWavelengths(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	for i := 0; i < len(lines); i++ {
		key, value, found := strings.Cut(lines[i], "=")
		if !found {
			continue
		}
		if strings.Contains(value, "{") {
			for !strings.Contains(value, "}") && i+1 < len(lines) {
				i++
				value += " " + lines[i]
			}
		}
		if strings.TrimSpace(key) != "wavelength" {
			continue
		}
		start := strings.Index(value, "{")
		end := strings.Index(value, "}")
		if start < 0 || end < start {
			return nil, fmt.Errorf("%w: wavelength value is not brace-delimited", ErrParse)
		}
		return splitWavelengths(value[start+1 : end])
	}
	return nil, ErrMissingWavelength
}

// splitWavelengths parses a comma-separated list of wavelengths, tolerating
// whitespace around each value.
func splitWavelengths(s string) ([]float64, error) {
	tokens := strings.Split(s, ",")
	wavelengths := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		wavelength, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid wavelength %q", ErrParse, token)
		}
		wavelengths = append(wavelengths, wavelength)
	}
	return wavelengths, nil
}
