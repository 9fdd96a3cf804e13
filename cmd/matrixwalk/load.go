package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/matrixviews/matrix"
)

var (
	errFileRead      = errors.New("cannot read matrix file")
	errFileInvalid   = errors.New("invalid matrix file")
	errUnknownFormat = errors.New("unknown matrix file format")
)

// matrixFile is the on-disk shape shared by YAML and JSON inputs.
type matrixFile struct {
	Rows [][]float64 `json:"rows" yaml:"rows"`
}

func loadMatrix(path string) (*matrix.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errFileRead, path, err)
	}

	mf, err := parseMatrixFile(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errFileInvalid, path, err)
	}

	return matrix.NewFromRows(mf.Rows)
}

func parseMatrixFile(ext string, data []byte) (matrixFile, error) {
	var mf matrixFile

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &mf); err != nil {
			return matrixFile{}, fmt.Errorf("invalid YAML: %w", err)
		}
	case ".json", ".jsonc", ".hujson":
		// Standardize JSONC to JSON
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return matrixFile{}, fmt.Errorf("invalid JSONC: %w", err)
		}
		if err := json.Unmarshal(standardized, &mf); err != nil {
			return matrixFile{}, fmt.Errorf("invalid JSON: %w", err)
		}
	default:
		return matrixFile{}, fmt.Errorf("%w: %q", errUnknownFormat, ext)
	}

	return mf, nil
}
