package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/aristath/jyotish/internal/domain"
)

const (
	formatJSON    = "json"
	formatMsgpack = "msgpack"
)

var errUnknownFormat = errors.New("unknown format")

// formatFor picks the input format from the file extension.
func formatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk", ".mp":
		return formatMsgpack
	}
	return formatJSON
}

func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatMsgpack:
		return msgpack.NewEncoder(w).Encode(v)
	}
	return fmt.Errorf("%q: %w", format, errUnknownFormat)
}

func unmarshal(data []byte, format string, v interface{}) error {
	switch format {
	case formatJSON:
		return json.Unmarshal(data, v)
	case formatMsgpack:
		return msgpack.Unmarshal(data, v)
	}
	return fmt.Errorf("%q: %w", format, errUnknownFormat)
}

// readInput returns the contents of path and its format. "-" reads JSON
// from stdin.
func readInput(path string) ([]byte, string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, formatJSON, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, formatFor(path), nil
}

// decodeCharts accepts either a single chart or an array of charts.
func decodeCharts(data []byte, format string) ([]domain.Chart, error) {
	var raw interface{}
	if err := unmarshal(data, format, &raw); err != nil {
		return nil, err
	}

	if _, isList := raw.([]interface{}); isList {
		var list []domain.Chart
		if err := unmarshal(data, format, &list); err != nil {
			return nil, err
		}
		return list, nil
	}

	var chart domain.Chart
	if err := unmarshal(data, format, &chart); err != nil {
		return nil, err
	}
	return []domain.Chart{chart}, nil
}

// readChart loads a single chart.
func readChart(path string) (domain.Chart, error) {
	data, format, err := readInput(path)
	if err != nil {
		return domain.Chart{}, err
	}

	var chart domain.Chart
	if err := unmarshal(data, format, &chart); err != nil {
		return domain.Chart{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return chart, nil
}

// readCharts loads the charts from every path, in argument order.
func readCharts(paths []string) ([]domain.Chart, error) {
	var charts []domain.Chart
	for _, path := range paths {
		data, format, err := readInput(path)
		if err != nil {
			return nil, err
		}
		list, err := decodeCharts(data, format)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		charts = append(charts, list...)
	}
	return charts, nil
}
