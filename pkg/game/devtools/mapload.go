package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"roomgraph/pkg/engine/world"
)

// LoadMap reads a text map, one row per line. Blank lines and lines
// starting with ';' are skipped.
func LoadMap(r io.Reader) (*world.Grid, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading map: %w", err)
	}
	return world.FromRows(rows...)
}

// LoadMapFile reads a text map from path
func LoadMapFile(path string) (*world.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	grid, err := LoadMap(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return grid, nil
}
