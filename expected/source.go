package expected

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dotloop/hictile/matrix"
)

// MatrixSource loads a named region's balanced dense matrix. Reading the
// underlying contact-matrix store (a cooler-like file) is external to this
// module; MatrixSource is the narrow seam compute-expected needs to stay
// testable without one.
type MatrixSource interface {
	LoadRegion(name string) (matrix.Matrix, error)
}

// DirSource reads one tab-separated dense matrix per region from a
// directory, one file named "<region>.tsv" per region, "nan" marking a
// missing entry.
type DirSource struct {
	Dir string
}

// LoadRegion reads Dir/<name>.tsv into a dense matrix.
func (s DirSource) LoadRegion(name string) (matrix.Matrix, error) {
	path := filepath.Join(s.Dir, name+".tsv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("expected: %w: %v", ErrUnknownRegion, err)
	}
	defer f.Close()

	var rows [][]float64
	cols := -1
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if cols == -1 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("expected: region %q: ragged row (got %d fields, want %d)", name, len(fields), cols)
		}
		row := make([]float64, len(fields))
		for i, tok := range fields {
			if strings.EqualFold(tok, "nan") {
				row[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("expected: region %q: %w", name, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("expected: region %q: %w", name, err)
	}

	m, err := matrix.NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			_ = m.Set(i, j, v)
		}
	}
	return m, nil
}
