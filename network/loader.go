// SPDX-License-Identifier: MIT

package network

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/prophnet/logging"
	"github.com/katalvlaran/prophnet/matrix"
)

// fileDoc is the on-disk network document (YAML; JSON is accepted too).
//
//	networks:
//	  - name: drugs
//	    labels: [d0, d1, d2]
//	relations:
//	  - src: drugs
//	    dst: targets
//	    dense: [[0, 1], [1, 0], [0, 0]]
//	  - src: targets
//	    dst: targets
//	    shape: [2, 2]
//	    entries: [[0, 1, 0.5], [1, 0, 0.5]]
type fileDoc struct {
	Networks  []fileNetwork  `yaml:"networks"`
	Relations []fileRelation `yaml:"relations"`
}

type fileNetwork struct {
	Name   string   `yaml:"name"`
	Size   int      `yaml:"size"`
	Labels []string `yaml:"labels"`
}

type fileRelation struct {
	Name    string      `yaml:"name"`
	Src     string      `yaml:"src"`
	Dst     string      `yaml:"dst"`
	Shape   []int       `yaml:"shape"`
	Dense   [][]float64 `yaml:"dense"`
	Entries [][]float64 `yaml:"entries"`
}

var gzipMagic = []byte{0x1f, 0x8b}

// Decode parses a network document and builds the Graph.
// Gzip-compressed input is detected by its magic bytes. Relations are read
// into CSR form first, so a memory-saving load never holds a dense copy.
func Decode(data []byte, memSaving bool) (*Graph, error) {
	raw, err := gunzip(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	var doc fileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrDataLoad, err)
	}
	if len(doc.Networks) == 0 {
		return nil, fmt.Errorf("%w: no networks declared", ErrDataLoad)
	}

	sizes := make(map[string]int, len(doc.Networks))
	b := NewBuilder()
	for _, n := range doc.Networks {
		b.AddNodeSet(n.Name, n.Size, n.Labels)
		sizes[n.Name] = n.Size
		if n.Labels != nil {
			sizes[n.Name] = len(n.Labels)
		}
	}
	for i, r := range doc.Relations {
		m, err := r.matrix(sizes)
		if err != nil {
			return nil, fmt.Errorf("%w: relation #%d (%s→%s): %w", ErrDataLoad, i, r.Src, r.Dst, err)
		}
		b.AddRelation(r.Name, r.Src, r.Dst, m)
	}

	g, err := b.Build(memSaving)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataLoad, err)
	}
	return g, nil
}

func gunzip(data []byte) ([]byte, error) {
	if !bytes.HasPrefix(data, gzipMagic) {
		return data, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	defer zr.Close()
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("gzip: %w", err)
	}
	return out, nil
}

// matrix converts the file representation to CSR. sizes holds the sizes the
// node sets declare themselves (0 = unknown), used when shape is omitted.
func (r fileRelation) matrix(sizes map[string]int) (*matrix.CSR, error) {
	if (r.Dense == nil) == (r.Entries == nil) {
		return nil, fmt.Errorf("exactly one of dense or entries is required")
	}

	rows, cols := sizes[r.Src], sizes[r.Dst]
	if r.Shape != nil {
		if len(r.Shape) != 2 {
			return nil, fmt.Errorf("shape must have two elements, got %d", len(r.Shape))
		}
		rows, cols = r.Shape[0], r.Shape[1]
	}

	if r.Dense != nil {
		if len(r.Dense) == 0 {
			return nil, matrix.ErrInvalidDimensions
		}
		dr, dc := len(r.Dense), len(r.Dense[0])
		if r.Shape != nil && (dr != rows || dc != cols) {
			return nil, fmt.Errorf("dense is %dx%d but shape is %dx%d: %w", dr, dc, rows, cols, matrix.ErrDimensionMismatch)
		}
		entries := make([]matrix.Entry, 0, dr)
		for i, row := range r.Dense {
			if len(row) != dc {
				return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), dc, matrix.ErrDimensionMismatch)
			}
			for j, v := range row {
				if v != 0 {
					entries = append(entries, matrix.Entry{Row: i, Col: j, Value: v})
				}
			}
		}
		return matrix.NewCSR(dr, dc, entries)
	}

	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("entries need a shape or sized node sets: %w", matrix.ErrInvalidDimensions)
	}
	entries := make([]matrix.Entry, 0, len(r.Entries))
	for k, t := range r.Entries {
		if len(t) != 3 {
			return nil, fmt.Errorf("entry %d: want [row, col, weight], got %d values", k, len(t))
		}
		i, j := t[0], t[1]
		if i != math.Trunc(i) || j != math.Trunc(j) {
			return nil, fmt.Errorf("entry %d: non-integral index (%g, %g)", k, i, j)
		}
		if t[2] < 0 {
			return nil, fmt.Errorf("entry %d: weight %g: %w", k, t[2], matrix.ErrNegativeEntry)
		}
		entries = append(entries, matrix.Entry{Row: int(i), Col: int(j), Value: t[2]})
	}
	return matrix.NewCSR(rows, cols, entries)
}

// FileLoader loads network files from disk.
type FileLoader struct {
	Logger logging.Logger
}

// NewFileLoader returns a FileLoader logging to l (nil discards).
func NewFileLoader(l logging.Logger) *FileLoader {
	return &FileLoader{Logger: logging.OrNop(l)}
}

// ResolvePath joins a relative ref onto basePath; absolute refs are kept.
func ResolvePath(basePath, ref string) string {
	if filepath.IsAbs(ref) || basePath == "" {
		return filepath.Clean(ref)
	}
	return filepath.Join(basePath, ref)
}

// Load reads ref (relative to basePath) and builds the Graph.
// Every failure wraps ErrDataLoad.
func (l *FileLoader) Load(ctx context.Context, basePath, ref string, memSaving bool) (*Graph, error) {
	log := logging.OrNop(l.Logger)
	path := ResolvePath(basePath, ref)
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}
	g, err := Decode(data, memSaving)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("network file loaded", "path", path, "networks", g.Len(), "relations", len(g.relations), "memsave", memSaving)
	return g, nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return data, nil
}
