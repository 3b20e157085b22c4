package runner

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/prophnet/propagate"
)

// FileSink writes a RankedList as tab-separated lines
//
//	rank	index	label	score
//
// into a temporary file next to the target and renames it into place, so
// the target either keeps its old content or holds the complete list.
type FileSink struct {
	// Header adds a column header line.
	Header bool
}

// Save writes list to path.
func (s FileSink) Save(path string, list propagate.RankedList) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	w.Comma = '\t'
	if s.Header {
		if err = w.Write([]string{"rank", "index", "label", "score"}); err != nil {
			return fmt.Errorf("sink: %w", err)
		}
	}
	for _, r := range list {
		rec := []string{
			strconv.Itoa(r.Rank),
			strconv.Itoa(r.Index),
			r.Label,
			strconv.FormatFloat(r.Score, 'g', -1, 64),
		}
		if err = w.Write(rec); err != nil {
			return fmt.Errorf("sink: %w", err)
		}
	}
	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("sink: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("sink: %w", err)
	}
	return nil
}
