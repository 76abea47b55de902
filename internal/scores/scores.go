// Package scores persists the top scores as a plain text file with one
// integer per line. Save is the only writer and always leaves the file sorted
// highest first, so the first line is the high score. Load never re-sorts.
package scores

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"

	"simon/internal/logger"
)

// MaxEntries is the number of scores kept in the store.
const MaxEntries = 10

// DefaultPath is the store file used when none is configured.
const DefaultPath = "high_scores.txt"

const logTag = "scores"

// ErrNegativeScore is returned by Save for scores below zero.
var ErrNegativeScore = errors.New("negative score")

// Record is the list of stored scores in file order.
type Record []int

// High returns the first entry of the record, or zero if it is empty.
func (r Record) High() int {
	if len(r) == 0 {
		return 0
	}
	return r[0]
}

// Store is a score file on disk.
type Store struct {
	path string
}

// New returns a store backed by the file at path. The file is not touched
// until Load or Save is called.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path}
}

// Path returns the location of the score file.
func (s *Store) Path() string {
	return s.path
}

// Load reads up to MaxEntries scores. A missing file is an empty record.
// Lines that are not non-negative integers read as zero.
func (s *Store) Load() (Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Record{}, nil
		}
		return Record{}, fmt.Errorf("scores: %w", err)
	}
	defer f.Close()

	// lines are read whole, whatever their length, so one corrupt line
	// costs a single entry rather than the rest of the file
	rec := make(Record, 0, MaxEntries)
	r := bufio.NewReader(f)
	for len(rec) < MaxEntries {
		line, err := r.ReadString('\n')
		if line != "" {
			rec = append(rec, parseLine(line, len(rec)+1))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return rec, fmt.Errorf("scores: %w", err)
		}
	}
	return rec, nil
}

// longest part of a bad line repeated in the log
const maxLoggedLine = 32

func parseLine(line string, number int) int {
	line = strings.TrimSpace(line)
	v, err := strconv.Atoi(line)
	if err != nil || v < 0 {
		if len(line) > maxLoggedLine {
			line = line[:maxLoggedLine] + "..."
		}
		logger.Logf(logTag, "line %d: %q is not a valid score", number, line)
		return 0
	}
	return v
}

// HighScore returns the first score in the store. Read errors are logged and
// count as an empty store.
func (s *Store) HighScore() int {
	rec, err := s.Load()
	if err != nil {
		logger.Log(logTag, err.Error())
	}
	return rec.High()
}

// Save adds score to the stored scores, keeping the highest MaxEntries. The
// file is replaced atomically: a pending file is written and synced alongside
// the store, then renamed over it.
func (s *Store) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("scores: %w: %d", ErrNegativeScore, score)
	}

	rec, err := s.Load()
	if err != nil {
		return err
	}

	rec = append(rec, score)
	sort.Sort(sort.Reverse(sort.IntSlice(rec)))
	if len(rec) > MaxEntries {
		rec = rec[:MaxEntries]
	}

	if err := s.write(rec); err != nil {
		return fmt.Errorf("scores: %w", err)
	}
	logger.Logf(logTag, "saved score %d to %s", score, s.path)
	return nil
}

func (s *Store) write(rec Record) error {
	var b bytes.Buffer
	for _, v := range rec {
		fmt.Fprintf(&b, "%d\n", v)
	}
	// the pending file lives next to the store so the final rename never
	// crosses a filesystem
	dir := filepath.Dir(s.path)
	return renameio.WriteFile(s.path, b.Bytes(), 0o644, renameio.WithTempDir(dir))
}
