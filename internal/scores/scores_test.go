package scores_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"simon/internal/scores"
	"simon/internal/test"
)

func newStore(t *testing.T, contents *string) *scores.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "high_scores.txt")
	if contents != nil {
		test.ExpectedSuccess(t, os.WriteFile(path, []byte(*contents), 0o644))
	}
	return scores.New(path)
}

func fileContents(t *testing.T, s *scores.Store) string {
	t.Helper()
	b, err := os.ReadFile(s.Path())
	test.ExpectedSuccess(t, err)
	return string(b)
}

func TestMissingStore(t *testing.T) {
	s := newStore(t, nil)

	rec, err := s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, len(rec), 0)
	test.ExpectEquality(t, s.HighScore(), 0)

	// loading does not create the file
	_, err = os.Stat(s.Path())
	test.ExpectedSuccess(t, errors.Is(err, os.ErrNotExist))
}

func TestEmptyStore(t *testing.T) {
	empty := ""
	s := newStore(t, &empty)

	rec, err := s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, len(rec), 0)
	test.ExpectEquality(t, s.HighScore(), 0)
}

func TestMalformedLines(t *testing.T) {
	contents := "3\nabc\n7\n"
	s := newStore(t, &contents)

	rec, err := s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectSliceEquality(t, rec, scores.Record{3, 0, 7})
	test.ExpectEquality(t, s.HighScore(), 3)

	contents = "abc\n9\n\n-4\n 12 \n"
	s = newStore(t, &contents)
	rec, err = s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectSliceEquality(t, rec, scores.Record{0, 9, 0, 0, 12})
	test.ExpectEquality(t, s.HighScore(), 0)
}

// a corrupt line longer than any read buffer costs one entry and does not
// stop later saves
func TestLoadOverlongLine(t *testing.T) {
	contents := "3\n" + strings.Repeat("x", 70000) + "\n7\n"
	s := newStore(t, &contents)

	rec, err := s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectSliceEquality(t, rec, scores.Record{3, 0, 7})

	test.ExpectedSuccess(t, s.Save(5))
	rec, err = s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectSliceEquality(t, rec, scores.Record{7, 5, 3, 0})
	test.ExpectEquality(t, fileContents(t, s), "7\n5\n3\n0\n")
}

func TestLoadNoTrailingNewline(t *testing.T) {
	contents := "4\n2"
	s := newStore(t, &contents)

	rec, err := s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectSliceEquality(t, rec, scores.Record{4, 2})
}

func TestLoadFirstTenOnly(t *testing.T) {
	contents := "12\n11\n10\n9\n8\n7\n6\n5\n4\n3\n2\n1\n"
	s := newStore(t, &contents)

	rec, err := s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectSliceEquality(t, rec, scores.Record{12, 11, 10, 9, 8, 7, 6, 5, 4, 3})
}

func TestSaveScenario(t *testing.T) {
	s := newStore(t, nil)

	test.ExpectedSuccess(t, s.Save(10))
	test.ExpectedSuccess(t, s.Save(25))
	test.ExpectedSuccess(t, s.Save(5))

	rec, err := s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectSliceEquality(t, rec, scores.Record{25, 10, 5})
	test.ExpectEquality(t, s.HighScore(), 25)
	test.ExpectEquality(t, fileContents(t, s), "25\n10\n5\n")
}

func TestSaveRoundTrip(t *testing.T) {
	contents := "40\n30\n"
	s := newStore(t, &contents)

	test.ExpectedSuccess(t, s.Save(42))
	rec, err := s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, rec.High(), 42)
}

func TestSaveKeepsDuplicates(t *testing.T) {
	s := newStore(t, nil)

	test.ExpectedSuccess(t, s.Save(7))
	test.ExpectedSuccess(t, s.Save(7))
	rec, err := s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectSliceEquality(t, rec, scores.Record{7, 7})
}

func TestSaveTruncates(t *testing.T) {
	s := newStore(t, nil)
	for i := 1; i <= 12; i++ {
		test.ExpectedSuccess(t, s.Save(i))
	}

	rec, err := s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectSliceEquality(t, rec, scores.Record{12, 11, 10, 9, 8, 7, 6, 5, 4, 3})

	// a score lower than every stored score falls off the end
	test.ExpectedSuccess(t, s.Save(0))
	rec, err = s.Load()
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, len(rec), scores.MaxEntries)
	test.ExpectEquality(t, rec[len(rec)-1], 3)
}

func TestSaveSortsUnsortedStore(t *testing.T) {
	contents := "3\nabc\n7\n"
	s := newStore(t, &contents)

	test.ExpectedSuccess(t, s.Save(5))
	test.ExpectEquality(t, fileContents(t, s), "7\n5\n3\n0\n")
	test.ExpectEquality(t, s.HighScore(), 7)
}

func TestSaveNegative(t *testing.T) {
	s := newStore(t, nil)
	err := s.Save(-1)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, errors.Is(err, scores.ErrNegativeScore))

	_, err = os.Stat(s.Path())
	test.ExpectedSuccess(t, errors.Is(err, os.ErrNotExist))
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s := newStore(t, nil)
	test.ExpectedSuccess(t, s.Save(1))
	test.ExpectedSuccess(t, s.Save(2))

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
	test.ExpectEquality(t, entries[0].Name(), "high_scores.txt")
}

func TestSaveUnwritableDirectory(t *testing.T) {
	s := scores.New(filepath.Join(t.TempDir(), "missing", "high_scores.txt"))
	test.ExpectedFailure(t, s.Save(1))
}

func TestDefaultPath(t *testing.T) {
	test.ExpectEquality(t, scores.New("").Path(), scores.DefaultPath)
}
