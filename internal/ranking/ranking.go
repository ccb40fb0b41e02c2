package ranking

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kirsle/configdir"
	"github.com/tursodatabase/pentris/internal/tetris"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var ErrMalformed = errors.New("malformed ranking record")

const fileSuffix = ".score"

// Store keeps one "score level" text file per variant in a directory
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating the directory if needed
func NewStore(dir string) (*Store, error) {
	if err := configdir.MakePath(dir); err != nil {
		return nil, fmt.Errorf("could not create ranking directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory of the store
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(variant string) string {
	return filepath.Join(s.dir, variant+fileSuffix)
}

// Load reads the record of variant. A missing file is an empty record.
func (s *Store) Load(variant string) (tetris.Ranking, error) {
	data, err := os.ReadFile(s.path(variant))
	if errors.Is(err, os.ErrNotExist) {
		return tetris.Ranking{}, nil
	}
	if err != nil {
		return tetris.Ranking{}, fmt.Errorf("could not read ranking of %s: %w", variant, err)
	}
	ranking, err := Parse(string(data))
	if err != nil {
		return tetris.Ranking{}, fmt.Errorf("ranking of %s: %w", variant, err)
	}
	return ranking, nil
}

// Save overwrites the record of variant
func (s *Store) Save(variant string, ranking tetris.Ranking) error {
	if err := os.WriteFile(s.path(variant), []byte(Format(ranking)), 0644); err != nil {
		return fmt.Errorf("could not write ranking of %s: %w", variant, err)
	}
	return nil
}

// Merge folds a finished game into the record of variant, keeping the best
// score and the best level, and returns the stored record.
func (s *Store) Merge(variant string, score int, level int) (tetris.Ranking, error) {
	ranking, err := s.Load(variant)
	if err != nil {
		return tetris.Ranking{}, err
	}
	if !ranking.Merge(score, level) {
		return ranking, nil
	}
	return ranking, s.Save(variant, ranking)
}

// Remove deletes the record of variant. Removing a missing record is not an error.
func (s *Store) Remove(variant string) error {
	if err := os.Remove(s.path(variant)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("could not remove ranking of %s: %w", variant, err)
	}
	return nil
}

// All returns the records of every variant with a file in the store
func (s *Store) All() (map[string]tetris.Ranking, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("could not list rankings: %w", err)
	}
	rankings := make(map[string]tetris.Ranking)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		variant := strings.TrimSuffix(name, fileSuffix)
		ranking, err := s.Load(variant)
		if err != nil {
			return nil, err
		}
		rankings[variant] = ranking
	}
	return rankings, nil
}

// Variants returns the sorted variant names of rankings
func Variants(rankings map[string]tetris.Ranking) []string {
	variants := maps.Keys(rankings)
	slices.Sort(variants)
	return variants
}

// Parse reads two whitespace separated integers: score, then level
func Parse(data string) (tetris.Ranking, error) {
	fields := strings.Fields(data)
	if len(fields) != 2 {
		return tetris.Ranking{}, fmt.Errorf("%w: want 2 fields, got %d", ErrMalformed, len(fields))
	}
	score, err := strconv.Atoi(fields[0])
	if err != nil {
		return tetris.Ranking{}, fmt.Errorf("%w: score %q", ErrMalformed, fields[0])
	}
	level, err := strconv.Atoi(fields[1])
	if err != nil {
		return tetris.Ranking{}, fmt.Errorf("%w: level %q", ErrMalformed, fields[1])
	}
	if score < 0 || level < 0 {
		return tetris.Ranking{}, fmt.Errorf("%w: negative value", ErrMalformed)
	}
	return tetris.Ranking{Score: score, Level: level}, nil
}

// Format writes a record in the form read by Parse
func Format(ranking tetris.Ranking) string {
	return fmt.Sprintf("%d %d\n", ranking.Score, ranking.Level)
}
