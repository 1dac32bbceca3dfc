package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Record is one line of the score file.
type Record struct {
	Name  string
	Score int
}

// String formats the record the way it is stored.
func (r Record) String() string {
	return fmt.Sprintf("%s: %d", r.Name, r.Score)
}

// ScoreFile is the flat newest-first score log. Writes rewrite the whole file
// through a temp file and rename, so readers never see a partial line.
type ScoreFile struct {
	path string
	mu   sync.Mutex
}

// NewScoreFile returns a score file at path. A leading ~ is expanded.
// The file is created on the first AppendScore.
func NewScoreFile(path string) (*ScoreFile, error) {
	p, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &ScoreFile{path: p}, nil
}

// Path returns the resolved file location.
func (f *ScoreFile) Path() string {
	return f.path
}

// AppendScore puts "name: score" on the first line, ahead of every older entry.
func (f *ScoreFile) AppendScore(name string, score int) error {
	name = sanitizeName(name)
	if name == "" {
		return errors.New("storage: cannot save score: empty player name")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	old, err := os.ReadFile(f.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("storage: cannot read score file: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(Record{Name: name, Score: score}.String())
	buf.WriteByte('\n')
	buf.Write(old)

	return writeAtomic(f.path, buf.Bytes())
}

// LoadScores returns the records in file order, newest first.
// A missing file is an empty list; malformed lines are skipped.
func (f *ScoreFile) LoadScores() ([]Record, error) {
	f.mu.Lock()
	data, err := os.ReadFile(f.path)
	f.mu.Unlock()

	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read score file: %w", err)
	}

	var records []Record
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		if r, ok := ParseRecord(sc.Text()); ok {
			records = append(records, r)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot scan score file: %w", err)
	}
	return records, nil
}

// ParseRecord parses a "name: score" line. The name may itself contain ": ".
func ParseRecord(line string) (Record, bool) {
	line = strings.TrimRight(line, "\r")
	i := strings.LastIndex(line, ": ")
	if i <= 0 {
		return Record{}, false
	}
	score, err := strconv.Atoi(strings.TrimSpace(line[i+2:]))
	if err != nil {
		return Record{}, false
	}
	return Record{Name: line[:i], Score: score}, true
}

// sanitizeName keeps a name on a single line.
func sanitizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".score-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write score file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot sync score file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot close score file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("storage: cannot chmod score file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("storage: cannot replace score file: %w", err)
	}
	return nil
}
