package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/antocd/clubman-go/internal/domain"
	apperrors "github.com/antocd/clubman-go/pkg/errors"
)

// formatHeader is the first line of every data file. Readers use it to tell
// which record encoding follows.
const formatHeader = "clubman/v1"

const recordDateLayout = "2006-01-02"

// memberRecord is the on-disk shape of one member: a single JSON object per
// line, newline-delimited, so one mangled line can be skipped without losing
// the rest of the file.
type memberRecord struct {
	DNI      string `json:"dni"`
	Name     string `json:"name"`
	JoinDate string `json:"join_date"`
}

// MemberFile reads and writes the membership collection at a fixed path.
type MemberFile struct {
	path   string
	logger *zap.Logger
}

func NewMemberFile(path string, logger *zap.Logger) *MemberFile {
	return &MemberFile{path: path, logger: logger}
}

func (f *MemberFile) Path() string {
	return f.path
}

// Load reads the whole collection. A missing file is an empty collection, not
// an error. Corrupt lines are logged and skipped; the members decoded before
// and after them are still returned. Other read failures return the members
// decoded so far plus a StorageError.
func (f *MemberFile) Load() ([]domain.Member, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.logger.Info("no data file yet, starting empty", zap.String("path", f.path))
			return nil, nil
		}
		return nil, apperrors.NewStorageError("could not open data file", "load", f.path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, apperrors.NewStorageError("could not read data file", "load", f.path, err)
		}
		// Zero-length file, e.g. created by touch. Same as no file.
		return nil, nil
	}
	if header := strings.TrimSpace(scanner.Text()); header != formatHeader {
		err := fmt.Errorf("unsupported format header %q", header)
		return nil, apperrors.NewStorageError("could not read data file", "load", f.path, err)
	}

	var members []domain.Member
	line := 1
	skipped := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		m, err := decodeRecord(text)
		if err != nil {
			skipped++
			f.logger.Warn("skipping corrupt record",
				zap.String("path", f.path),
				zap.Int("line", line),
				zap.Error(err),
			)
			continue
		}
		members = append(members, m)
	}
	if err := scanner.Err(); err != nil {
		return members, apperrors.NewStorageError("could not read data file", "load", f.path, err)
	}

	f.logger.Info("members loaded",
		zap.String("path", f.path),
		zap.Int("count", len(members)),
		zap.Int("skipped", skipped),
	)
	return members, nil
}

// Save rewrites the whole collection, replacing any prior contents. The write
// goes to a temp file first and is renamed into place, so a failure mid-write
// leaves the previous file intact.
func (f *MemberFile) Save(members []domain.Member) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.NewStorageError("could not create data directory", "save", f.path, err)
	}

	tmp, err := os.CreateTemp(dir, ".members-*")
	if err != nil {
		return apperrors.NewStorageError("could not create temp file", "save", f.path, err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	fmt.Fprintln(w, formatHeader)
	for _, m := range members {
		record := memberRecord{
			DNI:      m.DNI,
			Name:     m.Name,
			JoinDate: m.JoinDate.Format(recordDateLayout),
		}
		data, err := json.Marshal(record)
		if err != nil {
			tmp.Close()
			return apperrors.NewStorageError("could not encode member", "save", f.path, err)
		}
		w.Write(data)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return apperrors.NewStorageError("could not write data file", "save", f.path, err)
	}
	if err := tmp.Close(); err != nil {
		return apperrors.NewStorageError("could not write data file", "save", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return apperrors.NewStorageError("could not replace data file", "save", f.path, err)
	}

	f.logger.Info("members saved", zap.String("path", f.path), zap.Int("count", len(members)))
	return nil
}

func decodeRecord(text string) (domain.Member, error) {
	var record memberRecord
	if err := json.Unmarshal([]byte(text), &record); err != nil {
		return domain.Member{}, err
	}
	joined, err := time.Parse(recordDateLayout, record.JoinDate)
	if err != nil {
		return domain.Member{}, fmt.Errorf("bad join date: %w", err)
	}
	return domain.NewMember(record.DNI, record.Name, joined), nil
}
