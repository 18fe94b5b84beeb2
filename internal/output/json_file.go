package output

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"showharvest/internal/model"

	"github.com/goccy/go-json"
)

// JSONFile сохраняет треки в файл одним JSON массивом.
// В режиме Append треки дописываются к массиву, который уже лежит в файле,
// так прерванный сбор можно продолжить с даты сбоя.
type JSONFile struct {
	Path   string
	Append bool
}

var _ Sink = (*JSONFile)(nil)

// Write записывает треки атомарно: во временный файл, затем rename
func (s *JSONFile) Write(tracks []model.Track) error {
	all := make([]model.Track, 0, len(tracks))

	if s.Append {
		existing, err := ReadTracks(s.Path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		all = append(all, existing...)
	}
	all = append(all, tracks...)

	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode tracks: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".showharvest-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write tracks: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		return fmt.Errorf("failed to move output into place: %w", err)
	}

	return nil
}

// ReadTracks читает JSON массив треков из файла, числа сохраняются без потерь
func ReadTracks(path string) ([]model.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var tracks []model.Track
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&tracks); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return tracks, nil
}
