package stores

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/SiloGit/bcnotif/internal/models"
	"github.com/SiloGit/bcnotif/internal/shared/filestorages"
)

// ErrSnapshotCorrupt marks a snapshot file that exists but cannot be parsed.
// Callers should treat it as fatal rather than silently starting fresh, since
// overwriting the file would destroy the accumulated averages.
var ErrSnapshotCorrupt = errors.New("average snapshot is corrupt")

//go:generate mockgen -source=average_store.go -destination=./mocks/average_store_mock.go -package=mocks
type AverageStore interface {
	Load(ctx context.Context) (map[string]models.ListenerAvg, error)
	Save(ctx context.Context, averages map[string]models.ListenerAvg) error
}

type averageStore struct {
	fileStorage filestorages.FileStorage
	key         string
}

func NewAverageStore(fileStorage filestorages.FileStorage) AverageStore {
	return &averageStore{fileStorage: fileStorage, key: "averages.csv"}
}

// Load reads the persisted averages snapshot. A missing file is not an error:
// it simply means no history has been recorded yet and an empty map is
// returned.
func (s *averageStore) Load(ctx context.Context) (map[string]models.ListenerAvg, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return map[string]models.ListenerAvg{}, nil
		}
		return nil, fmt.Errorf("failed to get average snapshot: %w", err)
	}
	defer readCloser.Close()

	reader := csv.NewReader(readCloser)
	reader.FieldsPerRecord = 1 + models.HoursPerDay

	averages := map[string]models.ListenerAvg{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupt, err)
		}

		name, avg, err := parseAverageRecord(record)
		if err != nil {
			return nil, err
		}
		averages[name] = avg
	}
	return averages, nil
}

// Save persists the averages snapshot, one row per feed, sorted by feed name
// so the file is stable across runs.
func (s *averageStore) Save(ctx context.Context, averages map[string]models.ListenerAvg) error {
	names := make([]string, 0, len(averages))
	for name := range averages {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	for _, name := range names {
		if err := writer.Write(averageRecord(name, averages[name])); err != nil {
			return fmt.Errorf("failed to encode average snapshot: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to encode average snapshot: %w", err)
	}

	if err := s.fileStorage.Put(ctx, s.key, &buf); err != nil {
		return fmt.Errorf("failed to put average snapshot: %w", err)
	}
	return nil
}

func parseAverageRecord(record []string) (string, models.ListenerAvg, error) {
	name := record[0]
	if name == "" {
		return "", models.ListenerAvg{}, fmt.Errorf("%w: empty feed name", ErrSnapshotCorrupt)
	}

	var avg models.ListenerAvg
	for i := range avg.Hours {
		value, err := strconv.ParseFloat(record[i+1], 64)
		if err != nil {
			return "", models.ListenerAvg{}, fmt.Errorf("%w: %s of %q: %w", ErrSnapshotCorrupt, models.HourBucketID(i), name, err)
		}
		avg.Hours[i] = value
	}
	return name, avg, nil
}

func averageRecord(name string, avg models.ListenerAvg) []string {
	record := make([]string, 0, 1+models.HoursPerDay)
	record = append(record, name)
	for _, value := range avg.Hours {
		record = append(record, strconv.FormatFloat(value, 'g', -1, 64))
	}
	return record
}
