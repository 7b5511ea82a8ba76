package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-study-buddy/internal/logger"
)

// CorruptSuffix is appended to the name of a store file that could not be
// decoded when a copy of it is kept.
const CorruptSuffix = ".corrupt"

var errUndecodableFile = errors.New("error decoding")

// jsonFile keeps a top-level JSON array in a file and mirrors it in memory.
//
// Every mutation rewrites the whole file. When a write fails, or a verified
// write reads back inconsistent data, the file is abandoned and the memory
// mirror serves all further requests of this process. An empty path runs in
// memory only.
type jsonFile[T any] struct {
	path   string
	verify bool

	mu       sync.Mutex
	mirror   []T
	degraded bool
	setAside bool

	// readBack loads the file after a verified write.
	readBack func(path string) ([]T, error)

	logger *logger.Logger
}

func newJSONFile[T any](path string, verify bool, log *logger.Logger) *jsonFile[T] {
	return &jsonFile[T]{
		path:   path,
		verify: verify,
		mirror:   make([]T, 0),
		readBack: readRecords[T],
		logger:   log,
	}
}

// persistent reports whether records currently reach the file.
func (f *jsonFile[T]) persistent() bool {
	return f.path != "" && !f.degraded
}

// load returns a copy of the current records. The caller must hold f.mu.
func (f *jsonFile[T]) load() []T {
	if !f.persistent() {
		return cloneSlice(f.mirror)
	}

	records, err := readRecords[T](f.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			f.logger.Warn().Err(err).Str("path", f.path).Msg("error reading store file, serving from memory")
			if errors.Is(err, errUndecodableFile) {
				f.keepCorruptCopy()
			}
			return cloneSlice(f.mirror)
		}
		records = make([]T, 0)
	}

	f.mirror = records
	return cloneSlice(records)
}

// save replaces the stored records. It never fails the caller: on any file
// problem the store degrades to memory. The caller must hold f.mu.
func (f *jsonFile[T]) save(records []T) {
	f.mirror = cloneSlice(records)
	if !f.persistent() {
		return
	}

	var backup []byte
	var hasBackup bool
	if f.verify {
		if data, err := os.ReadFile(f.path); err == nil {
			backup, hasBackup = data, true
		}
	}

	if err := writeRecords(f.path, records); err != nil {
		f.degrade(err, "error writing store file")
		return
	}

	if !f.verify {
		return
	}

	written, err := f.readBack(f.path)
	if err == nil && len(written) == len(records) {
		return
	}
	if err == nil {
		err = fmt.Errorf("%w: wrote %d records, read back %d", ErrStorageInconsistency, len(records), len(written))
	} else {
		err = fmt.Errorf("%w: %w", ErrStorageInconsistency, err)
	}

	if hasBackup {
		if restoreErr := os.WriteFile(f.path, backup, 0o644); restoreErr != nil {
			f.logger.Error().Err(restoreErr).Str("path", f.path).Msg("error restoring store backup")
		}
	}
	f.degrade(err, "store file verification failed, backup restored")
}

// keepCorruptCopy copies an undecodable file to CorruptSuffix next to it
// once, before the next save overwrites it.
func (f *jsonFile[T]) keepCorruptCopy() {
	if f.setAside {
		return
	}
	f.setAside = true

	data, err := os.ReadFile(f.path)
	if err != nil {
		f.logger.Error().Err(err).Str("path", f.path).Msg("error reading corrupt store file")
		return
	}
	if err = os.WriteFile(f.path+CorruptSuffix, data, 0o600); err != nil {
		f.logger.Error().Err(err).Str("path", f.path).Msg("error saving corrupt store file")
		return
	}
	f.logger.Warn().Str("path", f.path+CorruptSuffix).Msg("corrupt store file copied aside")
}

func (f *jsonFile[T]) degrade(err error, msg string) {
	f.degraded = true
	f.logger.Warn().Err(err).Str("path", f.path).Msg(msg + ", serving from memory")
}

func readRecords[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0)
	if len(data) == 0 {
		return records, nil
	}
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w %s: %w", errUndecodableFile, filepath.Base(path), err)
	}
	return records, nil
}

func writeRecords[T any](path string, records []T) error {
	if records == nil {
		records = make([]T, 0)
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding records: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("error creating store directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
