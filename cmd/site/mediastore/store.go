// Package mediastore owns the flat-file mapping from uploaded-file id
// to its display name and tag set, and enforces the exclusive-tag
// invariant (`logo`, `hero`, `service:<slug>`) across entries.
//
// The persisted artifact is a single JSON object keyed by file id,
// each value `{"originalName": string|null, "tags": [string]}`. Key
// order in the file is the entries' insertion order and is preserved
// across load/save cycles; List, FindActive and ServiceMediaMap all
// iterate in that stored order.
//
// The store holds no in-memory state: every operation re-reads the
// file and mutating operations rewrite it whole. Two concurrent
// mutations can therefore race last-write-wins; the admin panel is a
// single-operator tool and this is accepted.
package mediastore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/midwaymobile/storage-site/common/logger"
)

var (
	// ErrNotFound is returned when an operation targets an id with no entry
	ErrNotFound = errors.New("media entry not found")
)

// ValidationError reports malformed caller input
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Entry describes one uploaded file's display name and tag set
type Entry struct {
	ID           string
	OriginalName string
	Tags         []string
}

// HasTag reports whether the entry carries the given tag
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// entryRecord is the persisted value shape. OriginalName round-trips
// as null when unset, matching the historical file format.
type entryRecord struct {
	OriginalName *string  `json:"originalName"`
	Tags         []string `json:"tags"`
}

// Store is a file-backed media tag store. Construct one per process
// with the metadata file path injected; tests point it at a temp dir.
type Store struct {
	path string
	log  *logger.Logger
}

// New creates a store persisting to the given file path
func New(path string, log *logger.Logger) *Store {
	return &Store{
		path: path,
		log:  log,
	}
}

// Load reads the persisted mapping in stored order. An absent or
// unparsable file yields an empty mapping, never an error: corruption
// recovery is an explicit non-goal and the next successful mutation
// rewrites the file from scratch.
func (s *Store) Load() []Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("media metadata unreadable, treating as empty", "path", s.path, "error", err)
		}
		return nil
	}

	entries, err := decodeEntries(data)
	if err != nil {
		s.log.Warn("media metadata corrupt, treating as empty", "path", s.path, "error", err)
		return nil
	}

	return entries
}

// RecordUpload inserts a new entry for a freshly stored file, resolves
// exclusive-tag conflicts in its favour and persists. The upload
// gateway guarantees fresh ids; a duplicate is rejected as caller error.
func (s *Store) RecordUpload(id, originalName string, tags []string) (Entry, error) {
	if strings.TrimSpace(id) == "" {
		return Entry{}, &ValidationError{Field: "id", Reason: "must not be empty"}
	}

	entries := s.Load()
	for _, entry := range entries {
		if entry.ID == id {
			return Entry{}, &ValidationError{Field: "id", Reason: "already recorded"}
		}
	}

	entry := Entry{
		ID:           id,
		OriginalName: originalName,
		Tags:         normalizeTags(tags),
	}

	entries = append(entries, entry)
	entries = EnforceExclusiveTags(entries, id)

	s.persist(entries)
	return entry, nil
}

// SetTags replaces an entry's tag set wholesale, resolves exclusive-tag
// conflicts in its favour and persists
func (s *Store) SetTags(id string, tags []string) (Entry, error) {
	entries := s.Load()

	pos := -1
	for i, entry := range entries {
		if entry.ID == id {
			pos = i
			break
		}
	}
	if pos < 0 {
		return Entry{}, fmt.Errorf("set tags %s: %w", id, ErrNotFound)
	}

	entries[pos].Tags = normalizeTags(tags)
	entries = EnforceExclusiveTags(entries, id)

	s.persist(entries)
	return entries[pos], nil
}

// Remove deletes the entry for id if present; removing an unknown id
// is not an error
func (s *Store) Remove(id string) {
	entries := s.Load()

	kept := entries[:0:0]
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}

	if len(kept) == len(entries) {
		return
	}

	s.persist(kept)
}

// List returns all entries in stored order, or only those carrying
// tagFilter when it is non-empty
func (s *Store) List(tagFilter string) []Entry {
	entries := s.Load()
	if tagFilter == "" {
		return entries
	}

	out := entries[:0:0]
	for _, entry := range entries {
		if entry.HasTag(tagFilter) {
			out = append(out, entry)
		}
	}
	return out
}

// FindActive returns the first entry in stored order carrying the tag
func (s *Store) FindActive(tag string) (Entry, bool) {
	for _, entry := range s.Load() {
		if entry.HasTag(tag) {
			return entry, true
		}
	}
	return Entry{}, false
}

// ServiceMediaMap maps service slug to file id for every
// `service:<slug>` tag. Enforcement keeps these unique; if two entries
// carry the same slug anyway, the first in stored order wins.
func (s *Store) ServiceMediaMap() map[string]string {
	out := make(map[string]string)
	for _, entry := range s.Load() {
		for _, tag := range entry.Tags {
			slug := strings.TrimPrefix(tag, ServiceTagPrefix)
			if slug == tag || slug == "" {
				continue
			}
			if _, taken := out[slug]; !taken {
				out[slug] = entry.ID
			}
		}
	}
	return out
}

// persist writes the mapping best-effort: a failed save is logged and
// the caller still gets the in-memory result, so the admin sees the
// effect immediately and the next successful mutation rewrites the
// file whole
func (s *Store) persist(entries []Entry) {
	if err := s.save(entries); err != nil {
		s.log.Error("failed to persist media metadata", "path", s.path, "error", err)
	}
}

// save overwrites the metadata file via temp file + rename, which is
// atomic enough for the single-writer assumption
func (s *Store) save(entries []Entry) error {
	data, err := encodeEntries(entries)
	if err != nil {
		return fmt.Errorf("encode media metadata: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create metadata directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".media-*.json")
	if err != nil {
		return fmt.Errorf("create temp metadata file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write metadata: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close metadata: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace metadata file: %w", err)
	}

	return nil
}

// decodeEntries parses the JSON object with a token stream so the
// file's key order survives; a Go map would shuffle it
func decodeEntries(data []byte) ([]Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("metadata root is not an object")
	}

	var entries []Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		id, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("metadata key is not a string")
		}

		var rec entryRecord
		if err := dec.Decode(&rec); err != nil {
			return nil, err
		}

		entry := Entry{ID: id, Tags: rec.Tags}
		if rec.OriginalName != nil {
			entry.OriginalName = *rec.OriginalName
		}
		if entry.Tags == nil {
			entry.Tags = []string{}
		}
		entries = append(entries, entry)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return entries, nil
}

// encodeEntries renders the JSON object with keys in entry order
func encodeEntries(entries []Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(entry.ID)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		rec := entryRecord{Tags: entry.Tags}
		if rec.Tags == nil {
			rec.Tags = []string{}
		}
		if entry.OriginalName != "" {
			name := entry.OriginalName
			rec.OriginalName = &name
		}

		val, err := json.Marshal(rec)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
