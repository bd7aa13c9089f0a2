package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Fuabioo/notesmcp/internal/errors"
	"github.com/google/uuid"
)

// Store is a note store backed by a single JSON file.
// All mutations are saved synchronously before they return.
type Store struct {
	mu    sync.RWMutex
	path  string
	notes map[string]*Note
}

// OpenStore loads the store from path, creating an empty store if the file
// does not exist. A corrupt or empty file yields an empty store; the file
// itself is left untouched until the next save.
func OpenStore(path string) (*Store, error) {
	s := &Store{
		path:  path,
		notes: make(map[string]*Note),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read note store: %w", err)
	}

	var notes []*Note
	if err := json.Unmarshal(data, &notes); err != nil {
		// Corrupt store. Start clean rather than failing startup.
		return s, nil
	}

	for _, n := range notes {
		if n.ID == "" {
			continue
		}
		s.notes[n.ID] = n
	}

	return s, nil
}

// Path returns the file this store persists to.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of stored notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// List returns all notes sorted by updated_at descending.
// Returned notes are copies; mutations never alias store state.
func (s *Store) List() []*Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Note, 0, len(s.notes))
	for _, n := range s.notes {
		c := *n
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		// Stable order for notes sharing a timestamp
		return out[i].ID < out[j].ID
	})
	return out
}

// All returns every note in the store, sorted like List.
func (s *Store) All() []*Note {
	return s.List()
}

// Get returns the note with the given id.
func (s *Store) Get(id string) (*Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	if !ok {
		return nil, errors.NoteNotFound(id)
	}
	c := *n
	return &c, nil
}

// GetMany returns the notes for the given ids. Unknown ids are skipped.
func (s *Store) GetMany(ids []string) []*Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Note, 0, len(ids))
	for _, id := range ids {
		if n, ok := s.notes[id]; ok {
			c := *n
			out = append(out, &c)
		}
	}
	return out
}

// Add creates a new note with the given title and body and saves the store.
// The title is trimmed and must not be blank.
func (s *Store) Add(title, body string) (*Note, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, errors.TitleRequired()
	}

	now := time.Now().UTC()
	note := &Note{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      body,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes[note.ID] = note
	if err := s.save(); err != nil {
		delete(s.notes, note.ID)
		return nil, err
	}
	c := *note
	return &c, nil
}

// Update applies the non-nil fields to the note with the given id, bumps
// updated_at, and saves the store. A non-nil blank title is rejected.
func (s *Store) Update(id string, title, body *string) (*Note, error) {
	if title != nil {
		trimmed := strings.TrimSpace(*title)
		if trimmed == "" {
			return nil, errors.TitleRequired()
		}
		title = &trimmed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return nil, errors.NoteNotFound(id)
	}

	prev := *n
	if title != nil {
		n.Title = *title
	}
	if body != nil {
		n.Body = *body
	}
	n.UpdatedAt = time.Now().UTC()

	if err := s.save(); err != nil {
		*n = prev
		return nil, err
	}
	c := *n
	return &c, nil
}

// Touch bumps the note's updated_at timestamp and saves the store.
func (s *Store) Touch(id string) (*Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return nil, errors.NoteNotFound(id)
	}

	prev := n.UpdatedAt
	n.UpdatedAt = time.Now().UTC()
	if err := s.save(); err != nil {
		n.UpdatedAt = prev
		return nil, err
	}
	c := *n
	return &c, nil
}

// Delete removes the note with the given id and saves the store.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notes[id]
	if !ok {
		return errors.NoteNotFound(id)
	}

	delete(s.notes, id)
	if err := s.save(); err != nil {
		s.notes[id] = n
		return err
	}
	return nil
}

// Search returns notes whose title or body matches the regex pattern,
// sorted by updated_at descending, up to max results (0 means no limit).
// The total count of matching notes is returned alongside the page.
func (s *Store) Search(pattern string, ignoreCase bool, max int) ([]*Note, int, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, 0, errors.InvalidPattern(pattern, err)
	}

	var matched []*Note
	for _, n := range s.List() {
		if re.MatchString(n.Title) || re.MatchString(n.Body) {
			matched = append(matched, n)
		}
	}

	total := len(matched)
	if max > 0 && len(matched) > max {
		matched = matched[:max]
	}
	return matched, total, nil
}

// save writes the store to disk atomically via a temp file and rename.
// Callers must hold the write lock.
func (s *Store) save() error {
	notes := make([]*Note, 0, len(s.notes))
	for _, n := range s.notes {
		notes = append(notes, n)
	}
	// Oldest first keeps the file diff-friendly
	sort.Slice(notes, func(i, j int) bool {
		if !notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].CreatedAt.Before(notes[j].CreatedAt)
		}
		return notes[i].ID < notes[j].ID
	})

	data, err := json.MarshalIndent(notes, "", "  ")
	if err != nil {
		return errors.StoreFailed(err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return errors.StoreFailed(err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return errors.StoreFailed(err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errors.StoreFailed(err)
	}
	return nil
}
