package core

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Fuabioo/notesmcp/internal/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "notes.json")
	s, err := OpenStore(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s
}

func TestOpenStore_MissingFile(t *testing.T) {
	s := newTestStore(t)

	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d notes", s.Len())
	}

	// Opening must not create the file
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("expected store file to not exist before first save")
	}
}

func TestOpenStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	s, err := OpenStore(path)
	if err != nil {
		t.Fatalf("expected corrupt file to load as empty store, got %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("expected empty store, got %d notes", s.Len())
	}

	// The corrupt file is kept until the next save
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}
	if string(data) != "{not json" {
		t.Error("expected corrupt file to be left untouched")
	}
}

func TestStore_Add(t *testing.T) {
	s := newTestStore(t)

	note, err := s.Add("  Shopping list  ", "milk\neggs")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if note.ID == "" {
		t.Error("expected non-empty id")
	}
	if note.Title != "Shopping list" {
		t.Errorf("expected trimmed title, got %q", note.Title)
	}
	if note.Body != "milk\neggs" {
		t.Errorf("body = %q", note.Body)
	}
	if !note.CreatedAt.Equal(note.UpdatedAt) {
		t.Error("expected created_at == updated_at for a new note")
	}

	// Add persists synchronously
	if _, err := os.Stat(s.Path()); err != nil {
		t.Errorf("expected store file after Add: %v", err)
	}
}

func TestStore_Add_BlankTitle(t *testing.T) {
	s := newTestStore(t)

	tests := []struct {
		name  string
		title string
	}{
		{name: "empty", title: ""},
		{name: "spaces", title: "   "},
		{name: "tabs and newlines", title: "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Add(tt.title, "body")
			if !errors.Is(err, errors.CodeTitleRequired) {
				t.Errorf("expected TITLE_REQUIRED, got %v", err)
			}
		})
	}

	if s.Len() != 0 {
		t.Errorf("expected no notes persisted, got %d", s.Len())
	}
}

func TestStore_List_Order(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Add("first", "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	second, err := s.Add("second", "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Force distinct timestamps, then touch the older note
	time.Sleep(2 * time.Millisecond)
	if _, err := s.Touch(first.ID); err != nil {
		t.Fatalf("Touch failed: %v", err)
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(list))
	}
	if list[0].ID != first.ID {
		t.Errorf("expected touched note first, got %q", list[0].Title)
	}
	if list[1].ID != second.ID {
		t.Errorf("expected untouched note second, got %q", list[1].Title)
	}
}

func TestStore_Get(t *testing.T) {
	s := newTestStore(t)

	note, err := s.Add("hello", "world")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	got, err := s.Get(note.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "hello" {
		t.Errorf("title = %q, want hello", got.Title)
	}

	_, err = s.Get("nonexistent")
	if !errors.Is(err, errors.CodeNoteNotFound) {
		t.Errorf("expected NOTE_NOT_FOUND, got %v", err)
	}
}

func TestStore_GetMany_SkipsUnknown(t *testing.T) {
	s := newTestStore(t)

	a, _ := s.Add("a", "")
	b, _ := s.Add("b", "")

	got := s.GetMany([]string{a.ID, "missing", b.ID})
	if len(got) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(got))
	}
	if got[0].ID != a.ID || got[1].ID != b.ID {
		t.Error("expected notes in requested order")
	}

	if got := s.GetMany(nil); len(got) != 0 {
		t.Errorf("expected empty result for nil ids, got %d", len(got))
	}
}

func TestStore_Update(t *testing.T) {
	s := newTestStore(t)

	note, err := s.Add("draft", "old body")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	time.Sleep(2 * time.Millisecond)

	newTitle := "final"
	updated, err := s.Update(note.ID, &newTitle, nil)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "final" {
		t.Errorf("title = %q, want final", updated.Title)
	}
	if updated.Body != "old body" {
		t.Errorf("body should be unchanged, got %q", updated.Body)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("expected updated_at to advance")
	}
}

func TestStore_Update_BlankTitle(t *testing.T) {
	s := newTestStore(t)

	note, err := s.Add("keep", "body")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	blank := "  "
	_, err = s.Update(note.ID, &blank, nil)
	if !errors.Is(err, errors.CodeTitleRequired) {
		t.Errorf("expected TITLE_REQUIRED, got %v", err)
	}

	got, err := s.Get(note.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Title != "keep" {
		t.Errorf("title should be unchanged, got %q", got.Title)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	s := newTestStore(t)

	body := "x"
	_, err := s.Update("missing", nil, &body)
	if !errors.Is(err, errors.CodeNoteNotFound) {
		t.Errorf("expected NOTE_NOT_FOUND, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	s := newTestStore(t)

	note, err := s.Add("gone soon", "")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := s.Delete(note.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err = s.Get(note.ID)
	if !errors.Is(err, errors.CodeNoteNotFound) {
		t.Errorf("expected NOTE_NOT_FOUND after delete, got %v", err)
	}

	if err := s.Delete(note.ID); !errors.Is(err, errors.CodeNoteNotFound) {
		t.Errorf("expected NOTE_NOT_FOUND for double delete, got %v", err)
	}
}

func TestStore_Search(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Add("Groceries", "milk and EGGS"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add("Meeting notes", "discuss roadmap"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := s.Add("Egg recipes", "omelette"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		max        int
		wantCount  int
		wantTotal  int
	}{
		{
			name:      "case sensitive body match",
			pattern:   "EGGS",
			wantCount: 1,
			wantTotal: 1,
		},
		{
			name:       "case insensitive matches title and body",
			pattern:    "egg",
			ignoreCase: true,
			wantCount:  2,
			wantTotal:  2,
		},
		{
			name:       "max results truncates",
			pattern:    "egg",
			ignoreCase: true,
			max:        1,
			wantCount:  1,
			wantTotal:  2,
		},
		{
			name:      "no matches",
			pattern:   "nothing here",
			wantCount: 0,
			wantTotal: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := s.Search(tt.pattern, tt.ignoreCase, tt.max)
			if err != nil {
				t.Fatalf("Search failed: %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("got %d notes, want %d", len(got), tt.wantCount)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
		})
	}
}

func TestStore_Search_InvalidPattern(t *testing.T) {
	s := newTestStore(t)

	_, _, err := s.Search("(unclosed", false, 0)
	if !errors.Is(err, errors.CodeInvalidPattern) {
		t.Errorf("expected INVALID_PATTERN, got %v", err)
	}
}

func TestStore_Persistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")

	s, err := OpenStore(path)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	note, err := s.Add("persisted", "across restarts")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// Reopen from disk
	reloaded, err := OpenStore(path)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}

	got, err := reloaded.Get(note.ID)
	if err != nil {
		t.Fatalf("Get after reload failed: %v", err)
	}
	if got.Title != "persisted" || got.Body != "across restarts" {
		t.Errorf("reloaded note = %+v", got)
	}
	if !got.CreatedAt.Equal(note.CreatedAt) {
		t.Errorf("created_at changed across reload: %v != %v", got.CreatedAt, note.CreatedAt)
	}
}

func TestStore_SaveIsAtomic(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Add("a", ""); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	// No temp file left behind
	if _, err := os.Stat(s.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("expected temp file to be renamed away")
	}

	// File content is a valid JSON array
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("failed to read store file: %v", err)
	}
	var notes []*Note
	if err := json.Unmarshal(data, &notes); err != nil {
		t.Fatalf("store file is not valid JSON: %v", err)
	}
	if len(notes) != 1 {
		t.Errorf("expected 1 note in file, got %d", len(notes))
	}
}

func TestStore_ConcurrentUpdateAndRead(t *testing.T) {
	s := newTestStore(t)

	note, err := s.Add("contended", "v0")
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	// Returned notes must be copies, so readers never observe
	// in-place mutation. Run with -race to catch aliasing.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			body := "updated"
			if _, err := s.Update(note.ID, nil, &body); err != nil {
				t.Errorf("Update() failed: %v", err)
				return
			}
		}
	}()

	for i := 0; i < 50; i++ {
		for _, n := range s.List() {
			_ = n.Title
			_ = n.Body
			_ = n.UpdatedAt
		}
		got, err := s.Get(note.ID)
		if err != nil {
			t.Fatalf("Get() failed: %v", err)
		}
		_ = got.Body
	}

	<-done
}

func TestStore_ReturnedNotesAreCopies(t *testing.T) {
	s := newTestStore(t)

	note, err := s.Add("original", "body")
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	// Mutating a returned note must not leak into the store
	note.Title = "mangled"
	note.Body = "mangled"

	got, err := s.Get(note.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Title != "original" || got.Body != "body" {
		t.Errorf("store note = %q/%q, want original/body", got.Title, got.Body)
	}

	listed := s.List()[0]
	listed.Body = "also mangled"
	got, err = s.Get(note.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got.Body != "body" {
		t.Errorf("store body = %q, want body", got.Body)
	}
}

func TestFormatTime(t *testing.T) {
	ts := time.Date(2024, 3, 15, 9, 30, 45, 123456000, time.UTC)

	got := FormatTime(ts)
	want := "2024-03-15T09:30:45.123456Z"
	if got != want {
		t.Errorf("FormatTime() = %q, want %q", got, want)
	}
}
