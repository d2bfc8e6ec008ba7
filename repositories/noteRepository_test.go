package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ClinicDesk/utils"
)

func writeNoteFile(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Notes.csv")
	if err := os.WriteFile(path, []byte("PatientID,VisitDate,NoteText\n"+rows), 0o644); err != nil {
		t.Fatalf("write note file: %v", err)
	}
	return path
}

func TestFindNotesByDatePrefixMatch(t *testing.T) {
	path := writeNoteFile(t,
		"P1,2023-05-01 09:00,morning checkup\n"+
			"P1,2023-05-01,same day plain date\n"+
			"P1,2023-05-11,different day\n"+
			"P2,2023-05-01,other patient\n")
	index := NewNoteIndex(path, newTestAudit(t))

	notes, err := index.FindNotesByDate("P1", "2023-05-01", "alice")
	if err != nil {
		t.Fatalf("find notes: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	for _, note := range notes {
		if note.PatientID != "P1" {
			t.Errorf("wrong patient in results: %s", note.PatientID)
		}
	}
}

func TestFindNotesByDateRejectsMalformedDate(t *testing.T) {
	index := NewNoteIndex(writeNoteFile(t, "P1,2023-05-01,note\n"), newTestAudit(t))

	for _, dateStr := range []string{"2023-05-0", "05-01-2023", "2023-13-40", "", "yesterday"} {
		notes, err := index.FindNotesByDate("P1", dateStr, "")
		if !errors.Is(err, utils.ErrInvalidDateFormat) {
			t.Errorf("%q: expected ErrInvalidDateFormat, got %v", dateStr, err)
		}
		if notes != nil {
			t.Errorf("%q: expected no sequence alongside the error", dateStr)
		}
	}
}

func TestFindNotesByDateIsNotASubstringMatch(t *testing.T) {
	// A date buried mid-string must not match; only the calendar-day
	// prefix counts.
	path := writeNoteFile(t, "P1,logged 2023-05-01,misfiled note\n")
	index := NewNoteIndex(path, newTestAudit(t))

	notes, err := index.FindNotesByDate("P1", "2023-05-01", "")
	if err != nil {
		t.Fatalf("find notes: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("substring match leaked through, got %d notes", len(notes))
	}
}

func TestFindNotesByDateEmptyResultIsNotNil(t *testing.T) {
	index := NewNoteIndex(writeNoteFile(t, "P1,2023-05-01,note\n"), newTestAudit(t))

	notes, err := index.FindNotesByDate("P9", "2023-05-01", "")
	if err != nil {
		t.Fatalf("find notes: %v", err)
	}
	if notes == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(notes) != 0 {
		t.Errorf("expected no notes, got %d", len(notes))
	}
}

func TestNoteIndexMissingFileStartsEmpty(t *testing.T) {
	index := NewNoteIndex(filepath.Join(t.TempDir(), "absent.csv"), newTestAudit(t))

	notes, err := index.FindNotesByDate("P1", "2023-05-01", "")
	if err != nil {
		t.Fatalf("find notes: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("expected no notes from a missing file, got %d", len(notes))
	}
}
