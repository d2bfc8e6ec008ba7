package repositories

import (
	"fmt"
	"log"
	"strings"

	"ClinicDesk/audit"
	"ClinicDesk/models"
	"ClinicDesk/storage"
	"ClinicDesk/utils"
)

// noteAuditRole tags audit entries originating from note lookups.
const noteAuditRole = "note_index"

// NoteIndex holds the clinical notes loaded once at startup. The core
// never creates, updates or deletes notes; they arrive from outside.
type NoteIndex struct {
	auditLog *audit.Logger
	notes    []models.Note
}

// NewNoteIndex loads every note from the notes file. A missing file
// starts the index empty.
func NewNoteIndex(path string, auditLog *audit.Logger) *NoteIndex {
	rows := storage.Load(path)
	notes := make([]models.Note, 0, len(rows))
	for _, row := range rows {
		notes = append(notes, models.Note{
			PatientID: row["PatientID"],
			VisitDate: row["VisitDate"],
			NoteText:  row["NoteText"],
		})
	}
	return &NoteIndex{auditLog: auditLog, notes: notes}
}

// FindNotesByDate returns every note for the patient whose VisitDate falls
// on the given calendar day. dateStr must be a YYYY-MM-DD date or the
// lookup is rejected with ErrInvalidDateFormat before any matching.
//
// Stored dates may carry a trailing time of day, so the match is on the
// calendar-day prefix. It must stay a prefix match: equality misses the
// timestamped rows, and a contains match brings back other days' notes.
// When actor is non-empty the lookup is recorded in the audit log.
func (n *NoteIndex) FindNotesByDate(patientID, dateStr, actor string) ([]models.Note, error) {
	if err := utils.ValidateDate(dateStr); err != nil {
		return nil, err
	}

	matches := make([]models.Note, 0)
	for _, note := range n.notes {
		if note.PatientID == patientID && strings.HasPrefix(note.VisitDate, dateStr) {
			matches = append(matches, note)
		}
	}

	if actor != "" {
		action := fmt.Sprintf("Viewed %d notes for patient %s on %s", len(matches), patientID, dateStr)
		if err := n.auditLog.Record(actor, noteAuditRole, action); err != nil {
			log.Printf("failed to write audit entry: %v", err)
		}
	}
	return matches, nil
}
