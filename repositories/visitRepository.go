package repositories

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"ClinicDesk/audit"
	"ClinicDesk/models"
	"ClinicDesk/storage"
	"ClinicDesk/utils"
)

// ErrVisitNotFound signals that a patient has no recorded visits. Not an
// input error: unknown patient IDs are an expected lookup outcome.
var ErrVisitNotFound = errors.New("no visits found for this patient")

// registryAuditRole tags audit entries originating from the registry itself.
const registryAuditRole = "patient_registry"

// VisitRepository owns the in-memory collection of visit rows and the
// on-disk patient-visit file. Every mutation rewrites the whole file.
type VisitRepository struct {
	path     string
	auditLog *audit.Logger
	mu       sync.Mutex
	visits   []models.Visit
}

// NewVisitRepository loads every visit from the patient-visit file into
// memory. A missing or unreadable file starts the registry empty.
func NewVisitRepository(path string, auditLog *audit.Logger) *VisitRepository {
	rows := storage.Load(path)
	visits := make([]models.Visit, 0, len(rows))
	for _, row := range rows {
		visits = append(visits, visitFromRow(row))
	}
	return &VisitRepository{path: path, auditLog: auditLog, visits: visits}
}

// GetLatestVisit returns the most recent visit for the patient, by parsed
// VisitDate. When several visits share the latest date, the last one in
// load order wins. A candidate whose VisitDate does not parse as
// YYYY-MM-DD fails the whole lookup rather than silently reporting a
// stale latest visit.
func (r *VisitRepository) GetLatestVisit(patientID string) (*models.Visit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var latest models.Visit
	var latestDate time.Time
	found := false
	for _, v := range r.visits {
		if v.PatientID != patientID {
			continue
		}
		parsed, err := time.Parse(utils.DateLayout, v.VisitDate)
		if err != nil {
			return nil, fmt.Errorf("visit %s has malformed VisitDate %q: %w", v.VisitID, v.VisitDate, err)
		}
		if !found || !parsed.Before(latestDate) {
			latest = v
			latestDate = parsed
			found = true
		}
	}
	if !found {
		return nil, ErrVisitNotFound
	}
	return &latest, nil
}

// AddVisit records a new visit. The registry stamps today's date, assigns
// a random VisitID and persists the whole collection. The supplied fields
// are stored as-is; validating them is the caller's job.
func (r *VisitRepository) AddVisit(input models.VisitInput, actor string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	visit := models.Visit{
		PatientID:      input.PatientID,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Gender:         input.Gender,
		DOB:            input.DOB,
		ChiefComplaint: input.ChiefComplaint,
		Department:     input.Department,
		VisitDate:      time.Now().Format(utils.DateLayout),
		VisitID:        uuid.New().String(),
	}

	r.visits = append(r.visits, visit)
	if err := r.save(); err != nil {
		return "", err
	}

	r.record(actor, fmt.Sprintf("Added visit %s for Patient %s", visit.VisitID, visit.PatientID))
	return visit.VisitID, nil
}

// RemoveAllVisits deletes every visit for the patient, not just one, and
// reports whether anything was removed. The deletion is irreversible.
func (r *VisitRepository) RemoveAllVisits(patientID, actor string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]models.Visit, 0, len(r.visits))
	for _, v := range r.visits {
		if v.PatientID != patientID {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(r.visits) {
		return false, nil
	}

	r.visits = kept
	if err := r.save(); err != nil {
		return false, err
	}

	r.record(actor, fmt.Sprintf("Removed all visits for Patient %s", patientID))
	return true, nil
}

// CountVisitsOnDate tallies visits whose VisitDate equals dateStr exactly.
// No date parsing here: a malformed dateStr simply matches nothing, and
// validating it belongs to the caller.
func (r *VisitRepository) CountVisitsOnDate(dateStr string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, v := range r.visits {
		if v.VisitDate == dateStr {
			count++
		}
	}
	return count
}

// ListAllVisits returns a snapshot of every visit. Mutating the returned
// slice does not affect the registry.
func (r *VisitRepository) ListAllVisits() []models.Visit {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make([]models.Visit, len(r.visits))
	copy(snapshot, r.visits)
	return snapshot
}

func (r *VisitRepository) save() error {
	rows := make([]storage.Row, 0, len(r.visits))
	for _, v := range r.visits {
		rows = append(rows, visitToRow(v))
	}
	return storage.Save(r.path, rows, models.VisitFieldNames)
}

func (r *VisitRepository) record(actor, action string) {
	if err := r.auditLog.Record(actor, registryAuditRole, action); err != nil {
		log.Printf("failed to write audit entry: %v", err)
	}
}

func visitFromRow(row storage.Row) models.Visit {
	return models.Visit{
		PatientID:      row["PatientID"],
		FirstName:      row["FirstName"],
		LastName:       row["LastName"],
		Gender:         row["Gender"],
		DOB:            row["DOB"],
		ChiefComplaint: row["ChiefComplaint"],
		Department:     row["Department"],
		VisitDate:      row["VisitDate"],
		VisitID:        row["VisitID"],
	}
}

func visitToRow(v models.Visit) storage.Row {
	return storage.Row{
		"PatientID":      v.PatientID,
		"FirstName":      v.FirstName,
		"LastName":       v.LastName,
		"Gender":         v.Gender,
		"DOB":            v.DOB,
		"ChiefComplaint": v.ChiefComplaint,
		"Department":     v.Department,
		"VisitDate":      v.VisitDate,
		"VisitID":        v.VisitID,
	}
}
