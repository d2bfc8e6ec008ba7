package models

// Visit is one recorded clinic encounter. A patient can have any number of
// visits, so PatientID repeats across rows; VisitID is unique per visit.
type Visit struct {
	PatientID      string `json:"patient_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Gender         string `json:"gender"`
	DOB            string `json:"dob"`
	ChiefComplaint string `json:"chief_complaint"`
	Department     string `json:"department"`
	VisitDate      string `json:"visit_date"`
	VisitID        string `json:"visit_id"`
}

// VisitInput carries the caller-supplied fields for a new visit. VisitDate
// and VisitID are stamped by the registry, never by the caller.
type VisitInput struct {
	PatientID      string `json:"patient_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Gender         string `json:"gender"`
	DOB            string `json:"dob"`
	ChiefComplaint string `json:"chief_complaint"`
	Department     string `json:"department"`
}

// VisitFieldNames is the canonical column order of the patient-visit file.
var VisitFieldNames = []string{
	"PatientID",
	"FirstName",
	"LastName",
	"Gender",
	"DOB",
	"ChiefComplaint",
	"Department",
	"VisitDate",
	"VisitID",
}

// Note is one clinical note tied to a patient and a visit date. The stored
// VisitDate may carry a time-of-day suffix after the calendar day. Notes
// are read-only from this system's perspective.
type Note struct {
	PatientID string `json:"patient_id"`
	VisitDate string `json:"visit_date"`
	NoteText  string `json:"note_text"`
}

// DailyVisitCount is one row of the derived visit-trend statistics.
type DailyVisitCount struct {
	Date       string `json:"date"`
	VisitCount int    `json:"visit_count"`
}
