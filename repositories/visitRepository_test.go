package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ClinicDesk/audit"
	"ClinicDesk/models"
	"ClinicDesk/utils"
)

func newTestAudit(t *testing.T) *audit.Logger {
	t.Helper()
	logger, err := audit.NewLogger(filepath.Join(t.TempDir(), "audit_log.csv"))
	if err != nil {
		t.Fatalf("audit logger: %v", err)
	}
	return logger
}

func writeVisitFile(t *testing.T, rows string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Patient_data.csv")
	header := "PatientID,FirstName,LastName,Gender,DOB,ChiefComplaint,Department,VisitDate,VisitID\n"
	if err := os.WriteFile(path, []byte(header+rows), 0o644); err != nil {
		t.Fatalf("write visit file: %v", err)
	}
	return path
}

func TestGetLatestVisitPicksMaxDate(t *testing.T) {
	path := writeVisitFile(t,
		"P1,Ann,Lee,F,1980-01-01,cough,ENT,2023-05-03,v2\n"+
			"P1,Ann,Lee,F,1980-01-01,cough,ENT,2023-05-01,v1\n"+
			"P1,Ann,Lee,F,1980-01-01,fever,ENT,2023-05-09,v3\n"+
			"P2,Bob,Ray,M,1975-02-02,ache,GP,2023-06-01,v4\n")
	repo := NewVisitRepository(path, newTestAudit(t))

	visit, err := repo.GetLatestVisit("P1")
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if visit.VisitID != "v3" {
		t.Errorf("expected v3, got %s", visit.VisitID)
	}
}

func TestGetLatestVisitTieGoesToLastInLoadOrder(t *testing.T) {
	path := writeVisitFile(t,
		"P1,Ann,Lee,F,1980-01-01,cough,ENT,2023-05-01,first\n"+
			"P1,Ann,Lee,F,1980-01-01,cough,ENT,2023-05-01,second\n")
	repo := NewVisitRepository(path, newTestAudit(t))

	visit, err := repo.GetLatestVisit("P1")
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if visit.VisitID != "second" {
		t.Errorf("tie should go to the last row in load order, got %s", visit.VisitID)
	}
}

func TestGetLatestVisitUnknownPatient(t *testing.T) {
	path := writeVisitFile(t, "P1,Ann,Lee,F,1980-01-01,cough,ENT,2023-05-01,v1\n")
	repo := NewVisitRepository(path, newTestAudit(t))

	if _, err := repo.GetLatestVisit("P9"); !errors.Is(err, ErrVisitNotFound) {
		t.Errorf("expected ErrVisitNotFound, got %v", err)
	}
}

func TestGetLatestVisitMalformedDateFailsFast(t *testing.T) {
	path := writeVisitFile(t,
		"P1,Ann,Lee,F,1980-01-01,cough,ENT,2023-05-01,v1\n"+
			"P1,Ann,Lee,F,1980-01-01,cough,ENT,not-a-date,v2\n")
	repo := NewVisitRepository(path, newTestAudit(t))

	_, err := repo.GetLatestVisit("P1")
	if err == nil || errors.Is(err, ErrVisitNotFound) {
		t.Fatalf("expected a parse failure, got %v", err)
	}
}

func TestAddVisitThenGetLatest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Patient_data.csv")
	repo := NewVisitRepository(path, newTestAudit(t))

	visitID, err := repo.AddVisit(models.VisitInput{
		PatientID:      "P1",
		FirstName:      "Ann",
		LastName:       "Lee",
		Gender:         "F",
		DOB:            "1980-01-01",
		ChiefComplaint: "cough",
		Department:     "ENT",
	}, "alice")
	if err != nil {
		t.Fatalf("add visit: %v", err)
	}

	visit, err := repo.GetLatestVisit("P1")
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if visit.VisitID != visitID {
		t.Errorf("expected the visit just added (%s), got %s", visitID, visit.VisitID)
	}
	if visit.VisitDate != time.Now().Format(utils.DateLayout) {
		t.Errorf("expected today's date, got %s", visit.VisitDate)
	}
}

func TestAddVisitPersistsAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Patient_data.csv")
	auditLog := newTestAudit(t)
	repo := NewVisitRepository(path, auditLog)

	visitID, err := repo.AddVisit(models.VisitInput{PatientID: "P1", FirstName: "Ann", LastName: "Lee"}, "alice")
	if err != nil {
		t.Fatalf("add visit: %v", err)
	}

	reloaded := NewVisitRepository(path, auditLog)
	visit, err := reloaded.GetLatestVisit("P1")
	if err != nil {
		t.Fatalf("get latest after reload: %v", err)
	}
	if visit.VisitID != visitID {
		t.Errorf("expected %s after reload, got %s", visitID, visit.VisitID)
	}
}

func TestRemoveAllVisits(t *testing.T) {
	path := writeVisitFile(t,
		"P1,Ann,Lee,F,1980-01-01,cough,ENT,2023-05-01,v1\n"+
			"P1,Ann,Lee,F,1980-01-01,cough,ENT,2023-05-02,v2\n"+
			"P2,Bob,Ray,M,1975-02-02,ache,GP,2023-06-01,v3\n")
	repo := NewVisitRepository(path, newTestAudit(t))

	deleted, err := repo.RemoveAllVisits("P1", "alice")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if !deleted {
		t.Error("expected visits to be deleted")
	}

	if _, err := repo.GetLatestVisit("P1"); !errors.Is(err, ErrVisitNotFound) {
		t.Errorf("expected ErrVisitNotFound after removal, got %v", err)
	}
	if _, err := repo.GetLatestVisit("P2"); err != nil {
		t.Errorf("other patients should be untouched: %v", err)
	}

	deleted, err = repo.RemoveAllVisits("P1", "alice")
	if err != nil {
		t.Fatalf("second remove: %v", err)
	}
	if deleted {
		t.Error("second removal should report nothing deleted")
	}
}

func TestCountVisitsOnDateExactEquality(t *testing.T) {
	path := writeVisitFile(t,
		"P1,Ann,Lee,F,1980-01-01,cough,ENT,2023-05-01,v1\n"+
			"P2,Bob,Ray,M,1975-02-02,ache,GP,2023-05-01,v2\n"+
			"P3,Cy,Orr,M,1990-03-03,rash,GP,2023-05-01 09:00,v3\n"+
			"P4,Di,Poe,F,1985-04-04,cut,ER,2023-05-02,v4\n")
	repo := NewVisitRepository(path, newTestAudit(t))

	if got := repo.CountVisitsOnDate("2023-05-01"); got != 2 {
		t.Errorf("expected 2 exact matches, got %d", got)
	}
	if got := repo.CountVisitsOnDate("2023-05"); got != 0 {
		t.Errorf("a malformed date should match nothing, got %d", got)
	}
}

func TestListAllVisitsReturnsSnapshot(t *testing.T) {
	path := writeVisitFile(t, "P1,Ann,Lee,F,1980-01-01,cough,ENT,2023-05-01,v1\n")
	repo := NewVisitRepository(path, newTestAudit(t))

	snapshot := repo.ListAllVisits()
	if len(snapshot) != 1 {
		t.Fatalf("expected 1 visit, got %d", len(snapshot))
	}
	snapshot[0].PatientID = "mutated"

	visit, err := repo.GetLatestVisit("P1")
	if err != nil {
		t.Fatalf("get latest: %v", err)
	}
	if visit.PatientID != "P1" {
		t.Error("mutating the snapshot changed registry state")
	}
}
