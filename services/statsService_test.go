package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"ClinicDesk/audit"
	"ClinicDesk/models"
	"ClinicDesk/repositories"
	"ClinicDesk/storage"
	"ClinicDesk/utils"
)

func newTestVisitService(t *testing.T, rows []storage.Row) *VisitService {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "Patient_data.csv")
	if len(rows) > 0 {
		if err := storage.Save(path, rows, models.VisitFieldNames); err != nil {
			t.Fatalf("seed visits: %v", err)
		}
	}
	auditLog, err := audit.NewLogger(filepath.Join(dir, "audit_log.csv"))
	if err != nil {
		t.Fatalf("audit logger: %v", err)
	}
	return NewVisitService(repositories.NewVisitRepository(path, auditLog))
}

func visitRow(patientID, visitDate, visitID string) storage.Row {
	return storage.Row{
		"PatientID": patientID,
		"VisitDate": visitDate,
		"VisitID":   visitID,
	}
}

func TestVisitTrendsCountsWithinWindow(t *testing.T) {
	today := time.Now().Format(utils.DateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(utils.DateLayout)
	longAgo := time.Now().AddDate(0, 0, -90).Format(utils.DateLayout)

	visits := newTestVisitService(t, []storage.Row{
		visitRow("P1", today, "v1"),
		visitRow("P2", today, "v2"),
		visitRow("P3", yesterday, "v3"),
		visitRow("P4", longAgo, "v4"),
		visitRow("P5", "garbage", "v5"),
	})
	statsPath := filepath.Join(t.TempDir(), "visit_stats.csv")
	stats := NewStatsService(visits, statsPath)

	trends, err := stats.VisitTrends(30)
	if err != nil {
		t.Fatalf("visit trends: %v", err)
	}
	if len(trends) != 2 {
		t.Fatalf("expected 2 dates inside the window, got %d", len(trends))
	}
	if trends[0].Date != yesterday || trends[0].VisitCount != 1 {
		t.Errorf("unexpected first trend row: %+v", trends[0])
	}
	if trends[1].Date != today || trends[1].VisitCount != 2 {
		t.Errorf("unexpected second trend row: %+v", trends[1])
	}
}

func TestVisitTrendsWritesDerivedStatsFile(t *testing.T) {
	today := time.Now().Format(utils.DateLayout)
	visits := newTestVisitService(t, []storage.Row{visitRow("P1", today, "v1")})
	statsPath := filepath.Join(t.TempDir(), "visit_stats.csv")
	stats := NewStatsService(visits, statsPath)

	if _, err := stats.VisitTrends(0); err != nil {
		t.Fatalf("visit trends: %v", err)
	}

	content, err := os.ReadFile(statsPath)
	if err != nil {
		t.Fatalf("read stats file: %v", err)
	}
	expected := "Date,VisitCount\n" + today + ",1\n"
	if string(content) != expected {
		t.Errorf("unexpected stats file content: %q", content)
	}
}

func TestVisitTrendsEmptyRegistry(t *testing.T) {
	visits := newTestVisitService(t, nil)
	statsPath := filepath.Join(t.TempDir(), "visit_stats.csv")
	stats := NewStatsService(visits, statsPath)

	trends, err := stats.VisitTrends(30)
	if err != nil {
		t.Fatalf("visit trends: %v", err)
	}
	if len(trends) != 0 {
		t.Errorf("expected no trends, got %d", len(trends))
	}
	// No rows means no stats file: the store never writes an empty file.
	if _, err := os.Stat(statsPath); !os.IsNotExist(err) {
		t.Error("expected no stats file for an empty registry")
	}
}
