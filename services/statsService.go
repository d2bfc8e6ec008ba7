package services

import (
	"sort"
	"strconv"
	"time"

	"ClinicDesk/models"
	"ClinicDesk/storage"
	"ClinicDesk/utils"
)

// DefaultTrendDays is the trailing window used when the caller asks for a
// trend without naming one.
const DefaultTrendDays = 30

// statsFieldNames is the column order of the derived stats file.
var statsFieldNames = []string{"Date", "VisitCount"}

// StatsService derives per-day visit counts from the registry snapshot.
// It is a read-only reporting view; chart rendering belongs to the front
// end, this service only produces the numbers behind it.
type StatsService struct {
	visits    *VisitService
	statsPath string
}

func NewStatsService(visits *VisitService, statsPath string) *StatsService {
	return &StatsService{visits: visits, statsPath: statsPath}
}

// VisitTrends tallies visits per day over the trailing window, writes the
// counts to the derived stats file and returns them in date order. Visits
// with an unparsable date fall outside any window and are skipped.
func (s *StatsService) VisitTrends(days int) ([]models.DailyVisitCount, error) {
	if days <= 0 {
		days = DefaultTrendDays
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	counts := make(map[string]int)
	for _, v := range s.visits.ListAllVisits() {
		parsed, err := time.Parse(utils.DateLayout, v.VisitDate)
		if err != nil || parsed.Before(cutoff) {
			continue
		}
		counts[v.VisitDate]++
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	trends := make([]models.DailyVisitCount, 0, len(dates))
	rows := make([]storage.Row, 0, len(dates))
	for _, date := range dates {
		trends = append(trends, models.DailyVisitCount{Date: date, VisitCount: counts[date]})
		rows = append(rows, storage.Row{
			"Date":       date,
			"VisitCount": strconv.Itoa(counts[date]),
		})
	}

	if err := storage.Save(s.statsPath, rows, statsFieldNames); err != nil {
		return nil, err
	}
	return trends, nil
}
