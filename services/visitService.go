package services

import (
	"ClinicDesk/models"
	"ClinicDesk/repositories"
)

type VisitService struct {
	repository *repositories.VisitRepository
}

func NewVisitService(repository *repositories.VisitRepository) *VisitService {
	return &VisitService{repository: repository}
}

func (s *VisitService) GetLatestVisit(patientID string) (*models.Visit, error) {
	return s.repository.GetLatestVisit(patientID)
}

func (s *VisitService) AddVisit(input models.VisitInput, actor string) (string, error) {
	return s.repository.AddVisit(input, actor)
}

func (s *VisitService) RemoveAllVisits(patientID, actor string) (bool, error) {
	return s.repository.RemoveAllVisits(patientID, actor)
}

func (s *VisitService) CountVisitsOnDate(dateStr string) int {
	return s.repository.CountVisitsOnDate(dateStr)
}

func (s *VisitService) ListAllVisits() []models.Visit {
	return s.repository.ListAllVisits()
}
