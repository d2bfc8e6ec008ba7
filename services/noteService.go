package services

import (
	"ClinicDesk/models"
	"ClinicDesk/repositories"
)

type NoteService struct {
	index *repositories.NoteIndex
}

func NewNoteService(index *repositories.NoteIndex) *NoteService {
	return &NoteService{index: index}
}

func (s *NoteService) FindNotesByDate(patientID, dateStr, actor string) ([]models.Note, error) {
	return s.index.FindNotesByDate(patientID, dateStr, actor)
}
