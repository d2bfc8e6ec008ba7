package services

import (
	"ClinicDesk/models"
	"ClinicDesk/repositories"
)

type AuthService struct {
	store *repositories.CredentialStore
}

func NewAuthService(store *repositories.CredentialStore) *AuthService {
	return &AuthService{store: store}
}

func (s *AuthService) Authenticate(username, password string) (*models.Session, error) {
	return s.store.Authenticate(username, password)
}

func (s *AuthService) FailedAttempts(username string) int {
	return s.store.FailedAttempts(username)
}
