package repositories

import (
	"errors"
	"log"
	"sync"
	"time"

	"ClinicDesk/audit"
	"ClinicDesk/models"
	"ClinicDesk/storage"
)

// ErrNotAuthenticated covers both unknown usernames and wrong passwords;
// the caller gets no hint which one it was.
var ErrNotAuthenticated = errors.New("invalid username or password")

// CredentialStore holds the staff accounts loaded once at startup and a
// per-user counter of consecutive failed logins.
type CredentialStore struct {
	auditLog       *audit.Logger
	mu             sync.Mutex
	credentials    map[string]models.Credential
	failedAttempts map[string]int
}

// NewCredentialStore loads the credentials file. A missing file means zero
// registered users, with a startup warning rather than a fatal error.
func NewCredentialStore(path string, auditLog *audit.Logger) *CredentialStore {
	rows := storage.Load(path)
	credentials := make(map[string]models.Credential, len(rows))
	for _, row := range rows {
		credentials[row["username"]] = models.Credential{
			Username: row["username"],
			Password: row["password"],
			Role:     row["role"],
		}
	}
	return &CredentialStore{
		auditLog:       auditLog,
		credentials:    credentials,
		failedAttempts: make(map[string]int),
	}
}

// Authenticate checks username and password against the credential file
// with a case-sensitive exact comparison. Failed attempts are counted per
// user, and a success clears that user's count, but the count never denies
// access: lockout is deliberately not enforced here.
func (s *CredentialStore) Authenticate(username, password string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.credentials[username]
	if !ok {
		s.record(username, "unknown", "Failed login (user not found)")
		return nil, ErrNotAuthenticated
	}
	if cred.Password != password {
		s.failedAttempts[username]++
		s.record(username, cred.Role, "Failed login (incorrect password)")
		return nil, ErrNotAuthenticated
	}

	delete(s.failedAttempts, username)
	s.record(username, cred.Role, "Successful login")
	return &models.Session{
		Username:  username,
		Role:      cred.Role,
		LoginTime: time.Now(),
	}, nil
}

// FailedAttempts reports the consecutive failed logins recorded for the
// user since their last success.
func (s *CredentialStore) FailedAttempts(username string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.failedAttempts[username]
}

func (s *CredentialStore) record(username, role, action string) {
	if err := s.auditLog.Record(username, role, action); err != nil {
		log.Printf("failed to write audit entry: %v", err)
	}
}
