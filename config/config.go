package config

// AppConfig holds the application configuration
type AppConfig struct {
	ListenAddr      string
	BearerToken     string
	CredentialsFile string
	PatientDataFile string
	NotesFile       string
	AuditLogFile    string
	VisitStatsFile  string
}

// GetBearerToken returns the BearerToken from the config
func (c *AppConfig) GetBearerToken() string {
	return c.BearerToken
}
