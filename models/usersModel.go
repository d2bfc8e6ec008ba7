package models

import "time"

// Staff roles recognized by the front desk. An account with any other role
// string still authenticates but the front end shows it no menu.
const (
	RoleAdmin      = "admin"
	RoleManagement = "management"
	RoleNurse      = "nurse"
	RoleClinician  = "clinician"
)

// KnownRoles lists every role the token middleware will accept.
var KnownRoles = []string{RoleAdmin, RoleManagement, RoleNurse, RoleClinician}

// Credential is one staff account from the credentials file. Passwords are
// stored and compared in plaintext; hardening them is out of scope.
type Credential struct {
	Username string `json:"username"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// Session is the authenticated identity returned by a successful login,
// used for audit attribution by everything downstream.
type Session struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"login_time"`
}
