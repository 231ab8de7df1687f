package model

// Scope identifies who is acting and where.
type Scope struct {
	ConnectionID string
	UserID       string
	SessionID    string
}
