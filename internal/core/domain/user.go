package domain

// User models the authenticated actor as reported by the backend profile
// endpoint. ClientID is nil for accounts without an owned client (e.g. a
// bare superuser).
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Superuser bool   `json:"is_superuser"`
	ClientID  *int64 `json:"cliente_id"`
}

// Session is the process-wide client-side state. Token and ManagedClientID
// are the only two durably persisted entries; User lives in memory and may
// be nil even when a token exists (profile fetch in flight or failed).
type Session struct {
	Token           string
	ManagedClientID string
	User            *User
}

// Authenticated reports whether a bearer token is held. It says nothing
// about the token still being accepted by the backend.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Impersonating reports whether an admin is scoped to a managed client.
func (s Session) Impersonating() bool {
	return s.ManagedClientID != ""
}
