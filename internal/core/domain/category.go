package domain

// Category labels payments. Deleting one never cascades: payments that
// referenced it simply lose the association, and the backend renders them
// uncategorised on the next fetch.
type Category struct {
	ID          int64
	Name        string
	Description string
}

// ManagedClient is a client account visible to superusers for impersonation.
type ManagedClient struct {
	ID          int64
	CompanyName string
}
