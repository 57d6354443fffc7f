package ports

import (
	"context"
	"time"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
)

// AuthService owns the session lifecycle. It is the single writer of the
// session store; every other component only reads through it.
type AuthService interface {
	// Login exchanges credentials for a token, stores it, then immediately
	// fetches the profile. On a rejected exchange no partial state is kept.
	Login(ctx context.Context, username, password string) (*domain.User, error)
	// FetchProfile retrieves identity for the stored token. Any failure
	// logs the session out as a side effect.
	FetchProfile(ctx context.Context) (*domain.User, error)
	Logout() error
	Session() domain.Session
	// TokenExpiry reports when the stored token expires, decoded from its
	// payload without verification. Zero when absent or undecodable. The
	// token stays opaque for all control flow; this is display-only.
	TokenExpiry() time.Time
}

// PaymentService is the list controller for payments. Mutations re-fetch
// the full list on success so server-computed fields stay authoritative.
type PaymentService interface {
	List(ctx context.Context, filter domain.PaymentFilter) (*PaymentPage, error)
	Create(ctx context.Context, in SavePaymentInput) (*domain.Payment, error)
	Update(ctx context.Context, id int64, in SavePaymentInput) (*domain.Payment, error)
	Delete(ctx context.Context, id int64) error
	// Current returns the last page applied by List. Stale responses that
	// lost the generation race never show up here.
	Current() *PaymentPage
}

// CategoryService is the list controller for categories.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, in SaveCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, id int64, in SaveCategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ClientService lists managed clients and toggles impersonation.
type ClientService interface {
	List(ctx context.Context) ([]domain.ManagedClient, error)
	Manage(id int64) error
	StopManaging() error
	ManagedClientID() string
}

// DashboardService derives the spend-by-category summary from a fresh
// payment fetch.
type DashboardService interface {
	Summary(ctx context.Context) (domain.SpendSummary, error)
}

// ExportResult reports where a downloaded report landed.
type ExportResult struct {
	Path string
	Size int
}

// ExportService downloads server-generated reports. Fire and forget: no
// retry, no partial-file handling.
type ExportService interface {
	// ExportFiltered saves the current filter set as pagamentos.<ext>.
	ExportFiltered(ctx context.Context, filter domain.PaymentFilter, format domain.ExportFormat) (*ExportResult, error)
	// ExportReport saves a date-range report as relatorio_pagamentos.<ext>.
	// Both dates are required before anything is dispatched.
	ExportReport(ctx context.Context, from, to string, format domain.ExportFormat) (*ExportResult, error)
}
