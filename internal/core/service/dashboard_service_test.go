package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/alecrim/financeiro-cli/internal/core/domain"
	"github.com/alecrim/financeiro-cli/internal/core/ports"
)

func TestDashboardSummary_GroupsSettledSpend(t *testing.T) {
	gw := &stubPaymentGateway{page: &ports.PaymentPage{
		Results: []domain.Payment{
			{CategoryName: "Alimentação", Amount: "100", DisplayStatus: domain.StatusSettled},
			{CategoryName: "Alimentação", Amount: "50", DisplayStatus: domain.StatusPending},
			{CategoryName: "Transporte", Amount: "25", DisplayStatus: domain.StatusSettled},
		},
	}}
	svc := NewDashboardService(gw, zerolog.Nop())

	s, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Total != 125 {
		t.Fatalf("expected total 125, got %v", s.Total)
	}
	if len(s.Groups) != 2 || s.Groups[0].Total != 100 || s.Groups[1].Total != 25 {
		t.Fatalf("unexpected groups: %+v", s.Groups)
	}
}

func TestDashboardSummary_MissingResultsTreatedAsEmpty(t *testing.T) {
	gw := &stubPaymentGateway{page: &ports.PaymentPage{Results: nil}}
	svc := NewDashboardService(gw, zerolog.Nop())

	s, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("a malformed shape must not be a user-facing error: %v", err)
	}
	if !s.Empty() {
		t.Fatalf("expected empty summary, got %+v", s)
	}
}
