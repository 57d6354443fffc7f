package domain

import (
	"math"
	"testing"
)

func TestSpendingByCategory_ExcludesUnsettled(t *testing.T) {
	payments := []Payment{
		{CategoryName: "A", Amount: "100", DisplayStatus: StatusSettled},
		{CategoryName: "A", Amount: "50", DisplayStatus: StatusPending},
		{CategoryName: "B", Amount: "25", DisplayStatus: StatusSettled},
	}

	s := SpendingByCategory(payments)

	if len(s.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(s.Groups))
	}
	if s.Groups[0].Label != "A" || s.Groups[0].Total != 100 {
		t.Fatalf("group A: got %+v", s.Groups[0])
	}
	if s.Groups[1].Label != "B" || s.Groups[1].Total != 25 {
		t.Fatalf("group B: got %+v", s.Groups[1])
	}
	if s.Total != 125 {
		t.Fatalf("expected total 125, got %v", s.Total)
	}
	if math.Abs(s.Percent(0)-80.0) > 1e-9 {
		t.Fatalf("expected A at 80%%, got %v", s.Percent(0))
	}
	if math.Abs(s.Percent(1)-20.0) > 1e-9 {
		t.Fatalf("expected B at 20%%, got %v", s.Percent(1))
	}
}

func TestSpendingByCategory_SkipsNonNumericAmounts(t *testing.T) {
	payments := []Payment{
		{CategoryName: "A", Amount: "abc", DisplayStatus: StatusSettled},
		{CategoryName: "A", Amount: "10.50", DisplayStatus: StatusSettled},
	}

	s := SpendingByCategory(payments)

	if s.Total != 10.50 {
		t.Fatalf("expected total 10.50, got %v", s.Total)
	}
	if len(s.Groups) != 1 || s.Groups[0].Total != 10.50 {
		t.Fatalf("unexpected groups: %+v", s.Groups)
	}
}

func TestSpendingByCategory_UncategorizedBucket(t *testing.T) {
	payments := []Payment{
		{CategoryName: "", Amount: "7", DisplayStatus: StatusSettled},
	}

	s := SpendingByCategory(payments)

	if len(s.Groups) != 1 || s.Groups[0].Label != UncategorizedLabel {
		t.Fatalf("expected %q bucket, got %+v", UncategorizedLabel, s.Groups)
	}
}

func TestSpendingByCategory_EmptyIsNotADivisionError(t *testing.T) {
	s := SpendingByCategory(nil)

	if !s.Empty() {
		t.Fatal("expected empty summary")
	}
	if got := s.Percent(0); got != 0 {
		t.Fatalf("percent on empty summary: got %v", got)
	}
}

func TestTotals_Balance(t *testing.T) {
	tt := Totals{Settled: 100, Pending: 30, Overdue: 20}
	if got := tt.Balance(); got != 50 {
		t.Fatalf("expected balance 50, got %v", got)
	}
}

func TestPayment_KindInferredFromDueDate(t *testing.T) {
	if got := (Payment{DueDate: "2025-02-01"}).Kind(); got != KindPayable {
		t.Fatalf("expected payable, got %s", got)
	}
	if got := (Payment{}).Kind(); got != KindSettledAtCapture {
		t.Fatalf("expected settled-at-capture, got %s", got)
	}
}
