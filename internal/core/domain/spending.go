package domain

import "strconv"

// UncategorizedLabel is the sentinel bucket for payments without a category
// name. The backend serves its own label for listed rows; this one only
// covers rows where that field came back empty.
const UncategorizedLabel = "Sem Categoria"

// CategorySpend is one (label, sum) group of the dashboard reduction.
type CategorySpend struct {
	Label string
	Total float64
}

// SpendSummary is the dashboard aggregation result. Groups keep first-seen
// order so the chart legend is stable across renders of the same data.
type SpendSummary struct {
	Groups []CategorySpend
	Total  float64
}

// Percent returns the share of the grand total held by group i, or 0 when
// there is nothing to display.
func (s SpendSummary) Percent(i int) float64 {
	if s.Total == 0 {
		return 0
	}
	return s.Groups[i].Total / s.Total * 100
}

// Empty reports whether there is any settled spending to display.
func (s SpendSummary) Empty() bool {
	return s.Total == 0
}

// SpendingByCategory reduces the currently loaded payment collection to
// settled spend per category. It is a pure function recomputed on every
// render, never cached across fetches. Non-numeric amounts are skipped
// rather than propagated as errors.
func SpendingByCategory(payments []Payment) SpendSummary {
	index := make(map[string]int)
	var summary SpendSummary

	for _, p := range payments {
		if p.DisplayStatus != StatusSettled {
			continue
		}
		amount, err := strconv.ParseFloat(p.Amount, 64)
		if err != nil {
			continue
		}

		label := p.CategoryName
		if label == "" {
			label = UncategorizedLabel
		}

		i, ok := index[label]
		if !ok {
			i = len(summary.Groups)
			index[label] = i
			summary.Groups = append(summary.Groups, CategorySpend{Label: label})
		}
		summary.Groups[i].Total += amount
		summary.Total += amount
	}

	return summary
}
