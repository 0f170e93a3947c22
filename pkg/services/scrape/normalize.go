package scrape

import (
	"math"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"github.com/fit-tools/energy-atlas/pkg/services/extract"
)

// Plausibility bounds for the balance-derived burn candidate: the balance
// magnitude must sit within this ratio band of the component total or it is
// discarded. Changing these constants is a behavior change.
const (
	balanceRatioMin = 0.7
	balanceRatioMax = 1.8
)

// NormalizedDay is a scraped entry after component totals and burn-candidate
// resolution. ResolvedBurnedSource is empty when no candidate was usable.
type NormalizedDay struct {
	Date                 string
	Components           domain.ExpenditureComponents
	Direct               *domain.DirectExpenditureSignal
	EnergyBalance        *float64
	ResolvedBurnedTotal  float64
	ResolvedBurnedRaw    float64
	ResolvedBurnedSource domain.BurnedSource
}

type burnCandidate struct {
	value  float64
	raw    float64
	source domain.BurnedSource
}

// Normalize computes component totals for a scraped entry and resolves its
// burned-calorie figure. Three candidates compete: the scraped total, the
// balance magnitude (only when its sign indicates net burn and it is within
// the plausibility band of the component total), and the component total
// with baseline. The numerically largest positive candidate wins: a
// heuristic favoring the most complete-looking figure, not a logical
// derivation.
func Normalize(e domain.ScrapedEntry) NormalizedDay {
	day := NormalizedDay{
		Date: e.Date,
		Components: extract.ComponentsFromValues(map[string]*float64{
			domain.ComponentBasalRate:       e.BMR,
			domain.ComponentThermicEffect:   e.TEF,
			domain.ComponentExercise:        e.Exercise,
			domain.ComponentTrackerActivity: e.TrackerActivity,
			domain.ComponentBaseline:        e.Baseline,
		}),
		EnergyBalance: e.EnergyBalance,
	}

	var candidates []burnCandidate

	if e.EnergyBurned != nil && math.Abs(*e.EnergyBurned) > 0 {
		day.Direct = &domain.DirectExpenditureSignal{
			TotalBurned: math.Abs(*e.EnergyBurned),
			RawTotal:    *e.EnergyBurned,
		}
		candidates = append(candidates, burnCandidate{
			value:  day.Direct.TotalBurned,
			raw:    day.Direct.RawTotal,
			source: domain.BurnedSourceScrapeEnergyTotal,
		})
	}

	if c := balanceCandidate(e.EnergyBalance, day.Components.TotalWithBaseline); c != nil {
		candidates = append(candidates, *c)
	}

	if total := day.Components.TotalWithBaseline; total > 0 {
		source := domain.BurnedSourceScrapePartial
		if day.Components.HasAllCore {
			source = domain.BurnedSourceScrapeComplete
		}
		candidates = append(candidates, burnCandidate{value: total, raw: total, source: source})
	}

	for _, c := range candidates {
		if c.value > day.ResolvedBurnedTotal {
			day.ResolvedBurnedTotal = c.value
			day.ResolvedBurnedRaw = c.raw
			day.ResolvedBurnedSource = c.source
		}
	}
	return day
}

// balanceCandidate admits the scraped balance figure as a burn estimate only
// when its sign indicates burn exceeding intake and its magnitude is within
// the plausibility band of the component total. Without a component total
// there is nothing to validate against, so the figure is discarded.
func balanceCandidate(balance *float64, componentTotal float64) *burnCandidate {
	if balance == nil || *balance >= 0 || componentTotal <= 0 {
		return nil
	}
	mag := math.Abs(*balance)
	ratio := mag / componentTotal
	if ratio < balanceRatioMin || ratio > balanceRatioMax {
		return nil
	}
	return &burnCandidate{
		value:  mag,
		raw:    *balance,
		source: domain.BurnedSourceScrapeBalance,
	}
}
