package scrape

import (
	"testing"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func v(f float64) *float64 { return &f }

func completeEntry() domain.ScrapedEntry {
	// core components sum to 2000
	return domain.ScrapedEntry{
		Date:            "2025-07-01",
		BMR:             v(900),
		TEF:             v(200),
		Exercise:        v(500),
		TrackerActivity: v(400),
	}
}

func TestNormalize_DirectTotalWins(t *testing.T) {
	entry := completeEntry()
	entry.EnergyBurned = v(2600)

	day := Normalize(entry)

	assert.Equal(t, 2600.0, day.ResolvedBurnedTotal)
	assert.Equal(t, 2600.0, day.ResolvedBurnedRaw)
	assert.Equal(t, domain.BurnedSourceScrapeEnergyTotal, day.ResolvedBurnedSource)
}

func TestNormalize_ComponentTotalBeatsSmallerDirect(t *testing.T) {
	// largest plausible candidate wins: the documented heuristic, not a
	// guaranteed-correct rule
	entry := completeEntry()
	entry.EnergyBurned = v(500)

	day := Normalize(entry)

	assert.Equal(t, 2000.0, day.ResolvedBurnedTotal)
	assert.Equal(t, domain.BurnedSourceScrapeComplete, day.ResolvedBurnedSource)
}

func TestNormalize_BalanceCandidateWithinBand(t *testing.T) {
	entry := completeEntry()
	entry.EnergyBalance = v(-2500) // ratio 1.25 against the 2000 component total

	day := Normalize(entry)

	assert.Equal(t, 2500.0, day.ResolvedBurnedTotal)
	assert.Equal(t, -2500.0, day.ResolvedBurnedRaw)
	assert.Equal(t, domain.BurnedSourceScrapeBalance, day.ResolvedBurnedSource)
}

func TestNormalize_ImplausibleBalanceExcluded(t *testing.T) {
	entry := completeEntry()
	entry.EnergyBalance = v(-4500) // ratio 2.25 > 1.8

	day := Normalize(entry)

	assert.Equal(t, 2000.0, day.ResolvedBurnedTotal)
	assert.Equal(t, domain.BurnedSourceScrapeComplete, day.ResolvedBurnedSource)
}

func TestNormalize_BalanceBandEdges(t *testing.T) {
	tests := []struct {
		name     string
		balance  float64
		included bool
	}{
		{"below band", -1300, false}, // ratio 0.65
		{"lower edge", -1400, true},  // ratio 0.7
		{"upper edge", -3600, true},  // ratio 1.8
		{"above band", -3700, false}, // ratio 1.85
		{"surplus sign discarded", 2500, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := completeEntry()
			entry.EnergyBalance = v(tt.balance)

			day := Normalize(entry)
			if tt.included && -tt.balance > 2000 {
				assert.Equal(t, domain.BurnedSourceScrapeBalance, day.ResolvedBurnedSource)
			} else if !tt.included {
				assert.NotEqual(t, domain.BurnedSourceScrapeBalance, day.ResolvedBurnedSource)
			}
		})
	}
}

func TestNormalize_BalanceWithoutComponentsDiscarded(t *testing.T) {
	// nothing to validate the balance against
	day := Normalize(domain.ScrapedEntry{Date: "2025-07-01", EnergyBalance: v(-2500)})

	assert.Zero(t, day.ResolvedBurnedTotal)
	assert.Empty(t, string(day.ResolvedBurnedSource))
}

func TestNormalize_PartialComponents(t *testing.T) {
	day := Normalize(domain.ScrapedEntry{Date: "2025-07-01", Exercise: v(450)})

	assert.Equal(t, 450.0, day.ResolvedBurnedTotal)
	assert.Equal(t, domain.BurnedSourceScrapePartial, day.ResolvedBurnedSource)
	assert.Equal(t, []string{
		domain.ComponentBasalRate,
		domain.ComponentThermicEffect,
		domain.ComponentTrackerActivity,
	}, day.Components.Missing)
}

func TestNormalize_BaselineCountsTowardTotal(t *testing.T) {
	entry := completeEntry()
	entry.Baseline = v(150)

	day := Normalize(entry)

	assert.Equal(t, 2150.0, day.ResolvedBurnedTotal)
	assert.Equal(t, domain.BurnedSourceScrapeComplete, day.ResolvedBurnedSource)
}

func TestNormalize_EmptyEntry(t *testing.T) {
	day := Normalize(domain.ScrapedEntry{Date: "2025-07-01"})

	assert.Zero(t, day.ResolvedBurnedTotal)
	assert.Empty(t, string(day.ResolvedBurnedSource))
	assert.False(t, day.Components.HasAllCore)
}
