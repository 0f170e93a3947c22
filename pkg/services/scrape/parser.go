package scrape

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fit-tools/energy-atlas/pkg/models/domain"
	"github.com/fit-tools/energy-atlas/pkg/services/extract"
)

const (
	// maxCandidateTextLen filters out DOM elements whose own text is too
	// long to plausibly be a labeled metric.
	maxCandidateTextLen = 400
	// blockTextLimit truncates the containing block's text before retrying
	// extraction on it.
	blockTextLimit = 1000
	// defaultWindow bounds the characters allowed between a label and its
	// number, in either direction.
	defaultWindow = 60
)

// Candidate is a DOM-like element as reported by the browser collaborator:
// its own text, its nearest block-level ancestor's text, and enough layout
// state to decide visibility.
type Candidate struct {
	Text      string
	BlockText string
	Width     float64
	Height    float64
	Hidden    bool
}

func (c Candidate) visible() bool {
	return !c.Hidden && c.Width > 0 && c.Height > 0
}

// number pattern tolerates thousands separators and unicode minus variants;
// a trailing kcal/calories unit is simply not captured.
var numberPattern = `([-−–—]?\d[\d,]*(?:\.\d+)?)`

// Matcher attempts to pull a number associated with a label out of text.
// Matchers are data: the parser runs an ordered list of them so synonym
// handling and window sizes stay testable per label set.
type Matcher func(text, label string) (float64, bool)

// NumberAfterLabel matches the first number appearing within window
// characters after the label, with no other digits in between.
func NumberAfterLabel(window int) Matcher {
	return func(text, label string) (float64, bool) {
		re, err := regexp.Compile(fmt.Sprintf(`(?is)%s[^0-9]{0,%d}?%s`,
			regexp.QuoteMeta(label), window, numberPattern))
		if err != nil {
			return 0, false
		}
		m := re.FindStringSubmatch(text)
		if m == nil {
			return 0, false
		}
		return extract.ParseNumber(m[1])
	}
}

// NumberBeforeLabel matches a number appearing within window characters
// before the label, with no other digits in between.
func NumberBeforeLabel(window int) Matcher {
	return func(text, label string) (float64, bool) {
		re, err := regexp.Compile(fmt.Sprintf(`(?is)%s[^0-9]{0,%d}?%s`,
			numberPattern, window, regexp.QuoteMeta(label)))
		if err != nil {
			return 0, false
		}
		m := re.FindStringSubmatch(text)
		if m == nil {
			return 0, false
		}
		return extract.ParseNumber(m[1])
	}
}

// Parser extracts labeled metrics from rendered page content. The direct
// full-text scan runs first; the DOM-candidate fallback narrows scope using
// structural locality when the global scan over- or under-matches.
type Parser struct {
	matchers []Matcher
}

func NewParser(matchers ...Matcher) *Parser {
	if len(matchers) == 0 {
		matchers = []Matcher{
			NumberAfterLabel(defaultWindow),
			NumberBeforeLabel(defaultWindow),
		}
	}
	return &Parser{matchers: matchers}
}

// ExtractMetric locates a number for any of the label synonyms, first in the
// full page text, then in visible short DOM candidates (own text, then the
// containing block's truncated text). Nil when nothing yields a number.
func (p *Parser) ExtractMetric(pageText string, candidates []Candidate, synonyms []string) *float64 {
	for _, syn := range synonyms {
		for _, match := range p.matchers {
			if v, ok := match(pageText, syn); ok {
				return &v
			}
		}
	}

	for _, c := range candidates {
		if !c.visible() || len(c.Text) > maxCandidateTextLen {
			continue
		}
		if !containsAnyFold(c.Text, synonyms) {
			continue
		}
		for _, syn := range synonyms {
			for _, match := range p.matchers {
				if v, ok := match(c.Text, syn); ok {
					return &v
				}
			}
		}
		block := c.BlockText
		if len(block) > blockTextLimit {
			block = block[:blockTextLimit]
		}
		for _, syn := range synonyms {
			for _, match := range p.matchers {
				if v, ok := match(block, syn); ok {
					return &v
				}
			}
		}
	}
	return nil
}

// MetricSynonyms maps each scraped metric to its page-label synonyms in
// priority order.
var MetricSynonyms = map[string][]string{
	domain.ComponentBasalRate:       {"Basal Metabolic Rate", "BMR", "Resting Metabolic Rate"},
	domain.ComponentThermicEffect:   {"Thermic Effect of Food", "TEF"},
	domain.ComponentExercise:        {"Exercise"},
	domain.ComponentTrackerActivity: {"Tracker Activity", "Activity"},
	domain.ComponentBaseline:        {"Baseline"},
	MetricEnergyBurned:              {"Energy Burned", "Total Burned", "Burned"},
	MetricEnergyBalance:             {"Energy Balance", "Net Energy", "Balance"},
}

const (
	MetricEnergyBurned  = "energy_burned"
	MetricEnergyBalance = "energy_balance"
)

// ExtractDay pulls the five components plus the total and balance figures
// for one date from a page render.
func (p *Parser) ExtractDay(date, pageText string, candidates []Candidate) domain.ScrapedEntry {
	metric := func(name string) *float64 {
		return p.ExtractMetric(pageText, candidates, MetricSynonyms[name])
	}
	return domain.ScrapedEntry{
		Date:            date,
		BMR:             metric(domain.ComponentBasalRate),
		TEF:             metric(domain.ComponentThermicEffect),
		Exercise:        metric(domain.ComponentExercise),
		TrackerActivity: metric(domain.ComponentTrackerActivity),
		Baseline:        metric(domain.ComponentBaseline),
		EnergyBurned:    metric(MetricEnergyBurned),
		EnergyBalance:   metric(MetricEnergyBalance),
	}
}

func containsAnyFold(text string, synonyms []string) bool {
	lower := strings.ToLower(text)
	for _, syn := range synonyms {
		if strings.Contains(lower, strings.ToLower(syn)) {
			return true
		}
	}
	return false
}
