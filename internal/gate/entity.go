package gate

import (
	"strings"

	"brandscope/internal/types"
	"brandscope/internal/ucr"
)

// Rule ids of the entity gate.
const (
	RuleCompetitorBrand  = "entity_competitor_brand"
	RuleIrrelevantEntity = "entity_irrelevant"
)

// builtinIrrelevant is the fixed list of generic entity tokens that are
// never a real opportunity when they co-occur with a domain term: sports
// teams, idioms, and other proper-noun noise observed in ranked keyword
// exports. Config may append to it but not remove from it.
var builtinIrrelevant = []string{
	"lakers", "yankees", "cowboys", "red sox", "chelsea fc",
	"lyrics", "cast", "actor", "actress", "movie", "netflix",
	"horoscope", "zodiac", "tattoo",
}

// entityGate disposes items that reference a competitor brand token or a
// generic irrelevant entity. Either check only fires in conjunction with a
// domain-relevant term, to avoid false positives on common words.
type entityGate struct {
	competitorTokens []string
	irrelevant       []string
	domainTerms      []string
}

// brandToken derives the comparable brand token from a competitor domain:
// scheme and www stripped, first label kept ("www.acme-corp.com" -> "acme-corp").
func brandToken(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	d = strings.TrimPrefix(d, "https://")
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	if i := strings.Index(d, "."); i >= 0 {
		d = d[:i]
	}
	return d
}

func newEntityGate(record *ucr.ContextRecord, extraIrrelevant []string) *entityGate {
	g := &entityGate{irrelevant: append(append([]string{}, builtinIrrelevant...), extraIrrelevant...)}
	if record == nil {
		return g
	}

	for _, c := range record.Competitors {
		if c.Status == ucr.ApprovalRejected {
			continue
		}
		if tok := brandToken(c.Domain); tok != "" {
			g.competitorTokens = append(g.competitorTokens, tok)
		}
	}

	// Domain-relevant terms come from the category fence and demand terms.
	if record.Category != nil {
		g.domainTerms = append(g.domainTerms, tokens(record.Category.Primary)...)
		g.domainTerms = append(g.domainTerms, record.Category.Included...)
	}
	if record.Demand != nil {
		g.domainTerms = append(g.domainTerms, record.Demand.CategoryTerms...)
		for _, theme := range record.Demand.Themes {
			g.domainTerms = append(g.domainTerms, theme.Terms...)
		}
	}
	return g
}

func (g *entityGate) hasDomainTerm(keyword string) bool {
	for _, term := range g.domainTerms {
		if containsPhrase(keyword, term) {
			return true
		}
	}
	return false
}

// check returns a hard trace entry when a competitor brand or irrelevant
// entity co-occurs with a domain term, otherwise an info entry.
func (g *entityGate) check(item types.CandidateItem) (types.TraceEntry, bool) {
	if !g.hasDomainTerm(item.Keyword) {
		return types.TraceEntry{
			RuleID:   RuleCompetitorBrand,
			Reason:   types.ReasonNoMatch,
			Severity: types.SeverityInfo,
			Evidence: "no domain term co-occurrence",
		}, false
	}

	for _, tok := range g.competitorTokens {
		if containsToken(item.Keyword, tok) {
			return types.TraceEntry{
				RuleID:   RuleCompetitorBrand,
				Section:  string(ucr.SectionCompetitors),
				Reason:   types.ReasonCompetitorBrand,
				Severity: types.SeverityHard,
				Evidence: tok,
			}, true
		}
	}
	for _, ent := range g.irrelevant {
		if containsPhrase(item.Keyword, ent) {
			return types.TraceEntry{
				RuleID:   RuleIrrelevantEntity,
				Reason:   types.ReasonIrrelevantEntity,
				Severity: types.SeverityHard,
				Evidence: ent,
			}, true
		}
	}

	return types.TraceEntry{
		RuleID:   RuleCompetitorBrand,
		Reason:   types.ReasonNoMatch,
		Severity: types.SeverityInfo,
	}, false
}
