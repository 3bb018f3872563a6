package ucr

// Section identifies one of the eight context record sections.
type Section string

const (
	SectionBrand         Section = "A"
	SectionCategory      Section = "B"
	SectionCompetitors   Section = "C"
	SectionDemand        Section = "D"
	SectionStrategy      Section = "E"
	SectionChannels      Section = "F"
	SectionNegativeScope Section = "G"
	SectionGovernance    Section = "H"
)

// AllSections in canonical A-H order.
var AllSections = []Section{
	SectionBrand, SectionCategory, SectionCompetitors, SectionDemand,
	SectionStrategy, SectionChannels, SectionNegativeScope, SectionGovernance,
}

// sectionRoles maps each section to the human-readable role it plays,
// used when reporting missing sections back to the caller.
var sectionRoles = map[Section]string{
	SectionBrand:         "brand identity (domain, name, industry)",
	SectionCategory:      "category definition (semantic fence)",
	SectionCompetitors:   "competitive set (at least one competitor)",
	SectionDemand:        "demand definition (brand or category terms)",
	SectionStrategy:      "strategic intent (growth priority)",
	SectionChannels:      "channel context",
	SectionNegativeScope: "negative scope (at least one exclusion)",
	SectionGovernance:    "governance (capability model or thresholds)",
}

// Role returns the human-readable role of a section.
func (s Section) Role() string {
	if r, ok := sectionRoles[s]; ok {
		return r
	}
	return "unknown section"
}

// SectionSet is a membership set over sections.
type SectionSet map[Section]bool

// NewSectionSet builds a set from the given sections.
func NewSectionSet(sections ...Section) SectionSet {
	set := make(SectionSet, len(sections))
	for _, s := range sections {
		set[s] = true
	}
	return set
}

// Has reports membership.
func (ss SectionSet) Has(s Section) bool { return ss[s] }

// Sorted returns the members in canonical A-H order.
func (ss SectionSet) Sorted() []Section {
	out := make([]Section, 0, len(ss))
	for _, s := range AllSections {
		if ss[s] {
			out = append(out, s)
		}
	}
	return out
}

// available reports whether a section's minimum required fields are
// non-empty. Each predicate is total: a nil sub-record means unavailable,
// never an error.
func available(r *ContextRecord, s Section) bool {
	if r == nil {
		return false
	}
	switch s {
	case SectionBrand:
		return r.Brand != nil && r.Brand.Domain != ""
	case SectionCategory:
		return r.Category != nil && r.Category.Primary != ""
	case SectionCompetitors:
		return len(r.Competitors) > 0
	case SectionDemand:
		return r.Demand != nil && (len(r.Demand.BrandTerms) > 0 || len(r.Demand.CategoryTerms) > 0)
	case SectionStrategy:
		return r.Strategy != nil && r.Strategy.GrowthPriority != ""
	case SectionChannels:
		return r.Channels != nil &&
			(r.Channels.PaidMedia || r.Channels.SEOInvestment != "" || r.Channels.MarketplaceDependence != "")
	case SectionNegativeScope:
		return r.NegativeScope != nil && len(r.NegativeScope.AllExclusions()) > 0
	case SectionGovernance:
		return r.Governance != nil &&
			(r.Governance.CapabilityModel != nil || r.Governance.Thresholds != ScoringThresholds{})
	default:
		return false
	}
}

// AvailableSections evaluates every section predicate against the record.
// Deterministic and total: absence of a sub-record means "unavailable".
func AvailableSections(r *ContextRecord) SectionSet {
	set := make(SectionSet, len(AllSections))
	for _, s := range AllSections {
		if available(r, s) {
			set[s] = true
		}
	}
	return set
}
