package site

// Known section identifiers in page order.
const (
	SectionHome       = "home"
	SectionAbout      = "about"
	SectionSpeed      = "speed"
	SectionServices   = "services"
	SectionInternship = "internship"
	SectionWhyUs      = "whyus"
	SectionPortfolio  = "portfolio"
	SectionQuality    = "quality"
	SectionFAQ        = "faq"
	SectionContact    = "contact"
)

var knownSections = map[string]struct{}{
	SectionHome:       {},
	SectionAbout:      {},
	SectionSpeed:      {},
	SectionServices:   {},
	SectionInternship: {},
	SectionWhyUs:      {},
	SectionPortfolio:  {},
	SectionQuality:    {},
	SectionFAQ:        {},
	SectionContact:    {},
}

// DefaultOrder is the canonical vertical order of the page.
var DefaultOrder = []string{
	SectionHome,
	SectionAbout,
	SectionSpeed,
	SectionServices,
	SectionInternship,
	SectionWhyUs,
	SectionPortfolio,
	SectionQuality,
	SectionFAQ,
	SectionContact,
}

// IsKnown reports whether id names one of the page's sections.
func IsKnown(id string) bool {
	_, ok := knownSections[id]
	return ok
}

// Registry is the ordered list of sections. The order must match the order
// the sections are rendered in; active-section detection depends on it.
type Registry struct {
	sections []Section
	index    map[string]int
}

// NewRegistry builds a registry preserving the order of sections.
func NewRegistry(sections []Section) Registry {
	r := Registry{
		sections: make([]Section, len(sections)),
		index:    make(map[string]int, len(sections)),
	}
	copy(r.sections, sections)
	for i, s := range r.sections {
		if _, dup := r.index[s.ID]; !dup {
			r.index[s.ID] = i
		}
	}
	return r
}

// Len returns the number of sections.
func (r Registry) Len() int { return len(r.sections) }

// IDs returns the section identifiers in order.
func (r Registry) IDs() []string {
	ids := make([]string, len(r.sections))
	for i, s := range r.sections {
		ids[i] = s.ID
	}
	return ids
}

// Sections returns a copy of the ordered sections.
func (r Registry) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// NavSections returns the sections shown in the navigation bar.
func (r Registry) NavSections() []Section {
	out := make([]Section, 0, len(r.sections))
	for _, s := range r.sections {
		if s.Nav {
			out = append(out, s)
		}
	}
	return out
}

// Has reports whether id is registered.
func (r Registry) Has(id string) bool {
	_, ok := r.index[id]
	return ok
}

// Index returns the position of id, or -1.
func (r Registry) Index(id string) int {
	if i, ok := r.index[id]; ok {
		return i
	}
	return -1
}

// First returns the first section id, or "" for an empty registry.
func (r Registry) First() string {
	if len(r.sections) == 0 {
		return ""
	}
	return r.sections[0].ID
}

// Title returns the display title for id, falling back to the id itself.
func (r Registry) Title(id string) string {
	if i, ok := r.index[id]; ok && r.sections[i].Title != "" {
		return r.sections[i].Title
	}
	return id
}
