package page

import "github.com/seawavessolutions/seawaves-site/internal/site"

const (
	// ScrolledThreshold is the scroll offset past which the nav bar gets its
	// solid background and the back-to-top control appears.
	ScrolledThreshold = 50
	// SectionLookahead is added to the scroll offset when deciding which
	// section is in view.
	SectionLookahead = 150
)

// Geometry describes the scroll surface in layout pixels.
type Geometry struct {
	ScrollTop      int
	DocumentHeight int
	ViewportHeight int
	// Offsets maps section id to the section's top offset.
	Offsets map[string]int
}

// ScrollProgress returns how far through the scrollable range the viewport
// is, as a percentage clamped to [0, 100]. Documents no taller than the
// viewport report 0.
func ScrollProgress(g Geometry) float64 {
	denom := g.DocumentHeight - g.ViewportHeight
	if denom <= 0 {
		return 0
	}
	p := float64(g.ScrollTop) / float64(denom) * 100
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// DetectActive scans the registry from last to first and returns the first
// section whose top offset is at or above ScrollTop+SectionLookahead.
// Sections missing from the geometry are skipped. When nothing qualifies the
// first registered section is returned.
func DetectActive(reg site.Registry, g Geometry) string {
	limit := g.ScrollTop + SectionLookahead
	ids := reg.IDs()
	for i := len(ids) - 1; i >= 0; i-- {
		offset, ok := g.Offsets[ids[i]]
		if !ok {
			continue
		}
		if offset <= limit {
			return ids[i]
		}
	}
	return reg.First()
}
