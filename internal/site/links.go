package site

import (
	"net/url"
	"strings"
	"unicode"
)

// LinkKind identifies an outbound contact link.
type LinkKind string

const (
	LinkEmail    LinkKind = "email"
	LinkPhone    LinkKind = "phone"
	LinkWhatsApp LinkKind = "whatsapp"
	LinkMap      LinkKind = "map"
)

// Link is a static outbound link shown in the contact area and footer.
type Link struct {
	Kind  LinkKind
	Label string
	URL   string
}

const mapsSearchURL = "https://www.google.com/maps/search/?api=1&query="

// Links derives the outbound links from the contact info. Links whose source
// value is empty are omitted.
func (c ContactInfo) Links() []Link {
	links := make([]Link, 0, 4)
	if email := strings.TrimSpace(c.Email); email != "" {
		links = append(links, Link{Kind: LinkEmail, Label: "Email Us", URL: "mailto:" + email})
	}
	if phone := strings.TrimSpace(c.Phone); phone != "" {
		links = append(links, Link{Kind: LinkPhone, Label: "Call Us", URL: "tel:" + strings.ReplaceAll(phone, " ", "")})
	}
	if digits := digitsOnly(c.WhatsApp); digits != "" {
		links = append(links, Link{Kind: LinkWhatsApp, Label: "WhatsApp", URL: "https://wa.me/" + digits})
	}
	if loc := strings.TrimSpace(c.Location); loc != "" {
		links = append(links, Link{Kind: LinkMap, Label: "Location", URL: mapsSearchURL + url.QueryEscape(loc)})
	}
	return links
}

// Link returns the link of the given kind.
func (c ContactInfo) Link(kind LinkKind) (Link, bool) {
	for _, l := range c.Links() {
		if l.Kind == kind {
			return l, true
		}
	}
	return Link{}, false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
