package site

// Content is the copy and static configuration rendered by the page.
type Content struct {
	Brand        Brand        `yaml:"brand" koanf:"brand"`
	Hero         Hero         `yaml:"hero" koanf:"hero"`
	Sections     []Section    `yaml:"sections" koanf:"sections"`
	Capabilities []Capability `yaml:"capabilities" koanf:"capabilities"`
	FAQ          []FAQEntry   `yaml:"faq" koanf:"faq"`
	Popup        Popup        `yaml:"popup" koanf:"popup"`
	Contact      ContactInfo  `yaml:"contact" koanf:"contact"`
}

type Brand struct {
	Name    string `yaml:"name" koanf:"name"`
	Tagline string `yaml:"tagline" koanf:"tagline"`
}

type Hero struct {
	Headline  string `yaml:"headline" koanf:"headline"`
	Lede      string `yaml:"lede" koanf:"lede"`
	Primary   string `yaml:"primary" koanf:"primary"`
	Secondary string `yaml:"secondary" koanf:"secondary"`
}

// Section is one anchor-identified block of the page.
type Section struct {
	ID      string   `yaml:"id" koanf:"id"`
	Title   string   `yaml:"title" koanf:"title"`
	Nav     bool     `yaml:"nav" koanf:"nav"`
	Heading string   `yaml:"heading" koanf:"heading"`
	Body    string   `yaml:"body" koanf:"body"`
	Items   []string `yaml:"items" koanf:"items"`
}

// Capability is one selectable tab in the services panel.
type Capability struct {
	Title   string   `yaml:"title" koanf:"title"`
	Summary string   `yaml:"summary" koanf:"summary"`
	Details []string `yaml:"details" koanf:"details"`
}

type FAQEntry struct {
	Question string `yaml:"question" koanf:"question"`
	Answer   string `yaml:"answer" koanf:"answer"`
}

type Popup struct {
	Title  string `yaml:"title" koanf:"title"`
	Body   string `yaml:"body" koanf:"body"`
	Action string `yaml:"action" koanf:"action"`
	// Target is the section the popup's action navigates to.
	Target string `yaml:"target" koanf:"target"`
}

// ContactInfo feeds the outbound links. Phone keeps its leading '+', WhatsApp
// is the bare international number.
type ContactInfo struct {
	Email    string `yaml:"email" koanf:"email"`
	Phone    string `yaml:"phone" koanf:"phone"`
	WhatsApp string `yaml:"whatsapp" koanf:"whatsapp"`
	Location string `yaml:"location" koanf:"location"`
}

// Registry returns the ordered section registry for this content.
func (c Content) Registry() Registry {
	return NewRegistry(c.Sections)
}

// Section looks up a section by id.
func (c Content) Section(id string) (Section, bool) {
	for _, s := range c.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// ServiceNames lists capability titles, used as suggestions for the
// contact form's service field.
func (c Content) ServiceNames() []string {
	names := make([]string, 0, len(c.Capabilities))
	for _, capability := range c.Capabilities {
		names = append(names, capability.Title)
	}
	return names
}
