package models

// Page is a named collection of character records sharing one template.
// It is persisted as a single JSON document.
type Page struct {
	// ID is a timestamp-derived integer unique across all pages; it names
	// the page's backing document.
	ID int64 `json:"id"`

	// Name is the user-editable display name. Not required to be unique.
	Name string `json:"name"`

	// Characters in display order. New records are prepended.
	Characters []*Character `json:"characters"`

	// Template defines the record shape. May be absent in old documents;
	// use Schema to read it.
	Template *Template `json:"template,omitempty"`
}

// Schema returns the page's template, lazily installing the default one on
// first access so callers never see a nil template.
func (p *Page) Schema() *Template {
	if p.Template == nil {
		p.Template = DefaultTemplate()
	}
	return p.Template
}

// FindCharacter returns the record with the given id, or nil.
func (p *Page) FindCharacter(id int64) *Character {
	for _, c := range p.Characters {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// PageSummary is the lightweight page listing used by the tab bar.
type PageSummary struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	CharacterCount int    `json:"characterCount"`
	Active         bool   `json:"active"`
}
