package domain

import "slices"

// ProjectType partitions the catalog into the two display tracks.
type ProjectType string

const (
	TypeGreenEnergy ProjectType = "green-energy"
	TypeElectrical  ProjectType = "electrical"
)

// Types lists the tracks in display order.
var Types = []ProjectType{TypeGreenEnergy, TypeElectrical}

// ParseType validates a route segment or query value against the track enum.
func ParseType(s string) (ProjectType, bool) {
	switch ProjectType(s) {
	case TypeGreenEnergy:
		return TypeGreenEnergy, true
	case TypeElectrical:
		return TypeElectrical, true
	}
	return "", false
}

func (t ProjectType) Valid() bool {
	_, ok := ParseType(string(t))
	return ok
}

// Label is the human readable track name used on badges and section headers.
func (t ProjectType) Label() string {
	if t == TypeElectrical {
		return "Electrical"
	}
	return "Green Energy"
}

// Tone selects the colour scheme: electrical pages render blue, everything else green.
func (t ProjectType) Tone() string {
	if t == TypeElectrical {
		return "blue"
	}
	return "green"
}

// Stat is one label/value pair shown in the project summary card.
type Stat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// Project describes one completed engagement in the portfolio.
// Optional string fields are empty when absent.
type Project struct {
	Type     ProjectType `json:"type" yaml:"type"`
	Slug     string      `json:"slug" yaml:"slug"`
	Title    string      `json:"title" yaml:"title"`
	Location string      `json:"location" yaml:"location"`
	Image    string      `json:"image" yaml:"image"`
	Tag      string      `json:"tag,omitempty" yaml:"tag"`
	Scope    string      `json:"scope,omitempty" yaml:"scope"`
	Points   []string    `json:"points" yaml:"points"`

	Overview     string   `json:"overview,omitempty" yaml:"overview"`
	Deliverables []string `json:"deliverables,omitempty" yaml:"deliverables"`
	Stats        []Stat   `json:"stats,omitempty" yaml:"stats"`
	Gallery      []string `json:"gallery,omitempty" yaml:"gallery"`
}

// Key identifies a project within the catalog.
type Key struct {
	Type ProjectType `json:"type"`
	Slug string      `json:"slug"`
}

func (p Project) Key() Key {
	return Key{Type: p.Type, Slug: p.Slug}
}

// Clone returns a copy that shares no slices with p.
func (p Project) Clone() Project {
	p.Points = slices.Clone(p.Points)
	p.Deliverables = slices.Clone(p.Deliverables)
	p.Stats = slices.Clone(p.Stats)
	p.Gallery = slices.Clone(p.Gallery)
	return p
}

// Description returns the overview, falling back to the first highlight.
func (p Project) Description() string {
	if p.Overview != "" {
		return p.Overview
	}
	if len(p.Points) > 0 {
		return p.Points[0]
	}
	return "Project details"
}

// BadgeLabel is the hero badge text: the tag, or the track label when untagged.
func (p Project) BadgeLabel() string {
	if p.Tag != "" {
		return p.Tag
	}
	return p.Type.Label()
}
