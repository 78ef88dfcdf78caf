package content

import "github.com/vrgreentek/greentek-site/internal/projects/domain"

// TrackOrDefault parses a ?track= value, falling back to green energy.
func TrackOrDefault(raw string) domain.ProjectType {
	if t, ok := domain.ParseType(raw); ok {
		return t
	}
	return domain.TypeGreenEnergy
}

func (h Home) MiniAboutFor(t domain.ProjectType) Section {
	return h.MiniAbout[t]
}

// ServicesFor filters the services carousel by track.
func (h Home) ServicesFor(t domain.ProjectType) []Card {
	return cardsFor(h.Services.Items, t)
}

func (h Home) ClientsFor(t domain.ProjectType) []Logo {
	out := make([]Logo, 0, len(h.ClientLogos))
	for _, l := range h.ClientLogos {
		if l.Track == t {
			out = append(out, l)
		}
	}
	return out
}

func (a About) WhatWeDoFor(t domain.ProjectType) Section {
	return a.WhatWeDo[t]
}

func (p Projects) Track(t domain.ProjectType) TrackSection {
	return p.Tracks[t]
}

func cardsFor(items []Card, t domain.ProjectType) []Card {
	out := make([]Card, 0, len(items))
	for _, c := range items {
		if c.Track == t {
			out = append(out, c)
		}
	}
	return out
}
