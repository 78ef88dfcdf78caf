package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vrgreentek/greentek-site/internal/content"
	"github.com/vrgreentek/greentek-site/internal/projects/catalog"
	"github.com/vrgreentek/greentek-site/internal/projects/domain"
	"github.com/vrgreentek/greentek-site/internal/web/components"
)

// TrackListing is one track section on the projects index.
type TrackListing struct {
	Type     domain.ProjectType
	Count    int
	Featured []domain.Project
}

func Projects(cfg components.PageConfig, tracks []TrackListing) g.Node {
	p := siteOf(cfg).Projects
	nodes := make([]g.Node, 0, len(tracks)+2)
	nodes = append(nodes, components.Banner(p.Hero))
	for _, t := range tracks {
		nodes = append(nodes, trackSection(p.Track(t.Type), t))
	}
	nodes = append(nodes, projectsCTA(p.CTA))
	return components.Layout(cfg, nodes...)
}

func trackSection(sec content.TrackSection, t TrackListing) g.Node {
	tone := t.Type.Tone()
	return Section(
		ID(string(t.Type)),
		Class("border-t border-black/5"),
		Div(
			Class("mx-auto max-w-7xl px-4 py-16"),
			Div(
				Class("flex flex-wrap items-end justify-between gap-6"),
				components.Heading(sec.Section, tone),
				Span(
					Class("rounded-full px-4 py-1.5 text-sm font-semibold text-white"),
					Style("background-color:"+components.Accent(tone)),
					g.Text(strconv.Itoa(t.Count)+" projects"),
				),
			),
			Div(
				Class("mt-6"),
				P(Class("text-xs font-semibold uppercase tracking-widest text-slate-500"), g.Text("Capabilities")),
				components.Pills(sec.Highlights, tone),
			),
			Div(
				Class("mt-10 grid gap-6 sm:grid-cols-2 lg:grid-cols-3"),
				g.Map(t.Featured, func(p domain.Project) g.Node {
					return components.ProjectCard(p, catalog.ProjectHref(p))
				}),
			),
		),
	)
}

func projectsCTA(sec content.Section) g.Node {
	if sec.Title == "" {
		return nil
	}
	return components.Block("",
		Div(
			Class("rounded-3xl bg-slate-950 p-10 text-white"),
			H2(Class("text-2xl font-extrabold"), g.Text(sec.Title)),
			P(Class("mt-2 text-white/75"), g.Text(sec.Subtitle)),
			components.Buttons(sec.CTAs, "green"),
		),
	)
}
