package components

import (
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/vrgreentek/greentek-site/internal/content"
	"github.com/vrgreentek/greentek-site/internal/projects/domain"
)

const (
	electricalBlue = "#0365d0"
	greenAccent    = "#047857"
)

// Accent is the primary colour for a tone.
func Accent(tone string) string {
	if tone == "blue" {
		return electricalBlue
	}
	return greenAccent
}

func Kicker(text string) g.Node {
	if text == "" {
		return nil
	}
	return Div(
		Class("inline-flex items-center gap-3"),
		Span(Class("h-px w-10 bg-black/15")),
		Span(Class("text-xs font-semibold uppercase tracking-widest text-black/55"), g.Text(text)),
	)
}

// Heading renders kicker, title with optional highlight, subtitle and body copy.
func Heading(sec content.Section, tone string) g.Node {
	return Div(
		Class("max-w-3xl"),
		Kicker(sec.Kicker),
		H2(
			Class("mt-4 text-3xl font-extrabold tracking-tight sm:text-4xl"),
			g.Text(sec.Title),
			g.If(sec.Highlight != "", g.Group{
				g.Text(" "),
				Span(Style("color:"+Accent(tone)), g.Text(sec.Highlight)),
			}),
		),
		g.If(sec.Subtitle != "", P(Class("mt-3 text-lg text-slate-600"), g.Text(sec.Subtitle))),
		g.Map(sec.Body, func(p string) g.Node {
			return P(Class("mt-4 text-base leading-relaxed text-slate-600"), g.Text(p))
		}),
	)
}

// Block is a padded page section with an optional anchor id.
func Block(id string, children ...g.Node) g.Node {
	return Section(
		g.If(id != "", ID(id)),
		Class("mx-auto max-w-7xl px-4 py-16 sm:py-20"),
		g.Group(children),
	)
}

// CardGrid lays out cards with cols columns on large screens.
func CardGrid(items []content.Card, cols int, tone string) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Div(
		c.Classes{
			"mt-10 grid gap-6 sm:grid-cols-2": true,
			"lg:grid-cols-3":                  cols == 3,
			"lg:grid-cols-4":                  cols == 4,
			"lg:grid-cols-5":                  cols == 5,
		},
		g.Map(items, func(it content.Card) g.Node { return CardTile(it, tone) }),
	)
}

func CardTile(it content.Card, tone string) g.Node {
	body := []g.Node{
		g.If(it.Image != "", Img(Src(it.Image), Alt(it.Title), g.Attr("loading", "lazy"), Class("mb-4 h-44 w-full rounded-2xl object-cover"))),
		g.If(it.Tag != "", Pill(it.Tag, tone)),
		H3(Class("mt-3 text-base font-extrabold tracking-tight"), g.Text(it.Title)),
		g.If(it.Subtitle != "", P(Class("mt-1 text-sm font-medium text-slate-500"), g.Text(it.Subtitle))),
		g.If(it.Desc != "", P(Class("mt-2 text-sm text-slate-600"), g.Text(it.Desc))),
		g.If(len(it.Points) > 0, Ul(Class("mt-3 space-y-1 text-sm text-slate-600"),
			g.Map(it.Points, func(p string) g.Node { return Li(g.Text("✓ " + p)) }),
		)),
	}
	cls := Class("group block h-full rounded-3xl border border-black/10 bg-white p-5 shadow-sm transition hover:-translate-y-1 hover:shadow-md")
	if it.Href != "" && !strings.HasPrefix(it.Href, "#") {
		return A(Href(it.Href), cls, g.Group(body))
	}
	return Article(cls, g.Group(body))
}

func Pill(text, tone string) g.Node {
	return Span(
		c.Classes{
			"inline-flex items-center rounded-full border px-3 py-1 text-xs font-semibold": true,
			"border-sky-200 bg-sky-50 text-sky-900":                                        tone == "blue",
			"border-emerald-200 bg-emerald-50 text-emerald-900":                            tone != "blue",
		},
		g.Text(text),
	)
}

func Pills(items []string, tone string) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Div(Class("mt-6 flex flex-wrap gap-2"),
		g.Map(items, func(s string) g.Node { return Pill(s, tone) }),
	)
}

func StatGrid(stats []content.Stat) g.Node {
	if len(stats) == 0 {
		return nil
	}
	return Dl(
		Class("mt-8 grid gap-4 sm:grid-cols-2 lg:grid-cols-4"),
		g.Map(stats, func(s content.Stat) g.Node {
			return Div(
				Class("rounded-2xl border border-black/10 bg-white p-4"),
				Dt(Class("text-2xl font-extrabold"), g.Text(s.Value)),
				Dd(Class("mt-1 text-sm font-semibold text-slate-700"), g.Text(s.Title)),
				g.If(s.Desc != "", Dd(Class("mt-1 text-xs text-slate-500"), g.Text(s.Desc))),
			)
		}),
	)
}

// Buttons renders call-to-action links; the first is the primary button.
func Buttons(links []content.Link, tone string) g.Node {
	if len(links) == 0 {
		return nil
	}
	nodes := make([]g.Node, 0, len(links))
	for i, l := range links {
		if i == 0 {
			nodes = append(nodes, A(Href(l.Href),
				Class("inline-flex items-center gap-2 rounded-2xl px-5 py-3 text-sm font-semibold text-white shadow-sm"),
				Style("background-color:"+Accent(tone)),
				g.Text(l.Label)))
			continue
		}
		nodes = append(nodes, A(Href(l.Href),
			Class("inline-flex items-center gap-2 rounded-2xl border border-black/10 bg-white px-5 py-3 text-sm font-semibold text-slate-800 hover:bg-slate-50"),
			g.Text(l.Label)))
	}
	return Div(Class("mt-8 flex flex-wrap gap-3"), g.Group(nodes))
}

// Banner is a full-width hero with a background image.
func Banner(sec content.Section, extra ...g.Node) g.Node {
	return Section(
		Class("relative isolate overflow-hidden"),
		g.If(sec.Image != "", Img(Src(sec.Image), Alt(sec.Title), Class("absolute inset-0 -z-10 h-full w-full object-cover"))),
		Div(Class("absolute inset-0 -z-10 bg-gradient-to-t from-black/80 via-black/50 to-black/20")),
		Div(
			Class("mx-auto max-w-7xl px-4 pb-20 pt-32 text-white"),
			g.If(sec.Kicker != "", P(Class("text-xs font-semibold uppercase tracking-widest text-emerald-300"), g.Text(sec.Kicker))),
			H1(
				Class("mt-4 max-w-3xl text-4xl font-extrabold tracking-tight sm:text-5xl"),
				g.Text(sec.Title),
				g.If(sec.Highlight != "", g.Group{Br(), Span(Class("text-emerald-300"), g.Text(sec.Highlight))}),
			),
			g.If(sec.Subtitle != "", P(Class("mt-4 max-w-2xl text-lg text-white/85"), g.Text(sec.Subtitle))),
			g.If(sec.Note != "", P(Class("mt-3 text-sm text-white/70"), g.Text(sec.Note))),
			Buttons(sec.CTAs, "green"),
			g.Group(extra),
		),
	)
}

// TrackTabs links each track through the ?track= query, keeping the anchor.
func TrackTabs(path, anchor string, active domain.ProjectType) g.Node {
	return Div(
		Class("mt-8 inline-flex gap-2 rounded-2xl border border-black/10 bg-white p-1"),
		g.Attr("role", "tablist"),
		g.Map(domain.Types, func(t domain.ProjectType) g.Node {
			on := t == active
			href := path + "?track=" + string(t)
			if anchor != "" {
				href += "#" + anchor
			}
			return A(
				Href(href),
				g.Attr("role", "tab"),
				Aria("selected", boolString(on)),
				c.Classes{
					"rounded-xl px-5 py-2 text-sm font-semibold transition": true,
					"text-white":                                            on,
					"text-slate-700 hover:bg-slate-50":                      !on,
				},
				g.If(on, Style("background-color:"+Accent(t.Tone()))),
				g.Text(t.Label()),
			)
		}),
	)
}

// ProjectCard links a catalog record to its detail page.
func ProjectCard(p domain.Project, href string) g.Node {
	tone := p.Type.Tone()
	return A(
		Href(href),
		Class("group block overflow-hidden rounded-3xl border border-black/10 bg-white shadow-sm transition hover:-translate-y-1 hover:shadow-md"),
		Div(
			Class("relative h-52 overflow-hidden"),
			Img(Src(p.Image), Alt(p.Title), g.Attr("loading", "lazy"), Class("h-full w-full object-cover transition duration-500 group-hover:scale-105")),
			Span(
				Class("absolute left-4 top-4 rounded-full border border-white/50 px-3 py-1 text-xs font-semibold text-white"),
				Style("background-color:"+Accent(tone)),
				g.Text(p.BadgeLabel()),
			),
		),
		Div(
			Class("p-5"),
			H3(Class("text-base font-extrabold tracking-tight"), g.Text(p.Title)),
			P(Class("mt-1 text-sm text-slate-500"), g.Text(p.Location)),
			g.If(p.Scope != "", P(Class("mt-2 text-xs font-semibold text-slate-600"), g.Text(p.Scope))),
			Ul(Class("mt-3 flex flex-wrap gap-1.5"),
				g.Map(p.Points, func(pt string) g.Node { return Li(Pill(pt, tone)) }),
			),
		),
	)
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
