package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vrgreentek/greentek-site/internal/projects/catalog"
	"github.com/vrgreentek/greentek-site/internal/projects/domain"
	"github.com/vrgreentek/greentek-site/internal/projects/service"
	"github.com/vrgreentek/greentek-site/internal/web/components"
)

const (
	heroFallback    = "Compliance-ready execution with safety-first delivery and clean handover."
	summaryFallback = "Safety-first delivery with clean finishing, documentation and long-term reliability."
)

// ProjectMeta fills the document metadata for a project detail page.
func ProjectMeta(cfg components.PageConfig, p domain.Project) components.PageConfig {
	cfg.Title = p.Title + " | Projects"
	cfg.Description = p.Description()
	cfg.OGTitle = p.Title
	cfg.OGDescription = &p.Overview
	cfg.OGImage = p.Image
	return cfg
}

func ProjectDetail(cfg components.PageConfig, d *service.Detail) g.Node {
	p := d.Project
	tone := p.Type.Tone()
	accent := components.Accent(tone)

	return components.Layout(ProjectMeta(cfg, p),
		projectHero(p, accent),
		Section(
			Class("mx-auto grid max-w-7xl gap-10 px-4 py-16 lg:grid-cols-3"),
			Div(
				Class("lg:col-span-2"),
				H2(Class("text-2xl font-extrabold"), g.Text("Project Highlights")),
				Ul(Class("mt-5 flex flex-wrap gap-2"),
					g.Map(p.Points, func(pt string) g.Node { return Li(components.Pill(pt, tone)) }),
				),
				g.If(len(p.Deliverables) > 0, Div(
					Class("mt-10"),
					H3(Class("text-lg font-bold"), g.Text("Deliverables")),
					Ul(Class("mt-4 grid gap-2 sm:grid-cols-2"),
						g.Map(p.Deliverables, func(item string) g.Node {
							return Li(
								Class("flex items-center gap-2 text-sm text-slate-700"),
								Span(Class("h-2 w-2 rounded-full"), Style("background-color:"+accent)),
								g.Text(item),
							)
						}),
					),
				)),
				g.If(len(p.Gallery) > 0, Div(
					Class("mt-10"),
					H3(Class("text-lg font-bold"), g.Text("Gallery")),
					Div(Class("mt-4 grid gap-4 sm:grid-cols-2"),
						g.Map(p.Gallery, func(src string) g.Node {
							return Img(Src(src), Alt(p.Title+" image"), g.Attr("loading", "lazy"), Class("h-56 w-full rounded-2xl object-cover"))
						}),
					),
				)),
			),
			Aside(
				Class("space-y-6"),
				projectSummary(p, accent),
				similarProjects(p.Type, d.Similar),
			),
		),
	)
}

func projectHero(p domain.Project, accent string) g.Node {
	overview := p.Overview
	if overview == "" {
		overview = heroFallback
	}
	return Section(
		Class("relative isolate overflow-hidden"),
		Img(Src(p.Image), Alt(p.Title), Class("absolute inset-0 -z-10 h-full w-full object-cover")),
		Div(Class("absolute inset-0 -z-10 bg-gradient-to-t from-black/85 via-black/55 to-black/25")),
		Div(
			Class("mx-auto max-w-7xl px-4 pb-16 pt-32 text-white"),
			Div(
				Class("flex flex-wrap items-center gap-3"),
				Span(
					Class("rounded-full border border-white/35 px-3 py-1 text-xs font-semibold"),
					Style("background-color:"+accent),
					g.Text(p.BadgeLabel()),
				),
				Span(Class("text-sm text-white/85"), g.Text(p.Location)),
			),
			H1(Class("mt-4 max-w-4xl text-4xl font-extrabold tracking-tight sm:text-5xl"), g.Text(p.Title)),
			P(Class("mt-4 max-w-3xl text-lg text-white/85"), g.Text(overview)),
			Div(
				Class("mt-6 flex flex-wrap items-center gap-3"),
				A(Href("/projects"), Class("rounded-2xl border border-white/30 bg-white/10 px-4 py-2 text-sm font-semibold"), g.Text("← Back to Projects")),
				g.If(p.Scope != "", Span(Class("rounded-full border border-white/25 bg-white/10 px-3 py-1 text-xs font-semibold"), g.Text(p.Scope))),
			),
		),
	)
}

func projectSummary(p domain.Project, accent string) g.Node {
	overview := p.Overview
	if overview == "" {
		overview = summaryFallback
	}
	return Div(
		Class("rounded-3xl border border-black/10 bg-white p-6 shadow-sm"),
		P(Class("text-xs font-semibold uppercase tracking-widest"), Style("color:"+accent), g.Text("Quick Summary")),
		P(Class("mt-3 text-sm text-slate-700"), g.Text(overview)),
		g.If(len(p.Stats) > 0, Dl(
			Class("mt-5 grid grid-cols-2 gap-3"),
			g.Map(p.Stats, func(s domain.Stat) g.Node {
				return Div(
					Class("rounded-2xl bg-slate-50 p-3"),
					Dt(Class("text-xs text-slate-500"), g.Text(s.Label)),
					Dd(Class("text-sm font-bold"), g.Text(s.Value)),
				)
			}),
		)),
		Div(
			Class("mt-6 flex flex-col gap-2"),
			A(Href("/contact"), Class("rounded-2xl px-4 py-3 text-center text-sm font-semibold text-white"), Style("background-color:"+accent), g.Text("Request Consultation →")),
			A(Href("/projects"), Class("rounded-2xl border border-black/10 px-4 py-3 text-center text-sm font-semibold"), g.Text("View All Projects")),
		),
	)
}

func similarProjects(t domain.ProjectType, items []domain.Project) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Div(
		Class("rounded-3xl border border-black/10 bg-white p-6 shadow-sm"),
		Div(
			Class("flex items-center justify-between"),
			H3(Class("text-base font-bold"), g.Text("Similar Projects")),
			components.Pill(t.Label(), t.Tone()),
		),
		Ul(Class("mt-4 space-y-3"),
			g.Map(items, func(sp domain.Project) g.Node {
				return Li(A(
					Href(catalog.ProjectHref(sp)),
					Class("flex items-center gap-3 rounded-2xl p-2 hover:bg-slate-50"),
					Img(Src(sp.Image), Alt(sp.Title), g.Attr("loading", "lazy"), Class("h-16 w-20 rounded-xl object-cover")),
					Div(
						P(Class("text-sm font-semibold"), g.Text(sp.Title)),
						P(Class("text-xs text-slate-500"), g.Text(sp.Location)),
					),
				))
			}),
		),
	)
}
