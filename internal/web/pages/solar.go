package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vrgreentek/greentek-site/internal/content"
	"github.com/vrgreentek/greentek-site/internal/web/components"
)

func Solar(cfg components.PageConfig) g.Node {
	s := siteOf(cfg).Solar
	return components.Layout(cfg,
		components.Banner(s.Hero),
		solarIntro(s.Intro),
		whatWeDeliver(s.Deliver),
		solarWhyUs(s.WhyUs),
	)
}

func solarIntro(sec content.Section) g.Node {
	return components.Block("introduction",
		Div(
			Class("grid items-center gap-10 lg:grid-cols-2"),
			Figure(
				Img(Src(sec.Image), Alt("Industrial rooftop solar installation"), Class("h-96 w-full rounded-3xl object-cover")),
				FigCaption(Class("mt-3 text-sm text-slate-500"), g.Text(sec.Note)),
			),
			Div(
				components.Heading(sec, "green"),
				components.Pills(sec.Highlights, "green"),
			),
		),
		components.CardGrid(sec.Items, 3, "green"),
	)
}

func whatWeDeliver(sec content.Section) g.Node {
	return components.Block("what-we-deliver",
		components.Heading(sec, "green"),
		Div(
			Class("mt-6 flex flex-wrap items-center gap-3 text-sm text-slate-600"),
			Span(Class("font-semibold"), g.Text("Delivery track · "+sec.Note)),
			components.Pills(sec.Highlights, "green"),
		),
		components.CardGrid(sec.Items, 4, "green"),
	)
}

func solarWhyUs(sec content.Section) g.Node {
	return components.Block("why-us",
		Div(
			Class("grid gap-10 lg:grid-cols-2"),
			Div(
				components.Heading(content.Section{Kicker: sec.Kicker, Title: sec.Title, Highlight: sec.Highlight, Subtitle: sec.Subtitle}, "green"),
				components.CardGrid(sec.Items, 2, "green"),
			),
			Div(
				Class("rounded-3xl border border-emerald-200 bg-emerald-50 p-8"),
				H3(Class("text-xl font-extrabold"), g.Text("Request Solar Assessment")),
				g.Map(sec.Body, func(p string) g.Node { return P(Class("mt-3 text-sm text-slate-700"), g.Text(p)) }),
				components.Buttons(sec.CTAs, "green"),
				P(Class("mt-4 text-xs text-slate-500"), g.Text(sec.Note)),
				components.Pills(sec.Highlights, "green"),
				P(Class("mt-4 text-sm font-semibold text-emerald-800"), g.Text("Outcome: safer systems + better ROI")),
			),
		),
	)
}
