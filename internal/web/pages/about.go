package pages

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vrgreentek/greentek-site/internal/content"
	"github.com/vrgreentek/greentek-site/internal/projects/domain"
	"github.com/vrgreentek/greentek-site/internal/web/components"
)

func About(cfg components.PageConfig, track domain.ProjectType) g.Node {
	a := siteOf(cfg).About
	return components.Layout(cfg,
		components.Banner(a.Hero),
		aboutIntro(a.Intro),
		coreIdentity(a.CoreIdentity),
		whatWeDo(a.WhatWeDoFor(track), track),
		approach(a.Approach),
		manufacturing(a.Manufacturing),
		aboutWhyUs(a.WhyUs),
		missionVision(a.Mission, a.Vision, a.Values),
		ourAim(a.Aim),
	)
}

func aboutIntro(sec content.Section) g.Node {
	return components.Block("intro",
		Div(
			Class("grid gap-10 lg:grid-cols-2"),
			Div(
				components.Heading(sec, "green"),
				components.Pills(sec.Highlights, "green"),
				components.Buttons(sec.CTAs, "green"),
			),
			Div(
				components.CardGrid(sec.Items, 2, "green"),
				P(Class("mt-6 rounded-2xl bg-emerald-50 p-5 text-sm font-medium text-emerald-900"), g.Text(sec.Note)),
			),
		),
	)
}

func coreIdentity(sec content.Section) g.Node {
	return components.Block("core-identity",
		components.Heading(sec, "blue"),
		components.StatGrid(sec.Stats),
		components.Pills(sec.Highlights, "blue"),
		components.CardGrid(sec.Items, 3, "green"),
	)
}

func whatWeDo(sec content.Section, track domain.ProjectType) g.Node {
	return components.Block("what-we-do",
		components.TrackTabs("/about", "what-we-do", track),
		Div(Class("mt-8"), components.Heading(sec, track.Tone())),
		components.StatGrid(sec.Stats),
		components.CardGrid(sec.Items, 3, track.Tone()),
	)
}

func approach(sec content.Section) g.Node {
	steps := make([]content.Card, len(sec.Items))
	for i, it := range sec.Items {
		it.Tag = "Step " + strconv.Itoa(i+1)
		steps[i] = it
	}
	return components.Block("approach",
		components.Heading(sec, "green"),
		components.CardGrid(steps, 5, "green"),
		Div(
			Class("mt-10 rounded-3xl border border-black/10 bg-slate-50 p-6"),
			H3(Class("text-lg font-bold"), g.Text("What you get with our turnkey model")),
			components.Pills(sec.Highlights, "green"),
			P(Class("mt-4 text-sm font-semibold text-slate-600"), g.Text(sec.Note)),
		),
	)
}

func manufacturing(sec content.Section) g.Node {
	return components.Block("manufacturing",
		components.Heading(sec, "blue"),
		components.Pills(sec.Highlights, "blue"),
		components.StatGrid(sec.Stats),
		H3(Class("mt-10 text-sm font-semibold uppercase tracking-widest text-slate-500"), g.Text("Facility highlights · "+sec.Note)),
		components.CardGrid(sec.Items, 4, "blue"),
	)
}

func aboutWhyUs(sec content.Section) g.Node {
	cards := make([]g.Node, 0, len(sec.Items))
	for _, it := range sec.Items {
		cards = append(cards, components.CardTile(it, it.Track.Tone()))
	}
	return components.Block("why-us",
		components.Heading(sec, "green"),
		Div(Class("mt-10 grid gap-6 md:grid-cols-2"), g.Group(cards)),
		P(Class("mt-8 text-center text-lg font-bold"), g.Text(sec.Note)),
	)
}

func missionVision(mission, vision, values content.Section) g.Node {
	statement := func(sec content.Section) g.Node {
		return Div(
			Class("rounded-3xl border border-black/10 bg-white p-8 shadow-sm"),
			P(Class("text-xs font-semibold uppercase tracking-widest text-emerald-700"), g.Text(sec.Kicker)),
			H3(Class("mt-3 text-2xl font-extrabold"), g.Text(sec.Title)),
			g.Map(sec.Body, func(p string) g.Node { return P(Class("mt-3 text-slate-600"), g.Text(p)) }),
		)
	}
	return components.Block("foundation",
		components.Kicker("OUR FOUNDATION"),
		Div(Class("mt-6 grid gap-6 lg:grid-cols-2"), statement(mission), statement(vision)),
		Div(Class("mt-12"), components.Heading(values, "green")),
		components.CardGrid(values.Items, 5, "green"),
		P(Class("mt-6 text-sm text-slate-600"), g.Text(values.Note)),
	)
}

func ourAim(sec content.Section) g.Node {
	return Section(
		Class("bg-emerald-950 text-white"),
		Div(
			Class("mx-auto max-w-5xl px-4 py-20 text-center"),
			P(Class("text-xs font-semibold uppercase tracking-widest text-emerald-300"), g.Text(sec.Kicker)),
			H2(
				Class("mt-4 text-3xl font-extrabold tracking-tight sm:text-4xl"),
				g.Text(sec.Title+" "),
				Span(Class("text-emerald-300"), g.Text(sec.Highlight)),
				g.Text(" "+sec.Subtitle),
			),
			g.Map(sec.Body, func(p string) g.Node { return P(Class("mt-5 text-white/80"), g.Text(p)) }),
			Div(Class("flex justify-center"), components.Buttons(sec.CTAs, "green")),
			P(Class("mt-6 text-sm text-white/60"), g.Text(sec.Note)),
		),
	)
}
