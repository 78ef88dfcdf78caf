package pages

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vrgreentek/greentek-site/internal/content"
	"github.com/vrgreentek/greentek-site/internal/projects/domain"
	"github.com/vrgreentek/greentek-site/internal/web/components"
)

// Home renders the landing page; track selects the tabbed sections.
func Home(cfg components.PageConfig, track domain.ProjectType) g.Node {
	h := siteOf(cfg).Home
	return components.Layout(cfg,
		homeHero(h.Slides),
		logoStrip(h.Brands.Title, h.BrandLogos),
		miniAbout(h.MiniAboutFor(track), track),
		servicesWeOffer(h.Services, h.ServicesFor(track), track),
		ourProjects(h.Showcase),
		whoWeServe(h.WhoWeServe),
		greenEnergy(h.GreenEnergy),
		clients(h.Clients, h.ClientsFor(track), track),
		testimonials(h.Testimonials),
		positioning(h.Positioning),
	)
}

// homeHero shows the first slide as the banner and the rest as a strip.
func homeHero(slides []content.Slide) g.Node {
	if len(slides) == 0 {
		return nil
	}
	lead := slides[0]
	return components.Banner(
		content.Section{
			Kicker:   lead.Kicker,
			Title:    lead.Title,
			Subtitle: lead.Subtitle,
			Image:    lead.Image,
			CTAs:     []content.Link{{Label: "View Projects", Href: "/projects"}},
		},
		Ul(
			Class("mt-12 grid gap-3 sm:grid-cols-3 lg:grid-cols-6"),
			g.Map(slides, func(s content.Slide) g.Node {
				return Li(
					Class("overflow-hidden rounded-2xl border border-white/20 bg-white/10 backdrop-blur"),
					Img(Src(s.Image), Alt(s.Alt), Class("h-20 w-full object-cover")),
					Div(Class("p-2"),
						P(Class("text-[10px] font-semibold uppercase tracking-widest text-emerald-300"), g.Text(s.Track.Label())),
						P(Class("text-xs font-semibold"), g.Text(s.Title)),
					),
				)
			}),
		),
	)
}

func logoStrip(title string, logos []content.Logo) g.Node {
	return components.Block("",
		g.If(title != "", H2(Class("text-center text-sm font-semibold uppercase tracking-widest text-slate-500"), g.Text(title))),
		Ul(
			Class("mt-8 grid grid-cols-2 items-center gap-6 sm:grid-cols-3 lg:grid-cols-6"),
			g.Map(logos, func(l content.Logo) g.Node {
				return Li(Img(Src(l.Image), Alt(l.Name), g.Attr("loading", "lazy"), Class("mx-auto max-h-20 object-contain opacity-70 grayscale hover:opacity-100 hover:grayscale-0")))
			}),
		),
	)
}

func miniAbout(sec content.Section, track domain.ProjectType) g.Node {
	tone := track.Tone()
	return components.Block("about",
		components.TrackTabs("/", "about", track),
		Div(
			Class("mt-10 grid items-center gap-10 lg:grid-cols-2"),
			Div(
				components.Heading(sec, tone),
				g.If(sec.Note != "", P(Class("mt-2 text-sm font-semibold text-slate-500"), g.Text(sec.Note))),
				components.CardGrid(sec.Items, 2, tone),
				components.Pills(sec.Highlights, tone),
				components.Buttons(sec.CTAs, tone),
			),
			Div(
				Img(Src(sec.Image), Alt(sec.Title), Class("h-96 w-full rounded-3xl object-cover")),
				components.StatGrid(sec.Stats),
			),
		),
	)
}

func servicesWeOffer(sec content.Section, items []content.Card, track domain.ProjectType) g.Node {
	head := sec
	head.Highlight = strings.ToLower(track.Label())
	return components.Block("services",
		components.Heading(head, track.Tone()),
		components.TrackTabs("/", "services", track),
		components.CardGrid(items, 4, track.Tone()),
	)
}

func ourProjects(sec content.Section) g.Node {
	return components.Block("projects",
		components.Heading(sec, "green"),
		components.CardGrid(sec.Items, 3, "green"),
		g.If(sec.Note != "", P(Class("mt-6 text-xs font-semibold text-slate-500"), g.Text(sec.Note))),
		components.Buttons(sec.CTAs, "green"),
	)
}

func whoWeServe(sec content.Section) g.Node {
	return components.Block("who-we-serve",
		components.Heading(sec, "green"),
		components.CardGrid(sec.Items, 4, "green"),
	)
}

func greenEnergy(sec content.Section) g.Node {
	return components.Block("green-energy",
		components.Heading(sec, "green"),
		components.StatGrid(sec.Stats),
		components.CardGrid(sec.Items, 4, "green"),
		components.Pills(sec.Highlights, "green"),
		g.If(sec.Note != "", P(Class("mt-8 text-lg font-semibold text-emerald-800"), g.Text(sec.Note))),
		components.Buttons(sec.CTAs, "green"),
	)
}

func clients(sec content.Section, logos []content.Logo, track domain.ProjectType) g.Node {
	head := sec
	head.Highlight = track.Label()
	return Div(
		components.Block("clients",
			components.Heading(head, track.Tone()),
			components.TrackTabs("/", "clients", track),
			components.StatGrid(sec.Stats),
		),
		logoStrip("", logos),
		Div(
			Class("pb-16 text-center text-sm text-slate-600"),
			g.Text(sec.Note+" "),
			g.Map(sec.CTAs, func(l content.Link) g.Node {
				return A(Href(l.Href), Class("font-semibold text-emerald-700 underline"), g.Text(l.Label))
			}),
		),
	)
}

func testimonials(items []content.Testimonial) g.Node {
	return components.Block("testimonials",
		H2(Class("text-center text-3xl font-extrabold tracking-tight"), g.Text("Testimonials")),
		Div(
			Class("mt-10 grid gap-6 md:grid-cols-2 lg:grid-cols-3"),
			g.Map(items, func(t content.Testimonial) g.Node {
				return Figure(
					Class("rounded-3xl border border-black/10 bg-white p-6 shadow-sm"),
					P(Class("text-amber-500"), g.Attr("aria-label", strconv.Itoa(t.Rating)+" out of 5"), g.Text(strings.Repeat("★", clampRating(t.Rating)))),
					BlockQuote(Class("mt-3 text-sm leading-relaxed text-slate-700"), g.Text("“"+t.Quote+"”")),
					FigCaption(
						Class("mt-5 flex items-center gap-3"),
						Img(Src(t.Avatar), Alt(t.Name), g.Attr("loading", "lazy"), Class("h-12 w-12 rounded-full object-cover")),
						Div(
							P(Class("text-sm font-bold"), g.Text(t.Name)),
							P(Class("text-xs text-slate-500"), g.Text(t.Role)),
						),
					),
				)
			}),
		),
	)
}

func clampRating(n int) int {
	switch {
	case n < 0:
		return 0
	case n > 5:
		return 5
	}
	return n
}

func positioning(sec content.Section) g.Node {
	return Section(
		Class("bg-slate-950 text-white"),
		Div(
			Class("mx-auto max-w-7xl px-4 py-20 text-center"),
			P(Class("text-xs font-semibold uppercase tracking-widest text-emerald-300"), g.Text(sec.Kicker)),
			H2(
				Class("mt-4 text-4xl font-extrabold tracking-tight"),
				g.Text(sec.Title+" "),
				Span(Class("text-emerald-400"), g.Text(sec.Highlight)),
				Br(),
				g.Text(sec.Subtitle),
			),
			g.Map(sec.Body, func(p string) g.Node {
				return P(Class("mx-auto mt-5 max-w-3xl text-white/80"), g.Text(p))
			}),
			Div(Class("flex justify-center"), components.Buttons(sec.CTAs, "green")),
			P(Class("mt-6 text-sm text-white/60"), g.Text(sec.Note)),
		),
	)
}
