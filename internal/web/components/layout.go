package components

import (
	"strings"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/vrgreentek/greentek-site/internal/content"
)

// PageConfig carries per-page metadata for the document head and navbar.
type PageConfig struct {
	Title       string
	Description string
	OGTitle     string
	OGImage     string
	Canonical   string
	Path        string
	Site        *content.Site

	// OGDescription overrides og:description; nil reuses Description.
	OGDescription *string
}

const defaultDescription = "Compliance-ready electrical systems and renewable energy solutions for homes, industries, institutions and rural infrastructure."

// Layout wraps page sections in the shared document shell.
func Layout(cfg PageConfig, sections ...g.Node) g.Node {
	site := cfg.Site
	if site == nil {
		site = content.Default()
	}
	title := cfg.Title
	if title == "" {
		title = site.Company.Name
	}
	desc := cfg.Description
	if desc == "" {
		desc = defaultDescription
	}
	ogTitle := cfg.OGTitle
	if ogTitle == "" {
		ogTitle = title
	}
	ogDesc := desc
	if cfg.OGDescription != nil {
		ogDesc = *cfg.OGDescription
	}

	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(desc)),
				Meta(g.Attr("property", "og:title"), Content(ogTitle)),
				Meta(g.Attr("property", "og:description"), Content(ogDesc)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(cfg.OGImage != "", Meta(g.Attr("property", "og:image"), Content(cfg.OGImage))),
				g.If(cfg.Canonical != "", Link(Rel("canonical"), Href(cfg.Canonical))),
				Script(Src("https://cdn.tailwindcss.com")),
			),
			Body(
				Class("bg-white text-slate-900 antialiased"),
				Navbar(site, cfg.Path),
				Main(g.Group(sections)),
				PageFooter(site),
			),
		),
	)
}

// Navbar renders the top navigation with the solutions dropdown. The entry
// matching path, or its closest parent, is marked active.
func Navbar(site *content.Site, path string) g.Node {
	return Header(
		Class("sticky top-0 z-50 border-b border-black/10 bg-white/80 backdrop-blur"),
		Nav(
			Class("mx-auto flex max-w-7xl items-center justify-between px-4 py-3"),
			A(Href("/"), Class("text-lg font-extrabold tracking-tight text-emerald-700"), g.Text(site.Company.Name)),
			Ul(
				Class("hidden items-center gap-1 md:flex"),
				g.Map(site.Nav, func(l content.Link) g.Node {
					if l.Href == "/solutions" {
						return solutionsMenu(site.Solutions, l, isActive(path, l.Href))
					}
					return Li(navLink(l, isActive(path, l.Href)))
				}),
			),
			A(Href("/contact"), Class("rounded-2xl bg-emerald-600 px-4 py-2 text-sm font-semibold text-white hover:bg-emerald-700"), g.Text("Get a Quote")),
		),
	)
}

func navLink(l content.Link, active bool) g.Node {
	return A(
		Href(l.Href),
		c.Classes{
			"rounded-2xl px-3 py-2 text-sm font-medium transition": true,
			"bg-emerald-50 text-emerald-700":                       active,
			"text-slate-700 hover:bg-black/5":                      !active,
		},
		g.If(active, Aria("current", "page")),
		g.Text(l.Label),
	)
}

func solutionsMenu(items []content.Link, parent content.Link, active bool) g.Node {
	return Li(
		Class("group relative"),
		navLink(parent, active),
		Div(
			Class("invisible absolute left-0 top-full w-72 rounded-2xl border border-black/10 bg-white p-2 opacity-0 shadow-lg transition group-hover:visible group-hover:opacity-100"),
			g.Map(items, func(l content.Link) g.Node {
				return A(
					Href(l.Href),
					Class("block rounded-xl px-3 py-2 hover:bg-emerald-50"),
					P(Class("text-sm font-semibold"), g.Text(l.Label)),
					g.If(l.Desc != "", P(Class("text-xs text-slate-500"), g.Text(l.Desc))),
				)
			}),
		),
	)
}

func isActive(path, href string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

func PageFooter(site *content.Site) g.Node {
	f := site.Footer
	return Footer(
		Class("border-t border-black/10 bg-slate-950 text-slate-300"),
		Div(
			Class("mx-auto grid max-w-7xl gap-10 px-4 py-12 md:grid-cols-4"),
			Div(
				P(Class("text-lg font-bold text-white"), g.Text(site.Company.Name)),
				P(Class("mt-3 text-sm"), g.Text(f.About)),
				P(Class("mt-3 text-xs uppercase tracking-widest text-emerald-400"), g.Text(f.Tagline)),
			),
			Div(
				H4(Class("text-sm font-semibold text-white"), g.Text("Quick Links")),
				Ul(Class("mt-3 space-y-2 text-sm"),
					g.Map(f.Links, func(l content.Link) g.Node {
						return Li(A(Href(l.Href), Class("hover:text-white"), g.Text(l.Label)))
					}),
				),
			),
			Div(
				H4(Class("text-sm font-semibold text-white"), g.Text("Services")),
				Ul(Class("mt-3 space-y-2 text-sm"),
					g.Map(f.Services, func(s string) g.Node { return Li(g.Text(s)) }),
				),
			),
			Div(
				H4(Class("text-sm font-semibold text-white"), g.Text("Contact")),
				P(Class("mt-3 text-sm"), g.Text(f.Phone)),
				P(Class("text-sm"), A(Href("mailto:"+f.Email), g.Text(f.Email))),
				Div(Class("mt-4 flex gap-2"),
					g.Map(f.CTAs, func(l content.Link) g.Node {
						return A(Href(l.Href), Class("rounded-xl border border-white/20 px-3 py-1.5 text-xs font-semibold hover:bg-white/10"), g.Text(l.Label))
					}),
				),
			),
		),
		Div(
			Class("border-t border-white/10 py-4 text-center text-xs"),
			g.Text("Developed by "),
			A(Href(f.Credit.Href), Target("_blank"), Rel("noopener noreferrer"), Class("text-emerald-400"), g.Text(f.Credit.Label)),
		),
	)
}
