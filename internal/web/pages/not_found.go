package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vrgreentek/greentek-site/internal/web/components"
)

// NotFound renders the 404 document. Unknown project routes use the
// "Project Not Found" title.
func NotFound(cfg components.PageConfig, heading string) g.Node {
	if cfg.Title == "" {
		cfg.Title = "Page Not Found"
	}
	if heading == "" {
		heading = cfg.Title
	}
	return components.Layout(cfg,
		Section(
			Class("mx-auto flex min-h-[60vh] max-w-3xl flex-col items-center justify-center px-4 py-24 text-center"),
			P(Class("text-sm font-semibold text-emerald-700"), g.Text("404")),
			H1(Class("mt-3 text-4xl font-extrabold tracking-tight"), g.Text(heading)),
			P(Class("mt-4 text-slate-600"), g.Text("The page you are looking for does not exist or has moved.")),
			Div(
				Class("mt-8 flex gap-3"),
				A(Href("/"), Class("rounded-2xl bg-emerald-600 px-5 py-3 text-sm font-semibold text-white"), g.Text("Go Home")),
				A(Href("/projects"), Class("rounded-2xl border border-black/10 px-5 py-3 text-sm font-semibold"), g.Text("View Projects")),
			),
		),
	)
}
