package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/vrgreentek/greentek-site/internal/content"
	inquiry "github.com/vrgreentek/greentek-site/internal/inquiries/domain"
	"github.com/vrgreentek/greentek-site/internal/web/components"
)

// ContactForm is the state of the inquiry form after a submission attempt.
type ContactForm struct {
	Values  inquiry.NewInquiryInput
	Errors  map[string]string
	Notice  string
	Success bool
}

func Contact(cfg components.PageConfig, form ContactForm) g.Node {
	c := siteOf(cfg).Contact
	return components.Layout(cfg,
		components.Banner(c.Hero),
		contactSection(c, form),
	)
}

func contactSection(c content.Contact, form ContactForm) g.Node {
	return components.Block("contact-form",
		Div(
			Class("grid gap-10 lg:grid-cols-5"),
			Div(
				Class("lg:col-span-2"),
				components.Heading(content.Section{Kicker: c.Intro.Kicker, Title: c.Intro.Title, Highlight: c.Intro.Highlight}, "green"),
				Div(Class("mt-8 space-y-4"),
					g.Map(c.Cards, func(card content.Card) g.Node { return contactCard(card) }),
				),
				H3(Class("mt-10 text-lg font-bold"), g.Text(c.Intro.Subtitle)),
				Ul(Class("mt-4 space-y-2 text-sm text-slate-700"),
					g.Map(inquiry.Services, func(s string) g.Node { return Li(g.Text("✓ " + s)) }),
				),
			),
			Div(
				Class("lg:col-span-3"),
				inquiryForm(form, c.Success),
			),
		),
	)
}

func contactCard(card content.Card) g.Node {
	return Div(
		Class("rounded-3xl border border-black/10 bg-white/80 p-6 shadow-sm"),
		P(Class("text-sm font-bold"), g.Text(card.Title)),
		g.If(card.Subtitle != "", P(Class("mt-1 text-sm font-semibold text-emerald-700"), g.Text(card.Subtitle))),
		g.Iff(card.Href != "", func() g.Node {
			return A(Href(card.Href), Class("mt-1 block text-sm text-slate-600 hover:text-emerald-700"), g.Text(card.Desc))
		}),
		g.If(card.Href == "", P(Class("mt-1 text-sm text-slate-600"), g.Text(card.Desc))),
	)
}

func inquiryForm(form ContactForm, successMsg string) g.Node {
	if form.Success {
		return Div(
			Class("rounded-3xl border border-emerald-200 bg-emerald-50 p-8"),
			g.Attr("role", "status"),
			H3(Class("text-xl font-extrabold text-emerald-900"), g.Text("Message sent")),
			P(Class("mt-2 text-emerald-900"), g.Text(successMsg)),
		)
	}

	v := form.Values
	return Form(
		Method("post"),
		Action("/contact"),
		Class("rounded-3xl border border-black/10 bg-white p-8 shadow-sm"),
		g.If(form.Notice != "", P(Class("mb-6 rounded-2xl bg-red-50 p-4 text-sm font-medium text-red-800"), g.Attr("role", "alert"), g.Text(form.Notice))),
		Div(
			Class("grid gap-5 sm:grid-cols-2"),
			field("name", "Full name", "text", v.Name, true, form.Errors),
			field("email", "Email", "email", v.Email, true, form.Errors),
			field("phone", "Phone", "tel", v.Phone, false, form.Errors),
			field("company", "Company", "text", v.Company, false, form.Errors),
		),
		Div(
			Class("mt-5"),
			Label(For("service"), Class("text-sm font-semibold"), g.Text("Service")),
			Select(
				ID("service"), Name("service"),
				Class("mt-2 w-full rounded-xl border border-black/15 px-4 py-3 text-sm"),
				Option(Value(""), g.Text("Select a service")),
				g.Map(inquiry.Services, func(s string) g.Node {
					return Option(Value(s), g.If(s == v.Service, Selected()), g.Text(s))
				}),
			),
			fieldError("service", form.Errors),
		),
		Div(
			Class("mt-5"),
			Label(For("message"), Class("text-sm font-semibold"), g.Text("Message")),
			Textarea(
				ID("message"), Name("message"), Rows("5"), Required(),
				Class("mt-2 w-full rounded-xl border border-black/15 px-4 py-3 text-sm"),
				g.Text(v.Message),
			),
			fieldError("message", form.Errors),
		),
		Button(
			Type("submit"),
			Class("mt-6 inline-flex items-center gap-2 rounded-2xl bg-emerald-600 px-6 py-3 text-sm font-semibold text-white hover:bg-emerald-700"),
			g.Text("Send Inquiry →"),
		),
	)
}

func field(name, label, typ, value string, required bool, errs map[string]string) g.Node {
	return Div(
		Label(For(name), Class("text-sm font-semibold"), g.Text(label)),
		Input(
			ID(name), Name(name), Type(typ), Value(value),
			g.If(required, Required()),
			g.If(errs[name] != "", Aria("invalid", "true")),
			Class("mt-2 w-full rounded-xl border border-black/15 px-4 py-3 text-sm"),
		),
		fieldError(name, errs),
	)
}

func fieldError(name string, errs map[string]string) g.Node {
	msg, ok := errs[name]
	if !ok {
		return nil
	}
	return P(Class("mt-1 text-xs font-medium text-red-700"), g.Text(msg))
}
