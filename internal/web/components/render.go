package components

import (
	"net/http"

	g "maragu.dev/gomponents"
)

// Renderer adapts a gomponents node to gin's render.Render.
type Renderer struct {
	Node g.Node
}

func (h Renderer) Render(w http.ResponseWriter) error {
	h.WriteContentType(w)
	return h.Node.Render(w)
}

func (h Renderer) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = []string{"text/html; charset=utf-8"}
	}
}
