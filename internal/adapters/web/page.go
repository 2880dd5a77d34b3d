package web

import "io"

// Page assembles the board document from the form and the lists.
type Page struct {
	renderer *Renderer
	lists    []*ProjectList
}

// NewPage creates a page showing lists in the given order.
func NewPage(renderer *Renderer, lists ...*ProjectList) *Page {
	return &Page{renderer: renderer, lists: lists}
}

// Render writes the full document with form as the form state.
func (p *Page) Render(w io.Writer, form FormView) error {
	fragments := make([]listFragment, 0, len(p.lists))
	for _, l := range p.lists {
		fragments = append(fragments, listFragment{
			Kind:     l.Kind().String(),
			Fragment: l.Fragment(),
		})
	}
	return p.renderer.renderPage(w, pageView{
		Title: pageTitle,
		Form:  form,
		Lists: fragments,
	})
}
