package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Template names defined in templates/board.html.tmpl.
const (
	tmplPage  = "page"
	tmplForm  = "project-input"
	tmplList  = "project-list"
	pageTitle = "ProjectManager"
)

// Static returns the embedded browser assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// The directory is embedded at build time; a miss is a build defect.
		panic(fmt.Sprintf("web: static assets missing: %v", err))
	}
	return sub
}

// Renderer executes the board templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded board templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing board templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// FormView is the state of the project form as rendered.
type FormView struct {
	Title       string
	Description string
	People      string
	Message     string
}

type itemView struct {
	ID          string
	Title       string
	Description string
	People      string
}

type listView struct {
	Kind    string
	Heading string
	Items   []itemView
}

type pageView struct {
	Title string
	Form  FormView
	Lists []listFragment
}

type listFragment struct {
	Kind     string
	Fragment template.HTML
}

func newListView(kind project.Status, projects []project.Project) listView {
	items := make([]itemView, 0, len(projects))
	for i := range projects {
		p := &projects[i]
		items = append(items, itemView{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			People:      p.PeopleLabel(),
		})
	}
	return listView{
		Kind:    kind.String(),
		Heading: strings.ToUpper(kind.String()) + " PROJECTS",
		Items:   items,
	}
}

// RenderForm writes the project form fragment.
func (r *Renderer) RenderForm(w io.Writer, form FormView) error {
	return r.execute(w, tmplForm, form)
}

func (r *Renderer) renderList(w io.Writer, view listView) error {
	return r.execute(w, tmplList, view)
}

func (r *Renderer) renderPage(w io.Writer, view pageView) error {
	return r.execute(w, tmplPage, view)
}

func (r *Renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	return nil
}
