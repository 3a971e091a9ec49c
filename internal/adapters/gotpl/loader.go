package gotpl

import (
	"html/template"
	"io"

	"github.com/slategen/slate/internal/core/domain"
	"github.com/slategen/slate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProgramLoader = (*Loader)(nil)

// Loader turns emitted artifact bytes into an invocable html/template
// program with contextual auto-escaping.
type Loader struct {
	funcs template.FuncMap
}

// NewLoader creates a loader. The optional funcs are made available to every
// loaded program.
func NewLoader(funcs template.FuncMap) *Loader {
	return &Loader{funcs: funcs}
}

type program struct {
	name string
	tpl  *template.Template
}

// Name returns the logical name of the template.
func (p *program) Name() string {
	return p.name
}

// Render executes the program with the given data.
func (p *program) Render(w io.Writer, data any) error {
	return p.tpl.Execute(w, data)
}

// Load builds the invocable form from emitted bytes. The bytes come from
// the emitter's canonical form, so a parse failure here is an
// infrastructure fault, not a content error. The debug bytes are not needed
// for loading.
func (l *Loader) Load(name string, artifact, _ []byte) (domain.Program, error) {
	tpl := template.New(name)
	if l.funcs != nil {
		tpl = tpl.Funcs(l.funcs)
	}

	tpl, err := tpl.Parse(string(artifact))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLoadFailed.Error()), "template", name)
	}

	return &program{name: name, tpl: tpl}, nil
}
