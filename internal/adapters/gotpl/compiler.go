// Package gotpl implements the external compile, emit, and load capabilities
// for Go template syntax. It is the conforming adapter behind the pipeline's
// compiler ports: the front end parses template source into a tree set, the
// emitter lowers the trees to canonical source bytes plus a debug manifest,
// and the loader builds an invocable html/template program from emitted
// bytes.
package gotpl

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"text/template/parse"

	"github.com/slategen/slate/internal/core/domain"
	"github.com/slategen/slate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceCompiler = (*Compiler)(nil)

// Compiler is the template front end.
type Compiler struct{}

// NewCompiler creates a new template front end.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// generatedCode is the opaque front-end output handed to the emitter.
// It never leaves this package in concrete form.
type generatedCode struct {
	name  string
	trees map[string]*parse.Tree
}

// TemplateName returns the logical name of the compiled template.
func (g *generatedCode) TemplateName() string {
	return g.name
}

// Compile parses the unit's source into a tree set. Syntax errors are
// returned as a *domain.CompileError with line information; function
// resolution is deferred to load time.
func (c *Compiler) Compile(ctx context.Context, unit domain.Unit, scope domain.ScopeID) (domain.GeneratedCode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := TemplateName(unit.Path)

	tree := parse.New(name)
	tree.Mode = parse.SkipFuncCheck | parse.ParseComments

	treeSet := make(map[string]*parse.Tree)
	if _, err := tree.Parse(string(unit.Bytes), "", "", treeSet); err != nil {
		return nil, &domain.CompileError{
			Unit:        unit.Path,
			Diagnostics: []domain.Diagnostic{parseErrorDiagnostic(err)},
		}
	}

	if _, ok := treeSet[name]; !ok {
		// The root tree is always part of the set; its absence means the
		// parser state is inconsistent, not a content problem.
		return nil, zerr.With(zerr.New("parser produced no root tree"), "unit", unit.Path)
	}

	return &generatedCode{name: name, trees: treeSet}, nil
}

// TemplateName derives the logical template name from a unit path. The
// slash-normalized path keeps names unique across directories and readable
// in diagnostics.
func TemplateName(path string) string {
	return strings.TrimPrefix(strings.ReplaceAll(path, "\\", "/"), "./")
}

// parseErrorRegex matches the fixed "template: name:line: message" shape of
// text/template parse errors.
var parseErrorRegex = regexp.MustCompile(`^template: .*:(\d+): (.*)$`)

// parseErrorDiagnostic converts a text/template parse error into a
// structured diagnostic, preserving the source line where available.
func parseErrorDiagnostic(err error) domain.Diagnostic {
	msg := err.Error()

	if m := parseErrorRegex.FindStringSubmatch(msg); m != nil {
		line, convErr := strconv.Atoi(m[1])
		if convErr == nil {
			return domain.Diagnostic{
				Severity: domain.SeverityError,
				Message:  m[2],
				Line:     line,
			}
		}
	}

	return domain.Diagnostic{
		Severity: domain.SeverityError,
		Message:  strings.TrimPrefix(msg, "template: "),
	}
}
