package gotpl

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/template/parse"

	"github.com/slategen/slate/internal/core/domain"
	"github.com/slategen/slate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Emitter = (*Emitter)(nil)

// Emitter lowers a parsed tree set to canonical source bytes. The emitted
// bytes are the storable artifact form; the loader rebuilds an invocable
// program from them without re-running the front end.
type Emitter struct{}

// NewEmitter creates a new emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// debugManifest is the companion debug information emitted alongside the
// artifact bytes: per-template node spans into the canonical source.
type debugManifest struct {
	Template string      `json:"template"`
	Nodes    []debugNode `json:"nodes"`
}

type debugNode struct {
	Tree string `json:"tree"`
	Type string `json:"type"`
	Pos  int    `json:"pos"`
}

// Emit produces canonical source bytes for the given generated code.
// It collects non-fatal diagnostics (empty bodies, references to templates
// defined outside the unit) as warnings.
func (e *Emitter) Emit(ctx context.Context, code domain.GeneratedCode) (ports.EmittedProgram, error) {
	if err := ctx.Err(); err != nil {
		return ports.EmittedProgram{}, err
	}

	gc, ok := code.(*generatedCode)
	if !ok {
		return ports.EmittedProgram{}, zerr.With(domain.ErrForeignGeneratedCode,
			"template", code.TemplateName())
	}

	var (
		b        strings.Builder
		warnings []domain.Diagnostic
		manifest = debugManifest{Template: gc.name}
	)

	root := gc.trees[gc.name]
	b.WriteString(root.Root.String())

	// Defined sub-templates follow the root body in a stable order.
	names := make([]string, 0, len(gc.trees))
	for name := range gc.trees {
		if name != gc.name {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Fprintf(&b, "{{define %q}}%s{{end}}", name, gc.trees[name].Root.String())
	}

	if strings.TrimSpace(b.String()) == "" {
		warnings = append(warnings, domain.Diagnostic{
			Severity: domain.SeverityWarning,
			Message:  "template body is empty",
			Line:     1,
		})
	}

	for _, name := range append([]string{gc.name}, names...) {
		tree := gc.trees[name]
		walk(tree.Root, func(n parse.Node) {
			manifest.Nodes = append(manifest.Nodes, debugNode{
				Tree: name,
				Type: fmt.Sprintf("%T", n),
				Pos:  int(n.Position()),
			})
			if tn, isTemplate := n.(*parse.TemplateNode); isTemplate {
				if _, defined := gc.trees[tn.Name]; !defined {
					warnings = append(warnings, domain.Diagnostic{
						Severity: domain.SeverityInfo,
						Message:  fmt.Sprintf("references external template %q", tn.Name),
					})
				}
			}
		})
	}

	debug, err := json.Marshal(manifest)
	if err != nil {
		return ports.EmittedProgram{}, zerr.Wrap(err, domain.ErrEmitFailed.Error())
	}

	emitted := []byte(b.String())

	// The canonical source must survive a round trip through the parser;
	// anything else is a fatal emission problem tied to this content.
	if reparseErr := validate(gc.name, emitted); reparseErr != nil {
		return ports.EmittedProgram{}, &domain.CompileError{
			Unit: gc.name,
			Diagnostics: []domain.Diagnostic{
				parseErrorDiagnostic(reparseErr),
			},
		}
	}

	return ports.EmittedProgram{
		Name:       gc.name,
		Bytes:      emitted,
		DebugBytes: debug,
		Warnings:   warnings,
	}, nil
}

// validate re-parses emitted bytes to guarantee the loader will accept them.
func validate(name string, emitted []byte) error {
	tree := parse.New(name)
	tree.Mode = parse.SkipFuncCheck
	_, err := tree.Parse(string(emitted), "", "", make(map[string]*parse.Tree))
	return err
}

// walk visits every node in the tree in source order.
func walk(node parse.Node, visit func(parse.Node)) {
	if node == nil {
		return
	}
	// A nil *ListNode still satisfies parse.Node (e.g. an absent else
	// branch); it carries no position and nothing to visit.
	if ln, ok := node.(*parse.ListNode); ok && ln == nil {
		return
	}
	visit(node)

	switch n := node.(type) {
	case *parse.ListNode:
		for _, child := range n.Nodes {
			walk(child, visit)
		}
	case *parse.IfNode:
		walk(n.List, visit)
		walk(n.ElseList, visit)
	case *parse.RangeNode:
		walk(n.List, visit)
		walk(n.ElseList, visit)
	case *parse.WithNode:
		walk(n.List, visit)
		walk(n.ElseList, visit)
	}
}
