package ports

import (
	"context"

	"github.com/slategen/slate/internal/core/domain"
)

// SourceCompiler is the external front end that turns template source into
// generated code. The core never inspects the concrete generated-code type.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type SourceCompiler interface {
	// Compile parses and checks the unit's source. Content problems
	// (syntax or semantic errors in the template) are reported as a
	// *domain.CompileError carrying ordered diagnostics; any other error
	// is an infrastructure fault.
	Compile(ctx context.Context, unit domain.Unit, scope domain.ScopeID) (domain.GeneratedCode, error)
}

// EmittedProgram is the output of the backend emitter.
type EmittedProgram struct {
	// Name is the logical template name of the emitted program.
	Name string
	// Bytes is the emitted artifact in its storable form.
	Bytes []byte
	// DebugBytes is companion debug information, nil if none was produced.
	DebugBytes []byte
	// Warnings are non-fatal diagnostics collected during emission.
	Warnings []domain.Diagnostic
}

// Emitter is the external backend that turns generated code into artifact
// bytes.
type Emitter interface {
	// Emit produces artifact bytes for the given generated code. Fatal
	// diagnostics are reported as a *domain.CompileError; any other error
	// is an infrastructure fault.
	Emit(ctx context.Context, code domain.GeneratedCode) (EmittedProgram, error)
}

// ProgramLoader turns emitted artifact bytes into an invocable program.
type ProgramLoader interface {
	// Load builds the invocable form from emitted bytes. The debug bytes
	// may be nil.
	Load(name string, artifact, debug []byte) (domain.Program, error)
}
