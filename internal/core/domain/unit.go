package domain

import "io"

// Unit is a compilable template source unit: a path plus its raw bytes at
// resolution time. Identity for caching purposes is the content, never the
// path; the path is carried for diagnostics and watch registration only.
type Unit struct {
	Path  string
	Bytes []byte
}

// GeneratedCode is the opaque output of the source front end. The pipeline
// passes it through to the emitter without inspecting its concrete type.
type GeneratedCode interface {
	// TemplateName returns the logical name of the compiled template.
	TemplateName() string
}

// Program is the loaded, invocable form of a compiled artifact.
type Program interface {
	// Name returns the logical name of the template.
	Name() string
	// Render executes the program with the given data.
	Render(w io.Writer, data any) error
}

// CompiledArtifact is the result of a successful compilation. It is
// immutable once constructed and safely shared by reference across all
// callers that hit the same cache key.
type CompiledArtifact struct {
	// Key identifies the artifact in the compilation cache.
	Key CacheKey
	// Bytes is the emitted artifact in its storable form.
	Bytes []byte
	// DebugBytes is companion debug information, nil if none was produced.
	DebugBytes []byte
	// Program is the loaded, invocable form of the artifact.
	Program Program
	// Warnings are the non-fatal diagnostics collected during compilation.
	Warnings []Diagnostic
}

// StoredArtifact is the persistable subset of a compiled artifact, as kept
// by the cross-run artifact store. The Program is not persisted; it is
// re-loaded from the bytes on retrieval.
type StoredArtifact struct {
	Name       string       `json:"name"`
	Bytes      []byte       `json:"bytes"`
	DebugBytes []byte       `json:"debug_bytes,omitempty"`
	Warnings   []Diagnostic `json:"warnings,omitempty"`
}

// CompiledView is what the pipeline hands back to the caller: either a
// present, compiled unit, or a not-found outcome. In both cases Handle
// reports future changes to the underlying path, so a caller can react when
// a missing unit comes into existence.
type CompiledView struct {
	// Exists reports whether the unit was present at resolution time.
	// When false, Artifact is nil and no error is implied.
	Exists bool
	// Artifact is the compiled artifact; nil when Exists is false.
	Artifact *CompiledArtifact
	// Handle notifies of future changes to the underlying unit. It is
	// always set, regardless of hit, miss, or not-found.
	Handle *WatchHandle
}
