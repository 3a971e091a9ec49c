package domain

import "go.trai.ch/zerr"

var (
	// ErrCompilationFailed is the sentinel matched by every CompileError.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrEmitFailed is returned when the backend cannot emit artifact bytes
	// for reasons other than content diagnostics.
	ErrEmitFailed = zerr.New("failed to emit artifact")

	// ErrLoadFailed is returned when emitted bytes cannot be loaded into an
	// invocable program.
	ErrLoadFailed = zerr.New("failed to load artifact")

	// ErrResolveFailed is returned when unit resolution fails for reasons
	// other than the unit not existing.
	ErrResolveFailed = zerr.New("failed to resolve unit")

	// ErrForeignGeneratedCode is returned when the emitter receives
	// generated code that was not produced by its own front end.
	ErrForeignGeneratedCode = zerr.New("generated code was produced by a different front end")

	// ErrConfigNotFound is returned when no slate.yaml can be found.
	ErrConfigNotFound = zerr.New("could not find slate.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreOpenFailed is returned when the artifact store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open artifact store")

	// ErrStoreReadFailed is returned when the artifact store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read from artifact store")

	// ErrStoreWriteFailed is returned when the artifact store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write to artifact store")

	// ErrStoreMarshalFailed is returned when an artifact cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal artifact")

	// ErrStoreUnmarshalFailed is returned when a stored artifact cannot be
	// unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal artifact")

	// ErrBuildFailed is returned when at least one unit fails to compile.
	ErrBuildFailed = zerr.New("build failed")

	// ErrNoUnitsFound is returned when the configured template directories
	// contain no compilable units.
	ErrNoUnitsFound = zerr.New("no template units found")

	// ErrWatcherStartFailed is returned when the file watcher cannot start.
	ErrWatcherStartFailed = zerr.New("failed to start file watcher")
)
