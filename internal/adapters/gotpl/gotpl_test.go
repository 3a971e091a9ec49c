package gotpl_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/slategen/slate/internal/adapters/gotpl"
	"github.com/slategen/slate/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileUnit(t *testing.T, path, source string) domain.GeneratedCode {
	t.Helper()
	code, err := gotpl.NewCompiler().Compile(context.Background(), domain.Unit{
		Path:  path,
		Bytes: []byte(source),
	}, domain.ScopeGlobal)
	require.NoError(t, err)
	return code
}

func TestCompiler_Compile(t *testing.T) {
	t.Run("Valid Source", func(t *testing.T) {
		code := compileUnit(t, "pages/index.html", "<h1>{{.Title}}</h1>")
		assert.Equal(t, "pages/index.html", code.TemplateName())
	})

	t.Run("Unknown Functions Are Deferred To Load Time", func(t *testing.T) {
		code := compileUnit(t, "pages/post.html", `{{markdown .Body}}`)
		assert.NotNil(t, code)
	})

	t.Run("Syntax Error Yields Diagnostics", func(t *testing.T) {
		_, err := gotpl.NewCompiler().Compile(context.Background(), domain.Unit{
			Path:  "layouts/broken.html",
			Bytes: []byte("line one\n<h1>{{.Title</h1>"),
		}, domain.ScopeGlobal)

		require.ErrorIs(t, err, domain.ErrCompilationFailed)

		var compileErr *domain.CompileError
		require.ErrorAs(t, err, &compileErr)
		assert.Equal(t, "layouts/broken.html", compileErr.Unit)
		require.Len(t, compileErr.Diagnostics, 1)
		assert.Equal(t, domain.SeverityError, compileErr.Diagnostics[0].Severity)
		assert.Equal(t, 2, compileErr.Diagnostics[0].Line, "the diagnostic must carry the source line")
	})

	t.Run("Stray End Yields Diagnostics", func(t *testing.T) {
		_, err := gotpl.NewCompiler().Compile(context.Background(), domain.Unit{
			Path:  "partials/nav.html",
			Bytes: []byte("{{end}}"),
		}, domain.ScopeGlobal)

		var compileErr *domain.CompileError
		require.ErrorAs(t, err, &compileErr)
		assert.Contains(t, compileErr.Diagnostics[0].Message, "end")
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gotpl.NewCompiler().Compile(ctx, domain.Unit{
			Path:  "pages/index.html",
			Bytes: []byte("ok"),
		}, domain.ScopeGlobal)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestTemplateName(t *testing.T) {
	assert.Equal(t, "pages/index.html", gotpl.TemplateName("./pages/index.html"))
	assert.Equal(t, "pages/index.html", gotpl.TemplateName(`pages\index.html`))
}

func TestEmitter_Emit(t *testing.T) {
	ctx := context.Background()

	t.Run("Round Trip", func(t *testing.T) {
		code := compileUnit(t, "pages/hello.html", "Hello {{.Name}}!")

		emitted, err := gotpl.NewEmitter().Emit(ctx, code)
		require.NoError(t, err)
		assert.Equal(t, "pages/hello.html", emitted.Name)
		assert.Equal(t, "Hello {{.Name}}!", string(emitted.Bytes))
		assert.Empty(t, emitted.Warnings)
	})

	t.Run("Defined Sub Templates Are Preserved", func(t *testing.T) {
		code := compileUnit(t, "layouts/base.html",
			`{{template "header" .}}{{define "header"}}<header>{{.Site}}</header>{{end}}`)

		emitted, err := gotpl.NewEmitter().Emit(ctx, code)
		require.NoError(t, err)
		assert.Contains(t, string(emitted.Bytes), `{{define "header"}}`)
		assert.Empty(t, emitted.Warnings, "references to templates defined in the unit are not external")
	})

	t.Run("External Reference Warning", func(t *testing.T) {
		code := compileUnit(t, "pages/index.html", `{{template "nav" .}}`)

		emitted, err := gotpl.NewEmitter().Emit(ctx, code)
		require.NoError(t, err)
		require.Len(t, emitted.Warnings, 1)
		assert.Equal(t, domain.SeverityInfo, emitted.Warnings[0].Severity)
		assert.Contains(t, emitted.Warnings[0].Message, `"nav"`)
	})

	t.Run("Empty Body Warning", func(t *testing.T) {
		code := compileUnit(t, "partials/todo.html", "   \n\t")

		emitted, err := gotpl.NewEmitter().Emit(ctx, code)
		require.NoError(t, err)
		require.NotEmpty(t, emitted.Warnings)
		assert.Equal(t, domain.SeverityWarning, emitted.Warnings[0].Severity)
	})

	t.Run("Debug Manifest Lists Nodes", func(t *testing.T) {
		code := compileUnit(t, "pages/index.html", "<h1>{{.Title}}</h1>")

		emitted, err := gotpl.NewEmitter().Emit(ctx, code)
		require.NoError(t, err)

		var manifest struct {
			Template string `json:"template"`
			Nodes    []struct {
				Tree string `json:"tree"`
				Type string `json:"type"`
				Pos  int    `json:"pos"`
			} `json:"nodes"`
		}
		require.NoError(t, json.Unmarshal(emitted.DebugBytes, &manifest))
		assert.Equal(t, "pages/index.html", manifest.Template)
		assert.NotEmpty(t, manifest.Nodes)
	})

	t.Run("Foreign Generated Code", func(t *testing.T) {
		_, err := gotpl.NewEmitter().Emit(ctx, foreignCode{})
		require.ErrorIs(t, err, domain.ErrForeignGeneratedCode)
	})
}

type foreignCode struct{}

func (foreignCode) TemplateName() string { return "foreign" }

func TestLoader_Load(t *testing.T) {
	t.Run("Render", func(t *testing.T) {
		code := compileUnit(t, "pages/hello.html", "Hello {{.Name}}!")
		emitted, err := gotpl.NewEmitter().Emit(context.Background(), code)
		require.NoError(t, err)

		prog, err := gotpl.NewLoader(nil).Load(emitted.Name, emitted.Bytes, emitted.DebugBytes)
		require.NoError(t, err)
		assert.Equal(t, "pages/hello.html", prog.Name())

		var buf bytes.Buffer
		require.NoError(t, prog.Render(&buf, map[string]string{"Name": "World"}))
		assert.Equal(t, "Hello World!", buf.String())
	})

	t.Run("Contextual Escaping", func(t *testing.T) {
		prog, err := gotpl.NewLoader(nil).Load("x", []byte("<p>{{.V}}</p>"), nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, prog.Render(&buf, map[string]string{"V": "<script>"}))
		assert.Equal(t, "<p>&lt;script&gt;</p>", buf.String())
	})

	t.Run("Invalid Bytes", func(t *testing.T) {
		_, err := gotpl.NewLoader(nil).Load("x", []byte("{{"), nil)
		require.ErrorIs(t, err, domain.ErrLoadFailed)
	})
}
