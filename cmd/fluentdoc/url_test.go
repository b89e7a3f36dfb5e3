package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/fluentdoc"
	main "github.com/fwojciec/fluentdoc/cmd/fluentdoc"
	"github.com/fwojciec/fluentdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches a section by its document path", func(t *testing.T) {
		t.Parallel()

		retriever := &mock.Retriever{
			FetchByPathFn: func(_ context.Context, path string) (*fluentdoc.DocContent, error) {
				require.Equal(t, "corp/v252/en/flu_ug/flu_ug_mesh.html", path)
				return &fluentdoc.DocContent{
					Title:   "Flu Ug Mesh",
					URL:     "https://ansyshelp.ansys.com/public//Views/Secured/corp/v252/en/flu_ug/flu_ug_mesh.html",
					Content: "Meshing guidance.",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Catalog:   fluentdoc.DefaultCatalog(""),
			Retriever: retriever,
		}

		cmd := &main.URLCmd{Path: "corp/v252/en/flu_ug/flu_ug_mesh.html"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# Flu Ug Mesh")
		assert.Contains(t, stdout.String(), "Meshing guidance.")
	})

	t.Run("writes content to the output file instead of stdout", func(t *testing.T) {
		t.Parallel()

		retriever := &mock.Retriever{
			FetchByPathFn: func(_ context.Context, _ string) (*fluentdoc.DocContent, error) {
				return &fluentdoc.DocContent{
					Title:   "Flu Ug Mesh",
					URL:     "https://example.com/flu_ug_mesh.html",
					Content: "Meshing guidance.",
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Catalog:   fluentdoc.DefaultCatalog(""),
			Retriever: retriever,
		}

		output := filepath.Join(t.TempDir(), "mesh.txt")
		cmd := &main.URLCmd{Path: "corp/v252/en/flu_ug/flu_ug_mesh.html", Output: output}

		err := cmd.Run(deps)

		require.NoError(t, err)

		written, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Equal(t, "Meshing guidance.", string(written))
		assert.NotContains(t, stdout.String(), "Meshing guidance.")
		assert.Contains(t, stdout.String(), output)
	})

	t.Run("derives the guide from the path when archiving", func(t *testing.T) {
		t.Parallel()

		retriever := &mock.Retriever{
			FetchByPathFn: func(_ context.Context, _ string) (*fluentdoc.DocContent, error) {
				return &fluentdoc.DocContent{
					Title:   "Flu Tcl Intro",
					URL:     "https://example.com/flu_tcl_intro.html",
					Content: "content",
				}, nil
			},
		}

		var saved *fluentdoc.SavedDocument
		archive := &mock.ArchiveService{
			SaveDocumentFn: func(_ context.Context, doc *fluentdoc.SavedDocument) error {
				saved = doc
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    stderr,
			Catalog:   fluentdoc.DefaultCatalog(""),
			Retriever: retriever,
			Archive:   archive,
		}

		cmd := &main.URLCmd{Path: "corp/v252/en/flu_tcl/flu_tcl_intro.html", Save: true}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "tui", saved.Guide)
		assert.Equal(t, "corp/v252/en/flu_tcl/flu_tcl_intro.html", saved.DocPath)
	})
}
