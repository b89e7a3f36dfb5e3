package fluentdoc_test

import (
	"testing"

	"github.com/fwojciec/fluentdoc"
	"github.com/stretchr/testify/assert"
)

func TestParseTocEntry(t *testing.T) {
	t.Parallel()

	t.Run("splits dotted section number from title", func(t *testing.T) {
		t.Parallel()

		entry := fluentdoc.ParseTocEntry(fluentdoc.TocLink{
			Text: "4.4.3. SST k-ω Model",
			Href: "https://example.com/flu_th_sec_turb_kw_sst.html",
		})

		assert.Equal(t, "4.4.3", entry.SectionNumber)
		assert.Equal(t, "SST k-ω Model", entry.Title)
		assert.Equal(t, "https://example.com/flu_th_sec_turb_kw_sst.html", entry.URL)
	})

	t.Run("handles single-level chapter numbers", func(t *testing.T) {
		t.Parallel()

		entry := fluentdoc.ParseTocEntry(fluentdoc.TocLink{Text: "4. Turbulence"})

		assert.Equal(t, "4", entry.SectionNumber)
		assert.Equal(t, "Turbulence", entry.Title)
	})

	t.Run("leaves unnumbered text whole", func(t *testing.T) {
		t.Parallel()

		entry := fluentdoc.ParseTocEntry(fluentdoc.TocLink{Text: "Overview"})

		assert.Equal(t, "", entry.SectionNumber)
		assert.Equal(t, "Overview", entry.Title)
	})

	t.Run("does not treat version-like words as numbers", func(t *testing.T) {
		t.Parallel()

		entry := fluentdoc.ParseTocEntry(fluentdoc.TocLink{Text: "Using the 2025 R2 Release"})

		assert.Equal(t, "", entry.SectionNumber)
		assert.Equal(t, "Using the 2025 R2 Release", entry.Title)
	})
}

func TestParseTocEntries(t *testing.T) {
	t.Parallel()

	t.Run("preserves document order", func(t *testing.T) {
		t.Parallel()

		entries := fluentdoc.ParseTocEntries([]fluentdoc.TocLink{
			{Text: "4. Turbulence", Href: "a"},
			{Text: "4.1. Introduction", Href: "b"},
			{Text: "Overview", Href: "c"},
		})

		assert.Len(t, entries, 3)
		assert.Equal(t, "Turbulence", entries[0].Title)
		assert.Equal(t, "Introduction", entries[1].Title)
		assert.Equal(t, "Overview", entries[2].Title)
	})

	t.Run("returns nil for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, fluentdoc.ParseTocEntries(nil))
	})
}
