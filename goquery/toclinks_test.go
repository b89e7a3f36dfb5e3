package goquery_test

import (
	"testing"

	"github.com/fwojciec/fluentdoc"
	"github.com/fwojciec/fluentdoc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tocBase = "https://ansyshelp.ansys.com/public//Views/Secured/corp/v252/en/flu_th/flu_th.html"

func TestExtractTocLinks(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewTocLinkExtractor()

	t.Run("keeps marked anchors in document order with resolved hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="flu_th_turb.html">4. Turbulence</a>
			<a href="flu_th_sec_turb_kw_sst.html">4.4.3. SST k-ω Model</a>
			<a href="https://ansyshelp.ansys.com/public//Views/Secured/corp/v252/en/flu_th/flu_th_hxfer.html">5. Heat Transfer</a>
		</body></html>`

		links, err := extractor.ExtractTocLinks(html, tocBase, "/flu_")

		require.NoError(t, err)
		require.Len(t, links, 3)
		assert.Equal(t, "4. Turbulence", links[0].Text)
		assert.Equal(t, "https://ansyshelp.ansys.com/public//Views/Secured/corp/v252/en/flu_th/flu_th_turb.html", links[0].Href)
		assert.Equal(t, "4.4.3. SST k-ω Model", links[1].Text)
		assert.Equal(t, "5. Heat Transfer", links[2].Text)
	})

	t.Run("skips PDFs, unmarked links, and empty-text anchors", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="flu_th.pdf">4. Turbulence (PDF)</a>
			<a href="/account/login">Sign In</a>
			<a href="flu_th_turb.html"><img src="icon.png"/></a>
			<a href="flu_th_turb.html">4. Turbulence</a>
		</body></html>`

		links, err := extractor.ExtractTocLinks(html, tocBase, "/flu_")

		require.NoError(t, err)
		require.Len(t, links, 1)
		assert.Equal(t, "4. Turbulence", links[0].Text)
	})

	t.Run("keeps duplicate hrefs in order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="flu_th_turb.html">4. Turbulence</a>
			<a href="flu_th_turb.html">Turbulence (repeat)</a>
		</body></html>`

		links, err := extractor.ExtractTocLinks(html, tocBase, "/flu_")

		require.NoError(t, err)
		require.Len(t, links, 2)
		assert.Equal(t, links[0].Href, links[1].Href)
	})

	t.Run("rejects an unparseable base URL", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.ExtractTocLinks("<html/>", "://bad", "/flu_")

		require.Error(t, err)
		assert.Equal(t, fluentdoc.EINVALID, fluentdoc.ErrorCode(err))
	})

	t.Run("returns no links for empty HTML", func(t *testing.T) {
		t.Parallel()

		links, err := extractor.ExtractTocLinks("", tocBase, "/flu_")

		require.NoError(t, err)
		assert.Empty(t, links)
	})
}
