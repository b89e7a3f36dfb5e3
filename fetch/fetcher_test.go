package fetch_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/fluentdoc"
	"github.com/fwojciec/fluentdoc/fetch"
	"github.com/fwojciec/fluentdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture wires a mock session with a single content frame serving canned
// page bodies keyed by URL.
type fixture struct {
	session *mock.Session
	frame   *mock.Frame

	landingNavs int
	frameNavs   []string
	bodies      map[string]string
	frameURL    string
}

func newFixture(catalog *fluentdoc.Catalog) *fixture {
	fx := &fixture{bodies: map[string]string{}}

	fx.frame = &mock.Frame{
		NavigateFn: func(_ context.Context, url string) error {
			fx.frameNavs = append(fx.frameNavs, url)
			fx.frameURL = url
			return nil
		},
		InnerTextFn: func(_ context.Context, _ string) (string, error) {
			return fx.bodies[fx.frameURL], nil
		},
		URLFn: func(_ context.Context) (string, error) {
			return fx.frameURL, nil
		},
	}

	fx.session = &mock.Session{
		NavigateFn: func(_ context.Context, url string) error {
			if url == catalog.LandingURL {
				fx.landingNavs++
			}
			return nil
		},
		FramesFn: func(_ context.Context) ([]fluentdoc.Frame, error) {
			return []fluentdoc.Frame{&mock.Frame{}, fx.frame}, nil
		},
	}

	return fx
}

func newFetcher(t *testing.T, fx *fixture, catalog *fluentdoc.Catalog, opts ...fetch.Option) *fetch.Fetcher {
	t.Helper()

	tocLinks := &mock.TocLinkExtractor{
		ExtractTocLinksFn: func(_, _, _ string) ([]fluentdoc.TocLink, error) {
			return nil, nil
		},
	}

	opts = append([]fetch.Option{
		fetch.WithSettle(0),
		fetch.WithNavInterval(0),
	}, opts...)

	f, err := fetch.NewFetcher(fx.session, catalog, tocLinks, opts...)
	require.NoError(t, err)
	return f
}

func TestNewFetcher(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid catalog at construction", func(t *testing.T) {
		t.Parallel()

		catalog := fluentdoc.DefaultCatalog("")
		catalog.Guides = nil
		fx := newFixture(catalog)

		_, err := fetch.NewFetcher(fx.session, catalog, &mock.TocLinkExtractor{})

		require.Error(t, err)
		assert.Equal(t, fluentdoc.EINVALID, fluentdoc.ErrorCode(err))
	})

	t.Run("rejects nil session", func(t *testing.T) {
		t.Parallel()

		_, err := fetch.NewFetcher(nil, fluentdoc.DefaultCatalog(""), &mock.TocLinkExtractor{})

		require.Error(t, err)
		assert.Equal(t, fluentdoc.EINVALID, fluentdoc.ErrorCode(err))
	})
}

func TestFetchByPath(t *testing.T) {
	t.Parallel()

	catalogFor := func() *fluentdoc.Catalog { return fluentdoc.DefaultCatalog("") }

	t.Run("fetches content and derives a heuristic title", func(t *testing.T) {
		t.Parallel()

		catalog := catalogFor()
		fx := newFixture(catalog)
		path := "corp/v252/en/flu_th/flu_th_sec_turb_kw_sst.html"
		fx.bodies[catalog.SecuredPrefix+path] = "chrome stuff PRINT PAGE\n4.4.3. SST k-ω Model body text"
		f := newFetcher(t, fx, catalog)

		doc, err := f.FetchByPath(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, "Flu Th Sec Turb Kw Sst", doc.Title)
		assert.Equal(t, "4.4.3. SST k-ω Model body text", doc.Content)
		assert.Equal(t, catalog.SecuredPrefix+path, doc.URL)
		assert.Equal(t, []string{"Flu Th Sec Turb Kw Sst"}, doc.Breadcrumb)
	})

	t.Run("establishes the session exactly once across fetches", func(t *testing.T) {
		t.Parallel()

		catalog := catalogFor()
		fx := newFixture(catalog)
		fx.bodies[catalog.SecuredPrefix+"a.html"] = "PRINT PAGE a"
		fx.bodies[catalog.SecuredPrefix+"b.html"] = "PRINT PAGE b"
		f := newFetcher(t, fx, catalog)

		_, err := f.FetchByPath(context.Background(), "a.html")
		require.NoError(t, err)
		_, err = f.FetchByPath(context.Background(), "b.html")
		require.NoError(t, err)

		assert.Equal(t, 1, fx.landingNavs)
	})

	t.Run("treats a not-found body as a miss regardless of length", func(t *testing.T) {
		t.Parallel()

		catalog := catalogFor()
		fx := newFixture(catalog)
		fx.bodies[catalog.SecuredPrefix+"gone.html"] = "Sorry, The Page Cannot Be Found on this server. Lots of other text follows here."
		f := newFetcher(t, fx, catalog)

		_, err := f.FetchByPath(context.Background(), "gone.html")

		require.Error(t, err)
		assert.Equal(t, fluentdoc.ENOTFOUND, fluentdoc.ErrorCode(err))
	})

	t.Run("treats the not-found route as a miss", func(t *testing.T) {
		t.Parallel()

		catalog := catalogFor()
		fx := newFixture(catalog)
		fx.frame.URLFn = func(_ context.Context) (string, error) {
			return catalog.BaseURL + "/public/PageNotfound.html", nil
		}
		fx.bodies[catalog.SecuredPrefix+"gone.html"] = "some placeholder body"
		f := newFetcher(t, fx, catalog)

		_, err := f.FetchByPath(context.Background(), "gone.html")

		require.Error(t, err)
		assert.Equal(t, fluentdoc.ENOTFOUND, fluentdoc.ErrorCode(err))
	})

	t.Run("treats navigation failure as a miss", func(t *testing.T) {
		t.Parallel()

		catalog := catalogFor()
		fx := newFixture(catalog)
		fx.frame.NavigateFn = func(_ context.Context, _ string) error {
			return errors.New("net::ERR_TIMED_OUT")
		}
		f := newFetcher(t, fx, catalog)

		_, err := f.FetchByPath(context.Background(), "x.html")

		require.Error(t, err)
		assert.Equal(t, fluentdoc.ENOTFOUND, fluentdoc.ErrorCode(err))
	})

	t.Run("keeps body intact when no print marker is present", func(t *testing.T) {
		t.Parallel()

		catalog := catalogFor()
		fx := newFixture(catalog)
		fx.bodies[catalog.SecuredPrefix+"plain.html"] = "just the content"
		f := newFetcher(t, fx, catalog)

		doc, err := f.FetchByPath(context.Background(), "plain.html")

		require.NoError(t, err)
		assert.Equal(t, "just the content", doc.Content)
	})

	t.Run("fails with session code when landing navigation fails", func(t *testing.T) {
		t.Parallel()

		catalog := catalogFor()
		fx := newFixture(catalog)
		fx.session.NavigateFn = func(_ context.Context, _ string) error {
			return errors.New("connection refused")
		}
		f := newFetcher(t, fx, catalog)

		_, err := f.FetchByPath(context.Background(), "x.html")

		require.Error(t, err)
		assert.Equal(t, fluentdoc.ESESSION, fluentdoc.ErrorCode(err))
	})

	t.Run("fails with session code when the content frame is missing", func(t *testing.T) {
		t.Parallel()

		catalog := catalogFor()
		fx := newFixture(catalog)
		fx.session.FramesFn = func(_ context.Context) ([]fluentdoc.Frame, error) {
			return []fluentdoc.Frame{&mock.Frame{}}, nil
		}
		f := newFetcher(t, fx, catalog)

		_, err := f.FetchByPath(context.Background(), "x.html")

		require.Error(t, err)
		assert.Equal(t, fluentdoc.ESESSION, fluentdoc.ErrorCode(err))
	})

	t.Run("uses markdown pipeline when configured", func(t *testing.T) {
		t.Parallel()

		catalog := catalogFor()
		fx := newFixture(catalog)
		fx.bodies[catalog.SecuredPrefix+"md.html"] = "PRINT PAGE text fallback"
		fx.frame.HTMLFn = func(_ context.Context) (string, error) {
			return "<html><main><h1>Title</h1></main></html>", nil
		}
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*fluentdoc.ExtractResult, error) {
				return &fluentdoc.ExtractResult{ContentHTML: "<h1>Title</h1>"}, nil
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "# Title", nil
			},
		}
		f := newFetcher(t, fx, catalog, fetch.WithMarkdown(extractor, converter))

		doc, err := f.FetchByPath(context.Background(), "md.html")

		require.NoError(t, err)
		assert.Equal(t, "# Title", doc.Content)
	})

	t.Run("falls back to text content when extraction fails", func(t *testing.T) {
		t.Parallel()

		catalog := catalogFor()
		fx := newFixture(catalog)
		fx.bodies[catalog.SecuredPrefix+"md.html"] = "PRINT PAGE text fallback"
		extractor := &mock.Extractor{
			ExtractFn: func(html string) (*fluentdoc.ExtractResult, error) {
				return nil, errors.New("no main content")
			},
		}
		converter := &mock.Converter{
			ConvertFn: func(html string) (string, error) { return "", nil },
		}
		f := newFetcher(t, fx, catalog, fetch.WithMarkdown(extractor, converter))

		doc, err := f.FetchByPath(context.Background(), "md.html")

		require.NoError(t, err)
		assert.Equal(t, "text fallback", doc.Content)
	})
}

func TestFetchByKey(t *testing.T) {
	t.Parallel()

	t.Run("resolves key to fixed path and display name", func(t *testing.T) {
		t.Parallel()

		catalog := fluentdoc.DefaultCatalog("")
		fx := newFixture(catalog)
		path := catalog.Keys["k_omega_sst"].Path
		fx.bodies[catalog.SecuredPrefix+path] = "PRINT PAGE The SST model blends..."
		f := newFetcher(t, fx, catalog)

		doc, err := f.FetchByKey(context.Background(), "k_omega_sst")

		require.NoError(t, err)
		assert.Equal(t, "SST k-ω Model", doc.Title)
		assert.Equal(t, "The SST model blends...", doc.Content)
		assert.Equal(t, []string{
			"Fluent Theory Guide",
			"4. Turbulence",
			"4.4. Standard, BSL, and SST k-ω Models",
			"4.4.3. SST k-ω Model",
		}, doc.Breadcrumb)
	})

	t.Run("rejects unknown keys without touching the session", func(t *testing.T) {
		t.Parallel()

		catalog := fluentdoc.DefaultCatalog("")
		fx := newFixture(catalog)
		fx.session.NavigateFn = func(_ context.Context, _ string) error {
			t.Fatal("session should not be touched for an unknown key")
			return nil
		}
		f := newFetcher(t, fx, catalog)

		_, err := f.FetchByKey(context.Background(), "warp_drive")

		require.Error(t, err)
		assert.Equal(t, fluentdoc.EINVALID, fluentdoc.ErrorCode(err))
		assert.Equal(t, 0, fx.landingNavs)
	})
}

func TestTitleFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"corp/v252/en/flu_th/flu_th_sec_turb_kw_sst.html", "Flu Th Sec Turb Kw Sst"},
		{"flu_ug_bcs.html", "Flu Ug Bcs"},
		{"plain", "Plain"},
		{"dir/other.file.html", "Other.file"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, fetch.TitleFromPath(tt.path), tt.path)
	}
}

func TestTrimPrintChrome(t *testing.T) {
	t.Parallel()

	t.Run("drops everything through the marker", func(t *testing.T) {
		t.Parallel()

		got := fetch.TrimPrintChrome("toc one\ntoc two\nPRINT PAGE\n  core content  ")

		assert.Equal(t, "core content", got)
	})

	t.Run("returns body unchanged without marker", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "no marker here", fetch.TrimPrintChrome("no marker here"))
	})
}
