// Package rod implements the browsing-context capability using Chrome
// browser automation.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/fluentdoc"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Session implements fluentdoc.Session at compile time.
var _ fluentdoc.Session = (*Session)(nil)

// stealthScript hides the automation flag the help site's scripts probe for.
const stealthScript = "Object.defineProperty(navigator, 'webdriver', { get: () => undefined });"

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Session drives one Chrome page and its embedded frames. It owns the
// launched browser process; Close must be called on every exit path or the
// OS-level browser process leaks.
//
// Session is not safe for concurrent use; all operations are sequential.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	closed   atomic.Bool
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	headless  bool
	userAgent string
}

// WithHeadless controls whether the browser runs headless. Defaults to true.
func WithHeadless(headless bool) SessionOption {
	return func(c *sessionConfig) { c.headless = headless }
}

// WithUserAgent overrides the user agent presented to the site.
func WithUserAgent(ua string) SessionOption {
	return func(c *sessionConfig) { c.userAgent = ua }
}

// NewSession launches a Chrome browser and opens a single page for the
// session's lifetime. Returns an error if Chrome/Chromium cannot be found
// or launched.
func NewSession(opts ...SessionOption) (*Session, error) {
	cfg := &sessionConfig{
		headless:  true,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	lnchr := launcher.New().
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-background-timer-throttling").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(cfg.headless)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: cfg.userAgent}); err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("setting user agent: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1280,
		Height:            900,
		DeviceScaleFactor: 1,
	}); err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("setting viewport: %w", err)
	}

	if _, err := page.EvalOnNewDocument(stealthScript); err != nil {
		_ = browser.Close()
		lnchr.Kill()
		return nil, fmt.Errorf("installing stealth script: %w", err)
	}

	return &Session{browser: browser, launcher: lnchr, page: page}, nil
}

// Navigate drives the top-level page to url and waits for the load event.
func (s *Session) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// Click clicks the first element matching the CSS selector. Returns an
// error if no such element appears before the context expires.
func (s *Session) Click(ctx context.Context, selector string) error {
	page := s.page.Context(ctx)
	el, err := page.Element(selector)
	if err != nil {
		return err
	}
	return el.Click(proto.InputMouseButtonLeft, 1)
}

// Frames lists the page and its iframes in registration order. Index 0 is
// the top-level page itself; embedded frames follow in DOM order.
func (s *Session) Frames(ctx context.Context) ([]fluentdoc.Frame, error) {
	page := s.page.Context(ctx)
	frames := []fluentdoc.Frame{&frame{page: page}}

	els, err := page.Elements("iframe")
	if err != nil {
		return frames, nil
	}
	for _, el := range els {
		fp, err := el.Frame()
		if err != nil {
			continue
		}
		frames = append(frames, &frame{page: fp.Context(ctx)})
	}
	return frames, nil
}

// Close releases the browser and its launcher process. Safe to call more
// than once.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	var err error
	if s.browser != nil {
		err = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (s *Session) LauncherPID() int {
	if s.launcher == nil {
		return 0
	}
	return s.launcher.PID()
}

// frame adapts a rod page (top-level or iframe) to fluentdoc.Frame.
type frame struct {
	page *rod.Page
}

var _ fluentdoc.Frame = (*frame)(nil)

func (f *frame) Navigate(ctx context.Context, url string) error {
	page := f.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

func (f *frame) InnerText(ctx context.Context, selector string) (string, error) {
	el, err := f.page.Context(ctx).Element(selector)
	if err != nil {
		return "", err
	}
	return el.Text()
}

func (f *frame) HTML(ctx context.Context) (string, error) {
	return f.page.Context(ctx).HTML()
}

func (f *frame) Eval(ctx context.Context, js string) (string, error) {
	obj, err := f.page.Context(ctx).Eval("() => " + js)
	if err != nil {
		return "", err
	}
	return obj.Value.JSON("", ""), nil
}

func (f *frame) URL(ctx context.Context) (string, error) {
	info, err := f.page.Context(ctx).Info()
	if err != nil {
		return "", err
	}
	return info.URL, nil
}
