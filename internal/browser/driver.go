// Package browser drives term.ooo in a Chromium instance through rod.
//
// Driver satisfies the solver's Submitter, Observer and Restarter
// contracts: it types guesses on the on-screen keyboard and reads tile
// accessibility labels back.
package browser

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/termo-solver/internal/game"
)

// Page structure of term.ooo.
const (
	boardSelector = "#hold"
	rowSelector   = "wc-row"
	cellSelector  = "div"
	labelAttr     = "aria-label"
	enterKey      = "#kbd_enter"
)

var variantPaths = map[game.Variant]string{
	game.Termo:    "/",
	game.Dueto:    "/2/",
	game.Quarteto: "/4/",
}

// Config holds browser configuration.
type Config struct {
	BaseURL  string        // e.g. https://term.ooo
	Headless bool          // run without a window
	Bin      string        // browser binary; empty lets the launcher find one
	Settle   time.Duration // wait after enter before reading tiles
}

// DefaultConfig returns the settings used against the public site.
func DefaultConfig() Config {
	return Config{
		BaseURL:  "https://term.ooo",
		Headless: true,
		Settle:   1400 * time.Millisecond,
	}
}

// URL returns the page of variant v under base.
func URL(base string, v game.Variant) string {
	return strings.TrimRight(base, "/") + variantPaths[v]
}

// Driver owns one browser playing one variant. Every game runs in its own
// incognito context, so the site's saved progress never leaks into the
// next one.
type Driver struct {
	cfg      Config
	variant  game.Variant
	launcher *launcher.Launcher
	browser  *rod.Browser
	session  *rod.Browser // incognito context of the current game
	page     *rod.Page
	log      zerolog.Logger
}

// Open launches a browser and loads the page of v.
func Open(ctx context.Context, cfg Config, v game.Variant) (*Driver, error) {
	l := launcher.New().Headless(cfg.Headless)
	if cfg.Bin != "" {
		l = l.Bin(cfg.Bin)
	}
	controlURL, err := l.Context(ctx).Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		l.Cleanup()
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	d := &Driver{
		cfg:      cfg,
		variant:  v,
		launcher: l,
		browser:  b,
		log:      log.With().Str("component", "browser").Str("variant", v.String()).Logger(),
	}
	if err := d.NewGame(ctx); err != nil {
		_ = d.Close()
		return nil, err
	}
	return d, nil
}

// NewGame opens the variant's page in a fresh incognito context and
// dismisses the help dialog. The previous game's context is discarded with
// its local storage.
func (d *Driver) NewGame(ctx context.Context) error {
	if err := d.closeSession(); err != nil {
		d.log.Warn().Err(err).Msg("close previous game")
	}
	inc, err := d.browser.Incognito()
	if err != nil {
		return fmt.Errorf("incognito context: %w", err)
	}
	page, err := inc.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = inc.Close()
		return fmt.Errorf("open page: %w", err)
	}
	d.session, d.page = inc, page

	url := URL(d.cfg.BaseURL, d.variant)
	p := page.Context(ctx)
	if err := p.Navigate(url); err != nil {
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	if err := p.WaitLoad(); err != nil {
		return fmt.Errorf("wait load: %w", err)
	}
	if err := p.Mouse.MoveTo(proto.Point{X: 0, Y: 0}); err != nil {
		return fmt.Errorf("move mouse: %w", err)
	}
	if err := p.Mouse.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("dismiss dialog: %w", err)
	}
	d.log.Info().Str("url", url).Msg("page loaded")
	return nil
}

// Submit clicks each letter of word on the on-screen keyboard, then enter,
// and waits for the tiles to settle.
func (d *Driver) Submit(ctx context.Context, word string) error {
	p := d.page.Context(ctx)
	for _, r := range word {
		if err := click(p, keySelector(r)); err != nil {
			return err
		}
	}
	if err := click(p, enterKey); err != nil {
		return err
	}
	d.log.Debug().Str("word", word).Msg("submitted")

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d.cfg.Settle):
		return nil
	}
}

func click(p *rod.Page, selector string) error {
	els, err := queryAll(p, selector)
	if err != nil {
		return fmt.Errorf("find %s: %w", selector, err)
	}
	if len(els) == 0 {
		return fmt.Errorf("no %s on page", selector)
	}
	if err := els[0].Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %s: %w", selector, err)
	}
	return nil
}

// ObserveRow reads the tiles of one row on one board.
func (d *Driver) ObserveRow(ctx context.Context, board, row int) (game.RawRow, error) {
	p := d.page.Context(ctx)
	boards, err := queryAll(p, boardSelector)
	if err != nil {
		return nil, fmt.Errorf("find boards: %w", err)
	}
	if board < 0 || board >= len(boards) {
		return nil, fmt.Errorf("board %d of %d on page", board, len(boards))
	}
	rows, err := queryAll(boards[board], rowSelector)
	if err != nil {
		return nil, fmt.Errorf("find rows: %w", err)
	}
	if row < 0 || row >= len(rows) {
		return nil, fmt.Errorf("row %d of %d on board %d", row, len(rows), board)
	}
	cells, err := queryAll(rows[row], cellSelector)
	if err != nil {
		return nil, fmt.Errorf("find cells: %w", err)
	}

	out := make(game.RawRow, 0, len(cells))
	for _, c := range cells {
		label, err := c.Attribute(labelAttr)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", labelAttr, err)
		}
		var s string
		if label != nil {
			s = *label
		}
		out = append(out, game.RawCell{Char: parseLabel(s), Signal: s})
	}
	d.log.Debug().Int("board", board).Int("row", row).Interface("cells", out).Msg("observed row")
	return out, nil
}

// Close shuts the browser down.
func (d *Driver) Close() error {
	err := d.closeSession()
	if d.browser != nil {
		if cerr := d.browser.Close(); err == nil {
			err = cerr
		}
	}
	if d.launcher != nil {
		d.launcher.Cleanup()
	}
	return err
}

func (d *Driver) closeSession() error {
	if d.session == nil {
		return nil
	}
	inc := d.session
	d.session, d.page = nil, nil
	return inc.Close()
}

// The site renders boards, rows and keyboard as web components, so plain
// document queries miss them. deepQuery walks every open shadow root under
// this (an element, or the document) and returns the matches in tree order.
const deepQuery = `function (sel) {
	const out = [];
	const walk = (root) => {
		for (const el of root.querySelectorAll('*')) {
			if (el.matches(sel)) out.push(el);
			if (el.shadowRoot) walk(el.shadowRoot);
		}
	};
	const start = (this && this.nodeType === 1) ? this : document;
	if (start.shadowRoot) walk(start.shadowRoot);
	walk(start);
	return out;
}`

type jsQuerier interface {
	ElementsByJS(opts *rod.EvalOptions) (rod.Elements, error)
}

// queryAll finds selector under q, looking inside shadow roots.
func queryAll(q jsQuerier, selector string) (rod.Elements, error) {
	return q.ElementsByJS(rod.Eval(deepQuery, selector))
}

var quoted = regexp.MustCompile(`"([^"]*)"`)

// parseLabel extracts the quoted letter of a tile label such as
// `letra "A" correta`. It returns "" when there is none.
func parseLabel(label string) string {
	m := quoted.FindStringSubmatch(label)
	if m == nil {
		return ""
	}
	return m[1]
}

// keySelector is the on-screen keyboard button for r.
func keySelector(r rune) string {
	return "#kbd_" + strings.ToLower(string(r))
}
