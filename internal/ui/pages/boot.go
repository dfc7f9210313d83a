package pages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"couchnav/internal/domain"
	"couchnav/internal/logger"
)

// Boot shows a splash until the catalog is loaded. It has no sections, so
// every key except Back is swallowed.
type Boot struct {
	*base
	err error
}

// NewBoot creates the boot page
func NewBoot(env *Env) *Boot {
	cfg := env.pageConfig(RouteBoot)
	cfg.HasHeader = false
	cfg.History = false
	cfg.AutoInitialFocus = false
	return &Boot{base: newBase(env, cfg)}
}

func (p *Boot) Update(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(CatalogLoadedMsg)
	if !ok {
		return nil
	}
	if loaded.Err != nil {
		p.err = loaded.Err
		return nil
	}
	logger.Get().Info("catalog ready, leaving boot")
	if p.env.Router != nil {
		p.env.Router.Redirect(RouteHome, domain.RouteParams{})
	}
	return nil
}

// Err is the catalog load error, if any
func (p *Boot) Err() error { return p.err }

func (p *Boot) View() string {
	s := p.env.Styles
	text := s.Splash.Render("couchnav") + "\n\n" + s.StatusLoading.Render("Loading catalog…")
	if p.err != nil {
		text = s.Splash.Render("couchnav") + "\n\n" + s.StatusError.Render(fmt.Sprintf("Could not load catalog: %v", p.err))
	}
	p.canvas.Compose(nil)
	return lipgloss.Place(p.env.Size.Width, p.env.Viewport(), lipgloss.Center, lipgloss.Center, text)
}
