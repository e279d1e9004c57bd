// Package nav holds the screen-navigation state machine of the AstroAI
// client. Which screen is current is always derived through the session's
// authentication flag, so an expired session can never leave the user parked
// on an authenticated screen.
package nav

import "sync"

// Screen identifies one of the client's five screens.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenLogin
	ScreenRegister
	ScreenDashboard
	ScreenSettings
)

func (s Screen) String() string {
	switch s {
	case ScreenLogin:
		return "login"
	case ScreenRegister:
		return "register"
	case ScreenDashboard:
		return "dashboard"
	case ScreenSettings:
		return "settings"
	default:
		return "welcome"
	}
}

// SessionState is the authentication gate the controller consults on every
// read. Satisfied by services.SessionService.
type SessionState interface {
	IsAuthenticated() bool
}

// Controller tracks navigation intent in two independent halves: which
// unauthenticated screen is selected (welcome, login or register) and whether
// the authenticated side sits on settings rather than the dashboard. Current
// picks the half that applies. Invalid transitions are no-ops.
type Controller struct {
	session SessionState

	mu       sync.Mutex
	unauth   Screen
	settings bool
}

func NewController(session SessionState) *Controller {
	return &Controller{session: session, unauth: ScreenWelcome}
}

// Current derives the visible screen from the session flag.
func (c *Controller) Current() Screen {
	authed := c.session.IsAuthenticated()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !authed {
		return c.unauth
	}
	if c.settings {
		return ScreenSettings
	}
	return ScreenDashboard
}

// GoLogin selects the login screen. Ignored while authenticated.
func (c *Controller) GoLogin() {
	c.setUnauth(ScreenLogin)
}

// GoRegister selects the register screen. Ignored while authenticated.
func (c *Controller) GoRegister() {
	c.setUnauth(ScreenRegister)
}

func (c *Controller) setUnauth(s Screen) {
	if c.session.IsAuthenticated() {
		return
	}
	c.mu.Lock()
	c.unauth = s
	c.mu.Unlock()
}

// OpenSettings moves from the dashboard to settings. Ignored while
// unauthenticated.
func (c *Controller) OpenSettings() {
	if !c.session.IsAuthenticated() {
		return
	}
	c.mu.Lock()
	c.settings = true
	c.mu.Unlock()
}

// Back returns from settings to the dashboard, or from login/register to the
// welcome screen. Anywhere else it is a no-op.
func (c *Controller) Back() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.session.IsAuthenticated() {
		c.settings = false
		return
	}
	c.unauth = ScreenWelcome
}

// Reset clears all navigation intent. Called after a successful login or
// register, so the authenticated side starts on the dashboard, and after a
// logout, so the unauthenticated side lands on the welcome screen.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.unauth = ScreenWelcome
	c.settings = false
	c.mu.Unlock()
}
