// Package guard maps application routes to the roles allowed to see them.
package guard

import (
	"fmt"
	"strings"

	"github.com/dtroode/repairctl/internal/model"
)

// Route paths.
const (
	PathRoot           = "/"
	PathLogin          = "/login"
	PathAdminDashboard = "/admin-dashboard"
	PathShopDashboard  = "/shop-dashboard"
	PathDashboard      = "/dashboard"
)

const maxRedirects = 4

// Route is a path pattern with its access rule. Segments starting with ':'
// match any single path segment.
type Route struct {
	Pattern string
	// Public routes render for anyone, logged in or not.
	Public bool
	// Roles restricts a protected route. Empty means any logged in user.
	Roles []model.Role
}

// Routes is the application route table.
var Routes = []Route{
	{Pattern: "/login", Public: true},
	{Pattern: "/register", Public: true},
	{Pattern: "/verify-email", Public: true},
	{Pattern: "/forgot-password", Public: true},
	{Pattern: "/reset-password", Public: true},
	{Pattern: "/shops/:shopId", Public: true},

	{Pattern: PathAdminDashboard, Roles: []model.Role{model.RoleAdmin}},

	{Pattern: "/profile"},
	{Pattern: "/settings"},
	{Pattern: "/repair-requests/:requestId"},

	{Pattern: PathDashboard, Roles: []model.Role{model.RoleCustomer}},
	{Pattern: "/repair-requests", Roles: []model.Role{model.RoleCustomer}},
	{Pattern: "/repair-requests/new", Roles: []model.Role{model.RoleCustomer}},
	{Pattern: "/shops", Roles: []model.Role{model.RoleCustomer}},

	{Pattern: PathShopDashboard, Roles: []model.Role{model.RoleShopOwner}},
	{Pattern: "/shop/repairs", Roles: []model.Role{model.RoleShopOwner}},
	{Pattern: "/shop-registration", Roles: []model.Role{model.RoleShopOwner}},
	{Pattern: "/shop-profile", Roles: []model.Role{model.RoleShopOwner}},
}

// Kind is the type of a routing outcome.
type Kind int

const (
	// Render means the route may be shown.
	Render Kind = iota
	// Pending means the session has not been bootstrapped; show nothing yet.
	Pending
	// Redirect means the user must be sent to Outcome.Target.
	Redirect
)

func (k Kind) String() string {
	switch k {
	case Render:
		return "render"
	case Pending:
		return "pending"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Outcome is the result of resolving a path.
type Outcome struct {
	Kind   Kind
	Target string
	Route  *Route
}

func (o Outcome) String() string {
	if o.Kind == Redirect {
		return fmt.Sprintf("redirect to %s", o.Target)
	}
	return o.Kind.String()
}

// Authorizer is the part of the session manager the guard needs.
type Authorizer interface {
	Authorize(required ...model.Role) model.Decision
	CurrentUser() *model.Profile
}

type Guard struct {
	auth   Authorizer
	routes []Route
}

func New(auth Authorizer) *Guard {
	return &Guard{auth: auth, routes: Routes}
}

// Resolve decides what happens when the user opens path.
func (g *Guard) Resolve(path string) Outcome {
	path = normalize(path)

	if path == PathRoot {
		if g.auth.Authorize() == model.DenyUnknown {
			return Outcome{Kind: Pending}
		}
		return Outcome{Kind: Redirect, Target: HomeFor(g.auth.CurrentUser())}
	}

	route := g.match(path)
	if route == nil {
		return Outcome{Kind: Redirect, Target: PathRoot}
	}
	if route.Public {
		return Outcome{Kind: Render, Route: route}
	}

	switch g.auth.Authorize(route.Roles...) {
	case model.Allow:
		return Outcome{Kind: Render, Route: route}
	case model.DenyUnknown:
		return Outcome{Kind: Pending, Route: route}
	case model.DenyUnauthenticated:
		return Outcome{Kind: Redirect, Target: PathLogin, Route: route}
	default:
		return Outcome{Kind: Redirect, Target: PathRoot, Route: route}
	}
}

// Follow resolves path and any redirects it leads to, returning the path
// that finally renders. Pending outcomes stop at the current path.
func (g *Guard) Follow(path string) (string, Outcome, error) {
	path = normalize(path)
	for i := 0; i <= maxRedirects; i++ {
		o := g.Resolve(path)
		if o.Kind != Redirect {
			return path, o, nil
		}
		path = o.Target
	}
	return "", Outcome{}, fmt.Errorf("too many redirects resolving %s", path)
}

// HomeFor returns the landing page for a user. Anonymous users land on the
// customer dashboard, which in turn sends them to the login page.
func HomeFor(p *model.Profile) string {
	if p == nil {
		return PathDashboard
	}
	switch p.Role {
	case model.RoleShopOwner:
		return PathShopDashboard
	case model.RoleAdmin:
		return PathAdminDashboard
	default:
		return PathDashboard
	}
}

func (g *Guard) match(path string) *Route {
	segs := strings.Split(strings.Trim(path, "/"), "/")

	// Literal routes take precedence over parameterized ones.
	var param *Route
	for i := range g.routes {
		r := &g.routes[i]
		literal, ok := matchPattern(r.Pattern, segs)
		if !ok {
			continue
		}
		if literal {
			return r
		}
		if param == nil {
			param = r
		}
	}
	return param
}

func matchPattern(pattern string, segs []string) (literal bool, ok bool) {
	psegs := strings.Split(strings.Trim(pattern, "/"), "/")
	if len(psegs) != len(segs) {
		return false, false
	}
	literal = true
	for i, p := range psegs {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return false, false
			}
			literal = false
			continue
		}
		if p != segs[i] {
			return false, false
		}
	}
	return literal, true
}

func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return PathRoot
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return PathRoot
		}
	}
	return path
}
