// Package access decides which dashboard views a role may open.
package access

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"

	"doctrack/internal/model"
)

// View is a section of the dashboard that is gated by role.
type View string

const (
	ViewDashboard      View = "dashboard"
	ViewAdministrative View = "administrative"
	ViewProcurement    View = "procurement"
	ViewAssets         View = "assets"
	ViewFinance        View = "finance"
	ViewControl        View = "control"
	ViewReports        View = "reports"
)

// Views lists every view in navigation order.
var Views = []View{
	ViewDashboard,
	ViewAdministrative,
	ViewProcurement,
	ViewAssets,
	ViewFinance,
	ViewControl,
	ViewReports,
}

// The general manager passes every check regardless of policy rows.
const modelText = `
[request_definition]
r = sub, obj

[policy_definition]
p = sub, obj

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == "GENERAL_MANAGER" || (r.sub == p.sub && r.obj == p.obj)
`

// DefaultPolicy is the role to view table of the dashboard navigation.
var DefaultPolicy = map[View][]model.Branch{
	ViewDashboard:      {model.BranchGeneralManager, model.BranchAdmin, model.BranchFinance},
	ViewAdministrative: {model.BranchGeneralManager, model.BranchAdmin},
	ViewProcurement:    {model.BranchGeneralManager, model.BranchProcurement},
	ViewAssets:         {model.BranchGeneralManager, model.BranchAssets},
	ViewFinance:        {model.BranchGeneralManager, model.BranchFinance},
	ViewControl:        {model.BranchGeneralManager, model.BranchControl},
	ViewReports:        {model.BranchGeneralManager, model.BranchAdmin, model.BranchFinance},
}

// Policy evaluates role to view rules with a casbin enforcer.
type Policy struct {
	mu       sync.RWMutex
	enforcer *casbin.Enforcer
}

// NewPolicy builds an in-memory enforcer loaded with rules.
func NewPolicy(rules map[View][]model.Branch) (*Policy, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("access: parse model: %w", err)
	}
	enf, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("access: init enforcer: %w", err)
	}
	for _, v := range Views {
		for _, role := range rules[v] {
			if _, err := enf.AddPolicy(string(role), string(v)); err != nil {
				return nil, fmt.Errorf("access: add policy %s/%s: %w", role, v, err)
			}
		}
	}
	return &Policy{enforcer: enf}, nil
}

// Allowed reports whether role may open view.
func (p *Policy) Allowed(role model.Branch, view View) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	ok, err := p.enforcer.Enforce(string(role), string(view))
	if err != nil {
		return false, fmt.Errorf("access: enforce failed: %w", err)
	}
	return ok, nil
}

// ViewsFor lists the views role may open, in navigation order.
func (p *Policy) ViewsFor(role model.Branch) ([]View, error) {
	out := make([]View, 0, len(Views))
	for _, v := range Views {
		ok, err := p.Allowed(role, v)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, v)
		}
	}
	return out, nil
}

// BranchView maps a document-owning branch to the view that lists its documents.
// Branches without a dedicated view fall under reports.
func BranchView(b model.Branch) View {
	switch b {
	case model.BranchAdmin:
		return ViewAdministrative
	case model.BranchProcurement:
		return ViewProcurement
	case model.BranchAssets:
		return ViewAssets
	case model.BranchFinance:
		return ViewFinance
	case model.BranchControl:
		return ViewControl
	default:
		return ViewReports
	}
}
