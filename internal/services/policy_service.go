package services

import (
	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/Bhavuk-Devex/AVO/internal/metrics"
)

// PolicyServiceImpl implements domain.PolicyService using Casbin.
// Casbin answers whether the role holds a grant; the grant's scope column
// is then checked against the actor and the resource.
type PolicyServiceImpl struct {
	enforcer domain.CasbinEnforcer
	metrics  *metrics.Metrics
}

// NewPolicyService creates a new policy service
func NewPolicyService(enforcer domain.CasbinEnforcer, m *metrics.Metrics) domain.PolicyService {
	return &PolicyServiceImpl{enforcer: enforcer, metrics: m}
}

// Authorize implements domain.PolicyService
func (p *PolicyServiceImpl) Authorize(actor domain.Actor, resource domain.Resource, action domain.Action) error {
	sub, obj, act := string(actor.Role), string(resource.Kind), string(action)

	allowed, err := p.enforcer.Enforce(sub, obj, act)
	if err != nil {
		return domain.Internal(err, "policy evaluation failed")
	}
	if !allowed {
		p.metrics.Decision(obj, act, "deny_role")
		return domain.ErrAccessDenied
	}

	rules, err := p.enforcer.GetFilteredPolicy(0, sub, obj, act)
	if err != nil {
		return domain.Internal(err, "policy lookup failed")
	}
	for _, rule := range rules {
		if len(rule) < 4 {
			continue
		}
		if scopeCovers(domain.Scope(rule[3]), actor, resource) {
			p.metrics.Decision(obj, act, "allow")
			return nil
		}
	}

	p.metrics.Decision(obj, act, "deny_scope")
	return domain.ErrOutOfScope
}

func scopeCovers(scope domain.Scope, actor domain.Actor, resource domain.Resource) bool {
	switch scope {
	case domain.ScopeAny:
		return true
	case domain.ScopeBusiness:
		return actor.BusinessID != nil && resource.BusinessID != nil && *actor.BusinessID == *resource.BusinessID
	case domain.ScopeSelf:
		return resource.OwnerID != 0 && resource.OwnerID == actor.ID
	}
	return false
}

// GetPolicies implements domain.PolicyService
func (p *PolicyServiceImpl) GetPolicies() ([][]string, error) {
	policies, err := p.enforcer.GetPolicy()
	if err != nil {
		return nil, domain.Internal(err, "failed to load policies")
	}
	return policies, nil
}
