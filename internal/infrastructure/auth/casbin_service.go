package auth

import (
	"fmt"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// PolicyModel grants (role, resource, action) and carries the scope as a fourth field
const PolicyModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act, scope

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// DefaultPolicies are seeded on every start; existing rows are left alone
var DefaultPolicies = [][]string{
	{string(domain.RoleBusinessAdmin), string(domain.ResourceEmployee), string(domain.ActionCreate), string(domain.ScopeBusiness)},
	{string(domain.RoleBusinessAdmin), string(domain.ResourceEmployee), string(domain.ActionUpdate), string(domain.ScopeBusiness)},
	{string(domain.RoleBusinessAdmin), string(domain.ResourceEmployee), string(domain.ActionSetPassword), string(domain.ScopeBusiness)},
	{string(domain.RoleBusinessAdmin), string(domain.ResourceEmployee), string(domain.ActionDelete), string(domain.ScopeBusiness)},
	{string(domain.RoleBusinessAdmin), string(domain.ResourceEmployee), string(domain.ActionList), string(domain.ScopeBusiness)},
	{string(domain.RoleEmployee), string(domain.ResourceEmployee), string(domain.ActionUpdate), string(domain.ScopeSelf)},
	// non-admin listings are not ownership-checked
	{string(domain.RoleEmployee), string(domain.ResourceEmployee), string(domain.ActionList), string(domain.ScopeAny)},
	{string(domain.RoleUser), string(domain.ResourceEmployee), string(domain.ActionList), string(domain.ScopeAny)},
	{string(domain.RoleUser), string(domain.ResourceBusiness), string(domain.ActionRegister), string(domain.ScopeAny)},
	{string(domain.RoleEmployee), string(domain.ResourceBusiness), string(domain.ActionRegister), string(domain.ScopeAny)},
	{string(domain.RoleBusinessAdmin), string(domain.ResourceBusiness), string(domain.ActionUpdate), string(domain.ScopeSelf)},
	{string(domain.RoleBusinessAdmin), string(domain.ResourceBusiness), string(domain.ActionRead), string(domain.ScopeSelf)},
}

// NewEnforcer builds an in-memory synced enforcer seeded with DefaultPolicies
func NewEnforcer() (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(PolicyModel)
	if err != nil {
		return nil, fmt.Errorf("parse casbin model: %w", err)
	}
	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}
	if err := SeedPolicies(e); err != nil {
		return nil, err
	}
	return e, nil
}

// NewPersistentEnforcer stores policy rows in the casbin_rule table through the gorm adapter
func NewPersistentEnforcer(db *gorm.DB) (*casbin.SyncedEnforcer, error) {
	adp, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("create casbin gorm adapter: %w", err)
	}
	m, err := model.NewModelFromString(PolicyModel)
	if err != nil {
		return nil, fmt.Errorf("parse casbin model: %w", err)
	}
	e, err := casbin.NewSyncedEnforcer(m, adp)
	if err != nil {
		return nil, fmt.Errorf("create casbin enforcer: %w", err)
	}
	if err := e.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load casbin policy: %w", err)
	}
	if err := SeedPolicies(e); err != nil {
		return nil, err
	}
	return e, nil
}

// SeedPolicies adds any missing default rule
func SeedPolicies(e domain.CasbinEnforcer) error {
	for _, p := range DefaultPolicies {
		if _, err := e.AddPolicy(p[0], p[1], p[2], p[3]); err != nil {
			return fmt.Errorf("seed policy %v: %w", p, err)
		}
	}
	return nil
}
