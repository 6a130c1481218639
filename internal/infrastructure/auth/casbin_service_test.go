package auth

import (
	"testing"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestNewEnforcerSeedsDefaults(t *testing.T) {
	e, err := NewEnforcer()
	require.NoError(t, err)

	policies, err := e.GetPolicy()
	require.NoError(t, err)
	assert.Len(t, policies, len(DefaultPolicies))

	tests := []struct {
		role   domain.Role
		obj    domain.ResourceKind
		act    domain.Action
		expect bool
	}{
		{domain.RoleBusinessAdmin, domain.ResourceEmployee, domain.ActionCreate, true},
		{domain.RoleBusinessAdmin, domain.ResourceEmployee, domain.ActionSetPassword, true},
		{domain.RoleEmployee, domain.ResourceEmployee, domain.ActionUpdate, true},
		{domain.RoleEmployee, domain.ResourceEmployee, domain.ActionSetPassword, false},
		{domain.RoleEmployee, domain.ResourceEmployee, domain.ActionDelete, false},
		{domain.RoleUser, domain.ResourceEmployee, domain.ActionCreate, false},
		{domain.RoleUser, domain.ResourceBusiness, domain.ActionRegister, true},
		{domain.RoleBusinessAdmin, domain.ResourceBusiness, domain.ActionRegister, false},
	}
	for _, tt := range tests {
		ok, err := e.Enforce(string(tt.role), string(tt.obj), string(tt.act))
		require.NoError(t, err)
		assert.Equal(t, tt.expect, ok, "%s %s %s", tt.role, tt.obj, tt.act)
	}
}

func TestSeedPoliciesIsIdempotent(t *testing.T) {
	e, err := NewEnforcer()
	require.NoError(t, err)

	require.NoError(t, SeedPolicies(e))

	policies, err := e.GetPolicy()
	require.NoError(t, err)
	assert.Len(t, policies, len(DefaultPolicies))
}

func TestNewPersistentEnforcerStoresRules(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	e, err := NewPersistentEnforcer(db)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Table("casbin_rule").Count(&count).Error)
	assert.Equal(t, int64(len(DefaultPolicies)), count)

	reloaded, err := NewPersistentEnforcer(db)
	require.NoError(t, err)
	policies, err := reloaded.GetPolicy()
	require.NoError(t, err)
	assert.Len(t, policies, len(DefaultPolicies))

	ok, err := e.Enforce(string(domain.RoleEmployee), string(domain.ResourceEmployee), string(domain.ActionUpdate))
	require.NoError(t, err)
	assert.True(t, ok)
}
