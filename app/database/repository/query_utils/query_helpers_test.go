package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	util "backend/insurance-platform/app/database/repository/query_utils"
)

type testFilter struct {
	Status   *string  `mapstructure:"status,omitempty"`
	IsActive *bool    `mapstructure:"is_active,omitempty"`
	Roles    []string `mapstructure:"role,omitempty"`
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestStructToQueries(t *testing.T) {
	t.Run("nil fields are skipped", func(t *testing.T) {
		conds, args, err := util.StructToQueries(testFilter{}, "")
		assert.NoError(t, err)
		assert.Empty(t, conds)
		assert.Empty(t, args)
	})

	t.Run("set fields become equality conditions", func(t *testing.T) {
		conds, args, err := util.StructToQueries(testFilter{
			Status:   strPtr("ACTIVE"),
			IsActive: boolPtr(true),
		}, "")
		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"status = ?", "is_active = ?"}, conds)
		assert.Len(t, args, 2)
	})

	t.Run("slice fields become IN conditions", func(t *testing.T) {
		conds, _, err := util.StructToQueries(testFilter{
			Roles: []string{"USER", "ADMIN"},
		}, "")
		assert.NoError(t, err)
		assert.Equal(t, []string{"role IN (?)"}, conds)
	})

	t.Run("alias prefixes each condition", func(t *testing.T) {
		conds, _, err := util.StructToQueries(testFilter{
			Status: strPtr("ACTIVE"),
		}, "u")
		assert.NoError(t, err)
		assert.Equal(t, []string{"u.status = ?"}, conds)
	})
}

func TestStructToConditions(t *testing.T) {
	condition, args, err := util.StructToConditions(testFilter{Status: strPtr("ACTIVE")}, "")
	assert.NoError(t, err)
	assert.Equal(t, "status = ?", condition)
	assert.Len(t, args, 1)
}
