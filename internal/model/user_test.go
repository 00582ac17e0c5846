package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRoleValues(t *testing.T) {
	// 角色常量的字符串值进库也进JWT，不可更改
	assert.Equal(t, UserRole("student"), RoleStudent)
	assert.Equal(t, UserRole("teacher"), RoleTeacher)
	assert.Equal(t, UserRole("parent"), RoleParent)
	assert.Equal(t, UserRole("admin"), RoleAdmin)
}
