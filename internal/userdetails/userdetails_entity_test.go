package userdetails_test

import (
	"sync"
	"testing"

	"go-ums/internal/userdetails"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestUserDetailsSchemaForeignKeys(t *testing.T) {
	s, err := schema.Parse(&userdetails.UserDetails{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	owner, ok := s.Relationships.Relations["User"]
	if assert.True(t, ok, "User association missing") {
		assert.Equal(t, schema.BelongsTo, owner.Type)
		assert.Equal(t, "user_id", owner.References[0].ForeignKey.DBName)
		assert.Equal(t, "user_id", owner.References[0].PrimaryKey.DBName)
	}
}
