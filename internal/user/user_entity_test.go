package user_test

import (
	"sync"
	"testing"

	"go-ums/internal/user"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/schema"
)

func TestUserSchemaForeignKeys(t *testing.T) {
	s, err := schema.Parse(&user.User{}, &sync.Map{}, schema.NamingStrategy{})
	assert.NoError(t, err)

	office, ok := s.Relationships.Relations["Office"]
	if assert.True(t, ok, "Office association missing") {
		assert.Equal(t, schema.BelongsTo, office.Type)
		assert.Equal(t, "office_id", office.References[0].ForeignKey.DBName)
		assert.Equal(t, "office_id", office.References[0].PrimaryKey.DBName)
	}

	role, ok := s.Relationships.Relations["Role"]
	if assert.True(t, ok, "Role association missing") {
		assert.Equal(t, schema.BelongsTo, role.Type)
		assert.Equal(t, "role_id", role.References[0].ForeignKey.DBName)
		assert.Equal(t, "role_id", role.References[0].PrimaryKey.DBName)
	}
}
