// api/db/db_test.go
package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGormConfigTranslatesDriverErrors(t *testing.T) {
	cfg := newGormConfig()

	// Without error translation the DAOs' gorm.ErrDuplicatedKey checks never
	// match and unique-violation inserts surface as generic database errors.
	assert.True(t, cfg.TranslateError)
	assert.NotNil(t, cfg.Logger)
}
