// api/dao/user_dao_test.go
package dao

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"

	atlas_errors "github.com/atlas-hrms/atlas/api/errors"
	logger "github.com/atlas-hrms/atlas/api/logging"
	"github.com/atlas-hrms/atlas/api/model"
)

func TestMain(m *testing.M) {
	logger.InitLogger("")
	defer logger.Sync()
	os.Exit(m.Run())
}

// errUniqueViolation is what the Postgres driver hands back when an insert
// trips a unique index.
var errUniqueViolation = &pgconn.PgError{
	Code:    "23505",
	Message: "duplicate key value violates unique constraint",
}

// uniqueViolationConnector produces connections that fail every statement
// with a unique-violation error, so tests can drive the duplicate-key path
// without a live database.
type uniqueViolationConnector struct{}

func (uniqueViolationConnector) Connect(context.Context) (driver.Conn, error) {
	return uniqueViolationConn{}, nil
}

func (uniqueViolationConnector) Driver() driver.Driver { return uniqueViolationDriver{} }

type uniqueViolationDriver struct{}

func (uniqueViolationDriver) Open(string) (driver.Conn, error) { return uniqueViolationConn{}, nil }

type uniqueViolationConn struct{}

func (uniqueViolationConn) Prepare(string) (driver.Stmt, error) { return nil, errUniqueViolation }
func (uniqueViolationConn) Close() error                        { return nil }
func (uniqueViolationConn) Begin() (driver.Tx, error)           { return nil, errUniqueViolation }

func (uniqueViolationConn) QueryContext(context.Context, string, []driver.NamedValue) (driver.Rows, error) {
	return nil, errUniqueViolation
}

func (uniqueViolationConn) ExecContext(context.Context, string, []driver.NamedValue) (driver.Result, error) {
	return nil, errUniqueViolation
}

func newConflictingDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sql.OpenDB(uniqueViolationConnector{}),
	}), &gorm.Config{
		TranslateError:         true,
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 gorm_logger.Discard,
	})
	require.NoError(t, err)
	return gdb
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	dao := NewUserDAO(newConflictingDB(t))

	err := dao.CreateUser(context.Background(), &model.User{
		Username: "asha",
		Email:    "asha@example.com",
	})

	assert.ErrorIs(t, err, atlas_errors.ErrUserConflict)
}

func TestCreateRoleDuplicateName(t *testing.T) {
	dao := NewRoleDAO(newConflictingDB(t))

	err := dao.CreateRole(context.Background(), &model.Role{Name: "Admin"})

	assert.ErrorIs(t, err, atlas_errors.ErrRoleConflict)
}

func TestCreateDepartmentDuplicateName(t *testing.T) {
	dao := NewDepartmentDAO(newConflictingDB(t))

	err := dao.CreateDepartment(context.Background(), &model.Department{Name: "Engineering"})

	assert.ErrorIs(t, err, atlas_errors.ErrDepartmentConflict)
}
