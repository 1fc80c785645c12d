package services

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
	"github.com/dmitrijs2005/storefront/internal/server/migrations"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	usersrepo "github.com/dmitrijs2005/storefront/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testStoreTimeout = time.Second

func newSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := dbx.Open(dbx.DialectSQLite, "file:"+regexp.MustCompile(`\W`).ReplaceAllString(t.Name(), "_")+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	goose.SetBaseFS(migrations.Migrations)
	require.NoError(t, goose.SetDialect("sqlite3"))
	require.NoError(t, goose.Up(db, "sqlite"))
	return db
}

func newTestUserService(repo usersrepo.Repository) (*UserService, *auth.TokenManager) {
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	return NewUserService(repo, auth.NewBcryptHasher(bcrypt.MinCost), tokens, testStoreTimeout), tokens
}

func createUser(t *testing.T, repo usersrepo.Repository, email string) *models.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &models.User{Email: email, PasswordHash: "h", Cart: models.Cart{}})
	require.NoError(t, err)
	return u
}

// blockingRepo never answers before the caller's deadline.
type blockingRepo struct {
	usersrepo.Repository
}

func (blockingRepo) FindByID(ctx context.Context, _ string) (*models.User, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingRepo) FindByEmail(ctx context.Context, _ string) (*models.User, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
