package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golonikum/attractions-app/internal/model"
	"github.com/golonikum/attractions-app/internal/repository"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// testEnv собирает сервисы поверх sqlite в памяти с боевой схемой.
type testEnv struct {
	db          *sqlx.DB
	auth        *AuthService
	groups      *GroupService
	attractions *AttractionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := sqlx.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	attractionRepo := repository.NewAttractionRepository(db)
	return &testEnv{
		db:          db,
		auth:        NewAuthService(userRepo, "test-secret"),
		groups:      NewGroupService(groupRepo),
		attractions: NewAttractionService(attractionRepo, groupRepo),
	}
}

func (e *testEnv) registerUser(t *testing.T, email string) *model.User {
	t.Helper()
	user, err := e.auth.Register(model.RegisterRequest{Email: email, Password: "secret", Name: "Тест"})
	require.NoError(t, err)
	return user
}

func (e *testEnv) createGroup(t *testing.T, userID, name, tag string) *model.Group {
	t.Helper()
	zoom := 12
	group, err := e.groups.Create(userID, model.CreateGroupRequest{
		Name:        name,
		Description: "описание",
		Tag:         tag,
		Coordinates: &model.Coordinates{37.6173, 55.7558},
		Zoom:        &zoom,
	})
	require.NoError(t, err)
	return group
}

func (e *testEnv) createAttraction(t *testing.T, userID, groupID, name string, order int) *model.Attraction {
	t.Helper()
	attraction, err := e.attractions.Create(userID, model.CreateAttractionRequest{
		GroupID:     groupID,
		Name:        name,
		Coordinates: &model.Coordinates{37.6, 55.7},
		Order:       order,
	})
	require.NoError(t, err)
	return attraction
}
