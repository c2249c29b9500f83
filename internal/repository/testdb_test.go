package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golonikum/attractions-app/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// newTestDB открывает sqlite в памяти и применяет боевую миграцию.
func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", "file::memory:?_foreign_keys=on")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	schema, err := os.ReadFile(filepath.Join("..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	_, err = db.Exec(string(schema))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func insertUser(t *testing.T, db *sqlx.DB) *model.User {
	t.Helper()
	user := &model.User{
		ID:           uuid.NewString(),
		Email:        uuid.NewString() + "@example.com",
		Name:         "Тестовый пользователь",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, NewUserRepository(db).Create(user))
	return user
}

func insertGroup(t *testing.T, db *sqlx.DB, userID, name, tag string) *model.Group {
	t.Helper()
	now := time.Now().UTC()
	group := &model.Group{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Description: "описание",
		Tag:         tag,
		Coordinates: model.Coordinates{37.6173, 55.7558},
		Zoom:        12,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, NewGroupRepository(db).Create(group))
	return group
}

func insertAttraction(t *testing.T, db *sqlx.DB, userID, groupID, name string, order int) *model.Attraction {
	t.Helper()
	now := time.Now().UTC()
	attraction := &model.Attraction{
		ID:          uuid.NewString(),
		UserID:      userID,
		GroupID:     groupID,
		Name:        name,
		Coordinates: model.Coordinates{37.6, 55.7},
		Order:       order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, NewAttractionRepository(db).Create(attraction))
	return attraction
}
