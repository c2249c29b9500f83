package repository

import (
	"testing"

	"github.com/golonikum/attractions-app/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinatesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	user := insertUser(t, db)
	group := insertGroup(t, db, user.ID, "Москва", "Центр")
	created := insertAttraction(t, db, user.ID, group.ID, "Кремль", 1)

	got, err := NewAttractionRepository(db).GetByID(created.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.Coordinates{37.6, 55.7}, got.Coordinates)
}

func TestNotesRoundTrip(t *testing.T) {
	db := newTestDB(t)
	user := insertUser(t, db)
	group := insertGroup(t, db, user.ID, "Москва", "Центр")
	repo := NewAttractionRepository(db)

	attraction := insertAttraction(t, db, user.ID, group.ID, "Кремль", 1)
	attraction.Notes = model.Notes{
		{Date: "2023-01-01", Note: "Первое посещение"},
		{Date: "2023-06-01", Note: "Второе посещение"},
	}
	require.NoError(t, repo.Update(attraction))

	got, err := repo.GetByID(attraction.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, attraction.Notes, got.Notes)
}

func TestListByGroupOrderedByOrder(t *testing.T) {
	db := newTestDB(t)
	user := insertUser(t, db)
	group := insertGroup(t, db, user.ID, "Москва", "Центр")
	insertAttraction(t, db, user.ID, group.ID, "Третий", 3)
	insertAttraction(t, db, user.ID, group.ID, "Первый", 1)
	insertAttraction(t, db, user.ID, group.ID, "Второй", 2)

	attractions, err := NewAttractionRepository(db).ListByGroup(group.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, attractions, 3)
	assert.Equal(t, "Первый", attractions[0].Name)
	assert.Equal(t, "Второй", attractions[1].Name)
	assert.Equal(t, "Третий", attractions[2].Name)
}

func TestReorderAppliesNewOrder(t *testing.T) {
	db := newTestDB(t)
	user := insertUser(t, db)
	group := insertGroup(t, db, user.ID, "Москва", "Центр")
	x := insertAttraction(t, db, user.ID, group.ID, "x", 1)
	y := insertAttraction(t, db, user.ID, group.ID, "y", 2)
	z := insertAttraction(t, db, user.ID, group.ID, "z", 3)
	repo := NewAttractionRepository(db)

	updated, err := repo.Reorder(user.ID, group.ID, []model.OrderItem{
		{ID: z.ID, Order: 1},
		{ID: x.ID, Order: 2},
		{ID: y.ID, Order: 3},
	})
	require.NoError(t, err)
	assert.Len(t, updated, 3)

	attractions, err := repo.ListByGroup(group.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, attractions, 3)
	assert.Equal(t, "z", attractions[0].Name)
	assert.Equal(t, "x", attractions[1].Name)
	assert.Equal(t, "y", attractions[2].Name)
}

func TestReorderMissingIDRollsBackAll(t *testing.T) {
	db := newTestDB(t)
	user := insertUser(t, db)
	group := insertGroup(t, db, user.ID, "Москва", "Центр")
	x := insertAttraction(t, db, user.ID, group.ID, "x", 1)
	y := insertAttraction(t, db, user.ID, group.ID, "y", 2)
	repo := NewAttractionRepository(db)

	_, err := repo.Reorder(user.ID, group.ID, []model.OrderItem{
		{ID: x.ID, Order: 2},
		{ID: y.ID, Order: 1},
		{ID: uuid.NewString(), Order: 3},
	})
	require.Error(t, err)

	// ни одна строка не должна измениться
	attractions, err := repo.ListByGroup(group.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, attractions, 2)
	assert.Equal(t, "x", attractions[0].Name)
	assert.Equal(t, 1, attractions[0].Order)
	assert.Equal(t, "y", attractions[1].Name)
	assert.Equal(t, 2, attractions[1].Order)
}

func TestReorderScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	owner := insertUser(t, db)
	other := insertUser(t, db)
	ownGroup := insertGroup(t, db, owner.ID, "Москва", "Центр")
	otherGroup := insertGroup(t, db, other.ID, "Питер", "Северо-Запад")
	foreign := insertAttraction(t, db, other.ID, otherGroup.ID, "чужой", 1)
	repo := NewAttractionRepository(db)

	// чужая строка ведет себя как отсутствующая и откатывает транзакцию
	_, err := repo.Reorder(owner.ID, ownGroup.ID, []model.OrderItem{{ID: foreign.ID, Order: 1}})
	require.Error(t, err)

	got, err := repo.GetByID(foreign.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, otherGroup.ID, got.GroupID)
	assert.Equal(t, 1, got.Order)
}

func TestDeleteGroupCascadesToAttractions(t *testing.T) {
	db := newTestDB(t)
	user := insertUser(t, db)
	group := insertGroup(t, db, user.ID, "Москва", "Центр")
	insertAttraction(t, db, user.ID, group.ID, "Первая", 1)
	insertAttraction(t, db, user.ID, group.ID, "Вторая", 2)

	deleted, err := NewGroupRepository(db).Delete(group.ID, user.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	attractions, err := NewAttractionRepository(db).ListByGroup(group.ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, attractions)
}

func TestGetByIDDoesNotLeakForeignRows(t *testing.T) {
	db := newTestDB(t)
	owner := insertUser(t, db)
	other := insertUser(t, db)
	group := insertGroup(t, db, owner.ID, "Москва", "Центр")
	attraction := insertAttraction(t, db, owner.ID, group.ID, "Кремль", 1)

	_, err := NewAttractionRepository(db).GetByID(attraction.ID, other.ID)
	require.Error(t, err)
}
