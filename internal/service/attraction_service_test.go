package service

import (
	"testing"

	"github.com/golonikum/attractions-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAttractionValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "user@example.com")
	group := env.createGroup(t, user.ID, "Москва", "Центр")

	_, err := env.attractions.Create(user.ID, model.CreateAttractionRequest{
		Name: "Без группы", Coordinates: &model.Coordinates{37.6, 55.7},
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.attractions.Create(user.ID, model.CreateAttractionRequest{
		GroupID: group.ID, Name: "Без координат",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateAttractionUnknownGroup(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "user@example.com")

	_, err := env.attractions.Create(user.ID, model.CreateAttractionRequest{
		GroupID: "нет-такой", Name: "Кремль", Coordinates: &model.Coordinates{37.6, 55.7},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAttractionForeignGroupRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerUser(t, "owner@example.com")
	other := env.registerUser(t, "other@example.com")
	group := env.createGroup(t, owner.ID, "Москва", "Центр")

	_, err := env.attractions.Create(other.ID, model.CreateAttractionRequest{
		GroupID: group.ID, Name: "Кремль", Coordinates: &model.Coordinates{37.6, 55.7},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAttractionDefaultsOrderToOne(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "user@example.com")
	group := env.createGroup(t, user.ID, "Москва", "Центр")

	attraction, err := env.attractions.Create(user.ID, model.CreateAttractionRequest{
		GroupID: group.ID, Name: "Кремль", Coordinates: &model.Coordinates{37.6, 55.7},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, attraction.Order)
}

func TestUpdateAttractionMergesOnlyProvidedFields(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "user@example.com")
	group := env.createGroup(t, user.ID, "Москва", "Центр")
	created := env.createAttraction(t, user.ID, group.ID, "Кремль", 1)

	visited := true
	name := "Московский Кремль"
	updated, err := env.attractions.Update(user.ID, created.ID, model.UpdateAttractionRequest{
		Name:      &name,
		IsVisited: &visited,
	})
	require.NoError(t, err)
	assert.Equal(t, "Московский Кремль", updated.Name)
	assert.True(t, updated.IsVisited)
	// непереданные поля не изменились
	assert.Equal(t, created.Coordinates, updated.Coordinates)
	assert.Equal(t, created.Order, updated.Order)
	assert.Equal(t, created.GroupID, updated.GroupID)
}

func TestUpdateOrderValidation(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "user@example.com")
	group := env.createGroup(t, user.ID, "Москва", "Центр")
	a := env.createAttraction(t, user.ID, group.ID, "a", 1)

	_, err := env.attractions.UpdateOrder(user.ID, model.UpdateOrderRequest{
		Attractions: []model.OrderItem{{ID: a.ID, Order: 1}},
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.attractions.UpdateOrder(user.ID, model.UpdateOrderRequest{GroupID: group.ID})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateOrderRejectsDuplicateIDsWithoutWrites(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "user@example.com")
	group := env.createGroup(t, user.ID, "Москва", "Центр")
	a := env.createAttraction(t, user.ID, group.ID, "a", 1)

	_, err := env.attractions.UpdateOrder(user.ID, model.UpdateOrderRequest{
		GroupID: group.ID,
		Attractions: []model.OrderItem{
			{ID: a.ID, Order: 1},
			{ID: a.ID, Order: 2},
		},
	})
	assert.ErrorIs(t, err, ErrValidation)

	got, err := env.attractions.Get(user.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Order)
}

func TestUpdateOrderScenario(t *testing.T) {
	env := newTestEnv(t)
	user := env.registerUser(t, "user@example.com")
	group := env.createGroup(t, user.ID, "Москва", "Центр")
	x := env.createAttraction(t, user.ID, group.ID, "x", 1)
	y := env.createAttraction(t, user.ID, group.ID, "y", 2)
	z := env.createAttraction(t, user.ID, group.ID, "z", 3)

	updated, err := env.attractions.UpdateOrder(user.ID, model.UpdateOrderRequest{
		GroupID: group.ID,
		Attractions: []model.OrderItem{
			{ID: z.ID, Order: 1},
			{ID: x.ID, Order: 2},
			{ID: y.ID, Order: 3},
		},
	})
	require.NoError(t, err)
	assert.Len(t, updated, 3)

	attractions, err := env.attractions.List(user.ID, group.ID)
	require.NoError(t, err)
	require.Len(t, attractions, 3)
	assert.Equal(t, "z", attractions[0].Name)
	assert.Equal(t, "x", attractions[1].Name)
	assert.Equal(t, "y", attractions[2].Name)
}

func TestUpdateOrderForeignGroupRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := env.registerUser(t, "owner@example.com")
	other := env.registerUser(t, "other@example.com")
	group := env.createGroup(t, owner.ID, "Москва", "Центр")
	a := env.createAttraction(t, owner.ID, group.ID, "a", 1)

	_, err := env.attractions.UpdateOrder(other.ID, model.UpdateOrderRequest{
		GroupID:     group.ID,
		Attractions: []model.OrderItem{{ID: a.ID, Order: 1}},
	})
	assert.ErrorIs(t, err, ErrNotFound)
}
