package model

import "time"

// Group представляет группу достопримечательностей (город или регион),
// привязанную к точке на карте и уровню масштабирования.
type Group struct {
	ID          string      `db:"id" json:"id"`
	UserID      string      `db:"user_id" json:"userId"`
	Name        string      `db:"name" json:"name"`
	Description string      `db:"description" json:"description"`
	Tag         string      `db:"tag" json:"tag,omitempty"` // свободная метка-фасет, обычно название региона
	Coordinates Coordinates `db:"coordinates" json:"coordinates"`
	Zoom        int         `db:"zoom" json:"zoom"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}

// CreateGroupRequest — тело запроса создания группы.
type CreateGroupRequest struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Tag         string       `json:"tag"`
	Coordinates *Coordinates `json:"coordinates"`
	Zoom        *int         `json:"zoom"`
}

// UpdateGroupRequest — частичное обновление группы: изменяются только
// переданные поля, отсутствующие остаются как есть.
type UpdateGroupRequest struct {
	Name        *string      `json:"name"`
	Description *string      `json:"description"`
	Tag         *string      `json:"tag"`
	Coordinates *Coordinates `json:"coordinates"`
	Zoom        *int         `json:"zoom"`
}

// Merge переносит в группу только заполненные поля запроса.
func (r UpdateGroupRequest) Merge(g *Group) {
	if r.Name != nil {
		g.Name = *r.Name
	}
	if r.Description != nil {
		g.Description = *r.Description
	}
	if r.Tag != nil {
		g.Tag = *r.Tag
	}
	if r.Coordinates != nil {
		g.Coordinates = *r.Coordinates
	}
	if r.Zoom != nil {
		g.Zoom = *r.Zoom
	}
}
