package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Note — датированная заметка о посещении, хранится встроенным списком
// внутри достопримечательности и не имеет собственного идентификатора.
type Note struct {
	Date string `json:"date"`
	Note string `json:"note"`
}

// Notes — список заметок достопримечательности.
type Notes []Note

// Value сериализует заметки в JSON-текст для хранения в одной колонке.
func (n Notes) Value() (driver.Value, error) {
	if n == nil {
		n = Notes{}
	}
	return json.Marshal(n)
}

// Scan читает заметки из текстовой колонки базы данных.
func (n *Notes) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, n)
	case string:
		return json.Unmarshal([]byte(v), n)
	case nil:
		*n = nil
		return nil
	default:
		return fmt.Errorf("неподдерживаемый тип заметок в БД: %T", src)
	}
}

// Attraction представляет достопримечательность — точку интереса,
// принадлежащую ровно одной группе.
type Attraction struct {
	ID          string      `db:"id" json:"id"`
	UserID      string      `db:"user_id" json:"userId"`
	GroupID     string      `db:"group_id" json:"groupId"`
	Name        string      `db:"name" json:"name"`
	Category    string      `db:"category" json:"category,omitempty"`
	Description string      `db:"description" json:"description,omitempty"`
	ImageURL    string      `db:"image_url" json:"imageUrl,omitempty"`
	YaMapURL    string      `db:"ya_map_url" json:"yaMapUrl,omitempty"`
	IsVisited   bool        `db:"is_visited" json:"isVisited"`
	IsFavorite  bool        `db:"is_favorite" json:"isFavorite"`
	Coordinates Coordinates `db:"coordinates" json:"coordinates"`
	Order       int         `db:"order_index" json:"order"` // позиция внутри группы
	Notes       Notes       `db:"notes" json:"notes,omitempty"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time   `db:"updated_at" json:"updatedAt"`
}

// CreateAttractionRequest — тело запроса создания достопримечательности.
type CreateAttractionRequest struct {
	GroupID     string       `json:"groupId"`
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Description string       `json:"description"`
	ImageURL    string       `json:"imageUrl"`
	YaMapURL    string       `json:"yaMapUrl"`
	IsVisited   bool         `json:"isVisited"`
	IsFavorite  bool         `json:"isFavorite"`
	Coordinates *Coordinates `json:"coordinates"`
	Order       int          `json:"order"`
	Notes       Notes        `json:"notes"`
}

// UpdateAttractionRequest — частичное обновление достопримечательности.
type UpdateAttractionRequest struct {
	Name        *string      `json:"name"`
	Category    *string      `json:"category"`
	Description *string      `json:"description"`
	ImageURL    *string      `json:"imageUrl"`
	YaMapURL    *string      `json:"yaMapUrl"`
	IsVisited   *bool        `json:"isVisited"`
	IsFavorite  *bool        `json:"isFavorite"`
	Coordinates *Coordinates `json:"coordinates"`
	Order       *int         `json:"order"`
	Notes       *Notes       `json:"notes"`
}

// Merge переносит в достопримечательность только заполненные поля запроса.
func (r UpdateAttractionRequest) Merge(a *Attraction) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Category != nil {
		a.Category = *r.Category
	}
	if r.Description != nil {
		a.Description = *r.Description
	}
	if r.ImageURL != nil {
		a.ImageURL = *r.ImageURL
	}
	if r.YaMapURL != nil {
		a.YaMapURL = *r.YaMapURL
	}
	if r.IsVisited != nil {
		a.IsVisited = *r.IsVisited
	}
	if r.IsFavorite != nil {
		a.IsFavorite = *r.IsFavorite
	}
	if r.Coordinates != nil {
		a.Coordinates = *r.Coordinates
	}
	if r.Order != nil {
		a.Order = *r.Order
	}
	if r.Notes != nil {
		a.Notes = *r.Notes
	}
}

// OrderItem — пара (id, order) из запроса изменения порядка.
type OrderItem struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// UpdateOrderRequest — тело запроса атомарного изменения порядка
// достопримечательностей внутри группы.
type UpdateOrderRequest struct {
	GroupID     string      `json:"groupId"`
	Attractions []OrderItem `json:"attractions"`
}
