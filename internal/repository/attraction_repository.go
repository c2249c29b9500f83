package repository

import (
	"database/sql"
	"fmt"

	"github.com/golonikum/attractions-app/internal/model"

	"github.com/jmoiron/sqlx"
)

// AttractionRepository обеспечивает доступ к данным достопримечательностей
// в базе данных. Все выборки ограничены владельцем (user_id).
type AttractionRepository struct {
	db *sqlx.DB
}

// NewAttractionRepository создает новый репозиторий для достопримечательностей.
func NewAttractionRepository(db *sqlx.DB) *AttractionRepository {
	return &AttractionRepository{db: db}
}

// Create сохраняет новую достопримечательность.
func (r *AttractionRepository) Create(a *model.Attraction) error {
	query := r.db.Rebind(`INSERT INTO attractions
		(id, user_id, group_id, name, category, description, image_url, ya_map_url,
		 is_visited, is_favorite, coordinates, order_index, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, a.ID, a.UserID, a.GroupID, a.Name, a.Category,
		a.Description, a.ImageURL, a.YaMapURL, a.IsVisited, a.IsFavorite,
		a.Coordinates, a.Order, a.Notes, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("не удалось создать достопримечательность: %w", err)
	}
	return nil
}

// GetByID возвращает достопримечательность пользователя по идентификатору
// (sql.ErrNoRows, если не найдена или принадлежит другому).
func (r *AttractionRepository) GetByID(id, userID string) (*model.Attraction, error) {
	var a model.Attraction
	err := r.db.Get(&a, r.db.Rebind("SELECT * FROM attractions WHERE id=? AND user_id=?"), id, userID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByUser возвращает все достопримечательности пользователя
// в порядке возрастания order_index.
func (r *AttractionRepository) ListByUser(userID string) ([]model.Attraction, error) {
	attractions := []model.Attraction{}
	err := r.db.Select(&attractions,
		r.db.Rebind("SELECT * FROM attractions WHERE user_id=? ORDER BY order_index"), userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка достопримечательностей: %w", err)
	}
	return attractions, nil
}

// ListByGroup возвращает достопримечательности одной группы
// в порядке возрастания order_index.
func (r *AttractionRepository) ListByGroup(groupID, userID string) ([]model.Attraction, error) {
	attractions := []model.Attraction{}
	err := r.db.Select(&attractions,
		r.db.Rebind("SELECT * FROM attractions WHERE group_id=? AND user_id=? ORDER BY order_index"),
		groupID, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении достопримечательностей группы: %w", err)
	}
	return attractions, nil
}

// Update перезаписывает изменяемые поля достопримечательности.
func (r *AttractionRepository) Update(a *model.Attraction) error {
	query := r.db.Rebind(`UPDATE attractions
		SET name=?, category=?, description=?, image_url=?, ya_map_url=?,
		    is_visited=?, is_favorite=?, coordinates=?, order_index=?, notes=?, updated_at=?
		WHERE id=? AND user_id=?`)
	_, err := r.db.Exec(query, a.Name, a.Category, a.Description, a.ImageURL, a.YaMapURL,
		a.IsVisited, a.IsFavorite, a.Coordinates, a.Order, a.Notes, a.UpdatedAt, a.ID, a.UserID)
	if err != nil {
		return fmt.Errorf("не удалось обновить достопримечательность: %w", err)
	}
	return nil
}

// Delete удаляет достопримечательность пользователя.
// Возвращает true, если строка была удалена.
func (r *AttractionRepository) Delete(id, userID string) (bool, error) {
	res, err := r.db.Exec(r.db.Rebind("DELETE FROM attractions WHERE id=? AND user_id=?"), id, userID)
	if err != nil {
		return false, fmt.Errorf("не удалось удалить достопримечательность: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Reorder атомарно присваивает перечисленным достопримечательностям новые
// значения order_index и закрепляет их принадлежность группе. Каждая строка
// обновляется только при совпадении владельца; если хотя бы одна строка не
// найдена, транзакция откатывается целиком. Возвращает обновленные строки.
func (r *AttractionRepository) Reorder(userID, groupID string, items []model.OrderItem) ([]model.Attraction, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return nil, fmt.Errorf("не удалось начать транзакцию: %w", err)
	}
	update := r.db.Rebind(`UPDATE attractions
		SET order_index=?, group_id=?, updated_at=CURRENT_TIMESTAMP
		WHERE id=? AND user_id=?`)
	for _, item := range items {
		res, err := tx.Exec(update, item.Order, groupID, item.ID, userID)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("не удалось обновить порядок: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			tx.Rollback()
			return nil, err
		}
		if affected == 0 {
			tx.Rollback()
			return nil, fmt.Errorf("достопримечательность %s не найдена: %w", item.ID, sql.ErrNoRows)
		}
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	query, args, err := sqlx.In("SELECT * FROM attractions WHERE id IN (?) ORDER BY order_index", ids)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	updated := []model.Attraction{}
	if err := tx.Select(&updated, r.db.Rebind(query), args...); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("не удалось прочитать обновленные строки: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("не удалось зафиксировать транзакцию: %w", err)
	}
	return updated, nil
}
