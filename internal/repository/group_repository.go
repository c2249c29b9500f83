package repository

import (
	"fmt"

	"github.com/golonikum/attractions-app/internal/model"

	"github.com/jmoiron/sqlx"
)

// GroupRepository обеспечивает доступ к данным групп в базе данных.
// Все выборки ограничены владельцем (user_id).
type GroupRepository struct {
	db *sqlx.DB
}

// NewGroupRepository создает новый репозиторий для групп.
func NewGroupRepository(db *sqlx.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// Create сохраняет новую группу.
func (r *GroupRepository) Create(group *model.Group) error {
	query := r.db.Rebind(`INSERT INTO groups
		(id, user_id, name, description, tag, coordinates, zoom, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, group.ID, group.UserID, group.Name, group.Description,
		group.Tag, group.Coordinates, group.Zoom, group.CreatedAt, group.UpdatedAt)
	if err != nil {
		return fmt.Errorf("не удалось создать группу: %w", err)
	}
	return nil
}

// GetByID возвращает группу пользователя по идентификатору
// (sql.ErrNoRows, если группа не найдена или принадлежит другому).
func (r *GroupRepository) GetByID(id, userID string) (*model.Group, error) {
	var group model.Group
	err := r.db.Get(&group, r.db.Rebind("SELECT * FROM groups WHERE id=? AND user_id=?"), id, userID)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// ListByUser возвращает все группы пользователя, отсортированные
// по тегу и затем по названию.
func (r *GroupRepository) ListByUser(userID string) ([]model.Group, error) {
	groups := []model.Group{}
	err := r.db.Select(&groups,
		r.db.Rebind("SELECT * FROM groups WHERE user_id=? ORDER BY tag, name"), userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка групп: %w", err)
	}
	return groups, nil
}

// Update перезаписывает изменяемые поля группы.
func (r *GroupRepository) Update(group *model.Group) error {
	query := r.db.Rebind(`UPDATE groups
		SET name=?, description=?, tag=?, coordinates=?, zoom=?, updated_at=?
		WHERE id=? AND user_id=?`)
	_, err := r.db.Exec(query, group.Name, group.Description, group.Tag,
		group.Coordinates, group.Zoom, group.UpdatedAt, group.ID, group.UserID)
	if err != nil {
		return fmt.Errorf("не удалось обновить группу: %w", err)
	}
	return nil
}

// Delete удаляет группу пользователя; достопримечательности группы
// удаляются каскадно на уровне БД. Возвращает true, если строка была удалена.
func (r *GroupRepository) Delete(id, userID string) (bool, error) {
	res, err := r.db.Exec(r.db.Rebind("DELETE FROM groups WHERE id=? AND user_id=?"), id, userID)
	if err != nil {
		return false, fmt.Errorf("не удалось удалить группу: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
