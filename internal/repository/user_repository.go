package repository

import (
	"fmt"

	"github.com/golonikum/attractions-app/internal/model"

	"github.com/jmoiron/sqlx"
)

// UserRepository обеспечивает доступ к данным пользователей в базе данных.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создает новый репозиторий для пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет нового пользователя.
func (r *UserRepository) Create(user *model.User) error {
	query := r.db.Rebind(`INSERT INTO users (id, email, name, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`)
	_, err := r.db.Exec(query, user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return fmt.Errorf("не удалось создать пользователя: %w", err)
	}
	return nil
}

// GetByEmail возвращает пользователя по email (sql.ErrNoRows, если не найден).
func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, r.db.Rebind("SELECT * FROM users WHERE email=?"), email)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID возвращает пользователя по идентификатору.
func (r *UserRepository) GetByID(id string) (*model.User, error) {
	var user model.User
	err := r.db.Get(&user, r.db.Rebind("SELECT * FROM users WHERE id=?"), id)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
