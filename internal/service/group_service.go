package service

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golonikum/attractions-app/internal/model"
	"github.com/golonikum/attractions-app/internal/repository"

	"github.com/google/uuid"
)

// GroupService содержит бизнес-логику работы с группами достопримечательностей.
type GroupService struct {
	groupRepo *repository.GroupRepository
}

// NewGroupService создает новый сервис для работы с группами.
func NewGroupService(groupRepo *repository.GroupRepository) *GroupService {
	return &GroupService{groupRepo: groupRepo}
}

// Create валидирует запрос и создает новую группу пользователя.
func (s *GroupService) Create(userID string, req model.CreateGroupRequest) (*model.Group, error) {
	if req.Name == "" || req.Description == "" || req.Coordinates == nil || req.Zoom == nil {
		return nil, fmt.Errorf("%w: name, description, coordinates [долгота, широта] и zoom обязательны", ErrValidation)
	}
	now := time.Now().UTC()
	group := &model.Group{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
		Tag:         req.Tag,
		Coordinates: *req.Coordinates,
		Zoom:        *req.Zoom,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.groupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

// Get возвращает группу пользователя по идентификатору.
func (s *GroupService) Get(userID, id string) (*model.Group, error) {
	group, err := s.groupRepo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return group, nil
}

// List возвращает все группы пользователя (тег и название по возрастанию).
func (s *GroupService) List(userID string) ([]model.Group, error) {
	return s.groupRepo.ListByUser(userID)
}

// Update применяет частичное обновление к группе пользователя:
// изменяются только переданные поля.
func (s *GroupService) Update(userID, id string, req model.UpdateGroupRequest) (*model.Group, error) {
	group, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	req.Merge(group)
	group.UpdatedAt = time.Now().UTC()
	if err := s.groupRepo.Update(group); err != nil {
		return nil, err
	}
	return group, nil
}

// Delete удаляет группу пользователя вместе с ее достопримечательностями.
func (s *GroupService) Delete(userID, id string) error {
	deleted, err := s.groupRepo.Delete(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
