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

// AttractionService содержит бизнес-логику работы с достопримечательностями,
// включая атомарное изменение порядка внутри группы.
type AttractionService struct {
	attractionRepo *repository.AttractionRepository
	groupRepo      *repository.GroupRepository
}

// NewAttractionService создает новый сервис для работы с достопримечательностями.
func NewAttractionService(attractionRepo *repository.AttractionRepository, groupRepo *repository.GroupRepository) *AttractionService {
	return &AttractionService{attractionRepo: attractionRepo, groupRepo: groupRepo}
}

// Create валидирует запрос, проверяет принадлежность группы пользователю
// и создает новую достопримечательность.
func (s *AttractionService) Create(userID string, req model.CreateAttractionRequest) (*model.Attraction, error) {
	if req.GroupID == "" || req.Name == "" || req.Coordinates == nil {
		return nil, fmt.Errorf("%w: groupId, name и coordinates [долгота, широта] обязательны", ErrValidation)
	}
	if _, err := s.groupRepo.GetByID(req.GroupID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("группа не найдена: %w", ErrNotFound)
		}
		return nil, err
	}
	order := req.Order
	if order == 0 {
		order = 1
	}
	now := time.Now().UTC()
	attraction := &model.Attraction{
		ID:          uuid.NewString(),
		UserID:      userID,
		GroupID:     req.GroupID,
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		YaMapURL:    req.YaMapURL,
		IsVisited:   req.IsVisited,
		IsFavorite:  req.IsFavorite,
		Coordinates: *req.Coordinates,
		Order:       order,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.attractionRepo.Create(attraction); err != nil {
		return nil, err
	}
	return attraction, nil
}

// Get возвращает достопримечательность пользователя по идентификатору.
func (s *AttractionService) Get(userID, id string) (*model.Attraction, error) {
	attraction, err := s.attractionRepo.GetByID(id, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return attraction, nil
}

// List возвращает достопримечательности пользователя: все или только
// указанной группы, в порядке возрастания поля order.
func (s *AttractionService) List(userID, groupID string) ([]model.Attraction, error) {
	if groupID != "" {
		return s.attractionRepo.ListByGroup(groupID, userID)
	}
	return s.attractionRepo.ListByUser(userID)
}

// Update применяет частичное обновление к достопримечательности пользователя.
func (s *AttractionService) Update(userID, id string, req model.UpdateAttractionRequest) (*model.Attraction, error) {
	attraction, err := s.Get(userID, id)
	if err != nil {
		return nil, err
	}
	req.Merge(attraction)
	attraction.UpdatedAt = time.Now().UTC()
	if err := s.attractionRepo.Update(attraction); err != nil {
		return nil, err
	}
	return attraction, nil
}

// Delete удаляет достопримечательность пользователя.
func (s *AttractionService) Delete(userID, id string) error {
	deleted, err := s.attractionRepo.Delete(id, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// UpdateOrder атомарно применяет новый порядок достопримечательностей
// внутри группы. До записи проверяются обязательность groupId, непустота
// списка, уникальность идентификаторов и принадлежность группы
// пользователю; при ошибке валидации ни одна строка не изменяется.
// Возвращает обновленные строки.
func (s *AttractionService) UpdateOrder(userID string, req model.UpdateOrderRequest) ([]model.Attraction, error) {
	if req.GroupID == "" || len(req.Attractions) == 0 {
		return nil, fmt.Errorf("%w: groupId и attractions с id/order обязательны", ErrValidation)
	}
	seen := make(map[string]bool, len(req.Attractions))
	for _, item := range req.Attractions {
		if item.ID == "" {
			return nil, fmt.Errorf("%w: у каждого элемента должен быть id", ErrValidation)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("%w: id элементов должны быть уникальными", ErrValidation)
		}
		seen[item.ID] = true
	}
	if _, err := s.groupRepo.GetByID(req.GroupID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("группа не найдена: %w", ErrNotFound)
		}
		return nil, err
	}
	return s.attractionRepo.Reorder(userID, req.GroupID, req.Attractions)
}
