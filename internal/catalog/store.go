// Пакет catalog реализует клиентскую модель данных приложения: общее
// хранилище загруженных коллекций и чистые функции построения
// производных представлений (фильтрация, поиск, агрегация значений
// фильтров, плоский список заметок).
package catalog

import (
	"sort"
	"sync"

	"github.com/golonikum/attractions-app/internal/model"
)

// Store — единое хранилище коллекций групп и достопримечательностей.
// Коллекции загружаются целиком один раз и далее точечно изменяются
// после успешных мутаций; все экраны читают из одного экземпляра.
type Store struct {
	mu          sync.Mutex
	groups      []model.Group
	attractions []model.Attraction
}

// NewStore создает пустое хранилище.
func NewStore() *Store {
	return &Store{}
}

// ReplaceGroups целиком заменяет коллекцию групп (начальная загрузка).
func (s *Store) ReplaceGroups(groups []model.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append([]model.Group(nil), groups...)
}

// ReplaceAttractions целиком заменяет коллекцию достопримечательностей.
func (s *Store) ReplaceAttractions(attractions []model.Attraction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attractions = append([]model.Attraction(nil), attractions...)
}

// Groups возвращает копию коллекции групп.
func (s *Store) Groups() []model.Group {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Group(nil), s.groups...)
}

// Attractions возвращает копию коллекции достопримечательностей.
func (s *Store) Attractions() []model.Attraction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Attraction(nil), s.attractions...)
}

// AttractionsByGroup возвращает достопримечательности группы
// в порядке возрастания поля Order.
func (s *Store) AttractionsByGroup(groupID string) []model.Attraction {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := []model.Attraction{}
	for _, a := range s.attractions {
		if a.GroupID == groupID {
			result = append(result, a)
		}
	}
	sort.SliceStable(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result
}

// AddGroup добавляет новую группу в начало коллекции.
func (s *Store) AddGroup(group model.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups = append([]model.Group{group}, s.groups...)
}

// UpdateGroup заменяет группу с тем же идентификатором.
func (s *Store) UpdateGroup(group model.Group) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.groups {
		if s.groups[i].ID == group.ID {
			s.groups[i] = group
			return
		}
	}
}

// RemoveGroup удаляет группу и, как и серверное каскадное удаление,
// все ее достопримечательности.
func (s *Store) RemoveGroup(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups := s.groups[:0]
	for _, g := range s.groups {
		if g.ID != id {
			groups = append(groups, g)
		}
	}
	s.groups = groups
	attractions := s.attractions[:0]
	for _, a := range s.attractions {
		if a.GroupID != id {
			attractions = append(attractions, a)
		}
	}
	s.attractions = attractions
}

// AddAttraction добавляет новую достопримечательность в конец коллекции.
func (s *Store) AddAttraction(attraction model.Attraction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attractions = append(s.attractions, attraction)
}

// UpdateAttraction заменяет достопримечательность с тем же идентификатором.
func (s *Store) UpdateAttraction(attraction model.Attraction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.attractions {
		if s.attractions[i].ID == attraction.ID {
			s.attractions[i] = attraction
			return
		}
	}
}

// RemoveAttraction удаляет достопримечательность по идентификатору.
func (s *Store) RemoveAttraction(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attractions := s.attractions[:0]
	for _, a := range s.attractions {
		if a.ID != id {
			attractions = append(attractions, a)
		}
	}
	s.attractions = attractions
}

// ApplyOrder локально применяет новый порядок: каждой перечисленной
// достопримечательности выставляется Order и принадлежность группе.
func (s *Store) ApplyOrder(groupID string, items []model.OrderItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID := make(map[string]int, len(items))
	for _, item := range items {
		byID[item.ID] = item.Order
	}
	for i := range s.attractions {
		if order, ok := byID[s.attractions[i].ID]; ok {
			s.attractions[i].Order = order
			s.attractions[i].GroupID = groupID
		}
	}
}
