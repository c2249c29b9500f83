package catalog

import (
	"strings"

	"github.com/golonikum/attractions-app/internal/model"
)

// Filters — активные значения фильтров экрана. Пустое значение измерения
// означает "не фильтровать"; непустые измерения объединяются по И.
type Filters struct {
	Tags       []string // выбранные теги групп (регионы)
	GroupNames []string // выбранные названия групп (города)
	Categories []string // выбранные категории достопримечательностей
	Query      string   // подстрока поиска без учета регистра
	OnlyImages bool     // оставлять только объекты с фотографией (галерея)
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func matchesQuery(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	search := strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

// FilterGroups возвращает группы, проходящие фильтры по тегу и названию
// и поиск по названию/описанию. Группа без тега не проходит непустой
// фильтр по тегам.
func FilterGroups(groups []model.Group, f Filters) []model.Group {
	result := []model.Group{}
	for _, g := range groups {
		if len(f.Tags) > 0 && (g.Tag == "" || !contains(f.Tags, g.Tag)) {
			continue
		}
		if len(f.GroupNames) > 0 && !contains(f.GroupNames, g.Name) {
			continue
		}
		if !matchesQuery(f.Query, g.Name, g.Description) {
			continue
		}
		result = append(result, g)
	}
	return result
}

// FilterAttractions строит рабочий набор достопримечательностей экрана:
// сперва по группам сужается допустимое множество (тег, затем название),
// затем достопримечательности фильтруются по принадлежности, категории,
// поисковой подстроке (название/описание) и, при необходимости, наличию
// фотографии. Вычисление чистое: одинаковые входы дают одинаковый результат.
func FilterAttractions(groups []model.Group, attractions []model.Attraction, f Filters) []model.Attraction {
	eligible := FilterGroups(groups, Filters{Tags: f.Tags, GroupNames: f.GroupNames})
	groupIDs := make(map[string]bool, len(eligible))
	for _, g := range eligible {
		groupIDs[g.ID] = true
	}
	result := []model.Attraction{}
	for _, a := range attractions {
		if !groupIDs[a.GroupID] {
			continue
		}
		if len(f.Categories) > 0 && (a.Category == "" || !contains(f.Categories, a.Category)) {
			continue
		}
		if !matchesQuery(f.Query, a.Name, a.Description) {
			continue
		}
		if f.OnlyImages && a.ImageURL == "" {
			continue
		}
		result = append(result, a)
	}
	return result
}

// SearchAttractions — поиск по всем достопримечательностям без учета
// групповых фильтров (экран поиска): подстрока в названии или описании.
func SearchAttractions(attractions []model.Attraction, query string) []model.Attraction {
	result := []model.Attraction{}
	for _, a := range attractions {
		if matchesQuery(query, a.Name, a.Description) {
			result = append(result, a)
		}
	}
	return result
}
