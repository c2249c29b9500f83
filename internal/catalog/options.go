package catalog

import (
	"sort"

	"github.com/golonikum/attractions-app/internal/model"
)

// Options — значения, предлагаемые элементам фильтрации: без дубликатов,
// по возрастанию. Список названий групп каскадно сужен активным фильтром
// по тегам: выбор региона ограничивает предлагаемые города.
type Options struct {
	Tags       []string `json:"tags"`
	GroupNames []string `json:"groupNames"`
	Categories []string `json:"categories"`
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BuildOptions собирает списки значений фильтров по загруженным коллекциям.
func BuildOptions(groups []model.Group, attractions []model.Attraction, selectedTags []string) Options {
	tags := map[string]bool{}
	for _, g := range groups {
		if g.Tag != "" {
			tags[g.Tag] = true
		}
	}

	names := map[string]bool{}
	for _, g := range groups {
		if len(selectedTags) > 0 && (g.Tag == "" || !contains(selectedTags, g.Tag)) {
			continue
		}
		names[g.Name] = true
	}

	categories := map[string]bool{}
	for _, a := range attractions {
		if a.Category != "" {
			categories[a.Category] = true
		}
	}

	return Options{
		Tags:       sortedKeys(tags),
		GroupNames: sortedKeys(names),
		Categories: sortedKeys(categories),
	}
}
