package catalog

import (
	"sort"
	"strings"

	"github.com/golonikum/attractions-app/internal/model"
)

// NoteRecord — заметка, развернутая из достопримечательности,
// с привязкой к ее идентификатору.
type NoteRecord struct {
	model.Note
	AttractionID string `json:"attractionId"`
}

// ExtractNotes разворачивает заметки перечисленных достопримечательностей
// в плоский список, фильтрует по подстроке в тексте заметки (без учета
// регистра) и сортирует по дате по убыванию. При равных датах порядок
// вставки сохраняется.
func ExtractNotes(attractions []model.Attraction, query string) []NoteRecord {
	search := strings.ToLower(query)
	notes := []NoteRecord{}
	for _, a := range attractions {
		for _, note := range a.Notes {
			if search != "" && !strings.Contains(strings.ToLower(note.Note), search) {
				continue
			}
			notes = append(notes, NoteRecord{Note: note, AttractionID: a.ID})
		}
	}
	sort.SliceStable(notes, func(i, j int) bool { return notes[i].Date > notes[j].Date })
	return notes
}

// FilterNotes строит представление экрана заметок: достопримечательности
// сужаются фильтрами по тегу и названию группы, затем их заметки
// разворачиваются и фильтруются поисковой подстрокой.
func FilterNotes(groups []model.Group, attractions []model.Attraction, f Filters) []NoteRecord {
	filtered := FilterAttractions(groups, attractions, Filters{Tags: f.Tags, GroupNames: f.GroupNames})
	return ExtractNotes(filtered, f.Query)
}
