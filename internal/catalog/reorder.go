package catalog

import "github.com/golonikum/attractions-app/internal/model"

// OrderUpdater отправляет новый порядок достопримечательностей на сервер.
type OrderUpdater interface {
	UpdateOrder(req model.UpdateOrderRequest) error
}

// Reorder применяет новый порядок оптимистично: снимок текущей коллекции
// сохраняется, порядок применяется локально, затем отправляется запрос.
// При ошибке сервера хранилище откатывается к снимку, а ошибка
// возвращается вызывающему для показа уведомления.
func Reorder(store *Store, updater OrderUpdater, groupID string, items []model.OrderItem) error {
	snapshot := store.Attractions()
	store.ApplyOrder(groupID, items)
	if err := updater.UpdateOrder(model.UpdateOrderRequest{GroupID: groupID, Attractions: items}); err != nil {
		store.ReplaceAttractions(snapshot)
		return err
	}
	return nil
}
