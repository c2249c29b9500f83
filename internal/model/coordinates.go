package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Coordinates — географические координаты точки в формате [долгота, широта].
type Coordinates [2]float64

// Longitude возвращает долготу (первый элемент пары).
func (c Coordinates) Longitude() float64 { return c[0] }

// Latitude возвращает широту (второй элемент пары).
func (c Coordinates) Latitude() float64 { return c[1] }

// UnmarshalJSON принимает только массив ровно из двух чисел,
// любая другая форма отклоняется.
func (c *Coordinates) UnmarshalJSON(data []byte) error {
	var pair []float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("неверный формат координат: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("координаты должны быть массивом [долгота, широта], получено %d элементов", len(pair))
	}
	c[0], c[1] = pair[0], pair[1]
	return nil
}

// Value сериализует координаты в JSON-текст для хранения в одной колонке.
func (c Coordinates) Value() (driver.Value, error) {
	return json.Marshal([2]float64(c))
}

// Scan читает координаты из текстовой колонки базы данных.
func (c *Coordinates) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, (*[2]float64)(c))
	case string:
		return json.Unmarshal([]byte(v), (*[2]float64)(c))
	case nil:
		*c = Coordinates{}
		return nil
	default:
		return fmt.Errorf("неподдерживаемый тип координат в БД: %T", src)
	}
}
