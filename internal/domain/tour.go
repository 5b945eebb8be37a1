package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LookupItem элемент справочника (тип тура, партнёр)
type LookupItem struct {
	ID   int64
	Name string
}

// Tour тур в каталоге
type Tour struct {
	ID          int64
	Destination string
	TypeID      int64
	TypeName    string
	PartnerID   int64
	PartnerName string
	EmployeeID  int64
	StartDate   time.Time
	EndDate     time.Time
	Cost        decimal.Decimal
	IsActive    bool
	Description *string
	Rating      *float64 // средняя оценка по отзывам, nil если отзывов нет
}

// Dates диапазон дат тура в формате "dd.MM.yyyy - dd.MM.yyyy"
func (t *Tour) Dates() string {
	return t.StartDate.Format(DateFormat) + " - " + t.EndDate.Format(DateFormat)
}

// TourFilter фильтр каталога туров
type TourFilter struct {
	Search   string           // подстрока в направлении, пустая строка - без фильтра
	MaxPrice *decimal.Decimal // верхняя граница стоимости, nil - без фильтра
}

// TourInput данные тура для создания и изменения
type TourInput struct {
	TypeID      int64
	PartnerID   int64
	EmployeeID  int64 // при изменении не используется
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Cost        decimal.Decimal
	Description *string
}
