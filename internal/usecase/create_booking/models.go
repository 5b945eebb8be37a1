package create_booking

import "github.com/shopspring/decimal"

// Request запрос на создание заявки
type Request struct {
	TourID     int64
	ClientID   int64
	EmployeeID *int64 // менеджер, оформляющий заявку; nil если бронирует сам клиент
}

// Response созданная заявка
type Response struct {
	ID         int64
	TourID     int64
	ClientID   int64
	EmployeeID *int64
	FinalPrice decimal.Decimal // базовая стоимость тура на момент бронирования
}
