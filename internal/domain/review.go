package domain

import "time"

// Review отзыв клиента о туре, не больше одного на пару (клиент, тур)
type Review struct {
	ID         int64
	TourID     int64
	TourName   string
	ClientID   int64
	ClientName string
	Date       time.Time
	Rating     int
	Comment    string
}

// NewReview данные нового отзыва
type NewReview struct {
	TourID   int64
	ClientID int64
	Rating   int
	Comment  string
}
