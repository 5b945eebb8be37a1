package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

var (
	ErrEmptyDestination = errors.New("destination is required")
	ErrLongDestination  = errors.New("destination is too long")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrDateOrder        = errors.New("end date is before start date")
	ErrInvalidCost      = errors.New("invalid cost")
	ErrNegativeCost     = errors.New("cost must not be negative")
	ErrNoLookup         = errors.New("tour type and partner are required")
)

// TourForm данные формы тура в том виде, в каком их вводит пользователь
type TourForm struct {
	TypeID      int64
	PartnerID   int64
	Destination string
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	Cost        string
	Description string
}

// ToInput разбирает и проверяет форму
func (f TourForm) ToInput() (domain.TourInput, error) {
	var in domain.TourInput

	destination := strings.TrimSpace(f.Destination)
	if destination == "" {
		return in, ErrEmptyDestination
	}
	if utf8.RuneCountInString(destination) > domain.MaxDestinationLength {
		return in, ErrLongDestination
	}
	if f.TypeID <= 0 || f.PartnerID <= 0 {
		return in, ErrNoLookup
	}

	start, err := time.Parse(domain.ISODateFormat, strings.TrimSpace(f.StartDate))
	if err != nil {
		return in, fmt.Errorf("%w: %s", ErrInvalidDate, f.StartDate)
	}
	end, err := time.Parse(domain.ISODateFormat, strings.TrimSpace(f.EndDate))
	if err != nil {
		return in, fmt.Errorf("%w: %s", ErrInvalidDate, f.EndDate)
	}
	if end.Before(start) {
		return in, ErrDateOrder
	}

	cost, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(f.Cost), ",", "."))
	if err != nil {
		return in, fmt.Errorf("%w: %s", ErrInvalidCost, f.Cost)
	}
	if cost.IsNegative() {
		return in, ErrNegativeCost
	}

	in = domain.TourInput{
		TypeID:      f.TypeID,
		PartnerID:   f.PartnerID,
		Destination: destination,
		StartDate:   start,
		EndDate:     end,
		Cost:        cost.Round(2),
	}
	if d := strings.TrimSpace(f.Description); d != "" {
		in.Description = &d
	}
	return in, nil
}

// Dictionaries справочники для формы тура
type Dictionaries struct {
	Types    []domain.LookupItem
	Partners []domain.LookupItem
}
