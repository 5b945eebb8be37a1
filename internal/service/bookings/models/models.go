package models

import (
	"fmt"

	"github.com/m04kA/TravelAgency-BackOffice/internal/domain"
)

// CardMethod способ оплаты картой с маской последних цифр, например "Карта *4821"
func CardMethod(lastDigits int) string {
	return fmt.Sprintf("%s *%04d", domain.PaymentMethodCard, lastDigits)
}

// StatusOptions статусы, которые менеджер может выбрать для заявки
func StatusOptions(b *domain.Booking) []domain.BookingStatus {
	all := []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed, domain.StatusAnnulled}

	options := make([]domain.BookingStatus, 0, len(all))
	for _, to := range all {
		if domain.CanTransition(b.Status, to, b.PaymentStatus) {
			options = append(options, to)
		}
	}
	return options
}
