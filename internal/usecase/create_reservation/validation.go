package create_reservation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Session == nil {
		return fmt.Errorf("%w: session is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ArtisanID) == "" {
		return fmt.Errorf("%w: artisanID is required", ErrInvalidInput)
	}

	// Предмет заказа: либо каталожный проект, либо собственное название,
	// ровно одно из двух
	hasProject := req.ProjectID != nil && strings.TrimSpace(*req.ProjectID) != ""
	hasTitle := req.CustomTitle != nil && strings.TrimSpace(*req.CustomTitle) != ""

	if !hasProject && !hasTitle {
		return ErrSubjectRequired
	}
	if hasProject && hasTitle {
		return ErrAmbiguousSubject
	}

	if hasTitle && len(strings.TrimSpace(*req.CustomTitle)) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title exceeds %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if _, err := parseKind(req.Kind); err != nil {
		return err
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// parseKind разбирает тип заказа
func parseKind(raw string) (domain.ReservationKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case string(domain.KindCraft):
		return domain.KindCraft, nil
	case string(domain.KindMaintenance):
		return domain.KindMaintenance, nil
	case string(domain.KindCustom), "":
		// Пустой тип трактуется как произвольный заказ
		return domain.KindCustom, nil
	default:
		return "", fmt.Errorf("%w: unknown reservation kind %q", ErrInvalidInput, raw)
	}
}

// validateDateRange проверяет, что дата завершения позже даты начала.
// Применяется только к каталожным работам, у которых есть обе даты.
func validateDateRange(start time.Time, end time.Time) error {
	if !end.After(start) {
		return ErrInvalidDateRange
	}
	return nil
}

// durationDays оценивает длительность работ в целых днях; дробный хвост
// округляется вверх
func durationDays(start, end time.Time) int {
	hours := end.Sub(start).Hours()
	if hours < 0 {
		hours = -hours
	}
	return int(math.Ceil(hours / 24))
}
