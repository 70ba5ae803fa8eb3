package calendar

import (
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// validateBusinessHours проверяет запись недельного шаблона
func validateBusinessHours(h domain.BusinessHours) error {
	if h.DayOfWeek < 0 || h.DayOfWeek >= domain.DaysInWeek {
		return fmt.Errorf("%w: dayOfWeek must be in [0, 6]", ErrInvalidInput)
	}

	if err := h.OpenTime.Validate(); err != nil {
		return fmt.Errorf("%w: openTime: %v", ErrInvalidInput, err)
	}
	if err := h.CloseTime.Validate(); err != nil {
		return fmt.Errorf("%w: closeTime: %v", ErrInvalidInput, err)
	}

	// Для закрытого дня порядок времён не важен
	if !h.IsOpen {
		return nil
	}

	if !h.OpenTime.IsBefore(h.CloseTime) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	return validateLunch(h.OpenTime, h.CloseTime, h.LunchStart, h.LunchEnd)
}

// validateSpecialDate проверяет особую дату после применения изменений
func validateSpecialDate(sd domain.SpecialDate) error {
	if sd.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if len(sd.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must not exceed %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	for name, ts := range map[string]*types.TimeString{
		"openTime":   sd.OpenTime,
		"closeTime":  sd.CloseTime,
		"lunchStart": sd.LunchStart,
		"lunchEnd":   sd.LunchEnd,
	} {
		if ts == nil || ts.IsZero() {
			continue
		}
		if err := ts.Validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidInput, name, err)
		}
	}

	if !sd.IsOpen {
		return nil
	}

	openAt, closeAt := effectiveSpecialHours(sd)
	if !openAt.IsBefore(closeAt) {
		return fmt.Errorf("%w: openTime must be before closeTime", ErrInvalidInput)
	}

	return validateLunch(openAt, closeAt, sd.LunchStart, sd.LunchEnd)
}

// validateLunch проверяет, что обед задан парой и лежит внутри рабочего дня
func validateLunch(openAt, closeAt types.TimeString, start, end *types.TimeString) error {
	if start == nil && end == nil {
		return nil
	}
	if start == nil || end == nil {
		return fmt.Errorf("%w: lunchStart and lunchEnd must be set together", ErrInvalidInput)
	}
	if err := start.Validate(); err != nil {
		return fmt.Errorf("%w: lunchStart: %v", ErrInvalidInput, err)
	}
	if err := end.Validate(); err != nil {
		return fmt.Errorf("%w: lunchEnd: %v", ErrInvalidInput, err)
	}
	if !start.IsBefore(*end) {
		return fmt.Errorf("%w: lunchStart must be before lunchEnd", ErrInvalidInput)
	}
	if start.IsBefore(openAt) || end.IsAfter(closeAt) {
		return fmt.Errorf("%w: lunch must be within opening hours", ErrInvalidInput)
	}
	return nil
}
