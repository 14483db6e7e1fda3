package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/quietpines/sondera/internal/models"
)

func validateAvailabilityStep(data models.OnboardingData, rules ValidationRules, _ time.Time) FieldErrors {
	errors := FieldErrors{}
	availability := data.Availability

	if strings.TrimSpace(availability.Timezone) == "" {
		errors["timezone"] = "Timezone is required"
	} else if _, err := time.LoadLocation(availability.Timezone); err != nil {
		errors["timezone"] = "Timezone is not recognized"
	}

	for _, day := range models.Weekdays {
		slots := availability.Schedule[day]
		seenIDs := make(map[string]struct{}, len(slots))
		for index, slot := range slots {
			fieldKey := fmt.Sprintf("schedule.%s[%d]", day, index)

			if strings.TrimSpace(slot.ID) == "" {
				errors[fieldKey] = "Time slot id is required"
				continue
			}
			if _, duplicate := seenIDs[slot.ID]; duplicate {
				errors[fieldKey] = "Time slot id must be unique within its day"
				continue
			}
			seenIDs[slot.ID] = struct{}{}

			if strings.TrimSpace(slot.StartTime) == "" || strings.TrimSpace(slot.EndTime) == "" {
				errors[fieldKey] = "Time slot needs a start and end time"
				continue
			}

			if rules.EnforceSlotOrder {
				if message := checkSlotOrder(slots, index); message != "" {
					errors[fieldKey] = message
				}
			}
		}
	}

	return errors
}

// checkSlotOrder applies the configurable ordering rule: end strictly after
// start, and no overlap with earlier slots on the same day. Times are
// free-form 24h strings ("HH:MM"); lexical comparison matches clock order.
func checkSlotOrder(slots []models.TimeSlot, index int) string {
	slot := slots[index]
	if slot.EndTime <= slot.StartTime {
		return "Time slot must end after it starts"
	}
	for _, earlier := range slots[:index] {
		if slot.StartTime < earlier.EndTime && earlier.StartTime < slot.EndTime {
			return "Time slot overlaps another slot on the same day"
		}
	}
	return ""
}
