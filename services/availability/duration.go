package availability

import "tribook/models"

// ResolveDuration computes the effective minutes of a requested booking.
// Priority: an explicit non-negative duration wins; otherwise the service
// base plus the impacts of the selected options; otherwise the fallback.
// Unknown option names are ignored rather than rejected — stored
// selections routinely outlive catalogue edits. Negative option impacts
// may shrink the total but never below zero.
func ResolveDuration(service *models.ServiceDefinition, selectedOptions []string, explicit *int, fallback int) int {
	if explicit != nil && *explicit >= 0 {
		return *explicit
	}

	if service == nil {
		return fallback
	}

	selected := make(map[string]bool, len(selectedOptions))
	for _, name := range selectedOptions {
		selected[name] = true
	}

	total := service.BaseDurationMinutes
	for _, opt := range service.Options {
		if selected[opt.Name] {
			total += opt.DurationImpactMinutes
		}
	}
	if total < 0 {
		total = 0
	}
	return total
}

// OptionPrice sums the price impacts of the selected options on top of
// the service base price.
func OptionPrice(service *models.ServiceDefinition, selectedOptions []string) float64 {
	if service == nil {
		return 0
	}
	selected := make(map[string]bool, len(selectedOptions))
	for _, name := range selectedOptions {
		selected[name] = true
	}
	total := service.BasePrice
	for _, opt := range service.Options {
		if selected[opt.Name] {
			total += opt.PriceImpact
		}
	}
	return total
}
