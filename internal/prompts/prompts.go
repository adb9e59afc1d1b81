// Package prompts builds the canned prompt strings for common time
// tracking workflows. Pure string assembly, no state.
package prompts

import "fmt"

// StartWork builds a prompt to begin tracking time.
func StartWork(customer, service, project string) string {
	if project != "" {
		return fmt.Sprintf("Start tracking time for customer '%s', project '%s', service '%s'",
			customer, project, service)
	}
	return fmt.Sprintf("Start tracking time for customer '%s', service '%s'", customer, service)
}

// StopWork builds a prompt to stop tracking time.
func StopWork() string {
	return "Stop tracking time for the current task"
}

// AddTimeEntry builds a prompt to record a manual time entry.
func AddTimeEntry(customer, service, date string, durationHours float64, description string) string {
	prompt := fmt.Sprintf("Add a time entry for %g hours on %s for customer '%s', service '%s'",
		durationHours, date, customer, service)
	if description != "" {
		prompt += fmt.Sprintf(" with description '%s'", description)
	}
	return prompt
}

// RequestVacation builds a prompt to file a vacation request.
func RequestVacation(dateSince, dateUntil string) string {
	return fmt.Sprintf("Request vacation from %s to %s", dateSince, dateUntil)
}

// WeeklySummary builds a prompt asking for a summary of the week's
// tracked time.
func WeeklySummary() string {
	return "Summarize my tracked time for the current week, grouped by customer and service"
}
