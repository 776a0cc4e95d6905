package update_schedule

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	VisibleFrom         string  `json:"visibleFrom"` // "09:00"
	VisibleTo           string  `json:"visibleTo"`   // "18:00"
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	GoogleCalendarID    *string `json:"googleCalendarId,omitempty"`
	ICSFeedURL          *string `json:"icsFeedUrl,omitempty"`
}
