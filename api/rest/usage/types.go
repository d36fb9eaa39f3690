package usage

// Response is a preview of what would happen if the user submitted a
// transformation right now. Nothing is consumed by asking.
type Response struct {
	DayKey                   string `json:"day_key"`
	DailyCount               int    `json:"daily_count"`
	DailyLimit               int    `json:"daily_limit"`
	Admitted                 bool   `json:"admitted"`
	Reason                   string `json:"reason,omitempty"`
	RemainingCooldownSeconds int    `json:"remaining_cooldown_seconds,omitempty"`
	Message                  string `json:"message,omitempty"`
}
