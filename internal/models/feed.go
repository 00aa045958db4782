package models

// Feed is one radio feed row scraped from a listing page, annotated with the
// hourly listener averages once a cycle has folded it in.
type Feed struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Listeners   int         `json:"listeners"`
	StateID     int         `json:"stateId"`
	StateAbbrev string      `json:"stateAbbrev,omitempty"`
	County      string      `json:"county,omitempty"`
	Alert       string      `json:"alert,omitempty"`
	URL         string      `json:"url"`
	Avg         ListenerAvg `json:"avg"`
}

// JumpAt returns how far the current listener count sits above the feed's
// average for the given hour of day. Negative when below average.
func (f Feed) JumpAt(hour int) float64 {
	return float64(f.Listeners) - f.Avg.At(hour)
}

func (f Feed) HasAlert() bool {
	return f.Alert != ""
}
