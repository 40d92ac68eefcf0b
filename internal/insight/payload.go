// Package insight builds and sends the summary payload sent to the external
// insight-generation service and parses the text it returns. Failures are
// never fatal to callers: they substitute Fallback.
package insight

// Payload is the serialized subset of the metrics bundle the insight
// service receives. Field names match the wire format the service expects.
type Payload struct {
	Daily    DailyPayload    `json:"daily"`
	Weekly   []WeekPoint     `json:"weekly"`
	Monthly  []MonthPoint    `json:"monthly"`
	Category []CategorySlice `json:"category"`
}

// DailyPayload is today's planned vs actual minutes.
type DailyPayload struct {
	Planned int `json:"planned"`
	Actual  int `json:"actual"`
}

// WeekPoint is one day of the weekly productivity series.
type WeekPoint struct {
	Date         string `json:"date"`
	Productivity int    `json:"productivity"`
}

// MonthPoint is one month of the monthly productivity series.
type MonthPoint struct {
	Month        string `json:"month"`
	Productivity int    `json:"productivity"`
}

// CategorySlice is one slice of the category time distribution.
type CategorySlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}
