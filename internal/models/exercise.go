package models

// AddExerciseRequest represents the request body for logging an exercise.
// Duration is a pointer so that an absent field is distinguishable from 0.
type AddExerciseRequest struct {
	UserID      string   `json:"userId" form:"userId"`
	Description string   `json:"description" form:"description"`
	Duration    *float64 `json:"duration" form:"duration"`
	Date        string   `json:"date" form:"date"` // optional; empty means "now"
}

// AddExerciseResponse represents the response after logging an exercise.
// _id echoes the owning user's identifier, not the exercise's.
type AddExerciseResponse struct {
	ID          string  `json:"_id"`
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"` // calendar string, e.g. "Mon Jan 02 2006"
}

// LogEntry is one exercise as presented in a log query response.
type LogEntry struct {
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"` // calendar string
}

// LogResponse is the envelope returned by the log query endpoint. From and
// To echo the request filters reformatted as calendar strings; they are
// omitted when absent or unparseable. Count is the length of the returned
// (already limited) page, not the total match count.
type LogResponse struct {
	ID       string     `json:"_id"`
	Username string     `json:"username"`
	From     *string    `json:"from,omitempty"`
	To       *string    `json:"to,omitempty"`
	Limit    int        `json:"limit"`
	Count    int        `json:"count"`
	Log      []LogEntry `json:"log"`
}
