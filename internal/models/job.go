package models

// Job is one raw listing as returned by a board scraper.
// Fields are never mutated after creation; the pipeline only reads them.
type Job struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location,omitempty"`
	Salary   string `json:"salary,omitempty"`
	URL      string `json:"url,omitempty"`
	Source   string `json:"source"`
	// Posted is the board's raw timestamp, in whatever format the board uses.
	// It stays unparsed here; filter.ParsePosted normalizes it on demand.
	Posted string `json:"posted,omitempty"`
}
