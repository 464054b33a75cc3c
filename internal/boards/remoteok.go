package boards

import (
	"context"

	"go-web3jobs-bot/internal/models"
)

// RemoteOK scrapes the public JSON feed. The first element of the feed is a
// legal notice, not a listing; real entries carry a position field.
type RemoteOK struct {
	client *Client
}

func NewRemoteOK(client *Client) *RemoteOK {
	return &RemoteOK{client: client}
}

func (r *RemoteOK) Name() string {
	return "RemoteOK"
}

type remoteOKEntry struct {
	Position string `json:"position"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
	URL      string `json:"url"`
	Date     string `json:"date"`
}

func (r *RemoteOK) Scrape(ctx context.Context) ([]models.Job, error) {
	var entries []remoteOKEntry
	if err := r.client.GetJSON(ctx, "https://remoteok.com/api", &entries); err != nil {
		return nil, err
	}
	return remoteOKToJobs(entries), nil
}

func remoteOKToJobs(entries []remoteOKEntry) []models.Job {
	var jobs []models.Job
	for _, e := range entries {
		if e.Position == "" {
			continue
		}
		jobs = append(jobs, models.Job{
			Title:    e.Position,
			Company:  e.Company,
			Location: e.Location,
			Salary:   e.Salary,
			URL:      e.URL,
			Source:   "RemoteOK",
			Posted:   e.Date,
		})
	}
	return jobs
}
