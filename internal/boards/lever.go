package boards

import (
	"context"
	"fmt"
	"strconv"

	"go-web3jobs-bot/internal/models"
)

// Lever scrapes the public postings API of a fixed set of companies that
// host their openings on Lever. CreatedAt comes back as epoch milliseconds.
type Lever struct {
	client    *Client
	companies []string
}

func NewLever(client *Client, companies []string) *Lever {
	return &Lever{client: client, companies: companies}
}

func (l *Lever) Name() string {
	return "Lever"
}

type leverPosting struct {
	Text       string `json:"text"`
	HostedURL  string `json:"hostedUrl"`
	CreatedAt  int64  `json:"createdAt"`
	Categories struct {
		Location   string `json:"location"`
		Commitment string `json:"commitment"`
		Team       string `json:"team"`
	} `json:"categories"`
}

func (l *Lever) Scrape(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	failed := 0
	for _, company := range l.companies {
		url := fmt.Sprintf("https://api.lever.co/v0/postings/%s?mode=json", company)

		var postings []leverPosting
		if err := l.client.GetJSON(ctx, url, &postings); err != nil {
			failed++
			continue
		}
		for _, p := range postings {
			jobs = append(jobs, leverToJob(company, p))
		}
	}

	if failed > 0 && failed == len(l.companies) {
		return nil, fmt.Errorf("lever: all %d companies failed", failed)
	}
	return jobs, nil
}

func leverToJob(company string, p leverPosting) models.Job {
	posted := ""
	if p.CreatedAt > 0 {
		posted = strconv.FormatInt(p.CreatedAt, 10)
	}
	return models.Job{
		Title:    p.Text,
		Company:  company,
		Location: p.Categories.Location,
		URL:      p.HostedURL,
		Source:   "Lever",
		Posted:   posted,
	}
}
