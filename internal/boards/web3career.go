package boards

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-web3jobs-bot/internal/models"
)

const web3CareerURL = "https://web3.career/marketing+non-tech-jobs"

// Web3Career scrapes the marketing section of web3.career. Listings are rows
// of a plain HTML table; the posted date sits in a <time datetime> attribute.
type Web3Career struct {
	client *Client
}

func NewWeb3Career(client *Client) *Web3Career {
	return &Web3Career{client: client}
}

func (w *Web3Career) Name() string {
	return "web3.career"
}

func (w *Web3Career) Scrape(ctx context.Context) ([]models.Job, error) {
	doc, err := w.client.GetDocument(ctx, web3CareerURL)
	if err != nil {
		return nil, err
	}
	return parseWeb3CareerDoc(doc), nil
}

func parseWeb3CareerDoc(doc *goquery.Document) []models.Job {
	var jobs []models.Job
	doc.Find("table tbody tr").Each(func(_ int, row *goquery.Selection) {
		title := strings.TrimSpace(row.Find("h2").First().Text())
		if title == "" {
			return
		}
		company := strings.TrimSpace(row.Find("h3").First().Text())
		location := strings.TrimSpace(row.Find("td.job-location-mobile").First().Text())
		salary := strings.TrimSpace(row.Find("p.text-salary").First().Text())
		posted, _ := row.Find("time").First().Attr("datetime")

		link, _ := row.Find("a").First().Attr("href")
		if link != "" && !strings.HasPrefix(link, "http") {
			link = "https://web3.career" + link
		}

		jobs = append(jobs, models.Job{
			Title:    title,
			Company:  company,
			Location: location,
			Salary:   salary,
			URL:      link,
			Source:   "web3.career",
			Posted:   strings.TrimSpace(posted),
		})
	})
	return jobs
}
