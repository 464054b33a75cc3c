// Turn filtered listings into Telegram-safe HTML batches:
// sort newest first, render one block per job, chunk below the message limit.

package notify

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"go-web3jobs-bot/internal/filter"
	"go-web3jobs-bot/internal/models"
)

const (
	//Telegram rejects messages longer than this
	maxMessageLen = 4096
	//headroom for the header/continued prefix added per batch
	splitBuffer = 200
)

// SortByRecency orders listings newest first. Listings whose posted date
// can't be parsed sort after all known dates; the sort is stable so ties
// among unknowns keep their input order.
func SortByRecency(jobs []models.Job) []models.Job {
	type keyed struct {
		job models.Job
		ts  time.Time
	}

	keys := make([]keyed, len(jobs))
	for i, job := range jobs {
		k := keyed{job: job}
		if dt, ok := filter.ParsePosted(job.Posted); ok {
			k.ts = dt
		}
		keys[i] = k
	}

	sort.SliceStable(keys, func(i, j int) bool {
		return keys[i].ts.After(keys[j].ts)
	})

	sorted := make([]models.Job, len(jobs))
	for i, k := range keys {
		sorted[i] = k.job
	}
	return sorted
}

// FormatJob renders one listing as an HTML block. Every user-supplied field
// is escaped so stray markup in a title can't break the message.
func FormatJob(job models.Job) string {
	salaryPart := ""
	if job.Salary != "" {
		salaryPart = fmt.Sprintf(" | 💰 %s", html.EscapeString(job.Salary))
	}

	location := job.Location
	if location == "" {
		location = "Remote"
	}

	link := "Apply"
	if job.URL != "" {
		link = fmt.Sprintf(`<a href="%s">Apply</a>`, html.EscapeString(job.URL))
	}

	return fmt.Sprintf(
		"🟢 <b>%s</b> - %s\n"+
			"📍 %s%s\n"+
			"🔗 %s · <i>%s</i>",
		html.EscapeString(job.Title),
		html.EscapeString(job.Company),
		html.EscapeString(location),
		salaryPart,
		link,
		html.EscapeString(job.Source),
	)
}

// SplitMessages packs formatted blocks into bodies that stay under the
// Telegram limit minus the split buffer. Blocks are never broken up.
func SplitMessages(blocks []string) []string {
	var messages []string
	var current strings.Builder
	maxBodyLen := maxMessageLen - splitBuffer

	for _, line := range blocks {
		block := line + "\n\n"
		if current.Len()+len(block) > maxBodyLen {
			if body := strings.TrimSpace(current.String()); body != "" {
				messages = append(messages, body)
			}
			current.Reset()
		}
		current.WriteString(block)
	}
	if body := strings.TrimSpace(current.String()); body != "" {
		messages = append(messages, body)
	}
	return messages
}

// BuildMessages produces the final batches for a non-empty listing set:
// the first batch carries the count header, the rest a continued marker.
// Empty input yields no batches; the caller decides whether to say anything.
func BuildMessages(jobs []models.Job) []string {
	if len(jobs) == 0 {
		return nil
	}

	sorted := SortByRecency(jobs)

	plural := "s"
	if len(sorted) == 1 {
		plural = ""
	}
	header := fmt.Sprintf("<b>🚀 %d New Web3 Marketing Job%s</b>\n\n", len(sorted), plural)

	blocks := make([]string, len(sorted))
	for i, job := range sorted {
		blocks[i] = FormatJob(job)
	}
	chunks := SplitMessages(blocks)

	messages := make([]string, len(chunks))
	for i, chunk := range chunks {
		prefix := header
		if i > 0 {
			prefix = fmt.Sprintf("<i>(continued %d/%d)</i>\n\n", i+1, len(chunks))
		}
		messages[i] = prefix + chunk
	}
	return messages
}
