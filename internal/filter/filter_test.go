package filter

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-web3jobs-bot/internal/models"
)

func newTestFilter() *Filter {
	f := New(DefaultPolicy())
	f.now = func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	}
	return f
}

func TestApplyKeepsRelevantListing(t *testing.T) {
	f := newTestFilter()
	jobs := []models.Job{{
		Title:    "Growth Marketing Lead",
		Company:  "ChainWorks",
		Location: "Remote - Worldwide",
		Posted:   "2026-02-20",
	}}

	got := f.Apply(jobs)
	require.Len(t, got, 1)
	assert.Equal(t, "ChainWorks", got[0].Company)
}

func TestApplyTitleInclusion(t *testing.T) {
	f := newTestFilter()
	tests := []struct {
		title string
		want  bool
	}{
		{"Head of Community", true},
		{"Content Strategist", true},
		{"DevRel Advocate", true},
		{"Smart Contract Auditor", false},
		{"Rust Developer", false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := f.Apply([]models.Job{{Title: tt.title, Location: "Remote"}})
			assert.Equal(t, tt.want, len(got) == 1)
		})
	}
}

func TestApplyTitleExclusion(t *testing.T) {
	f := newTestFilter()
	tests := []struct {
		title string
		want  bool
	}{
		{"Marketing Data Analyst", false},
		{"Community Content Moderator", false},
		{"Growth Engineering Manager", false},
		{"Brand Recruiter", false},
		{"Marketing Manager", true},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got := f.Apply([]models.Job{{Title: tt.title, Location: "Remote"}})
			assert.Equal(t, tt.want, len(got) == 1)
		})
	}
}

func TestProductMarketingManagerOverride(t *testing.T) {
	f := newTestFilter()

	//the override rescues exactly this shape of title from the
	//"product manager" exclusion
	got := f.Apply([]models.Job{{Title: "Product Marketing Manager", Location: "Remote"}})
	assert.Len(t, got, 1)

	got = f.Apply([]models.Job{{Title: "Growth Marketing Product Manager", Location: "Remote"}})
	assert.Len(t, got, 1)

	//a plain product manager stays out even with a qualifying include keyword
	got = f.Apply([]models.Job{{Title: "Product Manager, Ecosystem", Location: "Remote"}})
	assert.Empty(t, got)
}

func TestLocationAllowlist(t *testing.T) {
	f := newTestFilter()
	tests := []struct {
		location string
		want     bool
	}{
		{"", true},
		{"Remote", true},
		{"Worldwide", true},
		{"Anywhere (distributed team)", true},
		{"Singapore", true},
		{"Dubai, UAE", true},
		{"Remote - USA", false},
		{"Remote (US)", false},
		{"New York", false},
		{"Remote, US only", false},
		{"Hybrid - Lisbon", false},
		{"On-site, Berlin", false},
		{"Berlin", false},
		{"London, UK", false},
	}
	for _, tt := range tests {
		name := tt.location
		if name == "" {
			name = "empty"
		}
		t.Run(name, func(t *testing.T) {
			got := f.Apply([]models.Job{{Title: "Marketing Lead", Location: tt.location}})
			assert.Equal(t, tt.want, len(got) == 1, "location %q", tt.location)
		})
	}
}

func TestUSRestrictionOverridesRemote(t *testing.T) {
	f := newTestFilter()
	got := f.Apply([]models.Job{{Title: "Marketing Lead", Location: "Remote - San Francisco"}})
	assert.Empty(t, got)
}

func TestHTMLEntityDecoding(t *testing.T) {
	f := newTestFilter()
	got := f.Apply([]models.Job{{Title: "Marketing &amp; Communications Lead", Location: "Remote &#8211; Worldwide"}})
	assert.Len(t, got, 1)
}

func TestAgeFilter(t *testing.T) {
	f := newTestFilter()
	now := f.now()

	fresh := now.Add(-10 * 24 * time.Hour)
	stale := now.Add(-60 * 24 * time.Hour)

	jobs := []models.Job{
		{Title: "Marketing Lead", Location: "Remote", Posted: fresh.Format("2006-01-02")},
		{Title: "Marketing Lead", Location: "Remote", Posted: stale.Format("2006-01-02")},
		{Title: "Marketing Lead", Location: "Remote", Posted: "None"},
	}

	got := f.Apply(jobs)
	require.Len(t, got, 2)
	assert.Equal(t, fresh.Format("2006-01-02"), got[0].Posted)
	assert.Equal(t, "None", got[1].Posted)
}

func TestApplyIdempotent(t *testing.T) {
	f := newTestFilter()
	jobs := []models.Job{
		{Title: "Marketing Lead", Location: "Remote", Posted: "2026-02-20"},
		{Title: "Backend Engineer", Location: "Remote"},
		{Title: "Community Manager", Location: "Worldwide"},
	}

	once := f.Apply(jobs)
	twice := f.Apply(once)
	assert.Equal(t, once, twice)
}

func TestApplyEndToEnd(t *testing.T) {
	f := newTestFilter()
	old := f.now().Add(-60 * 24 * time.Hour)

	jobs := []models.Job{
		{Title: "Growth Marketing Lead", Location: "Remote", Posted: "2026-02-20"},
		{Title: "Community Manager", Location: "On-site, Dubai"},
		{Title: "Marketing Director", Location: "Remote", Posted: fmt.Sprintf("%d", old.Unix())},
	}

	got := f.Apply(jobs)
	require.Len(t, got, 1)
	assert.Equal(t, "Growth Marketing Lead", got[0].Title)
}
