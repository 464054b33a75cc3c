package filter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Policy holds the keyword catalogues the filter runs on. The lists are
// product policy rather than pipeline mechanics, so they can be overridden
// from a YAML file without touching code.
type Policy struct {
	MaxAgeDays int `yaml:"max_age_days"`

	//job title must contain at least one of these
	IncludeKeywords []string `yaml:"include_keywords"`

	//these in the title mean it is not actually a marketing role
	ExcludeTitlePhrases []string `yaml:"exclude_title_phrases"`

	//location allowlist: only these pass, everything else with a geography is out
	AllowedLocations []string `yaml:"allowed_locations"`

	//US-restricted patterns deny even when "remote" also appears
	USRestrictedPatterns []string `yaml:"us_restricted_patterns"`

	//on-site patterns deny everywhere
	OnsitePatterns []string `yaml:"onsite_patterns"`
}

func DefaultPolicy() Policy {
	return Policy{
		MaxAgeDays: 45,
		IncludeKeywords: []string{
			"marketing",
			"growth marketer",
			"growth manager",
			"growth lead",
			"growth director",
			"community",
			"content",
			"brand",
			"gtm",
			"go-to-market",
			"partnerships",
			"kol",
			"social media",
			"communications",
			" pr ",
			"public relations",
			"customer acquisition",
			"user acquisition",
			"ambassador",
			"influencer",
			"awareness",
			"campaign",
			"narrative",
			"ecosystem",
			"devrel",
			"developer relations",
			"demand generation",
			"product marketing",
			"growth marketing",
		},
		ExcludeTitlePhrases: []string{
			"talent acquisition",
			"frontend engineer",
			"backend engineer",
			"software engineer",
			"engineering manager",
			"engineering director",
			"data engineer",
			"principal engineer",
			"algorithm engineer",
			"business intelligence",
			"customer care",
			"customer success",
			"customer support",
			"game reviewer",
			"content delivery",
			"content moderator",
			"content moderation",
			"human resources",
			"hr lead",
			"hr manager",
			"recruiting",
			"recruiter",
			"legal counsel",
			"compliance",
			"risk manager",
			"financial analyst",
			"data analyst",
			"data scientist",
			"machine learning",
			"qa engineer",
			"qa lead",
			"security engineer",
			"security analyst",
			"network engineer",
			"site reliability",
			"devops",
			"product manager",
		},
		AllowedLocations: []string{
			"remote",
			"worldwide",
			"global",
			"anywhere",
			"distributed",
			"dubai",
			"uae",
			"singapore",
			"hong kong",
		},
		USRestrictedPatterns: []string{
			"us only",
			"us citizen",
			"must be in us",
			"us work authorization",
			"remote - usa",
			"remote, usa",
			"remote - us",
			"remote, us",
			"us / remote",
			"remote (us)",
			"remote (usa)",
			"remote (united states)",
			"united states",
			"new york",
			"san francisco",
			"austin",
			"los angeles",
			"boston",
			"chicago",
			"seattle",
			"miami",
			"denver",
			"nyc",
			"bay area",
			"silicon valley",
			"remote - ny",
			"remote - ca",
			"california",
			"texas",
			"washington, d",
		},
		OnsitePatterns: []string{
			"on-site",
			"onsite",
			"in-office",
			"hybrid",
		},
	}
}

// LoadPolicy reads the catalogue overrides from path on top of the defaults.
// A missing file just means defaults; a malformed one is an error.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return policy, nil
		}
		return policy, fmt.Errorf("read policy file: %w", err)
	}

	if err := yaml.Unmarshal(data, &policy); err != nil {
		return policy, fmt.Errorf("parse policy file: %w", err)
	}
	if policy.MaxAgeDays < 1 {
		policy.MaxAgeDays = DefaultPolicy().MaxAgeDays
	}
	return policy, nil
}
