// Map hiring companies to their X profiles for the /twitter command.
// The current-company list is cached as JSON by the fetch pipeline.

package companies

import (
	"encoding/json"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

const cacheFileName = "current_companies.json"

// handles maps a lower-cased trimmed company name to its X handle.
// Static product data, extended by hand as new companies show up.
var handles = map[string]string{
	"consensys":         "Consensys",
	"chainlink labs":    "chainlink",
	"uniswap labs":      "Uniswap",
	"aave":              "aave",
	"polygon labs":      "0xPolygon",
	"offchain labs":     "arbitrum",
	"optimism":          "Optimism",
	"solana foundation": "solana",
	"the graph":         "graphprotocol",
	"ledger":            "Ledger",
	"kraken":            "krakenfx",
	"binance":           "binance",
	"okx":               "okx",
	"bitget":            "bitgetglobal",
	"dydx":              "dYdX",
	"wormhole":          "wormhole",
	"eigenlayer":        "eigenlayer",
	"lido":              "LidoFinance",
	"safe":              "safe",
	"near foundation":   "NEARProtocol",
	"ava labs":          "avalabsofficial",
	"immutable":         "Immutable",
	"alchemy":           "Alchemy",
	"moonpay":           "moonpay",
	"gemini":            "Gemini",
}

// HandleFor looks up the X handle for a company name.
func HandleFor(name string) (string, bool) {
	h, ok := handles[strings.ToLower(strings.TrimSpace(name))]
	return h, ok
}

// cachePath resolves the companies cache: the local file wins, then the
// configured data directory (cloud volume).
func cachePath(dataDir string) string {
	if _, err := os.Stat(cacheFileName); err == nil || dataDir == "" {
		return cacheFileName
	}
	return filepath.Join(dataDir, cacheFileName)
}

// LoadCurrent reads the cached list of currently-hiring company names.
// A missing or unreadable cache is just an empty list.
func LoadCurrent(dataDir string) []string {
	data, err := os.ReadFile(cachePath(dataDir))
	if err != nil {
		return nil
	}
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil
	}
	return names
}

// SaveCurrent caches the company names from the latest successful fetch.
func SaveCurrent(dataDir string, names []string) error {
	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return err
	}
	path := cacheFileName
	if dataDir != "" {
		path = filepath.Join(dataDir, cacheFileName)
	}
	return os.WriteFile(path, data, 0644)
}

// Links turns company names into clickable X profile links, one per handle.
// Companies sharing a handle (or without one) are dropped.
func Links(names []string) []string {
	seenHandles := mapset.NewSet[string]()
	var links []string
	for _, name := range names {
		handle, ok := HandleFor(name)
		if !ok || seenHandles.Contains(handle) {
			continue
		}
		seenHandles.Add(handle)
		links = append(links, fmt.Sprintf(`<a href="https://x.com/%s">%s</a>`, handle, html.EscapeString(name)))
	}
	return links
}
