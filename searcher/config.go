package searcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// Domain is the public case lookup landing page. The site gates the search
// page behind a CAPTCHA that the operator solves by hand.
const Domain = "https://www.masscourts.org/eservices/home.page.2"

// Form selectors on the search page. The site's markup has been stable for
// years; if one of these stops matching, the run fails with the element
// named so the breakage is obvious.
const (
	SelCourtDepartment = `select[name="sdeptCd"]`
	SelCourtDivision   = `select[name="sdivCd"]`
	SelCourtLocation   = `select[name="slocCd"]`
	SelPageSize        = `select[name="pageSize"]`
	SelCaseTypeTab     = `.tab-row >> text=Case Type`
	SelDateBegin       = `input[name="fileDateRange:dateInputBegin"]`
	SelDateEnd         = `input[name="fileDateRange:dateInputEnd"]`
	SelCaseType        = `select[name="caseCd"]`
	SelCity            = `select[name="cityCd"]`
	SelStatus          = `select[name="statCd"]`
	SelPartyType       = `select[name="ptyCd"]`
)

type Config struct {
	URL string `json:"url"`

	// Search refinements, applied as visible-text dropdown selections.
	CourtDepartments []string `json:"court_departments"`
	CourtDivisions   []string `json:"court_divisions"`
	CourtLocations   []string `json:"court_locations"`
	ResultsPerPage   string   `json:"results_per_page"`
	CaseTypes        []string `json:"case_types"`
	Cities           []string `json:"cities"`
	Statuses         []string `json:"statuses"`
	PartyTypes       []string `json:"party_types"`

	// Pacing between form interactions, in seconds. The upper bound is
	// MinSleepSec scaled by JitterFactor.
	MinSleepSec  float64 `json:"min_sleep_sec"`
	JitterFactor float64 `json:"jitter_factor"`

	// Element and navigation timeout in seconds.
	TimeoutSec float64 `json:"timeout_sec"`
}

func DefaultConfig() Config {
	return Config{
		URL:              Domain,
		CourtDepartments: []string{"Housing Court"},
		CourtDivisions:   []string{"Northeast Housing Court"},
		CourtLocations:   []string{"Northeast Housing Court"},
		ResultsPerPage:   "75",
		CaseTypes:        []string{"Housing Court Summary Process"},
		Cities:           []string{"All Cities"},
		Statuses:         []string{"Active", "Closed"},
		PartyTypes:       []string{"Defendant"},
		MinSleepSec:      0.5,
		JitterFactor:     1.0,
		TimeoutSec:       15,
	}
}

// LoadConfig reads a json5 config file and merges it over the defaults.
// A <name>.local.<ext> sibling is merged on top of that, so site overrides
// can stay out of version control. Missing files are not an error; the
// defaults describe a complete setup.
func LoadConfig(name string) (Config, error) {
	cfg := DefaultConfig()

	if err := mergeFile(&cfg, name); err != nil {
		return cfg, err
	}
	if err := mergeFile(&cfg, localName(name)); err != nil {
		return cfg, err
	}

	if cfg.JitterFactor < 0 {
		cfg.JitterFactor = -cfg.JitterFactor
	}

	return cfg, nil
}

func mergeFile(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var override Config
	if err := json5.Unmarshal(raw, &override); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return mergo.Merge(cfg, override, mergo.WithOverride)
}

func localName(name string) string {
	dir := filepath.Dir(name)
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	prefix := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, prefix+".local"+ext)
}
