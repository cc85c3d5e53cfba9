package classify

import (
	"fmt"

	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
)

// boundMatcher is a matcher resolved against its catalog descriptor.
type boundMatcher struct {
	def  MatcherDef
	desc catalog.FeatureDescriptor
}

// Classifier scans source text and reduces matcher output to the minimum
// required standard. A Classifier is immutable after construction and safe
// for concurrent use.
type Classifier struct {
	cat      *catalog.Catalog
	floor    int
	matchers []boundMatcher
}

// NewClassifier binds the registered matchers to the catalog under the
// given configuration. A matcher whose feature id is absent from the
// catalog is a programmer error and fails construction. Disabling an
// unknown id fails only when the config says so.
func NewClassifier(cat *catalog.Catalog, cfg *Config) (*Classifier, error) {
	if cfg == nil {
		cfg = NewConfig()
	}

	if cfg.FailOnUnknown() {
		for _, id := range cfg.DisabledIDs() {
			if _, err := cat.Lookup(id); err != nil {
				return nil, fmt.Errorf("config references unknown feature: %w", err)
			}
		}
	}

	var bound []boundMatcher
	for _, def := range GetAll() {
		desc, err := cat.Lookup(def.FeatureID)
		if err != nil {
			return nil, fmt.Errorf("matcher registered for uncataloged feature: %w", err)
		}
		if cfg.IsDisabled(def.FeatureID) {
			continue
		}
		bound = append(bound, boundMatcher{def: def, desc: desc})
	}

	floor := cfg.Floor()
	if floor == 0 {
		floor = cat.FloorStandard()
	}

	return &Classifier{cat: cat, floor: floor, matchers: bound}, nil
}

// Floor returns the effective floor standard.
func (c *Classifier) Floor() int {
	return c.floor
}

// ClassifyText scans the source text and classifies it. The run is strictly
// sequential (scan, match, reduce) and the returned result is never mutated
// afterwards.
func (c *Classifier) ClassifyText(file, src string) *FileResult {
	scanned := scanner.Scan(src)

	res := &FileResult{
		File:      file,
		ByFeature: make(map[string]int),
		Issues:    scanned.Issues,
	}

	for i := range scanned.Fragments {
		frag := &scanned.Fragments[i]
		for _, m := range c.matchers {
			if !m.def.consumes(frag.Kind) {
				continue
			}
			outcome := m.def.Match(frag)
			switch outcome.Kind {
			case OutcomeMatched:
				for _, match := range outcome.Matches {
					match.FeatureID = m.desc.ID
					match.MinStandard = m.desc.MinStandard
					res.Findings = append(res.Findings, match)
					res.ByFeature[m.desc.ID]++
				}
			case OutcomeAmbiguous:
				res.Notes = append(res.Notes, Note{
					FeatureID: m.desc.ID,
					Pos:       frag.Pos(),
					Message:   outcome.Note,
				})
			}
		}
	}

	sortFindings(res.Findings)
	sortNotes(res.Notes)

	res.RequiredStandard = c.floor
	for _, f := range res.Findings {
		if f.MinStandard > res.RequiredStandard {
			res.RequiredStandard = f.MinStandard
		}
	}
	return res
}
