package dimension

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// profileFile is the YAML document accepted by ParseProfiles:
//
//	profiles:
//	  - name: optics
//	    order: [14, 8, 7]
//	  - name: hertz
//	    rules:
//	      - numerators: []
//	        denominators: [s, s]
//	        result: Hz2
//	        reciprocal: false
type profileFile struct {
	Profiles []profileEntry `yaml:"profiles"`
}

type profileEntry struct {
	Name  string      `yaml:"name"`
	Order []int       `yaml:"order,omitempty"`
	Rules []ruleEntry `yaml:"rules,omitempty"`
}

type ruleEntry struct {
	Numerators   []string `yaml:"numerators,omitempty"`
	Denominators []string `yaml:"denominators,omitempty"`
	Result       string   `yaml:"result"`
	// Reciprocal defaults to true when omitted.
	Reciprocal *bool `yaml:"reciprocal,omitempty"`
}

func (e ruleEntry) toRule() Rule {
	r := Rule{Result: Symbol(e.Result), Reciprocal: true}
	for _, s := range e.Numerators {
		r.Numerators = append(r.Numerators, Symbol(s))
	}
	for _, s := range e.Denominators {
		r.Denominators = append(r.Denominators, Symbol(s))
	}
	if e.Reciprocal != nil {
		r.Reciprocal = *e.Reciprocal
	}

	return r
}

// LoadProfiles reads a YAML profile document from r. See ParseProfiles.
func LoadProfiles(r io.Reader) ([]Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dimension: read profiles: %w", err)
	}

	return ParseProfiles(data)
}

// ParseProfiles decodes a YAML document listing profiles. Each entry must
// set exactly one of order (indices into the standard table) or rules
// (custom rules in priority order). Unknown fields are rejected.
//
// All errors wrap ErrInvalidProfile; validation failures additionally wrap
// the specific sentinel (ErrRuleIndex, ErrDegenerateRule, ...).
func ParseProfiles(data []byte) ([]Profile, error) {
	var doc profileFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	seen := make(map[string]bool, len(doc.Profiles))
	out := make([]Profile, 0, len(doc.Profiles))
	for i, e := range doc.Profiles {
		if seen[e.Name] {
			return nil, fmt.Errorf("%w: profile %q defined twice", ErrInvalidProfile, e.Name)
		}
		seen[e.Name] = true

		var (
			p   Profile
			err error
		)
		switch {
		case len(e.Order) > 0 && len(e.Rules) > 0:
			return nil, fmt.Errorf("%w: profile %q sets both order and rules", ErrInvalidProfile, e.Name)
		case len(e.Rules) > 0:
			rules := make([]Rule, len(e.Rules))
			for j, re := range e.Rules {
				rules[j] = re.toRule()
			}
			p, err = NewCustomProfile(e.Name, rules...)
		default:
			p, err = NewProfile(e.Name, e.Order...)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: entry %d: %w", ErrInvalidProfile, i, err)
		}
		out = append(out, p)
	}

	return out, nil
}
