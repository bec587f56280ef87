package rules

import (
	"encoding/json"

	"github.com/rulekit/rulekit/errors"
)

// ruleJSON is the wire form of a rule: four string fields, with premise and
// conclusion in the formula syntax.
type ruleJSON struct {
	ID         string `json:"id"`
	Premise    string `json:"premise"`
	Conclusion string `json:"conclusion"`
	Text       string `json:"text"`
}

// MarshalJSON re-serializes the rule to the exchange schema. The premise and
// conclusion are emitted exactly as they were originally written, not
// re-rendered from the parsed formulas.
func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(ruleJSON{
		ID:         r.ID,
		Premise:    r.PremiseText(),
		Conclusion: r.ConclusionText(),
		Text:       r.Text,
	})
}

// UnmarshalJSON parses a rule from the exchange schema, including its
// premise and conclusion formulas.
func (r *Rule) UnmarshalJSON(bs []byte) error {
	var wire ruleJSON
	if err := json.Unmarshal(bs, &wire); err != nil {
		return err
	}
	rule, err := New(wire.ID, wire.Premise, wire.Conclusion, wire.Text)
	if err != nil {
		return err
	}
	*r = rule
	return nil
}

// UnmarshalDomains parses a rule-set document: a mapping from domain name
// (e.g. "medical", "loan") to an ordered sequence of rules.
func UnmarshalDomains(bs []byte) (map[string][]Rule, error) {
	var domains map[string][]Rule
	if err := json.Unmarshal(bs, &domains); err != nil {
		return nil, err
	}
	return domains, nil
}

// LoadDomain parses a rule-set document and returns the rules of a single
// domain, in document order.
func LoadDomain(bs []byte, domain string) ([]Rule, error) {
	domains, err := UnmarshalDomains(bs)
	if err != nil {
		return nil, err
	}
	rules, ok := domains[domain]
	if !ok {
		return nil, errors.New("no domain %q in rule set", domain)
	}
	return rules, nil
}

// MarshalDomains serializes domains back to the exchange schema.
func MarshalDomains(domains map[string][]Rule) ([]byte, error) {
	return json.MarshalIndent(domains, "", "  ")
}
