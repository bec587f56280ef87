package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/rulekit/rulekit/errors"
	"github.com/rulekit/rulekit/rules"
	"github.com/rulekit/rulekit/solver"
)

// loadBase reads a rule-set JSON file and builds the base for one domain.
func loadBase(filename, domain string) (*rules.Base, error) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	rs, err := rules.LoadDomain(bs, domain)
	if err != nil {
		return nil, errors.New("loading %s: %v", filename, err)
	}
	base, err := rules.NewBase(rs...)
	if err != nil {
		return nil, errors.New("loading %s: %v", filename, err)
	}
	log.Debugf("loaded %d rules from domain %q of %s", base.Len(), domain, filename)
	return base, nil
}

// parseFacts builds a fact set from comma-separated atom lists.
func parseFacts(values []string) solver.FactSet {
	facts := solver.NewFactSet()
	for _, value := range values {
		for _, atom := range strings.Split(value, ",") {
			atom = strings.TrimSpace(atom)
			if atom != "" {
				facts[atom] = true
			}
		}
	}
	return facts
}
