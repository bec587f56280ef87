package test_helpers

import (
	"github.com/rulekit/rulekit/rules"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	// IgnoreUnexported compares rules by their exported fields only; the
	// preserved source text is checked through the JSON round-trip tests.
	IgnoreUnexported = cmp.Options{
		cmpopts.IgnoreUnexported(rules.Rule{}),
	}
)
