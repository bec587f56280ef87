package fuzz

import (
	"github.com/rulekit/rulekit/parser"
)

func Fuzz(data []byte) int {
	_, err := parser.Parse(string(data))
	if err != nil {
		return 0
	}
	return 1
}
