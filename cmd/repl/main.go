package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rulekit/rulekit/parser"
	"github.com/rulekit/rulekit/rules"
	"github.com/rulekit/rulekit/solver"
	"github.com/rulekit/rulekit/table"

	"github.com/chzyer/readline"
)

var (
	rulesFile = flag.String("rules-file", "", "Rule-set JSON file to load on startup")
	domain    = flag.String("domain", "medical", "Domain to select from the rule-set file")
	maxAtoms  = flag.Int("max-atoms", table.DefaultMaxAtoms, "Refuse truth tables over more atoms than this")
)

type ctx struct {
	base     *rules.Base
	facts    solver.FactSet
	readline *readline.Instance
}

func main() {
	flag.Parse()

	ctx := ctx{facts: solver.NewFactSet()}
	if *rulesFile != "" {
		base, err := loadBase(*rulesFile, *domain)
		if err != nil {
			log.Fatal(err)
		}
		ctx.base = base
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 "> ",
		HistoryFile:            "/tmp/rulekit-history",
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer rl.Close()
	ctx.readline = rl

	ctx.mainLoop()
}

func loadBase(filename, domain string) (*rules.Base, error) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	rs, err := rules.LoadDomain(bs, domain)
	if err != nil {
		return nil, err
	}
	return rules.NewBase(rs...)
}

func (ctx *ctx) mainLoop() {
	for {
		line, err := ctx.readline.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ctx.readline.SaveHistory(line)
		if strings.HasPrefix(line, ":") {
			if !ctx.runCommand(line) {
				break
			}
			continue
		}
		// A bare formula prints its truth table.
		ctx.showTable(line)
	}
}

// runCommand executes a ':' command, returning false to quit.
func (ctx *ctx) runCommand(line string) bool {
	parts := strings.Fields(line)
	cmd, args := parts[0], parts[1:]
	switch cmd {
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Println(helpText)
	case ":load":
		if len(args) != 2 {
			fmt.Println("usage: :load <file> <domain>")
			break
		}
		base, err := loadBase(args[0], args[1])
		if err != nil {
			fmt.Println(err)
			break
		}
		ctx.base = base
		fmt.Printf("loaded %d rules from domain %q\n", base.Len(), args[1])
	case ":rules":
		if ctx.base == nil {
			fmt.Println("no rules loaded; use :load")
			break
		}
		for _, r := range ctx.base.Rules() {
			fmt.Println(r)
		}
	case ":fact":
		for _, atom := range args {
			ctx.facts[atom] = true
		}
		fallthrough
	case ":facts":
		fmt.Printf("facts: %s\n", strings.Join(ctx.facts.Atoms(), ", "))
	case ":clear":
		ctx.facts = solver.NewFactSet()
	case ":forward":
		if ctx.base == nil {
			fmt.Println("no rules loaded; use :load")
			break
		}
		result := solver.Forward(ctx.base, ctx.facts)
		for _, fired := range result.Trace {
			fmt.Println(fired.Explanation)
		}
		for _, c := range result.Contradictions {
			fmt.Printf("contradiction on %s via rule %s\n", c.Atom, c.RuleID)
		}
		fmt.Printf("final facts: %s\n", strings.Join(result.Facts.Atoms(), ", "))
	case ":prove":
		if ctx.base == nil {
			fmt.Println("no rules loaded; use :load")
			break
		}
		if len(args) != 1 {
			fmt.Println("usage: :prove <atom>")
			break
		}
		proved, proof := solver.Backward(ctx.base, ctx.facts, args[0])
		fmt.Println(proof)
		fmt.Printf("proved: %t\n", proved)
	default:
		fmt.Printf("unknown command %s; try :help\n", cmd)
	}
	return true
}

func (ctx *ctx) showTable(text string) {
	f, err := parser.Parse(text)
	if err != nil {
		fmt.Println(err)
		return
	}
	t, err := table.Generate(f, *maxAtoms)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(t)
}

const helpText = `Enter a formula to see its truth table, e.g. Fever AND Cough -> Flu.
Commands:
  :load <file> <domain>  load a rule-set JSON file
  :rules                 list loaded rules
  :fact <atom>...        assert atoms as true
  :facts                 show asserted facts
  :clear                 forget all facts
  :forward               run forward chaining from the facts
  :prove <atom>          run backward chaining for a goal
  :quit                  exit`
