package compiler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/pavsca/internal/ir"
)

// CommandKind distinguishes definitions from rules.
type CommandKind int

const (
	CommandDefine CommandKind = iota
	CommandRule
)

// String returns "define" or "rule".
func (k CommandKind) String() string {
	if k == CommandDefine {
		return "define"
	}
	return "rule"
}

// Command is one non-comment, non-blank line of a rule file.
type Command struct {
	Line int
	Text string
	Kind CommandKind
}

// Program is a parsed rule file in file order.
type Program struct {
	Commands []Command
}

// ParseProgram reads a rule file: one command per line, "//" comments and
// blank lines ignored. A line containing '=' is a definition; any other line
// is a rule. Text is NFC normalized.
func ParseProgram(r io.Reader) (*Program, error) {
	prog := &Program{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(ir.Normalize(scanner.Text()))
		if text == "" || strings.HasPrefix(text, "//") {
			continue
		}
		kind := CommandRule
		if strings.Contains(text, "=") {
			kind = CommandDefine
		}
		prog.Commands = append(prog.Commands, Command{Line: line, Text: text, Kind: kind})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}
	return prog, nil
}

// RuleCount returns the number of rule commands.
func (p *Program) RuleCount() int {
	n := 0
	for _, cmd := range p.Commands {
		if cmd.Kind == CommandRule {
			n++
		}
	}
	return n
}

// CompileProgram processes every command in order: definitions update the
// registry, rules are compiled against the registry as it stands at that
// line. Returns the compiled rules in file order, or the first error.
func (c *Compiler) CompileProgram(prog *Program) ([]*ir.Rule, error) {
	var rules []*ir.Rule
	for _, cmd := range prog.Commands {
		switch cmd.Kind {
		case CommandDefine:
			if err := c.Define(cmd.Text); err != nil {
				return nil, withSource(err, cmd.Line, cmd.Text)
			}
		case CommandRule:
			rule, err := c.CompileRule(cmd.Text)
			if err != nil {
				return nil, withSource(err, cmd.Line, cmd.Text)
			}
			rule.Line = cmd.Line
			rules = append(rules, rule)
		}
	}
	return rules, nil
}
