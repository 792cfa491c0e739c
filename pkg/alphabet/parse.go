package alphabet

import (
	"fmt"

	"github.com/assetnote/pwdgen/pkg/ascii"
	errors2 "github.com/assetnote/pwdgen/pkg/errors"
	"github.com/assetnote/pwdgen/pkg/log"
	"github.com/hashicorp/go-multierror"
)

// ClassPrefix marks a rule token as a class name rather than literal characters
const ClassPrefix = "@"

const (
	SetAccept  = "accept"
	SetExclude = "exclude"
)

var (
	ErrEmptyRule = fmt.Errorf("empty rule")
)

// Rule is a single parsed token. Exactly one of Class or Literals is meaningful
type Rule struct {
	IsClass  bool
	Class    ascii.Class
	Literals string
}

// ParseRule parses a token such as @isdigit or xyz
func ParseRule(token string) (Rule, error) {
	if token == "" {
		return Rule{}, ErrEmptyRule
	}
	if token[:1] != ClassPrefix {
		return Rule{Literals: token}, nil
	}

	c, err := ascii.Resolve(token[1:])
	if err != nil {
		return Rule{}, err
	}
	return Rule{IsClass: true, Class: c}, nil
}

// AddTo adds the rule to set
func (r Rule) AddTo(set *RuleSet) {
	if r.IsClass {
		set.AddPredicate(r.Class)
		return
	}
	set.AddLiterals(r.Literals)
}

// AddToken parses token and adds it to the accept or exclude set
func (r *Rules) AddToken(set string, token string) error {
	rule, err := ParseRule(token)
	if err != nil {
		return &errors2.RuleError{Set: set, Token: token, Err: err}
	}

	switch set {
	case SetAccept:
		rule.AddTo(&r.Accept)
	case SetExclude:
		rule.AddTo(&r.Exclude)
	default:
		return &errors2.RuleError{Set: set, Token: token, Err: fmt.Errorf("unknown rule set")}
	}

	if !rule.IsClass {
		for i := 0; i < len(rule.Literals); i++ {
			if rule.Literals[i] > ascii.Max {
				log.Warn().Str("set", set).Str("rule", token).Msg("literal contains non ascii bytes which can never be generated")
				break
			}
		}
	}
	return nil
}

// Build adds every accept and exclude token, then applies the default rule.
// All invalid tokens are collected into a single multierror
func Build(accept []string, exclude []string) (Rules, error) {
	var (
		r    Rules
		merr *multierror.Error
	)
	for _, v := range accept {
		if err := r.AddToken(SetAccept, v); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	for _, v := range exclude {
		if err := r.AddToken(SetExclude, v); err != nil {
			merr = multierror.Append(merr, err)
		}
	}
	if err := merr.ErrorOrNil(); err != nil {
		return r, err
	}

	if r.ApplyDefault() {
		log.Debug().Str("class", DefaultClass.String()).Msg("no rules supplied, using default accept class")
	}
	return r, nil
}
