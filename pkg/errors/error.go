package errors

import (
	"errors"
	"fmt"

	"github.com/assetnote/pwdgen/pkg/log"
	"github.com/hashicorp/go-multierror"
)

// prefixfromDepth will create the indent prefix for a certain depth
// of string, e.g. 2 will yield "  " * 2 -> "    "
func prefixFromDepth(depth int) string {
	var p []byte
	for i := 0; i < depth; i++ {
		p = append(p, "  "...)
	}
	return string(p)
}

// PrintError will traverse the error and log every RuleError found.
// If a multierror.Error is found, each nested error is printed one level deeper
func PrintError(err error, depth int) {
	var (
		merr *multierror.Error
		rerr *RuleError
	)

	if errors.As(err, &merr) {
		for _, v := range merr.Errors {
			PrintError(v, depth+1)
		}
	} else if errors.As(err, &rerr) {
		rerr.LogError(depth)
	} else {
		log.Error().Err(err).Msg(prefixFromDepth(depth) + "error")
	}
}

// RuleError describes a rule that could not be added to an alphabet
type RuleError struct {
	Set   string // Set is the rule set the token was destined for, accept or exclude
	Token string // Token is the raw rule as supplied by the user, e.g. @isfoo
	Err   error
}

func (r *RuleError) Error() string {
	return fmt.Sprintf("ruleError [%s %q]: %s", r.Set, r.Token, r.Err.Error())
}

func (r *RuleError) Unwrap() error {
	return r.Err
}

// LogError will log the rule set and token surrounding the error.
// the depth argument modifies the indentation depth of the printed error
func (r *RuleError) LogError(depth int) {
	log.Error().
		Str("set", r.Set).
		Str("rule", r.Token).
		Err(r.Err).
		Msg(prefixFromDepth(depth) + "invalid rule")
}
