// Package scope packs a list of ledger principal identifiers into the single
// space-delimited OAuth2 scope field and back.
package scope

import (
	"log"
	"strings"

	"github.com/icid-go/icid"
)

// Target is one authorized canister entry of a scope string.
type Target struct {
	Principal icid.Principal
}

// Targets is the decoded form of a scope string, order preserved.
type Targets struct {
	Canisters []Target
}

// Codec converts between Targets and the wire scope string. Principals is
// required; Logger, when set, receives a diagnostic line for each segment
// that fails to parse before the error is returned.
type Codec struct {
	Principals icid.PrincipalCodec
	Logger     *log.Logger
}

// Encode joins the canonical text of each principal with single spaces,
// preserving list order.
func (c *Codec) Encode(t Targets) string {
	parts := make([]string, 0, len(t.Canisters))
	for _, target := range t.Canisters {
		parts = append(parts, target.Principal.Text())
	}
	return strings.Join(parts, " ")
}

// Decode splits the scope string on whitespace, drops empty segments, and
// parses each remaining segment as a principal. A segment that fails to
// parse fails the whole decode; invalid segments are never silently dropped.
// No bound is placed on the number of segments.
func (c *Codec) Decode(s string) (Targets, error) {
	segments := strings.Fields(s)
	targets := Targets{Canisters: make([]Target, 0, len(segments))}
	for _, segment := range segments {
		p, err := c.Principals.Parse(segment)
		if err != nil {
			if c.Logger != nil {
				c.Logger.Printf("scope: invalid principal segment %q: %v", segment, err)
			}
			return Targets{}, err
		}
		targets.Canisters = append(targets.Canisters, Target{Principal: p})
	}
	return targets, nil
}
