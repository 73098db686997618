// Package compliance resolves the French e-invoicing mandate deadlines
// that apply to a company. The dates come from the 2023 finance law
// schedule; they are injectable so a postponement is a config change,
// not a code change.
package compliance

import (
	"time"

	"github.com/daniss/frenchInvoice/internal/model"
)

// Segment classifies a company under the mandate schedule.
type Segment string

const (
	SegmentNotRegistered Segment = "not_registered"
	SegmentPublicSector  Segment = "public_sector"
	SegmentLarge         Segment = "large"
	SegmentSME           Segment = "sme"
)

// Rules holds the segment thresholds and the deadline per segment.
type Rules struct {
	// A company is "large" above either threshold.
	LargeEmployeeThreshold int
	LargeRevenueCents      int64

	PublicSectorDeadline time.Time
	LargeDeadline        time.Time
	SMEDeadline          time.Time
}

// DefaultRules returns the schedule currently in force: Chorus Pro has
// bound the public sector since 2017, and all companies must receive
// electronic invoices from September 2026.
func DefaultRules() Rules {
	return Rules{
		LargeEmployeeThreshold: 250,
		LargeRevenueCents:      50_000_000_00,
		PublicSectorDeadline:   time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC),
		LargeDeadline:          time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		SMEDeadline:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Obligation is the resolved outcome for one company.
type Obligation struct {
	Segment  Segment    `json:"segment"`
	Deadline *time.Time `json:"deadline,omitempty"`

	// AlreadyDue is set when the deadline has passed at resolution time.
	AlreadyDue bool `json:"already_due"`
}

// Resolver applies a rule set to companies.
type Resolver struct {
	rules Rules
}

// NewResolver creates a resolver for the given rules.
func NewResolver(rules Rules) *Resolver {
	return &Resolver{rules: rules}
}

// Segment classifies the company. Checks run in order and the first
// match wins: unregistered, public sector, large, then SME as the
// default.
func (r *Resolver) Segment(c *model.Company) Segment {
	switch {
	case c == nil || c.Siren == "":
		return SegmentNotRegistered
	case c.IsPublicSector:
		return SegmentPublicSector
	case c.EmployeeCount > r.rules.LargeEmployeeThreshold,
		c.AnnualRevenueCents > r.rules.LargeRevenueCents:
		return SegmentLarge
	default:
		return SegmentSME
	}
}

// Resolve returns the company's obligation as of now. A company without
// a SIREN is outside the mandate and gets no deadline.
func (r *Resolver) Resolve(c *model.Company, now time.Time) Obligation {
	segment := r.Segment(c)

	var deadline time.Time
	switch segment {
	case SegmentNotRegistered:
		return Obligation{Segment: segment}
	case SegmentPublicSector:
		deadline = r.rules.PublicSectorDeadline
	case SegmentLarge:
		deadline = r.rules.LargeDeadline
	default:
		deadline = r.rules.SMEDeadline
	}

	return Obligation{
		Segment:    segment,
		Deadline:   &deadline,
		AlreadyDue: !now.Before(deadline),
	}
}
