package compliance_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniss/frenchInvoice/internal/compliance"
	"github.com/daniss/frenchInvoice/internal/model"
)

func newResolver() *compliance.Resolver {
	return compliance.NewResolver(compliance.DefaultRules())
}

func registeredCompany() *model.Company {
	c := model.NewCompany("Exemple SARL")
	c.SetSiren("732829320")
	return c
}

func TestResolve_NoSiren(t *testing.T) {
	c := model.NewCompany("Association sans SIREN")

	ob := newResolver().Resolve(c, time.Now())

	assert.Equal(t, compliance.SegmentNotRegistered, ob.Segment)
	assert.Nil(t, ob.Deadline)
	assert.False(t, ob.AlreadyDue)
}

func TestResolve_PublicSector(t *testing.T) {
	c := registeredCompany()
	c.IsPublicSector = true
	// Public sector wins over size.
	c.EmployeeCount = 10000

	ob := newResolver().Resolve(c, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, compliance.SegmentPublicSector, ob.Segment)
	require.NotNil(t, ob.Deadline)
	assert.Equal(t, 2017, ob.Deadline.Year())
	assert.True(t, ob.AlreadyDue)
}

func TestResolve_LargeByEmployees(t *testing.T) {
	c := registeredCompany()
	c.EmployeeCount = 251

	ob := newResolver().Resolve(c, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, compliance.SegmentLarge, ob.Segment)
	require.NotNil(t, ob.Deadline)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *ob.Deadline)
	assert.False(t, ob.AlreadyDue)
}

func TestResolve_LargeByRevenue(t *testing.T) {
	c := registeredCompany()
	c.EmployeeCount = 5
	c.AnnualRevenueCents = 60_000_000_00

	ob := newResolver().Resolve(c, time.Now())
	assert.Equal(t, compliance.SegmentLarge, ob.Segment)
}

func TestResolve_ThresholdsAreExclusive(t *testing.T) {
	c := registeredCompany()
	c.EmployeeCount = 250
	c.AnnualRevenueCents = 50_000_000_00

	ob := newResolver().Resolve(c, time.Now())
	assert.Equal(t, compliance.SegmentSME, ob.Segment, "at the threshold, not above it")
}

func TestResolve_SMEDeadlinePassed(t *testing.T) {
	c := registeredCompany()

	ob := newResolver().Resolve(c, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, compliance.SegmentSME, ob.Segment)
	assert.True(t, ob.AlreadyDue, "the deadline day itself counts as due")
}

func TestResolve_InjectedRules(t *testing.T) {
	rules := compliance.DefaultRules()
	rules.SMEDeadline = time.Date(2027, 9, 1, 0, 0, 0, 0, time.UTC)

	ob := compliance.NewResolver(rules).Resolve(registeredCompany(), time.Now())
	require.NotNil(t, ob.Deadline)
	assert.Equal(t, 2027, ob.Deadline.Year())
}
