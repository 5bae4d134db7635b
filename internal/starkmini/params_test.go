package starkmini_test

import (
	"testing"

	"github.com/plafer/stark-102/internal/starkmini"
	"github.com/plafer/stark-102/internal/starkmini/channel"
	"github.com/plafer/stark-102/internal/starkmini/domain"
	"github.com/plafer/stark-102/internal/starkmini/field17"
)

func TestDefaultParamsMatchesTheFieldItDescribes(t *testing.T) {
	p := starkmini.DefaultParams()
	if p.FieldModulus != field17.Prime {
		t.Errorf("FieldModulus = %d, want %d", p.FieldModulus, field17.Prime)
	}
	if p.FieldGenerator != field17.Generator.Big().Int64() {
		t.Errorf("FieldGenerator = %d, want %d", p.FieldGenerator, field17.Generator.Big().Int64())
	}
}

func TestDefaultParamsMatchesTheDomainsItDescribes(t *testing.T) {
	p := starkmini.DefaultParams()
	if p.TraceLength != len(domain.Trace) {
		t.Errorf("TraceLength = %d, want %d", p.TraceLength, len(domain.Trace))
	}
	if p.LDEDomainSize != len(domain.LDE) {
		t.Errorf("LDEDomainSize = %d, want %d", p.LDEDomainSize, len(domain.LDE))
	}
	if p.BlowUpFactor != len(domain.LDE)/len(domain.Trace) {
		t.Errorf("BlowUpFactor = %d, want %d", p.BlowUpFactor, len(domain.LDE)/len(domain.Trace))
	}
	if p.CosetShift != domain.CosetShift.Big().Int64() {
		t.Errorf("CosetShift = %d, want %d", p.CosetShift, domain.CosetShift.Big().Int64())
	}
	if p.LDEGenerator != domain.LDEGenerator.Big().Int64() {
		t.Errorf("LDEGenerator = %d, want %d", p.LDEGenerator, domain.LDEGenerator.Big().Int64())
	}
}

func TestDefaultParamsMatchesTheChannelItConfigures(t *testing.T) {
	p := starkmini.DefaultParams()
	if p.ChannelSalt != channel.Salt {
		t.Errorf("ChannelSalt = %d, want %d", p.ChannelSalt, channel.Salt)
	}
}

func TestDefaultParamsIsIndependentPerCall(t *testing.T) {
	a := starkmini.DefaultParams()
	b := starkmini.DefaultParams()
	a.TraceLength = 999
	if b.TraceLength == 999 {
		t.Error("DefaultParams() should return independent values, not share state")
	}
}
