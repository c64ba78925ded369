package scheduler

import (
	"testing"

	"github.com/alexanderramin/daybreak/internal/domain"
	"github.com/alexanderramin/daybreak/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateDomains(t *testing.T) {
	blocks := []domain.TimeBlock{
		testutil.NewTestBlock("09:00", "10:00", testutil.WithBlockDomain(domain.DomainAcademic), testutil.WithBlockDone()),
		testutil.NewTestBlock("10:00", "10:30", testutil.WithBlockDomain(domain.DomainAcademic)),
		testutil.NewTestBlock("17:00", "18:00", testutil.WithBlockDomain(domain.DomainHealth)),
	}

	got := AggregateDomains(blocks)
	require.Len(t, got, 2)

	assert.Equal(t, domain.DomainAcademic, got[0].Domain)
	assert.Equal(t, 90, got[0].ScheduledMin)
	assert.Equal(t, 60, got[0].CompletedMin)

	assert.Equal(t, domain.DomainHealth, got[1].Domain)
	assert.Equal(t, 60, got[1].ScheduledMin)
	assert.Equal(t, 0, got[1].CompletedMin)
}

func TestAggregateDomains_SkipsUntagged(t *testing.T) {
	b := testutil.NewTestBlock("09:00", "10:00")
	b.Domain = ""
	assert.Empty(t, AggregateDomains([]domain.TimeBlock{b}))
}
