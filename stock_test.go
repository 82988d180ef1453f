package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassification(t *testing.T) {
	testCases := []struct {
		quantity int
		critical bool
		report   Level
		badge    Level
	}{
		{0, true, NoStock, NoStock},
		{1, true, Critical, Low},
		{5, true, Critical, Low},
		{6, true, Critical, Medium},
		{20, true, Critical, Medium},
		{21, true, Critical, High},
		{29, true, Critical, High},
		{30, false, Low, High},
		{50, false, Low, High},
		{51, false, Medium, High},
		{100, false, Medium, High},
		{101, false, High, High},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.critical, IsCritical(tc.quantity), "IsCritical(%d)", tc.quantity)
		assert.Equal(t, tc.report, ReportLevel(tc.quantity), "ReportLevel(%d)", tc.quantity)
		assert.Equal(t, tc.badge, BadgeLevel(tc.quantity), "BadgeLevel(%d)", tc.quantity)
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "no stock", NoStock.String())
	assert.Equal(t, "critical", Critical.String())
	assert.Equal(t, "low", Low.String())
	assert.Equal(t, "medium", Medium.String())
	assert.Equal(t, "high", High.String())
	assert.Equal(t, "unknown", Level(42).String())
}
