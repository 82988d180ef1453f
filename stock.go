package inventory

// CriticalThreshold is the general low-stock threshold: below it a product is critical.
const CriticalThreshold = 30

// IsCritical reports whether quantity is below CriticalThreshold.
func IsCritical(quantity int) bool { return quantity < CriticalThreshold }

// Level is a stock status label.
type Level int

const (
	NoStock Level = iota
	Critical
	Low
	Medium
	High
)

var levelNames = [...]string{
	NoStock:  "no stock",
	Critical: "critical",
	Low:      "low",
	Medium:   "medium",
	High:     "high",
}

func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "unknown"
	}
	return levelNames[l]
}

// ReportLevel classifies a quantity for the exported stock report:
// 0 is no stock, below 30 critical, up to 50 low, up to 100 medium, above high.
func ReportLevel(quantity int) Level {
	switch {
	case quantity == 0:
		return NoStock
	case quantity < CriticalThreshold:
		return Critical
	case quantity <= 50:
		return Low
	case quantity <= 100:
		return Medium
	default:
		return High
	}
}

// BadgeLevel classifies a quantity for the stock view badge:
// 0 is no stock, up to 5 low, up to 20 medium, above high.
//
// The thresholds differ from ReportLevel and IsCritical. Both tables are kept
// as they are until the product owners settle on a single one.
func BadgeLevel(quantity int) Level {
	switch {
	case quantity == 0:
		return NoStock
	case quantity <= 5:
		return Low
	case quantity <= 20:
		return Medium
	default:
		return High
	}
}
