package reporting

import "github.com/shopspring/decimal"

// BatchReport represents one rendered batch block.
type BatchReport struct {
	Description   string          // objective being optimized, candidate count included
	TrialCount    int             // trials in the batch
	WinPercentage decimal.Decimal // win rate * 100
	AverageRank   int64           // rounded mean selected rank
}

// RuleWidth is the width of the separator line printed before each batch.
const RuleWidth = 80
