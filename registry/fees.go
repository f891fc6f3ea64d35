package registry

import (
	"crypto-sweep/utility/constants"

	"github.com/shopspring/decimal"
)

var (
	feePercent = decimal.New(constants.SERVICE_FEE_PERCENT, -2)
	minimumFee = decimal.NewFromFloat(constants.MINIMUM_FEE_USD)
)

// ServiceFee ... Percentage fee on the swept total, floored at the minimum fee
func ServiceFee(totalValue decimal.Decimal) decimal.Decimal {
	fee := totalValue.Mul(feePercent)
	if fee.Cmp(minimumFee) < 0 {
		return minimumFee
	}
	return fee
}

// FinalAmount ... Swept total net of the service fee
func FinalAmount(totalValue decimal.Decimal) decimal.Decimal {
	return totalValue.Sub(ServiceFee(totalValue))
}
