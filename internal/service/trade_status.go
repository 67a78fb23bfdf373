package service

import "github.com/ndewijer/TradeLog-Backend/internal/model"

// closingSoonDays is the inclusive upper bound of the CLOSING_SOON window.
const closingSoonDays = 7

// DeriveStatus maps a signed day count to a lifecycle label.
//
//	days < 0       -> CLOSED
//	0 <= days <= 7 -> CLOSING_SOON
//	days > 7       -> OPEN
func DeriveStatus(days int) model.TradeStatus {
	if days < 0 {
		return model.TradeStatusClosed
	}
	if days <= closingSoonDays {
		return model.TradeStatusClosingSoon
	}
	return model.TradeStatusOpen
}
