package sheetdb

import "github.com/hisabapp/hisab/internal/core/ports"

// NewGateway wires every entity gateway onto one shared client.
func NewGateway(baseURL, token string) ports.Gateway {
	c := NewClient(baseURL, token)
	return ports.Gateway{
		Members:      &MemberGateway{c: c},
		Loans:        &LoanGateway{c: c},
		Accounts:     &AccountGateway{c: c},
		Categories:   &CategoryGateway{c: c},
		Transactions: &TransactionGateway{c: c},
		Statistics:   &StatisticsGateway{c: c},
	}
}
