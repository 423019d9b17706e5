package booking

import (
	"fmt"
	"partyinbangalore-backend/model"
)

// EmptySelectionText is shown in place of the line items when nothing is
// selected yet.
const EmptySelectionText = "No tickets selected"

type Line struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Subtotal float64 `json:"subtotal"`
}

type Summary struct {
	Lines             []Line  `json:"lines"`
	TotalTicketsPrice float64 `json:"total_tickets_price"`
	TotalPeople       int     `json:"total_people"`
	PlatformFee       float64 `json:"platform_fee"`
	TotalPayable      float64 `json:"total_payable"`
	EmptyText         string  `json:"empty_text,omitempty"`
}

// Summarize prices a ticket selection. Quantities are floored at zero and
// only tiers with a positive quantity produce a line. Index pairs that
// point outside the tier list are ignored.
func Summarize(tiers []model.TicketType, selections []model.TicketSelection, platformFee float64) Summary {
	s := Summary{PlatformFee: platformFee}

	for _, sel := range selections {
		if sel.TicketIndex < 0 || sel.TicketIndex >= len(tiers) {
			continue
		}
		qty := sel.Quantity
		if qty < 0 {
			qty = 0
		}
		if qty == 0 {
			continue
		}

		tier := tiers[sel.TicketIndex]
		subtotal := tier.Price * float64(qty)
		s.Lines = append(s.Lines, Line{
			Name:     tier.Name,
			Price:    tier.Price,
			Quantity: qty,
			Subtotal: subtotal,
		})
		s.TotalTicketsPrice += subtotal
		s.TotalPeople += tier.Permits * qty
	}

	if len(s.Lines) == 0 {
		s.EmptyText = EmptySelectionText
		s.PlatformFee = 0
	}
	s.TotalPayable = s.TotalTicketsPrice + s.PlatformFee
	return s
}

// FormatMoney renders an amount with exactly two decimals, the only money
// format the API emits.
func FormatMoney(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
