package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TrxTypeCredit = "credit"
	TrxTypeDebit  = "debit"
)

// Fund holds one wallet per user. Balance must always equal the signed sum
// of the user's FundTransaction rows.
type Fund struct {
	gorm.Model

	UID              string    `gorm:"uniqueIndex;size:64" json:"uid"`
	Balance          float64   `json:"balance"`
	LastUpdateReason string    `gorm:"size:255" json:"last_update_reason"`
	LastSyncAt       time.Time `json:"last_sync_at"`
}

// FundTransaction is an immutable ledger row, written once per balance
// mutation and never updated.
type FundTransaction struct {
	gorm.Model

	UID           string         `gorm:"index;size:64" json:"uid"`
	Amount        float64        `json:"amount"`
	TrxType       string         `gorm:"size:16" json:"trx_type"`
	Reason        string         `gorm:"size:255" json:"reason"`
	BalanceBefore float64        `json:"balance_before"`
	BalanceAfter  float64        `json:"balance_after"`
	RefID         string         `gorm:"index;size:64" json:"ref_id"`
	Meta          datatypes.JSON `json:"meta"`
}
