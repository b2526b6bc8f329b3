package services

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"matka/database"
	"matka/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Timestamps are written in UTC so sqlite's text comparison of
	// created_at against UTC window bounds stays an instant comparison.
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
	return db
}

func seedRates(t *testing.T, db *gorm.DB, family string) {
	t.Helper()
	rows := []models.GameRate{
		{Family: family, GameType: "single-digits", StakeUnit: 10, PayoutUnit: 95},
		{Family: family, GameType: "jodi-digit", StakeUnit: 10, PayoutUnit: 950},
		{Family: family, GameType: "single-pana", StakeUnit: 10, PayoutUnit: 1400},
		{Family: family, GameType: "double-pana", StakeUnit: 10, PayoutUnit: 2800},
	}
	for _, row := range rows {
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed rates: %v", err)
		}
	}
}

// seedFund opens a wallet with an initial deposit so the ledger starts
// balanced.
func seedFund(t *testing.T, db *gorm.DB, uid string, balance float64) {
	t.Helper()
	if err := db.Create(&models.Fund{
		UID:        uid,
		Balance:    balance,
		LastSyncAt: time.Now(),
	}).Error; err != nil {
		t.Fatalf("seed fund: %v", err)
	}
	if balance == 0 {
		return
	}
	if err := db.Create(&models.FundTransaction{
		UID:           uid,
		Amount:        balance,
		TrxType:       models.TrxTypeCredit,
		Reason:        "Initial Deposit",
		BalanceBefore: 0,
		BalanceAfter:  balance,
	}).Error; err != nil {
		t.Fatalf("seed deposit: %v", err)
	}
}

func seedBid(t *testing.T, db *gorm.DB, bid models.Bid) uint {
	t.Helper()
	if bid.Status == "" {
		bid.Status = models.BidStatusPending
	}
	if err := db.Create(&bid).Error; err != nil {
		t.Fatalf("seed bid: %v", err)
	}
	return bid.ID
}

func bidStatus(t *testing.T, db *gorm.DB, id uint) string {
	t.Helper()
	var bid models.Bid
	if err := db.First(&bid, id).Error; err != nil {
		t.Fatalf("load bid %d: %v", id, err)
	}
	return bid.Status
}

func fundBalance(t *testing.T, db *gorm.DB, uid string) float64 {
	t.Helper()
	var fund models.Fund
	if err := db.Where("uid = ?", uid).First(&fund).Error; err != nil {
		t.Fatalf("load fund %s: %v", uid, err)
	}
	return fund.Balance
}

// assertLedgerBalanced checks the wallet invariant: the balance equals the
// signed sum of the user's ledger rows.
func assertLedgerBalanced(t *testing.T, db *gorm.DB, uid string) {
	t.Helper()
	var trxs []models.FundTransaction
	if err := db.Where("uid = ?", uid).Find(&trxs).Error; err != nil {
		t.Fatalf("load transactions: %v", err)
	}
	sum := 0.0
	for _, trx := range trxs {
		switch trx.TrxType {
		case models.TrxTypeCredit:
			sum += trx.Amount
		case models.TrxTypeDebit:
			sum -= trx.Amount
		}
	}
	if balance := fundBalance(t, db, uid); math.Abs(balance-sum) > 1e-6 {
		t.Errorf("ledger out of balance for %s: fund %.2f, ledger sum %.2f", uid, balance, sum)
	}
}

func todayIST() string {
	return time.Now().In(istLocation).Format("2006-01-02")
}

func mustOverride(t *testing.T, openPanna, closePanna string) Override {
	t.Helper()
	o, err := OverrideFromPannas(openPanna, closePanna)
	if err != nil {
		t.Fatalf("override %q/%q: %v", openPanna, closePanna, err)
	}
	return o
}
