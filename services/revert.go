package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Deletes are chunked to stay inside the storage layer's per-batch limit.
const deleteChunkSize = 500

var ErrCriteriaRequired = errors.New("at least one criterion (date or gameId) is required")

// RevertedBid is one refunded wager, enriched with the owner's name for
// the admin review list.
type RevertedBid struct {
	BidID     uint    `json:"bid_id"`
	Username  string  `json:"username"`
	BidAmount float64 `json:"bid_amount"`
	GameType  string  `json:"game_type"`
}

type RevertSummary struct {
	RunID         string        `json:"run_id"`
	RevertedCount int           `json:"reverted_count"`
	UserCount     int           `json:"user_count"`
	TotalRefunded float64       `json:"total_refunded"`
	RevertedBids  []RevertedBid `json:"reverted_bids"`
}

func bidCriteriaQuery(db *gorm.DB, date, gameID string) (*gorm.DB, error) {
	if date == "" && gameID == "" {
		return nil, ErrCriteriaRequired
	}
	query := db.Model(&models.Bid{})
	if date != "" {
		start, end, err := ParseDayWindow(date)
		if err != nil {
			return nil, err
		}
		query = query.Where("created_at >= ? AND created_at <= ?", start, end)
	}
	if gameID != "" {
		query = query.Where("game_id = ?", gameID)
	}
	return query, nil
}

// RevertBidsByCriteria refunds the original stake of every bid matching
// the date and/or game filters and marks them reverted. The refund is
// always the stake, never the win amount, whatever state the bid is in.
// Re-running it over already-reverted bids refunds nothing.
func RevertBidsByCriteria(ctx context.Context, date, gameID string) (*RevertSummary, error) {
	query, err := bidCriteriaQuery(database.DB.WithContext(ctx), date, gameID)
	if err != nil {
		return nil, err
	}

	var bids []models.Bid
	if err := query.Where("status <> ?", models.BidStatusReverted).Find(&bids).Error; err != nil {
		return nil, fmt.Errorf("load bids to revert: %w", err)
	}

	runID := uuid.NewString()
	summary := &RevertSummary{RunID: runID}
	if len(bids) == 0 {
		return summary, nil
	}

	byUser := make(map[string][]models.Bid)
	for _, bid := range bids {
		if bid.UID == "" || bid.BidAmount <= 0 {
			continue
		}
		byUser[bid.UID] = append(byUser[bid.UID], bid)
	}
	if len(byUser) == 0 {
		return summary, nil
	}

	uids := make([]string, 0, len(byUser))
	for uid := range byUser {
		uids = append(uids, uid)
	}
	sort.Strings(uids)

	userInfo, err := FetchUserInfo(ctx, uids)
	if err != nil {
		log.Printf("⚠️  failed to fetch user info for revert listing: %v", err)
		userInfo = map[string]UserInfo{}
	}

	reason := fmt.Sprintf("Bid Revert - Game: %s, Date: %s", orAll(gameID), orAll(date))

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, uid := range uids {
			var fund models.Fund
			if err := withRowLock(tx).
				Where("uid = ?", uid).First(&fund).Error; err != nil {
				log.Printf("❌ fund row not found for user %s, skipping revert for this user", uid)
				continue
			}

			refund := 0.0
			var bidIDs []uint
			for _, bid := range byUser[uid] {
				res := tx.Model(&models.Bid{}).
					Where("id = ? AND status <> ?", bid.ID, models.BidStatusReverted).
					Update("status", models.BidStatusReverted)
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					// Raced with a concurrent revert; nothing to refund.
					continue
				}

				refund += bid.BidAmount
				bidIDs = append(bidIDs, bid.ID)
				summary.RevertedCount++
				info := userInfo[uid]
				summary.RevertedBids = append(summary.RevertedBids, RevertedBid{
					BidID:     bid.ID,
					Username:  orNA(info.Username),
					BidAmount: bid.BidAmount,
					GameType:  bid.GameType,
				})
			}
			if refund == 0 {
				continue
			}

			meta, _ := marshalMeta(map[string]any{"bid_ids": bidIDs})
			if err := tx.Create(&models.FundTransaction{
				UID:           uid,
				Amount:        refund,
				TrxType:       models.TrxTypeCredit,
				Reason:        reason,
				BalanceBefore: fund.Balance,
				BalanceAfter:  fund.Balance + refund,
				RefID:         runID,
				Meta:          meta,
			}).Error; err != nil {
				return err
			}

			if err := tx.Model(&fund).Updates(map[string]any{
				"balance":            gorm.Expr("balance + ?", refund),
				"last_update_reason": reason,
				"last_sync_at":       time.Now(),
			}).Error; err != nil {
				return err
			}

			summary.UserCount++
			summary.TotalRefunded += refund
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("revert batch commit failed, no changes were made: %w", err)
	}

	log.Printf("✅ [run %s] reverted %d bids for %d users, refunded %.2f",
		runID, summary.RevertedCount, summary.UserCount, summary.TotalRefunded)
	return summary, nil
}

// ClearRevertedBids permanently deletes already-reverted bids matching the
// filters. No money moves. Deletes run in chunks; if a chunk fails the
// returned count tells the caller how many were already removed.
func ClearRevertedBids(ctx context.Context, date, gameID string) (int64, error) {
	query, err := bidCriteriaQuery(database.DB.WithContext(ctx), date, gameID)
	if err != nil {
		return 0, err
	}

	var ids []uint
	if err := query.Where("status = ?", models.BidStatusReverted).Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("load reverted bids: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	for _, chunk := range helpers.Chunk(ids, deleteChunkSize) {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			res := tx.Unscoped().Where("id IN ?", chunk).Delete(&models.Bid{})
			if res.Error != nil {
				return res.Error
			}
			deleted += res.RowsAffected
			return nil
		})
		if err != nil {
			return deleted, fmt.Errorf("delete chunk failed after %d deletions (changes may be partial): %w", deleted, err)
		}
	}

	log.Printf("✅ cleared %d reverted bids (game=%s date=%s)", deleted, orAll(gameID), orAll(date))
	return deleted, nil
}

func orAll(s string) string {
	if s == "" {
		return "All"
	}
	return s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
