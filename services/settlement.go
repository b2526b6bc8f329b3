package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"matka/database"
	"matka/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProcessOptions describes one settlement run.
type ProcessOptions struct {
	// Family selects the rate table and the bid population
	// (main, starline or jackpot).
	Family string

	StartDate time.Time
	EndDate   time.Time

	// Title narrows the run to one market title. Jackpot declarations
	// are keyed by title rather than chart ID.
	Title string

	// Overrides maps game IDs to manually declared results. When set, the
	// run is scoped to exactly these games and never touches the scrape
	// source. When empty, results come from Source.
	Overrides map[string]Override

	// Source resolves scraped results. Defaults to a fresh ChartSource;
	// injectable for tests.
	Source ResultSource
}

// WinningBid is one credited wager, returned for review and notification.
type WinningBid struct {
	BidID     uint    `json:"bid_id"`
	UID       string  `json:"uid"`
	GameID    string  `json:"game_id"`
	GameType  string  `json:"game_type"`
	Answer    string  `json:"answer"`
	BidAmount float64 `json:"bid_amount"`
	WinAmount float64 `json:"win_amount"`
}

// Summary reports one settlement run. Skipped bids are untouched and stay
// pending; Processed counts only bids whose status actually changed.
type Summary struct {
	RunID            string       `json:"run_id"`
	TotalSubmissions int          `json:"total_submissions"`
	Processed        int          `json:"processed"`
	Won              int          `json:"won"`
	Lost             int          `json:"lost"`
	Skipped          int          `json:"skipped"`
	Winners          []WinningBid `json:"winners"`
}

type bidOutcome struct {
	bid       models.Bid
	winAmount float64
}

// ProcessResults settles every pending bid of a family inside a date
// window: classify each bid against its market's resolved daily result,
// then commit all status updates, balance credits and ledger rows as one
// transaction. Unusable results (failed scrape, closed market, undeclared
// segment) skip bids without failing the run; an empty rate table or a
// failed commit aborts the run with no changes made.
func ProcessResults(ctx context.Context, opts ProcessOptions) (*Summary, error) {
	if opts.Family == "" {
		opts.Family = models.FamilyMain
	}
	runID := uuid.NewString()
	log.Printf("🟡 [%s] settlement run %s: %s → %s", opts.Family, runID,
		opts.StartDate.Format(time.RFC3339), opts.EndDate.Format(time.RFC3339))

	rates, err := ResolveRates(opts.Family)
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: runID}

	var pending []models.Bid
	query := database.DB.
		Where("status = ?", models.BidStatusPending).
		Where("created_at >= ? AND created_at <= ?", opts.StartDate, opts.EndDate)
	switch opts.Family {
	case models.FamilyStarline:
		query = query.Where("is_starline = ?", true)
	case models.FamilyJackpot:
		query = query.Where("is_jackpot = ?", true)
	default:
		query = query.Where("is_starline = ? AND is_jackpot = ?", false, false)
	}
	if opts.Title != "" {
		query = query.Where("title = ?", opts.Title)
	}
	if err := query.Find(&pending).Error; err != nil {
		return nil, fmt.Errorf("load pending bids: %w", err)
	}
	summary.TotalSubmissions = len(pending)
	if len(pending) == 0 {
		log.Println("No pending submissions found in the specified date range.")
		return summary, nil
	}

	byGame := make(map[string][]models.Bid)
	for _, bid := range pending {
		byGame[bid.GameID] = append(byGame[bid.GameID], bid)
	}

	source := opts.Source
	if len(opts.Overrides) > 0 {
		// A manual declaration only touches the named games.
		scoped := make(map[string][]models.Bid)
		for gameID := range opts.Overrides {
			if bids, ok := byGame[gameID]; ok {
				scoped[gameID] = bids
			}
		}
		byGame = scoped
		source = &OverrideSource{Overrides: opts.Overrides}
	} else if source == nil {
		source = NewChartSource(NewMatkaClient())
	}

	gameIDs := make([]string, 0, len(byGame))
	for gameID := range byGame {
		gameIDs = append(gameIDs, gameID)
	}
	sort.Strings(gameIDs)

	var winners, losers []bidOutcome
	for _, gameID := range gameIDs {
		bids := byGame[gameID]

		for _, bid := range bids {
			result, err := source.ResolveDailyResult(ctx, gameID, bid.CreatedAt)
			if err != nil {
				return nil, fmt.Errorf("[%s] resolve result: %w", gameID, err)
			}
			if result == nil || result.IsClosed {
				summary.Skipped++
				continue
			}

			segment := RequiredSegment(bid.GameType, bid.SelectedGameType)
			if !result.Declared(segment) {
				// Undeclared halves (including blank override halves)
				// are a skip, never a loss.
				summary.Skipped++
				continue
			}

			if Classify(bid.GameType, bid.SelectedGameType, bid.Answer, *result) {
				mult := MultiplierFor(rates, bid.GameType)
				winners = append(winners, bidOutcome{bid: bid, winAmount: ComputePayout(bid.BidAmount, mult)})
			} else {
				losers = append(losers, bidOutcome{bid: bid})
			}
		}
	}

	if len(winners) == 0 && len(losers) == 0 {
		log.Printf("🟡 [run %s] no submissions eligible for processing", runID)
		return summary, nil
	}

	// Winners of the main and starline families get their stake back on
	// top of the winnings; jackpot credits winnings only.
	includeStake := opts.Family != models.FamilyJackpot

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		for _, out := range losers {
			res := tx.Model(&models.Bid{}).
				Where("id = ? AND status = ?", out.bid.ID, models.BidStatusPending).
				Update("status", models.BidStatusLost)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				// Raced with another run; second pass is a no-op.
				summary.Skipped++
				continue
			}
			summary.Lost++
			summary.Processed++
		}

		byUser := make(map[string][]bidOutcome)
		for _, out := range winners {
			byUser[out.bid.UID] = append(byUser[out.bid.UID], out)
		}
		uids := make([]string, 0, len(byUser))
		for uid := range byUser {
			uids = append(uids, uid)
		}
		sort.Strings(uids)

		for _, uid := range uids {
			var fund models.Fund
			if err := withRowLock(tx).
				Where("uid = ?", uid).First(&fund).Error; err != nil {
				log.Printf("❌ CRITICAL: fund row not found for user %s, leaving bids pending", uid)
				summary.Skipped += len(byUser[uid])
				continue
			}

			running := fund.Balance
			credited := 0.0
			var lastReason string

			for _, out := range byUser[uid] {
				res := tx.Model(&models.Bid{}).
					Where("id = ? AND status = ?", out.bid.ID, models.BidStatusPending).
					Updates(map[string]any{
						"status":     models.BidStatusWon,
						"win_amount": out.winAmount,
					})
				if res.Error != nil {
					return res.Error
				}
				if res.RowsAffected == 0 {
					summary.Skipped++
					continue
				}

				credit := out.winAmount
				if includeStake {
					credit += out.bid.BidAmount
				}
				reason := fmt.Sprintf("Game Won - %s (%s)", out.bid.GameType, out.bid.Title)
				meta, _ := marshalMeta(map[string]any{
					"bid_id":  out.bid.ID,
					"game_id": out.bid.GameID,
				})
				if err := tx.Create(&models.FundTransaction{
					UID:           uid,
					Amount:        credit,
					TrxType:       models.TrxTypeCredit,
					Reason:        reason,
					BalanceBefore: running,
					BalanceAfter:  running + credit,
					RefID:         runID,
					Meta:          meta,
				}).Error; err != nil {
					return err
				}

				running += credit
				credited += credit
				lastReason = reason
				summary.Won++
				summary.Processed++
				summary.Winners = append(summary.Winners, WinningBid{
					BidID:     out.bid.ID,
					UID:       uid,
					GameID:    out.bid.GameID,
					GameType:  out.bid.GameType,
					Answer:    out.bid.Answer,
					BidAmount: out.bid.BidAmount,
					WinAmount: out.winAmount,
				})
			}

			if credited > 0 {
				if err := tx.Model(&fund).Updates(map[string]any{
					"balance":            gorm.Expr("balance + ?", credited),
					"last_update_reason": lastReason,
					"last_sync_at":       time.Now(),
				}).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		// The transaction is all-or-nothing: no changes were made.
		return nil, fmt.Errorf("settlement batch commit failed, no changes were made: %w", err)
	}

	log.Printf("✅ [run %s] settled %d bids: %d won, %d lost, %d skipped",
		runID, summary.Processed, summary.Won, summary.Lost, summary.Skipped)

	if len(summary.Winners) > 0 {
		go NotifyWinners(summary.Winners)
	}
	return summary, nil
}

// withRowLock takes a row lock on databases that support it. SQLite
// serializes writers on its own and rejects FOR UPDATE.
func withRowLock(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func marshalMeta(v map[string]any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
