package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"matka/database"
	"matka/models"
)

// PredictedWinner is one hypothetical payout from a dry run.
type PredictedWinner struct {
	BidID     uint    `json:"bid_id"`
	UID       string  `json:"uid"`
	GameType  string  `json:"game_type"`
	Answer    string  `json:"answer"`
	BidAmount float64 `json:"bid_amount"`
	WinAmount float64 `json:"win_amount"`
}

// PredictWinners evaluates the pending bids of one market and date against
// a hypothetical result without persisting anything. It runs the exact
// classification and rate path of a real settlement, so a prediction
// followed by declaring the same result settles identically.
func PredictWinners(ctx context.Context, gameID, date, openPanna, closePanna, segmentFilter string) ([]PredictedWinner, error) {
	if gameID == "" || date == "" || !pannaRe.MatchString(openPanna) || !pannaRe.MatchString(closePanna) {
		return nil, fmt.Errorf("gameId, date and two 3-digit pannas are required")
	}

	rates, err := ResolveRates(models.FamilyMain)
	if err != nil {
		return nil, err
	}

	start, end, err := ParseDayWindow(date)
	if err != nil {
		return nil, err
	}

	var pending []models.Bid
	if err := database.DB.WithContext(ctx).
		Where("status = ?", models.BidStatusPending).
		Where("game_id = ?", gameID).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Find(&pending).Error; err != nil {
		return nil, fmt.Errorf("load pending bids: %w", err)
	}

	result := DailyResult{
		OpeningPanna: openPanna,
		ClosingPanna: closePanna,
	}
	result.Normalize()

	winners := []PredictedWinner{}
	for _, bid := range pending {
		if segmentFilter != "" && !strings.EqualFold(bid.SelectedGameType, segmentFilter) {
			continue
		}
		if !Classify(bid.GameType, bid.SelectedGameType, bid.Answer, result) {
			continue
		}
		mult := MultiplierFor(rates, bid.GameType)
		winners = append(winners, PredictedWinner{
			BidID:     bid.ID,
			UID:       bid.UID,
			GameType:  bid.GameType,
			Answer:    bid.Answer,
			BidAmount: bid.BidAmount,
			WinAmount: ComputePayout(bid.BidAmount, mult),
		})
	}

	log.Printf("🟡 [prediction] %s on %s: %d pending, %d potential winners",
		gameID, date, len(pending), len(winners))
	return winners, nil
}
