package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"matka/database"
	"matka/models"
)

// DeclareJackpotResult records a jackpot jodi for one game and date, then
// settles every pending jackpot bid on that market through the shared
// engine. Jackpot wins credit winnings only; the stake stays with the
// house.
func DeclareJackpotResult(ctx context.Context, gameID, gameTitle, jodi, date string) (*Summary, error) {
	if gameID == "" || gameTitle == "" {
		return nil, fmt.Errorf("gameId and gameTitle are required")
	}
	if !jodiRe.MatchString(jodi) {
		return nil, fmt.Errorf("jodi must be exactly two digits")
	}

	start, end, err := ParseDayWindow(date)
	if err != nil {
		return nil, err
	}

	if err := upsertJackpotResult(ctx, gameID, gameTitle, jodi, date); err != nil {
		return nil, err
	}

	result := DailyResult{
		OpeningPanna: PannaUndeclared,
		ClosingPanna: PannaUndeclared,
		Jodi:         jodi,
	}

	summary, err := ProcessResults(ctx, ProcessOptions{
		Family:    models.FamilyJackpot,
		Title:     gameTitle,
		StartDate: start,
		EndDate:   end,
		Source:    &StaticSource{Result: result},
	})
	if err != nil {
		return nil, err
	}

	log.Printf("✅ [jackpot] declared %s for %s on %s: %d won, %d lost",
		jodi, gameTitle, date, summary.Won, summary.Lost)
	return summary, nil
}

// upsertJackpotResult keeps one row per game and date, overwriting the
// jodi when the admin re-declares.
func upsertJackpotResult(ctx context.Context, gameID, gameTitle, jodi, date string) error {
	var existing models.JackpotResult
	err := database.DB.WithContext(ctx).
		Where("game_id = ? AND declaration_date = ?", gameID, date).
		First(&existing).Error
	if err == nil {
		updates := map[string]any{
			"game_title":  gameTitle,
			"jodi":        jodi,
			"declared_at": time.Now(),
		}
		if err := database.DB.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("update jackpot result: %w", err)
		}
		return nil
	}

	row := models.JackpotResult{
		GameID:          gameID,
		GameTitle:       gameTitle,
		Jodi:            jodi,
		DeclarationDate: date,
		DeclaredAt:      time.Now(),
	}
	if err := database.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("save jackpot result: %w", err)
	}
	return nil
}

// PredictJackpotWinners dry-runs a jackpot jodi against the pending bids
// of one market title and date. Nothing is written.
func PredictJackpotWinners(ctx context.Context, gameTitle, date, jodi string) ([]PredictedWinner, error) {
	if gameTitle == "" {
		return nil, fmt.Errorf("gameTitle is required")
	}
	if !jodiRe.MatchString(jodi) {
		return nil, fmt.Errorf("jodi must be exactly two digits")
	}

	rates, err := ResolveRates(models.FamilyJackpot)
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
		Where("is_jackpot = ?", true).
		Where("title = ?", gameTitle).
		Where("created_at >= ? AND created_at <= ?", start, end).
		Find(&pending).Error; err != nil {
		return nil, fmt.Errorf("load pending bids: %w", err)
	}

	result := DailyResult{
		OpeningPanna: PannaUndeclared,
		ClosingPanna: PannaUndeclared,
		Jodi:         jodi,
	}

	winners := []PredictedWinner{}
	for _, bid := range pending {
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

	log.Printf("🟡 [jackpot prediction] %s on %s with jodi %s: %d pending, %d potential winners",
		gameTitle, date, jodi, len(pending), len(winners))
	return winners, nil
}
