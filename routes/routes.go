package routes

import (
	"matka/controllers/bidding"
	"matka/controllers/games"
	"matka/controllers/jackpot"
	"matka/controllers/settings"
	"matka/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	app.Get("/charts/:gameId", bidding.GetChartResult)

	admin := app.Group("/admin", middlewares.AdminAuth())

	admin.Post("/results/declare", bidding.DeclareResults)
	admin.Post("/results/process", bidding.ProcessResults)
	admin.Post("/results/predict", bidding.PredictWinners)
	admin.Post("/bids/revert", bidding.RevertBids)
	admin.Post("/bids/clear-reverted", bidding.ClearRevertedBids)

	admin.Post("/jackpot/declare", jackpot.DeclareResult)
	admin.Post("/jackpot/predict", jackpot.PredictWinners)

	admin.Get("/settings/rates", settings.GetRates)
	admin.Post("/settings/rates", settings.UpdateRates)

	admin.Get("/games", games.ListGames)
	admin.Post("/games", games.CreateGame)
	admin.Get("/games/starline", games.ListStarlineGames)
	admin.Post("/games/starline", games.CreateStarlineGame)
	admin.Get("/games/jackpot", games.ListJackpotGames)
	admin.Post("/games/jackpot", games.CreateJackpotGame)
}
