package games

import (
	"matka/database"
	"matka/helpers"
	"matka/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ListGames returns the main-family markets.
func ListGames(c *fiber.Ctx) error {
	var games []models.Game
	if err := database.DB.Order("game_id").Find(&games).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_GAMES")
	}
	return helpers.JSONSuccess(c, "Games loaded", games)
}

type CreateGameRequest struct {
	GameID    string `json:"game_id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	AltName   string `json:"alt_name"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

// CreateGame registers a main-family market. GameID must match the
// chart identifier on the result source.
func CreateGame(c *fiber.Ctx) error {
	var req CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "GAME_ID_AND_NAME_REQUIRED")
	}

	game := models.Game{
		GameID:    req.GameID,
		Name:      req.Name,
		AltName:   req.AltName,
		OpenTime:  req.OpenTime,
		CloseTime: req.CloseTime,
	}
	if err := database.DB.Create(&game).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_GAME")
	}
	return helpers.JSONSuccess(c, "Game created", game)
}

// ListStarlineGames returns the starline markets.
func ListStarlineGames(c *fiber.Ctx) error {
	var games []models.StarlineGame
	if err := database.DB.Order("open_time").Find(&games).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_GAMES")
	}
	return helpers.JSONSuccess(c, "Starline games loaded", games)
}

type CreateStarlineGameRequest struct {
	GameName      string `json:"game_name" validate:"required"`
	GameNameHindi string `json:"game_name_hindi"`
	OpenTime      string `json:"open_time" validate:"required"`
}

func CreateStarlineGame(c *fiber.Ctx) error {
	var req CreateStarlineGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "GAME_NAME_AND_OPEN_TIME_REQUIRED")
	}

	game := models.StarlineGame{
		GameName:      req.GameName,
		GameNameHindi: req.GameNameHindi,
		OpenTime:      req.OpenTime,
		GameStatus:    "1",
	}
	if err := database.DB.Create(&game).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_GAME")
	}
	return helpers.JSONSuccess(c, "Starline game created", game)
}

// ListJackpotGames returns the jackpot markets.
func ListJackpotGames(c *fiber.Ctx) error {
	var games []models.JackpotGame
	if err := database.DB.Order("close_time").Find(&games).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LOAD_GAMES")
	}
	return helpers.JSONSuccess(c, "Jackpot games loaded", games)
}

type CreateJackpotGameRequest struct {
	GameName      string `json:"game_name" validate:"required"`
	GameNameHindi string `json:"game_name_hindi"`
	CloseTime     string `json:"close_time" validate:"required"`
}

func CreateJackpotGame(c *fiber.Ctx) error {
	var req CreateJackpotGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JSONError(c, "GAME_NAME_AND_CLOSE_TIME_REQUIRED")
	}

	game := models.JackpotGame{
		GameName:      req.GameName,
		GameNameHindi: req.GameNameHindi,
		CloseTime:     req.CloseTime,
		GameStatus:    "1",
	}
	if err := database.DB.Create(&game).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_GAME")
	}
	return helpers.JSONSuccess(c, "Jackpot game created", game)
}
