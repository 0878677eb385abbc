package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/dto"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/identity"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/models"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/services"
)

type GameHandler struct {
	gameService *services.GameService
}

func NewGameHandler(gameService *services.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

func (h *GameHandler) List(c *fiber.Ctx) error {
	status := c.Query("status", "")
	developer := c.Query("developer", "")
	if status != "" && !models.ValidStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "status must be pending, approved, or rejected",
		})
	}

	games, err := h.gameService.List(status, developer)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch games",
		})
	}
	return c.JSON(games)
}

// Get returns one game and bumps its view counter. Every fetch counts,
// repeat views included.
func (h *GameHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	game, err := h.gameService.Get(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Game not found",
		})
	}

	if err := h.gameService.IncrementViews(id); err != nil {
		slog.Error("failed to increment views", "game_id", id.String(), "error", err)
	}

	return c.JSON(game)
}

func (h *GameHandler) Create(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	game, err := h.gameService.Create(userID, &req)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(game)
}

func (h *GameHandler) Update(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	var req dto.UpdateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	isAdmin := identity.Role(c) == models.RoleAdmin
	game, err := h.gameService.Update(id, userID, isAdmin, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrGameNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrNotOwner), errors.Is(err, services.ErrAdminOnlyField):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
	}

	return c.JSON(game)
}

func (h *GameHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	if err := h.gameService.Delete(id); err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete game",
		})
	}

	return c.JSON(fiber.Map{"message": "Game deleted successfully"})
}

// Download records a download. It only bumps the counter; whether the APK
// link actually resolves is the client's business.
func (h *GameHandler) Download(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	if err := h.gameService.IncrementDownloads(id); err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to track download",
		})
	}

	return c.JSON(fiber.Map{"message": "Download tracked"})
}
