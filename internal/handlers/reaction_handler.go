package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/dto"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/identity"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/services"
)

type ReactionHandler struct {
	reactionService *services.ReactionService
}

func NewReactionHandler(reactionService *services.ReactionService) *ReactionHandler {
	return &ReactionHandler{reactionService: reactionService}
}

// Get returns the caller's reaction on a game, or null if they have none.
func (h *ReactionHandler) Get(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	gameID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	like, err := h.reactionService.Get(gameID, userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reaction",
		})
	}
	if like == nil {
		return c.JSON(nil)
	}
	return c.JSON(like)
}

func (h *ReactionHandler) Set(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	gameID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	var req dto.SetReactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.IsLike == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "is_like is required",
		})
	}

	like, err := h.reactionService.Set(gameID, userID, *req.IsLike)
	if err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save reaction",
		})
	}

	return c.JSON(like)
}

func (h *ReactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := identity.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	gameID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid game ID",
		})
	}

	if err := h.reactionService.Delete(gameID, userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete reaction",
		})
	}

	return c.JSON(fiber.Map{"message": "Reaction removed"})
}
