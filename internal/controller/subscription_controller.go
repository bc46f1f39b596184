package controller

import (
	"sea-catering-be/internal/dto"
	"sea-catering-be/internal/pkg/serverutils"
	"sea-catering-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISubscriptionController interface {
	RegisterRoutes(r fiber.Router)
	Subscribe(ctx *fiber.Ctx) error
	GetCurrent(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	Pause(ctx *fiber.Ctx) error
	Resume(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type subscriptionController struct {
	service service.ISubscriptionService
}

func NewSubscriptionController(service service.ISubscriptionService) ISubscriptionController {
	return &subscriptionController{service: service}
}

func (c *subscriptionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/subscriptions")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Subscribe)
	h.Get("/current", c.GetCurrent)
	h.Get("/history", c.GetHistory)
	h.Patch("/:id/pause", c.Pause)
	h.Patch("/:id/resume", c.Resume)
	h.Delete("/:id", c.Cancel)
}

func subscriptionErrorStatus(err error) int {
	switch err.Error() {
	case "subscription not found":
		return fiber.StatusNotFound
	case "invalid meal plan selected",
		"phone number must be 10 to 15 digits",
		"delivery days must be between 0 (Sunday) and 6 (Saturday)",
		"paused_from must be a valid date",
		"paused_to must be a valid date",
		"paused_to must not be before paused_from":
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func (c *subscriptionController) Subscribe(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SubscribeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Subscribe(ctx.Context(), userId, &req)
	if err != nil {
		code := subscriptionErrorStatus(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Subscription created", res))
}

func (c *subscriptionController) GetCurrent(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetCurrent(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	if res == nil {
		return ctx.JSON(serverutils.SuccessResponse[any]("No active subscription", nil))
	}

	return ctx.JSON(serverutils.SuccessResponse("Current subscription", res))
}

func (c *subscriptionController) GetHistory(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.service.GetHistorical(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Subscription history", res))
}

func (c *subscriptionController) Pause(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	subscriptionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription ID"))
	}

	var req dto.PauseSubscriptionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Pause(ctx.Context(), userId, subscriptionId, &req)
	if err != nil {
		code := subscriptionErrorStatus(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Subscription paused", res))
}

func (c *subscriptionController) Resume(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	subscriptionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription ID"))
	}

	res, err := c.service.Resume(ctx.Context(), userId, subscriptionId)
	if err != nil {
		code := subscriptionErrorStatus(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Subscription resumed", res))
}

func (c *subscriptionController) Cancel(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	subscriptionId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid subscription ID"))
	}

	if err := c.service.Cancel(ctx.Context(), userId, subscriptionId); err != nil {
		code := subscriptionErrorStatus(err)
		return ctx.Status(code).JSON(serverutils.ErrorResponse(code, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Subscription cancelled", nil))
}
