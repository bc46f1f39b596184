package controller

import (
	"sea-catering-be/internal/dto"
	"sea-catering-be/internal/pkg/serverutils"
	"sea-catering-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITestimonialController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	GetAll(ctx *fiber.Ctx) error
}

type testimonialController struct {
	service service.ITestimonialService
}

func NewTestimonialController(service service.ITestimonialService) ITestimonialController {
	return &testimonialController{service: service}
}

func (c *testimonialController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/testimonials")
	h.Get("", c.GetAll) // Public landing page feed
	h.Post("", serverutils.JwtMiddleware, c.Create)
}

func (c *testimonialController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.JSON(serverutils.SuccessResponse("Testimonials", res))
}

func (c *testimonialController) Create(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.CreateTestimonialRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.Context(), userId, &req)
	if err != nil {
		switch err.Error() {
		case "subscription not found":
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
		case "invalid subscription id":
			return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Testimonial created", res))
}
