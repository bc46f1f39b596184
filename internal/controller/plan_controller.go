package controller

import (
	"sea-catering-be/internal/constant"
	"sea-catering-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
)

type IPlanController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
}

// planController serves the static pricing catalog. Plans are defined in code,
// not the database.
type planController struct{}

func NewPlanController() IPlanController {
	return &planController{}
}

func (c *planController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/plans")
	h.Get("", c.GetAll)
}

func (c *planController) GetAll(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Meal plans", constant.PricingPlans))
}
