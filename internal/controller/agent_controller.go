package controller

import (
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/pkg/serverutils"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/service"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/agent/trace"

	"github.com/gofiber/fiber/v2"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	GetStatuses(ctx *fiber.Ctx) error
	GetTraces(ctx *fiber.Ctx) error
}

type agentController struct {
	service service.IAgentService
	traces  *trace.Recorder
}

func NewAgentController(service service.IAgentService, traces *trace.Recorder) IAgentController {
	return &agentController{service: service, traces: traces}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	r.Get("/agents/status", c.GetStatuses)
	r.Get("/traces", c.GetTraces)
}

func (c *agentController) GetStatuses(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get agent statuses", c.service.GetAgentStatuses()))
}

func (c *agentController) GetTraces(ctx *fiber.Ctx) error {
	if c.traces == nil {
		return ctx.JSON(serverutils.SuccessResponse("Success get traces", []trace.Entry{}))
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get traces", c.traces.List()))
}
