package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alpinepulse/internal/models/request_models"
	"alpinepulse/internal/services"
	"alpinepulse/pkg/utils"
)

type PlannerController struct {
	plannerService services.PlannerServiceInterface
}

func NewPlannerController(plannerService services.PlannerServiceInterface) *PlannerController {
	return &PlannerController{
		plannerService: plannerService,
	}
}

// sessionID comes from the path for existing sessions; OpenSession also
// accepts the browser's previous id via header so a reload restores state.
func sessionID(c *gin.Context) string {
	return c.Param("id")
}

func (p *PlannerController) OpenSession(c *gin.Context) {
	state, err := p.plannerService.OpenSession(c.Request.Context(), c.GetHeader("X-Session-ID"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Planner session ready")
}

func (p *PlannerController) GetState(c *gin.Context) {
	state, err := p.plannerService.GetState(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (p *PlannerController) UpdateTrip(c *gin.Context) {
	var req request_models.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid trip payload")
		return
	}
	state, err := p.plannerService.UpdateTrip(c.Request.Context(), sessionID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Trip updated")
}

func (p *PlannerController) MoveRank(c *gin.Context) {
	var req request_models.MoveRankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid rank move payload")
		return
	}
	state, err := p.plannerService.MoveRank(c.Request.Context(), sessionID(c), req.Position, req.Direction)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (p *PlannerController) ReorderRank(c *gin.Context) {
	var req request_models.ReorderRankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid reorder payload")
		return
	}
	state, err := p.plannerService.ReorderRank(c.Request.Context(), sessionID(c), req.Theme, req.Index)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (p *PlannerController) ToggleBalanced(c *gin.Context) {
	state, err := p.plannerService.ToggleBalanced(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (p *PlannerController) SetWeight(c *gin.Context) {
	theme := c.Param("theme")
	if theme == "" {
		utils.RespondError(c, http.StatusBadRequest, "Theme is required")
		return
	}
	var req request_models.SetWeightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid weight payload")
		return
	}
	state, err := p.plannerService.SetWeight(c.Request.Context(), sessionID(c), theme, req.Value)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (p *PlannerController) NextCandidate(c *gin.Context) {
	state, err := p.plannerService.NextCandidate(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (p *PlannerController) PrevCandidate(c *gin.Context) {
	state, err := p.plannerService.PrevCandidate(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (p *PlannerController) AddMustVisit(c *gin.Context) {
	var req request_models.MustVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Identifier == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction identifier is required")
		return
	}
	state, err := p.plannerService.AddMustVisit(c.Request.Context(), sessionID(c), req.Identifier)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (p *PlannerController) RemoveMustVisit(c *gin.Context) {
	var req request_models.MustVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Identifier == "" {
		utils.RespondError(c, http.StatusBadRequest, "Attraction identifier is required")
		return
	}
	state, err := p.plannerService.RemoveMustVisit(c.Request.Context(), sessionID(c), req.Identifier)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (p *PlannerController) FinishSelection(c *gin.Context) {
	state, err := p.plannerService.FinishSelection(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Selection saved")
}

func (p *PlannerController) ReopenSelection(c *gin.Context) {
	state, err := p.plannerService.ReopenSelection(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "")
}

func (p *PlannerController) ResetCandidates(c *gin.Context) {
	state, err := p.plannerService.ResetCandidates(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Selection reset")
}

func (p *PlannerController) Submit(c *gin.Context) {
	plan, err := p.plannerService.Submit(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan generated")
}

func (p *PlannerController) GetPlan(c *gin.Context) {
	plan, err := p.plannerService.CachedPlan(c.Request.Context(), sessionID(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "")
}

func (p *PlannerController) ResetSession(c *gin.Context) {
	if err := p.plannerService.ResetSession(c.Request.Context(), sessionID(c)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Session cleared")
}
