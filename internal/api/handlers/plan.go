package handlers

import (
	"net/http"

	"trainit-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainingPlanHandler handles HTTP requests for training plans
type TrainingPlanHandler struct {
	service service.TrainingPlanServiceInterface
}

// NewTrainingPlanHandler creates a new training plan handler
func NewTrainingPlanHandler(service service.TrainingPlanServiceInterface) *TrainingPlanHandler {
	return &TrainingPlanHandler{service: service}
}

// ListPlans handles GET /plans
// @Summary List training plans
// @Description List every training plan of every animal in the caller's organization
// @Tags plans
// @Produce json
// @Success 200 {array} service.TrainingPlanResponse "Plans of the organization"
// @Failure 401 {object} ErrorResponse "Could not validate credentials"
// @Security BearerAuth
// @Router /plans [get]
func (h *TrainingPlanHandler) ListPlans(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plans, err := h.service.ListForOrganization(userID)
	if err != nil {
		respondError(c, err, "list training plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// CreatePlanForAnimal handles POST /plans/animal/:id
// @Summary Create a training plan
// @Description Create a training plan with its steps for an animal of the caller's organization
// @Tags plans
// @Accept json
// @Produce json
// @Param id path int true "Animal ID"
// @Param plan body service.CreateTrainingPlanRequest true "Plan data"
// @Success 201 {object} service.TrainingPlanResponse "Successfully created plan"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Animal not found or not in your organization"
// @Security BearerAuth
// @Router /plans/animal/{id} [post]
func (h *TrainingPlanHandler) CreatePlanForAnimal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	animalID, ok := pathID(c, "id", "animal")
	if !ok {
		return
	}

	var req service.CreateTrainingPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.service.CreateForAnimal(userID, animalID, &req)
	if err != nil {
		respondError(c, err, "create training plan")
		return
	}

	c.JSON(http.StatusCreated, plan)
}

// ListPlansForAnimal handles GET /plans/animal/:id
// @Summary List an animal's training plans
// @Tags plans
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {array} service.TrainingPlanResponse "Plans of the animal"
// @Failure 400 {object} ErrorResponse "Invalid animal ID"
// @Failure 404 {object} ErrorResponse "Animal not found or not in your organization"
// @Security BearerAuth
// @Router /plans/animal/{id} [get]
func (h *TrainingPlanHandler) ListPlansForAnimal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	animalID, ok := pathID(c, "id", "animal")
	if !ok {
		return
	}

	plans, err := h.service.ListForAnimal(userID, animalID)
	if err != nil {
		respondError(c, err, "list training plans")
		return
	}

	c.JSON(http.StatusOK, plans)
}

// GetPlan handles GET /plans/:id
// @Summary Get training plan by ID
// @Description Get a plan with its steps sorted by order
// @Tags plans
// @Produce json
// @Param id path int true "Plan ID"
// @Success 200 {object} service.TrainingPlanResponse "Successfully retrieved plan"
// @Failure 400 {object} ErrorResponse "Invalid plan ID"
// @Failure 404 {object} ErrorResponse "Plan not found or not in your organization"
// @Security BearerAuth
// @Router /plans/{id} [get]
func (h *TrainingPlanHandler) GetPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "plan")
	if !ok {
		return
	}

	plan, err := h.service.GetByID(userID, id)
	if err != nil {
		respondError(c, err, "get training plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// UpdatePlan handles PUT /plans/:id
// @Summary Update a training plan
// @Description Update the fields present in the body; absent fields keep their values
// @Tags plans
// @Accept json
// @Produce json
// @Param id path int true "Plan ID"
// @Param plan body service.UpdateTrainingPlanRequest true "Fields to change"
// @Success 200 {object} service.TrainingPlanResponse "Successfully updated plan"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Plan not found or not in your organization"
// @Security BearerAuth
// @Router /plans/{id} [put]
func (h *TrainingPlanHandler) UpdatePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "plan")
	if !ok {
		return
	}

	var req service.UpdateTrainingPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.service.Update(userID, id, &req)
	if err != nil {
		respondError(c, err, "update training plan")
		return
	}

	c.JSON(http.StatusOK, plan)
}

// DeletePlan handles DELETE /plans/:id
// @Summary Delete a training plan
// @Description Delete a plan with all its steps and their session notes
// @Tags plans
// @Param id path int true "Plan ID"
// @Success 204 "Plan deleted"
// @Failure 400 {object} ErrorResponse "Invalid plan ID"
// @Failure 404 {object} ErrorResponse "Plan not found or not in your organization"
// @Security BearerAuth
// @Router /plans/{id} [delete]
func (h *TrainingPlanHandler) DeletePlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "plan")
	if !ok {
		return
	}

	if err := h.service.Delete(userID, id); err != nil {
		respondError(c, err, "delete training plan")
		return
	}

	c.Status(http.StatusNoContent)
}
