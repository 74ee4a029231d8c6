package handlers

import (
	"net/http"

	"trainit-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PlanStepHandler handles HTTP requests for plan steps and their session notes
type PlanStepHandler struct {
	service service.PlanStepServiceInterface
}

// NewPlanStepHandler creates a new plan step handler
func NewPlanStepHandler(service service.PlanStepServiceInterface) *PlanStepHandler {
	return &PlanStepHandler{service: service}
}

// UpdateStep handles PUT /steps/:id
// @Summary Update a plan step
// @Description Update the fields present in the body; absent fields keep their values
// @Tags steps
// @Accept json
// @Produce json
// @Param id path int true "Step ID"
// @Param step body service.UpdatePlanStepRequest true "Fields to change"
// @Success 200 {object} service.PlanStepResponse "Successfully updated step"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Step not found or not in your organization"
// @Security BearerAuth
// @Router /steps/{id} [put]
func (h *PlanStepHandler) UpdateStep(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "step")
	if !ok {
		return
	}

	var req service.UpdatePlanStepRequest
	if !bindJSON(c, &req) {
		return
	}

	step, err := h.service.Update(userID, id, &req)
	if err != nil {
		respondError(c, err, "update step")
		return
	}

	c.JSON(http.StatusOK, step)
}

// DeleteStep handles DELETE /steps/:id
// @Summary Delete a plan step
// @Description Delete a step and its session notes
// @Tags steps
// @Param id path int true "Step ID"
// @Success 204 "Step deleted"
// @Failure 400 {object} ErrorResponse "Invalid step ID"
// @Failure 404 {object} ErrorResponse "Step not found or not in your organization"
// @Security BearerAuth
// @Router /steps/{id} [delete]
func (h *PlanStepHandler) DeleteStep(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "step")
	if !ok {
		return
	}

	if err := h.service.Delete(userID, id); err != nil {
		respondError(c, err, "delete step")
		return
	}

	c.Status(http.StatusNoContent)
}

// CompleteStep handles POST /steps/:id/complete
// @Summary Mark a plan step complete
// @Description Mark a step complete. Repeating the call leaves it complete.
// @Tags steps
// @Produce json
// @Param id path int true "Step ID"
// @Success 200 {object} service.PlanStepResponse "Completed step"
// @Failure 400 {object} ErrorResponse "Invalid step ID"
// @Failure 404 {object} ErrorResponse "Step not found or not in your organization"
// @Security BearerAuth
// @Router /steps/{id}/complete [post]
func (h *PlanStepHandler) CompleteStep(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "step")
	if !ok {
		return
	}

	step, err := h.service.MarkComplete(userID, id)
	if err != nil {
		respondError(c, err, "complete step")
		return
	}

	c.JSON(http.StatusOK, step)
}

// AddNote handles POST /steps/:id/notes
// @Summary Add a session note
// @Tags steps
// @Accept json
// @Produce json
// @Param id path int true "Step ID"
// @Param note body service.StepSessionNoteRequest true "Session note"
// @Success 201 {object} service.StepSessionNoteResponse "Successfully created note"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Step not found or not in your organization"
// @Security BearerAuth
// @Router /steps/{id}/notes [post]
func (h *PlanStepHandler) AddNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	stepID, ok := pathID(c, "id", "step")
	if !ok {
		return
	}

	var req service.StepSessionNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.service.AddNote(userID, stepID, &req)
	if err != nil {
		respondError(c, err, "create session note")
		return
	}

	c.JSON(http.StatusCreated, note)
}

// ListNotes handles GET /steps/:id/notes
// @Summary List session notes
// @Description List the notes of a step, oldest first
// @Tags steps
// @Produce json
// @Param id path int true "Step ID"
// @Success 200 {array} service.StepSessionNoteResponse "Notes of the step"
// @Failure 400 {object} ErrorResponse "Invalid step ID"
// @Failure 404 {object} ErrorResponse "Step not found or not in your organization"
// @Security BearerAuth
// @Router /steps/{id}/notes [get]
func (h *PlanStepHandler) ListNotes(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	stepID, ok := pathID(c, "id", "step")
	if !ok {
		return
	}

	notes, err := h.service.ListNotes(userID, stepID)
	if err != nil {
		respondError(c, err, "list session notes")
		return
	}

	c.JSON(http.StatusOK, notes)
}

// UpdateNote handles PUT /steps/notes/:id
// @Summary Update a session note
// @Tags steps
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param note body service.StepSessionNoteRequest true "Fields to change"
// @Success 200 {object} service.StepSessionNoteResponse "Successfully updated note"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Session note not found or not in your organization"
// @Security BearerAuth
// @Router /steps/notes/{id} [put]
func (h *PlanStepHandler) UpdateNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	noteID, ok := pathID(c, "id", "note")
	if !ok {
		return
	}

	var req service.StepSessionNoteRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.service.UpdateNote(userID, noteID, &req)
	if err != nil {
		respondError(c, err, "update session note")
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote handles DELETE /steps/notes/:id
// @Summary Delete a session note
// @Tags steps
// @Param id path int true "Note ID"
// @Success 204 "Note deleted"
// @Failure 400 {object} ErrorResponse "Invalid note ID"
// @Failure 404 {object} ErrorResponse "Session note not found or not in your organization"
// @Security BearerAuth
// @Router /steps/notes/{id} [delete]
func (h *PlanStepHandler) DeleteNote(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	noteID, ok := pathID(c, "id", "note")
	if !ok {
		return
	}

	if err := h.service.DeleteNote(userID, noteID); err != nil {
		respondError(c, err, "delete session note")
		return
	}

	c.Status(http.StatusNoContent)
}
