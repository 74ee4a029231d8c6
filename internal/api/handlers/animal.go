package handlers

import (
	"net/http"

	"trainit-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnimalHandler handles HTTP requests for animals
type AnimalHandler struct {
	service service.AnimalServiceInterface
}

// NewAnimalHandler creates a new animal handler
func NewAnimalHandler(service service.AnimalServiceInterface) *AnimalHandler {
	return &AnimalHandler{service: service}
}

// CreateAnimal handles POST /animals
// @Summary Create an animal
// @Description Create an animal owned by the caller inside the caller's organization
// @Tags animals
// @Accept json
// @Produce json
// @Param animal body service.AnimalRequest true "Animal data"
// @Success 201 {object} service.AnimalResponse "Successfully created animal"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Could not validate credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /animals [post]
func (h *AnimalHandler) CreateAnimal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req service.AnimalRequest
	if !bindJSON(c, &req) {
		return
	}

	animal, err := h.service.Create(userID, &req)
	if err != nil {
		respondError(c, err, "create animal")
		return
	}

	c.JSON(http.StatusCreated, animal)
}

// ListAnimals handles GET /animals
// @Summary List animals
// @Description List the animals of the caller's organization
// @Tags animals
// @Produce json
// @Param skip query int false "Number of items to skip" default(0)
// @Param limit query int false "Number of items to return (1-100)" default(100)
// @Success 200 {array} service.AnimalResponse "Animals of the organization"
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure 401 {object} ErrorResponse "Could not validate credentials"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /animals [get]
func (h *AnimalHandler) ListAnimals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	skip, limit, ok := pagination(c, service.DefaultAnimalLimit)
	if !ok {
		return
	}

	animals, err := h.service.List(userID, skip, limit)
	if err != nil {
		respondError(c, err, "list animals")
		return
	}

	c.JSON(http.StatusOK, animals)
}

// GetAnimal handles GET /animals/:id
// @Summary Get animal by ID
// @Tags animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} service.AnimalResponse "Successfully retrieved animal"
// @Failure 400 {object} ErrorResponse "Invalid animal ID"
// @Failure 404 {object} ErrorResponse "Animal not found or not in your organization"
// @Security BearerAuth
// @Router /animals/{id} [get]
func (h *AnimalHandler) GetAnimal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "animal")
	if !ok {
		return
	}

	animal, err := h.service.GetByID(userID, id)
	if err != nil {
		respondError(c, err, "get animal")
		return
	}

	c.JSON(http.StatusOK, animal)
}

// UpdateAnimal handles PUT /animals/:id
// @Summary Update an animal
// @Description Replace the name, species, sex, age and location of an animal
// @Tags animals
// @Accept json
// @Produce json
// @Param id path int true "Animal ID"
// @Param animal body service.AnimalRequest true "Animal data"
// @Success 200 {object} service.AnimalResponse "Successfully updated animal"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Animal not found or not in your organization"
// @Security BearerAuth
// @Router /animals/{id} [put]
func (h *AnimalHandler) UpdateAnimal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "animal")
	if !ok {
		return
	}

	var req service.AnimalRequest
	if !bindJSON(c, &req) {
		return
	}

	animal, err := h.service.Update(userID, id, &req)
	if err != nil {
		respondError(c, err, "update animal")
		return
	}

	c.JSON(http.StatusOK, animal)
}

// DeleteAnimal handles DELETE /animals/:id
// @Summary Delete an animal
// @Description Delete an animal together with its training plans
// @Tags animals
// @Produce json
// @Param id path int true "Animal ID"
// @Success 200 {object} MessageResponse "Animal deleted successfully"
// @Failure 400 {object} ErrorResponse "Invalid animal ID"
// @Failure 404 {object} ErrorResponse "Animal not found or not in your organization"
// @Security BearerAuth
// @Router /animals/{id} [delete]
func (h *AnimalHandler) DeleteAnimal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id", "animal")
	if !ok {
		return
	}

	if err := h.service.Delete(userID, id); err != nil {
		respondError(c, err, "delete animal")
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Animal deleted successfully"})
}
