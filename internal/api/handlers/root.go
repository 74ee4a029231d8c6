package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WelcomeMessage is returned by the API root
const WelcomeMessage = "Welcome to TrainIt API - Animal Training Plan Tracker"

// Root handles GET /
// @Summary API root
// @Tags health
// @Produce json
// @Success 200 {object} MessageResponse "Welcome message"
// @Router / [get]
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, MessageResponse{Message: WelcomeMessage})
}
