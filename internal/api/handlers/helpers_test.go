package handlers

import (
	"trainit-backend/internal/testutils"

	"github.com/gin-gonic/gin"
)

const testUserID uint = 1

// newAuthenticatedHTTPSuite returns a router whose requests run as testUserID
func newAuthenticatedHTTPSuite() *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Set("email", "trainer@example.com")
		c.Next()
	})
	return httpSuite
}
