package logger

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithContext(t *testing.T) {
	l := WithContext(context.Background())
	assert.Equal(t, "unknown", l.Data["user"])
	assert.NotContains(t, l.Data, "request_id")

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set("email", "trainer@example.com")
	c.Set("request_id", "req-1")

	l = FromGinContext(c)
	assert.Equal(t, "trainer@example.com", l.Data["user"])
	assert.Equal(t, "req-1", l.Data["request_id"])

	l = l.WithFields(map[string]interface{}{"animal_id": 3}).WithField("plan_id", 4)
	assert.Equal(t, 3, l.Data["animal_id"])
	assert.Equal(t, 4, l.Data["plan_id"])
	assert.Equal(t, "trainer@example.com", l.Data["user"])
}

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())

	Setup("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("not-a-level")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
