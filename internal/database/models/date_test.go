package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		d := NewDate(time.Date(2024, 3, 9, 17, 45, 0, 0, time.UTC))
		out, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2024-03-09"`, string(out))
	})

	t.Run("unmarshal date", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-09"`), &d))
		assert.Equal(t, "2024-03-09", d.String())
	})

	t.Run("unmarshal midnight timestamp", func(t *testing.T) {
		var d Date
		require.NoError(t, json.Unmarshal([]byte(`"2024-03-09T00:00:00Z"`), &d))
		assert.Equal(t, "2024-03-09", d.String())
	})

	t.Run("unmarshal rejects time of day", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"2024-03-09T10:00:00Z"`), &d))
	})

	t.Run("unmarshal rejects garbage", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &d))
	})

	t.Run("null pointer stays nil", func(t *testing.T) {
		var payload struct {
			StartedDate *Date `json:"started_date"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"started_date": null}`), &payload))
		assert.Nil(t, payload.StartedDate)
	})
}

func TestDateScanAndValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan("2023-12-31"))
	assert.Equal(t, "2023-12-31", d.String())

	require.NoError(t, d.Scan([]byte("2023-11-30 00:00:00+00:00")))
	assert.Equal(t, "2023-11-30", d.String())

	require.NoError(t, d.Scan(time.Date(2022, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2022-01-02", d.String())

	assert.Error(t, d.Scan(42))

	v, err := NewDate(time.Date(2021, 6, 7, 0, 0, 0, 0, time.UTC)).Value()
	require.NoError(t, err)
	assert.Equal(t, "2021-06-07", v)
}

func TestAnimalSexIsValid(t *testing.T) {
	assert.True(t, AnimalSexMale.IsValid())
	assert.True(t, AnimalSexFemale.IsValid())
	assert.True(t, AnimalSexUnknown.IsValid())
	assert.False(t, AnimalSex("male").IsValid())
	assert.False(t, AnimalSex("").IsValid())
}

func TestPlanStepCompletion(t *testing.T) {
	step := &PlanStep{}
	assert.False(t, step.Completed())

	step.SetCompleted(true)
	assert.Equal(t, 1, step.IsComplete)
	assert.True(t, step.Completed())

	step.SetCompleted(false)
	assert.Equal(t, 0, step.IsComplete)
}
