package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() Event {
	return Event{
		ID:       "evt_001",
		Title:    "Phoenix Manufacturing Job Fair",
		Category: "job-fair",
		Format:   FormatInPerson,
		State:    "AZ",
		Date:     NewDate(2025, time.March, 10),
		Capacity: 200,
	}
}

func TestJob_Validate_RequiredFields(t *testing.T) {
	job := Job{
		ID:       "job_001",
		Title:    "Process Technician",
		Category: "manufacturing",
		Format:   FormatInPerson,
		State:    "AZ",
	}
	assert.NoError(t, job.Validate())

	missing := job
	missing.Category = ""
	assert.Error(t, missing.Validate())

	missing = job
	missing.State = ""
	assert.Error(t, missing.Validate())
}

func TestEvent_Validate_EndDateOrdering(t *testing.T) {
	event := validEvent()
	assert.NoError(t, event.Validate())

	end := NewDate(2025, time.March, 12)
	event.EndDate = &end
	assert.NoError(t, event.Validate())

	// Same-day end is legal; only an earlier end date is rejected.
	sameDay := event.Date
	event.EndDate = &sameDay
	assert.NoError(t, event.Validate())

	before := NewDate(2025, time.March, 9)
	event.EndDate = &before
	err := event.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "end_date")
}

func TestEvent_Validate_NegativeCounts(t *testing.T) {
	event := validEvent()
	event.Attendees = -1
	assert.Error(t, event.Validate())

	event = validEvent()
	event.Capacity = -5
	assert.Error(t, event.Validate())
}

func TestProviderProgram_Validate_StatusVocabulary(t *testing.T) {
	program := ProviderProgram{
		ID:       "prg_001",
		Title:    "Welding Certificate",
		Provider: "Desert Tech Institute",
		Type:     "certificate",
		Format:   FormatHybrid,
		State:    "AZ",
	}
	assert.NoError(t, program.Validate(), "absent status is legal")

	program.Status = StatusPending
	assert.NoError(t, program.Validate())

	program.Status = "in-review"
	assert.Error(t, program.Validate())
}

func TestReviewStatus_PublishedKindsReportEmpty(t *testing.T) {
	assert.Empty(t, Job{}.ReviewStatus())
	assert.Empty(t, Event{}.ReviewStatus())
	assert.Empty(t, TrainingProgram{}.ReviewStatus())
	assert.Equal(t, StatusApproved, ProviderProgram{Status: StatusApproved}.ReviewStatus())
}

func TestEvent_JSONDecoding(t *testing.T) {
	jsonInput := `{
		"id": "evt_100",
		"title": "Clean Energy Webinar",
		"category": "webinar",
		"industries": ["clean-energy"],
		"audiences": ["job-seekers", "veterans"],
		"format": "virtual",
		"state": "National",
		"date": "2025-04-01",
		"end_date": "2025-04-02",
		"capacity": 500,
		"attendees": 120
	}`

	var event Event
	require.NoError(t, json.Unmarshal([]byte(jsonInput), &event))
	assert.Equal(t, "evt_100", event.ID)
	assert.Equal(t, "webinar", event.Category)
	assert.Equal(t, []string{"job-seekers", "veterans"}, event.Audiences)
	assert.Equal(t, StateNational, event.State)
	assert.Equal(t, "2025-04-01", event.Date.String())
	require.NotNil(t, event.EndDate)
	assert.Equal(t, "2025-04-02", event.EndDate.String())
	assert.NoError(t, event.Validate())
}

func TestStateProfile_Validate_EmptyPathwayLevel(t *testing.T) {
	profile := StateProfile{
		State:    "AZ",
		Industry: "Semiconductor Manufacturing",
		Pathways: []PathwayLevel{
			{Level: "Entry", Roles: []PathwayRole{{Title: "Fab Operator"}}},
		},
	}
	assert.NoError(t, profile.Validate())

	profile.Pathways = append(profile.Pathways, PathwayLevel{Level: "Mid-career"})
	assert.Error(t, profile.Validate(), "a present level must list at least one role")
}

func TestNewID_Unique(t *testing.T) {
	a := NewID()
	b := NewID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
