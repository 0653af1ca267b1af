package services

import (
	"context"
	"testing"

	"nexivo_backend/internal/models"
	"nexivo_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollmentLifecycle(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	service, err := c.Catalog.Create(ctx, db, &dto.CreateServiceRequest{
		Name:        "Corporate Website",
		Description: "Design and build",
		Category:    string(models.ServiceCategoryWebsite),
		Items:       []string{"Design", "CMS"},
	}, nil, "", "", "")
	require.NoError(t, err)

	enrollment, err := c.Enrollments.Create(ctx, db, &dto.CreateEnrollmentRequest{
		ServiceID:     service.ID,
		Name:          "Acme Ltd",
		Email:         "cto@acme.example",
		Phone:         "+100200300",
		SubmitterKind: "organization",
		CompanyName:   "Acme Ltd",
		CompanyType:   "LLC",
		Employees:     "50-100",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusPending, enrollment.Status)
	assert.Equal(t, "Corporate Website", enrollment.ServiceName, "service name is frozen at submission time")

	// Both the admin and the submitter hear about the new enrollment.
	require.Len(t, provider.sentTo("admin@example.com"), 1)
	require.Len(t, provider.sentTo("cto@acme.example"), 1)
	assert.Equal(t, "enrollment_confirmation", provider.sentTo("cto@acme.example")[0].Template)

	// "reviewed" is internal; the submitter is not mailed.
	_, err = c.Enrollments.UpdateStatus(ctx, db, enrollment.ID, "reviewed")
	require.NoError(t, err)
	assert.Len(t, provider.sentTo("cto@acme.example"), 1)

	// A decision is.
	updated, err := c.Enrollments.UpdateStatus(ctx, db, enrollment.ID, "accepted")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionStatusAccepted, updated.Status)
	mails := provider.sentTo("cto@acme.example")
	require.Len(t, mails, 2)
	assert.Equal(t, "status_update", mails[1].Template)
	assert.Equal(t, "accepted", mails[1].Data["Status"])
}

func TestEnrollmentRejectsBadInput(t *testing.T) {
	db := newTestDB(t)
	c := newTestContainer(t, newFakeEmailProvider())
	ctx := context.Background()

	_, err := c.Enrollments.Create(ctx, db, &dto.CreateEnrollmentRequest{
		ServiceID:     "00000000-0000-0000-0000-000000000000",
		Name:          "Nobody",
		Email:         "n@example.com",
		SubmitterKind: "individual",
	})
	assert.Error(t, err, "enrolling in a missing service fails")

	service, err := c.Catalog.Create(ctx, db, &dto.CreateServiceRequest{
		Name:     "AI Consulting",
		Category: string(models.ServiceCategoryAIML),
	}, nil, "", "", "")
	require.NoError(t, err)

	enrollment, err := c.Enrollments.Create(ctx, db, &dto.CreateEnrollmentRequest{
		ServiceID:     service.ID,
		Name:          "Jane",
		Email:         "jane@example.com",
		SubmitterKind: "individual",
		Profession:    "Engineer",
	})
	require.NoError(t, err)

	_, err = c.Enrollments.UpdateStatus(ctx, db, enrollment.ID, "approved-ish")
	assert.Error(t, err, "unknown status values are rejected")
}

func TestEnrollmentSurvivesMailOutage(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	provider.failAll = true
	c := newTestContainer(t, provider)
	ctx := context.Background()

	service, err := c.Catalog.Create(ctx, db, &dto.CreateServiceRequest{
		Name:     "Mobile App",
		Category: string(models.ServiceCategoryMobileApp),
	}, nil, "", "", "")
	require.NoError(t, err)

	// The record is the source of truth; mail failures stay invisible.
	enrollment, err := c.Enrollments.Create(ctx, db, &dto.CreateEnrollmentRequest{
		ServiceID:     service.ID,
		Name:          "Jane",
		Email:         "jane@example.com",
		SubmitterKind: "individual",
	})
	require.NoError(t, err)

	var stored models.Enrollment
	require.NoError(t, db.First(&stored, "id = ?", enrollment.ID).Error)
}
