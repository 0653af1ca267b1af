package services

import (
	"context"
	"testing"

	"nexivo_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	first, created, err := c.Subscribers.Subscribe(ctx, db, "reader@example.com")
	require.NoError(t, err)
	assert.True(t, created)
	require.Len(t, provider.sentTo("reader@example.com"), 1)
	assert.Equal(t, "welcome", provider.sentTo("reader@example.com")[0].Template)

	// Subscribing again is a no-op: same record, no second welcome.
	second, created, err := c.Subscribers.Subscribe(ctx, db, "reader@example.com")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, provider.sentTo("reader@example.com"), 1)

	list, err := c.Subscribers.List(db)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSubscribeSurvivesWelcomeFailure(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	provider.failAll = true
	c := newTestContainer(t, provider)

	_, _, err := c.Subscribers.Subscribe(context.Background(), db, "reader@example.com")
	require.NoError(t, err, "the welcome mail is best effort")

	list, err := c.Subscribers.List(db)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestContactSendIsCritical(t *testing.T) {
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	req := &dto.ContactRequest{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Subject: "Question",
		Message: "How much does a website cost?",
	}
	require.NoError(t, c.Contact.Send(ctx, req))
	mails := provider.sentTo("admin@example.com")
	require.Len(t, mails, 1)
	assert.Equal(t, "contact", mails[0].Template)

	// There is no stored fallback, so a failed send must surface.
	provider.failAll = true
	assert.Error(t, c.Contact.Send(ctx, req))
}
