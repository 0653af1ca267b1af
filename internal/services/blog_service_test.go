package services

import (
	"context"
	"testing"

	"nexivo_backend/internal/models"
	"nexivo_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogReactions(t *testing.T) {
	db := newTestDB(t)
	c := newTestContainer(t, newFakeEmailProvider())
	ctx := context.Background()

	blog, err := c.Blogs.Create(ctx, db, &dto.CreateBlogRequest{
		Title:   "Release notes",
		Content: "We shipped things.",
		Author:  "Team",
	}, nil, "", "")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = c.Blogs.React(ctx, db, blog.ID, "like")
		require.NoError(t, err)
	}
	_, err = c.Blogs.React(ctx, db, blog.ID, "love")
	require.NoError(t, err)
	updated, err := c.Blogs.React(ctx, db, blog.ID, "curious")
	require.NoError(t, err)

	assert.Equal(t, int64(3), updated.Likes)
	assert.Equal(t, int64(1), updated.Loves)
	assert.Equal(t, int64(1), updated.Curious)
	assert.Equal(t, int64(0), updated.Celebrates)

	_, err = c.Blogs.React(ctx, db, blog.ID, "angry")
	assert.Error(t, err, "only the fixed reaction kinds are accepted")

	_, err = c.Blogs.React(ctx, db, "00000000-0000-0000-0000-000000000000", "like")
	assert.Error(t, err)
}

func TestBlogBroadcastSkipsFailedRecipients(t *testing.T) {
	db := newTestDB(t)
	provider := newFakeEmailProvider()
	c := newTestContainer(t, provider)
	ctx := context.Background()

	for _, addr := range []string{"a@example.com", "bad@example.com", "c@example.com"} {
		_, _, err := c.Subscribers.Subscribe(ctx, db, addr)
		require.NoError(t, err)
	}
	provider.failTo["bad@example.com"] = true
	before := provider.count()

	blog, err := c.Blogs.Create(ctx, db, &dto.CreateBlogRequest{
		Title:   "Fan-out check",
		Content: "Body",
		Author:  "Team",
	}, nil, "", "")
	require.NoError(t, err)
	require.NotEmpty(t, blog.ID)

	// One dead address never blocks the rest of the list, and the
	// article itself is stored regardless.
	assert.Len(t, provider.sentTo("a@example.com"), 2) // welcome + new_blog
	assert.Len(t, provider.sentTo("c@example.com"), 2)
	assert.Empty(t, provider.sentTo("bad@example.com"))
	assert.Equal(t, before+2, provider.count())

	var stored models.Blog
	require.NoError(t, db.First(&stored, "id = ?", blog.ID).Error)
}

func TestBlogUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	c := newTestContainer(t, newFakeEmailProvider())
	ctx := context.Background()

	blog, err := c.Blogs.Create(ctx, db, &dto.CreateBlogRequest{
		Title:   "Draft",
		Content: "v1",
		Author:  "Team",
	}, nil, "", "")
	require.NoError(t, err)

	updated, err := c.Blogs.Update(ctx, db, blog.ID, &dto.UpdateBlogRequest{Content: "v2"}, nil, "", "")
	require.NoError(t, err)
	assert.Equal(t, "Draft", updated.Title)
	assert.Equal(t, "v2", updated.Content)

	require.NoError(t, c.Blogs.Delete(ctx, db, blog.ID))
	_, err = c.Blogs.Get(db, blog.ID)
	assert.Error(t, err)
}
