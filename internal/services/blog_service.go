package services

import (
	"context"
	"errors"

	"nexivo_backend/internal/email"
	"nexivo_backend/internal/logger"
	"nexivo_backend/internal/models"
	"nexivo_backend/internal/repositories"
	"nexivo_backend/internal/services/dto"
	"nexivo_backend/internal/storage"
	"nexivo_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type BlogService struct {
	blogs       repositories.BlogRepository
	subscribers repositories.SubscriberRepository
	uploads     *storage.Gateway
	notifier    *NotificationService
	siteURL     string
}

func NewBlogService(blogs repositories.BlogRepository, subscribers repositories.SubscriberRepository, uploads *storage.Gateway, notifier *NotificationService, siteURL string) *BlogService {
	return &BlogService{
		blogs:       blogs,
		subscribers: subscribers,
		uploads:     uploads,
		notifier:    notifier,
		siteURL:     siteURL,
	}
}

func (s *BlogService) List(db *gorm.DB) ([]models.Blog, error) {
	blogs, err := s.blogs.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return blogs, nil
}

func (s *BlogService) Get(db *gorm.DB, id string) (*models.Blog, error) {
	blog, err := s.blogs.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("blog", "Blog not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return blog, nil
}

// Create publishes an article and tells every subscriber about it.
func (s *BlogService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateBlogRequest, thumbnail []byte, thumbName, thumbMime string) (*models.Blog, error) {
	blog := &models.Blog{
		Title:   req.Title,
		Content: req.Content,
		Author:  req.Author,
	}

	if len(thumbnail) > 0 {
		ref, err := s.uploads.Store(ctx, thumbnail, thumbName, thumbMime)
		if err != nil {
			return nil, apperrors.ErrUploadFailed(err, "Failed to upload blog thumbnail")
		}
		blog.Thumbnail = ref
	}

	if err := s.blogs.Create(db, blog); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.broadcastNew(ctx, db, blog)

	logger.CtxInfo(ctx, "blog created", "blog_id", blog.ID, "title", blog.Title)
	return blog, nil
}

func (s *BlogService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateBlogRequest, thumbnail []byte, thumbName, thumbMime string) (*models.Blog, error) {
	blog, err := s.Get(db, id)
	if err != nil {
		return nil, err
	}

	if req.Title != "" {
		blog.Title = req.Title
	}
	if req.Content != "" {
		blog.Content = req.Content
	}
	if req.Author != "" {
		blog.Author = req.Author
	}

	if len(thumbnail) > 0 {
		ref, err := s.uploads.Store(ctx, thumbnail, thumbName, thumbMime)
		if err != nil {
			return nil, apperrors.ErrUploadFailed(err, "Failed to upload blog thumbnail")
		}
		blog.Thumbnail = ref
	}

	if err := s.blogs.Update(db, blog); err != nil {
		return nil, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "blog updated", "blog_id", id)
	return blog, nil
}

func (s *BlogService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.blogs.Delete(db, id); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return apperrors.NewNotFoundError("blog", "Blog not found")
		}
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "blog deleted", "blog_id", id)
	return nil
}

// React bumps one of the fixed counters and returns the fresh article.
func (s *BlogService) React(ctx context.Context, db *gorm.DB, id, kind string) (*models.Blog, error) {
	if !models.ValidReactionKind(kind) {
		return nil, apperrors.ValidationError(map[string]string{"kind": "Unknown reaction kind"})
	}

	if err := s.blogs.IncrementReaction(db, id, models.ReactionKind(kind)); err != nil {
		if errors.Is(err, repositories.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("blog", "Blog not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return s.Get(db, id)
}

func (s *BlogService) broadcastNew(ctx context.Context, db *gorm.DB, blog *models.Blog) {
	subscribers, err := s.subscribers.FindAll(db)
	if err != nil {
		logger.CtxError(ctx, "failed to load subscribers for blog broadcast", "error", err.Error())
		return
	}
	if len(subscribers) == 0 {
		return
	}
	recipients := make([]string, 0, len(subscribers))
	for _, sub := range subscribers {
		recipients = append(recipients, sub.Email)
	}
	s.notifier.Broadcast(ctx, recipients, "New article: "+blog.Title, "new_blog", email.TemplateData{
		"ID":      blog.ID,
		"Title":   blog.Title,
		"Author":  blog.Author,
		"SiteURL": s.siteURL,
	})
}
