package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
	"github.com/chorebank/chorebank/internal/ports"
)

// JobServiceOptions groups dependencies for JobService.
type JobServiceOptions struct {
	JobRepo core.JobRepository
	Images  ports.ObjectStore
}

// JobService orchestrates job template CRUD and template image uploads.
type JobService struct {
	jobs   core.JobRepository
	images ports.ObjectStore
}

// NewJobService constructs a new JobService.
func NewJobService(opts JobServiceOptions) *JobService {
	return &JobService{jobs: opts.JobRepo, images: opts.Images}
}

// Create creates a job template.
func (s *JobService) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	return s.jobs.Create(ctx, req)
}

// GetByID retrieves a job template by ID.
func (s *JobService) GetByID(ctx context.Context, id string) (*model.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

// List returns all job templates.
func (s *JobService) List(ctx context.Context) ([]*model.Job, error) {
	return s.jobs.List(ctx)
}

// Update updates a job template. Assignments made earlier keep the fields
// they copied.
func (s *JobService) Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error) {
	return s.jobs.Update(ctx, id, req)
}

// Delete removes a job template.
func (s *JobService) Delete(ctx context.Context, id string) (bool, error) {
	return s.jobs.Delete(ctx, id)
}

// UploadImageInput groups parameters for UploadImage.
type UploadImageInput struct {
	JobID       string
	ContentType string
	Body        io.Reader
}

// UploadImage stores a template image and records its public URL on the job.
func (s *JobService) UploadImage(ctx context.Context, in UploadImageInput) (*model.Job, error) {
	if s.images == nil {
		return nil, apperrors.Internal("image storage is not configured")
	}
	if _, err := s.jobs.GetByID(ctx, in.JobID); err != nil {
		return nil, err
	}

	key := imageKey("job", in.JobID, in.ContentType)
	url, err := s.images.Upload(ctx, ports.UploadInput{
		Key:         key,
		ContentType: in.ContentType,
		Body:        in.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("upload job image: %w", err)
	}

	return s.jobs.Update(ctx, in.JobID, model.UpdateJobRequest{ImageURL: &url})
}

// JobImage is a fetched template image ready to stream to the client.
type JobImage struct {
	Body        io.ReadCloser
	ContentType string
}

// FetchImage retrieves the stored template image. Serving through the API
// keeps the bucket private; only the public URL shape leaks.
func (s *JobService) FetchImage(ctx context.Context, jobID string) (*JobImage, error) {
	if s.images == nil {
		return nil, apperrors.Internal("image storage is not configured")
	}
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.ImageURL == nil || *job.ImageURL == "" {
		return nil, apperrors.NotFound("job has no image")
	}

	key, ok := imageKeyFromURL(*job.ImageURL, "job")
	if !ok {
		return nil, apperrors.Internal("stored image URL is malformed")
	}
	body, err := s.images.Download(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("download job image: %w", err)
	}
	return &JobImage{Body: body, ContentType: imageContentType(key)}, nil
}

// imageKeyFromURL recovers the object key from a public URL. Keys always
// start with the kind segment, so the key is everything from that segment on.
func imageKeyFromURL(url, kind string) (string, bool) {
	marker := "/" + kind + "/"
	idx := strings.Index(url, marker)
	if idx < 0 {
		return "", false
	}
	return url[idx+1:], true
}

// imageContentType maps a stored key's extension back to its media type.
func imageContentType(key string) string {
	switch {
	case strings.HasSuffix(key, ".jpg"):
		return "image/jpeg"
	case strings.HasSuffix(key, ".png"):
		return "image/png"
	case strings.HasSuffix(key, ".webp"):
		return "image/webp"
	case strings.HasSuffix(key, ".gif"):
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

// imageKey builds a collision-free object key. The random suffix makes
// re-uploads new objects, so stale CDN caches never serve the old image.
func imageKey(kind, id, contentType string) string {
	ext := ".bin"
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	case "image/gif":
		ext = ".gif"
	}
	return kind + "/" + id + "/" + uuid.NewString() + ext
}
