package assessment

import (
	"context"
	"fmt"
	"mime"
	"path"
	"regexp"
	"slices"
	"strings"

	"vantage/pkg/domain"
	"vantage/pkg/formschema"
	"vantage/pkg/logger"
	"vantage/pkg/metrics"
	"vantage/pkg/objectstore"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const bytesPerMB = 1024 * 1024

var sectionPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ResponsePrefix is the object key prefix of every MOV of a response.
func ResponsePrefix(assessmentID domain.AssessmentID, responseID domain.ResponseID) string {
	return fmt.Sprintf("assessments/%d/responses/%d/", assessmentID, responseID)
}

func (s service) checkUpload(params UploadParams) (string, error) {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(params.Filename), `\`, "/"))
	if name == "" || name == "." || name == "/" {
		return "", serrors.With(serrors.ErrBadRequest, "Filename is required")
	}

	ext := strings.ToLower(path.Ext(name))
	if len(s.options.AllowedExtensions) > 0 && !slices.Contains(s.options.AllowedExtensions, ext) {
		return "", serrors.With(serrors.ErrBadRequest,
			"File type %q is not allowed. Allowed types: %s", ext, strings.Join(s.options.AllowedExtensions, ", "))
	}

	if _, _, err := mime.ParseMediaType(params.ContentType); err != nil {
		return "", serrors.With(serrors.ErrBadRequest, "Invalid content type")
	}

	if params.Size <= 0 {
		return "", serrors.With(serrors.ErrBadRequest, "File size must be positive")
	}
	if s.options.MaxFileSize > 0 && params.Size > s.options.MaxFileSize {
		return "", serrors.With(serrors.ErrBadRequest,
			"File size exceeds the maximum of %d MB", s.options.MaxFileSize/bytesPerMB)
	}

	if params.Section != "" && !sectionPattern.MatchString(params.Section) {
		return "", serrors.With(serrors.ErrBadRequest, "Invalid upload section")
	}

	return name, nil
}

func (s service) UploadURL(ctx context.Context,
	user domain.User,
	responseID domain.ResponseID,
	params UploadParams) (*Upload, error) {
	name, err := s.checkUpload(params)
	if err != nil {
		return nil, err
	}

	r, _, err := s.ownResponse(ctx, user, responseID)
	if err != nil {
		return nil, err
	}

	filename := uuid.NewString() + "-" + name
	key := ResponsePrefix(r.AssessmentID, r.ID)
	if params.Section != "" {
		key += params.Section + "/"
	}
	key += filename

	req, err := s.store.PresignPut(ctx, key, params.ContentType, params.Size)
	if err != nil {
		return nil, fmt.Errorf("could not presign upload: %w", err)
	}

	return &Upload{Request: req, Filename: filename, StoragePath: key}, nil
}

// refreshCompletion recomputes the completion of r against its current MOVs
// and touches the parent assessment.
func refreshCompletion(ctx context.Context, tx storage.AllStorage, r *domain.AssessmentResponse) error {
	indicator, err := tx.IndicatorByID(ctx, r.IndicatorID)
	if err != nil {
		return fmt.Errorf("could not get indicator: %w", err)
	}
	movs, err := tx.MOVsByResponses(ctx, r.ID)
	if err != nil {
		return fmt.Errorf("could not get movs: %w", err)
	}

	var schema domain.FormSchema
	if indicator != nil {
		schema = indicator.FormSchema
	}
	completed := formschema.IsComplete(schema, r.ResponseData, movs)
	if _, err = tx.UpdateResponse(ctx, r.ID, storage.ResponseUpdates{IsCompleted: &completed}); err != nil {
		return fmt.Errorf("could not update response completion: %w", err)
	}

	if _, err = tx.UpdateAssessment(ctx, r.AssessmentID, storage.AssessmentUpdates{}); err != nil {
		return fmt.Errorf("could not touch assessment: %w", err)
	}

	return nil
}

func (s service) CreateMOV(ctx context.Context,
	user domain.User,
	responseID domain.ResponseID,
	params MOVParams) (*domain.MOV, error) {
	if params.ResponseID != 0 && params.ResponseID != responseID {
		return nil, serrors.With(serrors.ErrBadRequest, "MOV response_id does not match URL parameter")
	}

	r, _, err := s.ownResponse(ctx, user, responseID)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(params.StoragePath, ResponsePrefix(r.AssessmentID, r.ID)) {
		return nil, serrors.With(serrors.ErrBadRequest, "Storage path does not belong to this response")
	}

	var mov *domain.MOV
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		mov, err = tx.StoreMOV(ctx, domain.MOV{
			Filename:         params.Filename,
			OriginalFilename: params.OriginalFilename,
			FileSize:         params.FileSize,
			ContentType:      params.ContentType,
			StoragePath:      params.StoragePath,
			Status:           domain.MOVStatusUploaded,
			ResponseID:       r.ID,
		})
		if err != nil {
			return fmt.Errorf("could not store mov: %w", err)
		}

		return refreshCompletion(ctx, tx, r)
	})
	if err != nil {
		return nil, err
	}

	metrics.MOVUploads.WithLabelValues(domain.RoleBLGUUser.String()).Inc()

	return mov, nil
}

func (s service) ownMOV(ctx context.Context,
	user domain.User,
	id domain.MOVID) (*domain.MOV, *domain.AssessmentResponse, error) {
	mov, err := s.storage.MOVByID(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get mov: %w", err)
	}
	if mov == nil {
		return nil, nil, serrors.With(serrors.ErrNotFound, "MOV not found")
	}

	r, _, err := s.ownResponse(ctx, user, mov.ResponseID)
	if err != nil {
		if serrors.KindOf(err) == serrors.ErrForbidden {
			return nil, nil, serrors.With(serrors.ErrForbidden, "Access denied. MOV does not belong to your assessment")
		}

		return nil, nil, err
	}

	return mov, r, nil
}

func (s service) DeleteMOV(ctx context.Context, user domain.User, id domain.MOVID) error {
	mov, r, err := s.ownMOV(ctx, user, id)
	if err != nil {
		return err
	}

	if err = s.store.Delete(ctx, mov.StoragePath); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "Failed to delete MOV file from storage")
	}

	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		deleted, err := tx.DeleteMOV(ctx, id)
		if err != nil {
			return fmt.Errorf("could not delete mov: %w", err)
		}
		if deleted == nil {
			return serrors.With(serrors.ErrNotFound, "MOV not found")
		}

		return refreshCompletion(ctx, tx, r)
	})
	if err != nil {
		return err
	}

	logger.Info(ctx, "mov deleted",
		zap.Int64("mov_id", int64(id)),
		zap.String("storage_path", mov.StoragePath))

	return nil
}

func (s service) DownloadURL(ctx context.Context,
	user domain.User,
	id domain.MOVID) (*objectstore.PresignedRequest, error) {
	mov, _, err := s.ownMOV(ctx, user, id)
	if err != nil {
		return nil, err
	}

	req, err := s.store.PresignGet(ctx, mov.StoragePath, mov.OriginalFilename)
	if err != nil {
		return nil, fmt.Errorf("could not presign download: %w", err)
	}

	return &req, nil
}
