package reviews

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/integrations/craftopia"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeBackend struct {
	order      *domain.Reservation
	orderErr   error
	reviews    []*domain.Review
	reviewsErr error
	created    *craftopia.CreateReviewRequest
	createErr  error
}

func (f *fakeBackend) CreateReview(_ context.Context, _ string, req *craftopia.CreateReviewRequest) (*domain.Review, error) {
	f.created = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Review{
		ID:            "rev-1",
		CustomerID:    "cust-1",
		ArtisanID:     req.ArtisanID,
		ReservationID: req.ReservationID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		CreatedAt:     time.Now(),
	}, nil
}

func (f *fakeBackend) GetArtisanReviews(_ context.Context, _ string) ([]*domain.Review, error) {
	return f.reviews, f.reviewsErr
}

func (f *fakeBackend) GetOrder(_ context.Context, _, _ string) (*domain.Reservation, error) {
	return f.order, f.orderErr
}

func (f *fakeBackend) GetUserOrders(_ context.Context, _ string) ([]*domain.Reservation, error) {
	return []*domain.Reservation{f.order}, nil
}

func customerSession() *domain.Session {
	return &domain.Session{ID: "s1", Token: "tok", Role: domain.RoleCustomer, UserID: "cust-1"}
}

func completedOrder() *domain.Reservation {
	return &domain.Reservation{
		ID:         "res-1",
		CustomerID: "cust-1",
		ArtisanID:  "art-1",
		Status:     domain.StatusCompleted,
	}
}

func TestCreateReview_Success(t *testing.T) {
	backend := &fakeBackend{order: completedOrder()}
	svc := NewService(backend, nopLogger{})

	result, err := svc.CreateReview(context.Background(), customerSession(), "res-1", 5, "excellent work")
	require.NoError(t, err)
	assert.Equal(t, "rev-1", result.ID)
	assert.Equal(t, 5, result.Rating)

	require.NotNil(t, backend.created)
	assert.Equal(t, "art-1", backend.created.ArtisanID)
	assert.Equal(t, "res-1", backend.created.ReservationID)
}

func TestCreateReview_RatingBounds(t *testing.T) {
	backend := &fakeBackend{order: completedOrder()}
	svc := NewService(backend, nopLogger{})

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.CreateReview(context.Background(), customerSession(), "res-1", rating, "comment")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating=%d", rating)
	}
	assert.Nil(t, backend.created)
}

func TestCreateReview_CommentRequired(t *testing.T) {
	backend := &fakeBackend{order: completedOrder()}
	svc := NewService(backend, nopLogger{})

	for _, comment := range []string{"", "   ", "\n\t"} {
		_, err := svc.CreateReview(context.Background(), customerSession(), "res-1", 4, comment)
		assert.ErrorIs(t, err, ErrCommentRequired)
	}
	assert.Nil(t, backend.created)
}

func TestCreateReview_CommentTooLong(t *testing.T) {
	backend := &fakeBackend{order: completedOrder()}
	svc := NewService(backend, nopLogger{})

	_, err := svc.CreateReview(context.Background(), customerSession(), "res-1", 4,
		strings.Repeat("x", domain.MaxCommentLength+1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateReview_NotCompleted(t *testing.T) {
	order := completedOrder()
	order.Status = domain.StatusAccepted
	backend := &fakeBackend{order: order}
	svc := NewService(backend, nopLogger{})

	_, err := svc.CreateReview(context.Background(), customerSession(), "res-1", 4, "comment")
	assert.ErrorIs(t, err, ErrNotCompleted)
	assert.Nil(t, backend.created)
}

func TestCreateReview_AlreadyReviewed(t *testing.T) {
	order := completedOrder()
	order.HasReview = true
	backend := &fakeBackend{order: order}
	svc := NewService(backend, nopLogger{})

	_, err := svc.CreateReview(context.Background(), customerSession(), "res-1", 4, "comment")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
	assert.Nil(t, backend.created)
}

func TestCreateReview_DuplicateDetectedByBackend(t *testing.T) {
	// Свой флаг прошел, но backend вернул конфликт
	backend := &fakeBackend{order: completedOrder(), createErr: &craftopia.APIError{StatusCode: 409}}
	svc := NewService(backend, nopLogger{})

	_, err := svc.CreateReview(context.Background(), customerSession(), "res-1", 4, "comment")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreateReview_ForeignReservation(t *testing.T) {
	order := completedOrder()
	order.CustomerID = "someone-else"
	backend := &fakeBackend{order: order}
	svc := NewService(backend, nopLogger{})

	_, err := svc.CreateReview(context.Background(), customerSession(), "res-1", 4, "comment")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreateReview_ArtisanDenied(t *testing.T) {
	backend := &fakeBackend{order: completedOrder()}
	svc := NewService(backend, nopLogger{})

	artisan := &domain.Session{ID: "s2", Token: "tok", Role: domain.RoleArtisan, UserID: "art-1"}
	_, err := svc.CreateReview(context.Background(), artisan, "res-1", 4, "comment")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetArtisanReviews_AverageRating(t *testing.T) {
	backend := &fakeBackend{reviews: []*domain.Review{
		{ID: "r1", Rating: 5},
		{ID: "r2", Rating: 4},
		{ID: "r3", Rating: 3},
	}}
	svc := NewService(backend, nopLogger{})

	result, err := svc.GetArtisanReviews(context.Background(), "art-1")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Total)
	assert.InDelta(t, 4.0, result.AverageRating, 0.001)
}

func TestGetArtisanReviews_Empty(t *testing.T) {
	svc := NewService(&fakeBackend{}, nopLogger{})

	result, err := svc.GetArtisanReviews(context.Background(), "art-1")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Zero(t, result.AverageRating)
	assert.NotNil(t, result.Reviews)
}

func TestReviewableReservations(t *testing.T) {
	backend := &fakeBackend{order: completedOrder()}
	svc := NewService(backend, nopLogger{})

	reviewable, err := svc.ReviewableReservations(context.Background(), customerSession())
	require.NoError(t, err)
	assert.Len(t, reviewable, 1)

	backend.order.HasReview = true
	reviewable, err = svc.ReviewableReservations(context.Background(), customerSession())
	require.NoError(t, err)
	assert.Empty(t, reviewable)
}
