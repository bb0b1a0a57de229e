package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	catalogRepo "github.com/craftopia-app/Craftopia-ReservationService/internal/infra/storage/catalog"
	"github.com/craftopia-app/Craftopia-ReservationService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	craftsmen []*domain.Craftsman
	crafts    []*domain.Craft
	err       error
	gotFilter domain.CraftsmenFilter
}

func (f *fakeRepo) ListCraftsmen(_ context.Context, filter domain.CraftsmenFilter) ([]*domain.Craftsman, error) {
	f.gotFilter = filter
	return f.craftsmen, f.err
}

func (f *fakeRepo) GetCraftsmanByID(_ context.Context, id int64) (*domain.Craftsman, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, c := range f.craftsmen {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, catalogRepo.ErrCraftsmanNotFound
}

func (f *fakeRepo) ListCrafts(_ context.Context) ([]*domain.Craft, error) {
	return f.crafts, f.err
}

func TestListCraftsmen(t *testing.T) {
	repo := &fakeRepo{craftsmen: []*domain.Craftsman{
		{ID: 1, Name: "Anna Weber", Craft: "pottery", City: "Leipzig", Rating: 4.8},
	}}
	svc := NewService(repo, nopLogger{})

	filter := domain.CraftsmenFilter{Craft: ptr.Ptr("pottery"), MinRating: ptr.Ptr(4.0)}
	resp, err := svc.ListCraftsmen(context.Background(), filter)
	require.NoError(t, err)
	require.Len(t, resp.Craftsmen, 1)
	assert.Equal(t, "Anna Weber", resp.Craftsmen[0].Name)

	// Фильтр передается в репозиторий без изменений
	assert.Equal(t, "pottery", *repo.gotFilter.Craft)
}

func TestListCraftsmen_MinRatingBounds(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	for _, rating := range []float64{-0.5, 5.1} {
		_, err := svc.ListCraftsmen(context.Background(), domain.CraftsmenFilter{MinRating: ptr.Ptr(rating)})
		assert.ErrorIs(t, err, ErrInvalidInput, "minRating=%v", rating)
	}
}

func TestGetCraftsman(t *testing.T) {
	repo := &fakeRepo{craftsmen: []*domain.Craftsman{{ID: 7, Name: "Jonas Brandt"}}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetCraftsman(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Jonas Brandt", resp.Name)

	_, err = svc.GetCraftsman(context.Background(), 99)
	assert.ErrorIs(t, err, ErrCraftsmanNotFound)
}

func TestListCrafts(t *testing.T) {
	repo := &fakeRepo{crafts: []*domain.Craft{
		{ID: 1, Name: "Dining table", BasePrice: 900},
		{ID: 2, Name: "Ceramic vase", BasePrice: 120},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.ListCrafts(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Crafts, 2)
}

func TestRepositoryErrorsWrappedAsInternal(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	svc := NewService(repo, nopLogger{})

	_, err := svc.ListCraftsmen(context.Background(), domain.CraftsmenFilter{})
	assert.ErrorIs(t, err, ErrInternal)

	_, err = svc.ListCrafts(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
