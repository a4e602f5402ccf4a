package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeltrack/pixeltrack/internal/domain"
	"github.com/pixeltrack/pixeltrack/internal/domain/mocks"
)

func setupConversionServiceTest(t *testing.T) (*ConversionService, *mocks.MockConversionRepository, *mocks.MockDomainService) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockConversionRepository(ctrl)
	domains := mocks.NewMockDomainService(ctrl)

	svc := NewConversionService(repo, domains, newMockLogger(ctrl))
	svc.now = fixedClock
	return svc, repo, domains
}

func validConversion() *domain.Conversion {
	return &domain.Conversion{
		DomainID:   "d1",
		Title:      "Compra",
		Scope:      domain.ScopeSpecificPage,
		ScopeValue: strPtr("/obrigado"),
		Trigger:    domain.TriggerPageAccess,
		EventName:  "Purchase",
	}
}

func TestConversionService_CreateConversion(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults are applied", func(t *testing.T) {
		svc, repo, domains := setupConversionServiceTest(t)

		domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)
		repo.EXPECT().CreateConversion(ctx, gomock.Any()).Return(nil)

		c, err := svc.CreateConversion(ctx, "user-1", validConversion())
		require.NoError(t, err)
		assert.NotEmpty(t, c.ID)
		assert.Equal(t, "BRL", c.Currency)
		assert.True(t, c.IsActive())
		assert.Equal(t, fixedNow, c.CreatedAt)
	})

	t.Run("invalid regex scope", func(t *testing.T) {
		svc, _, _ := setupConversionServiceTest(t)

		c := validConversion()
		c.Scope = domain.ScopeRegex
		c.ScopeValue = strPtr("([")

		_, err := svc.CreateConversion(ctx, "user-1", c)
		assert.IsType(t, domain.ValidationError{}, err)
	})

	t.Run("foreign domain", func(t *testing.T) {
		svc, _, domains := setupConversionServiceTest(t)

		domains.EXPECT().Authorize(ctx, "d1", "user-2").Return(nil, domain.ErrForbidden)

		_, err := svc.CreateConversion(ctx, "user-2", validConversion())
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestConversionService_UpdateConversion(t *testing.T) {
	ctx := context.Background()
	svc, repo, domains := setupConversionServiceTest(t)

	created := fixedNow.AddDate(0, 0, -7)
	repo.EXPECT().GetConversion(ctx, "c1").Return(&domain.Conversion{ID: "c1", DomainID: "d1", CreatedAt: created}, nil)
	domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil)
	repo.EXPECT().UpdateConversion(ctx, gomock.Any()).Return(nil)

	c := validConversion()
	c.ID = "c1"
	c.DomainID = ""
	c.Active = boolPtr(false)

	updated, err := svc.UpdateConversion(ctx, "user-1", c)
	require.NoError(t, err)
	assert.Equal(t, "d1", updated.DomainID)
	assert.Equal(t, created, updated.CreatedAt)
	assert.False(t, updated.IsActive())
}

func TestConversionService_GetListDelete(t *testing.T) {
	ctx := context.Background()
	svc, repo, domains := setupConversionServiceTest(t)

	repo.EXPECT().GetConversion(ctx, "c1").Return(&domain.Conversion{ID: "c1", DomainID: "d1"}, nil).Times(2)
	domains.EXPECT().Authorize(ctx, "d1", "user-1").Return(&domain.Domain{ID: "d1"}, nil).Times(3)
	repo.EXPECT().ListConversionsByUser(ctx, "user-1").Return([]*domain.Conversion{{ID: "c1"}}, nil)
	repo.EXPECT().ListConversionsByDomain(ctx, "d1").Return([]*domain.Conversion{{ID: "c1"}}, nil)
	repo.EXPECT().DeleteConversion(ctx, "c1").Return(nil)

	c, err := svc.GetConversion(ctx, "user-1", "c1")
	require.NoError(t, err)
	assert.Equal(t, "c1", c.ID)

	all, err := svc.ListConversions(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	byDomain, err := svc.ListConversionsByDomain(ctx, "user-1", "d1")
	require.NoError(t, err)
	assert.Len(t, byDomain, 1)

	require.NoError(t, svc.DeleteConversion(ctx, "user-1", "c1"))
}

func TestConversionService_GetConversion_Forbidden(t *testing.T) {
	ctx := context.Background()
	svc, repo, domains := setupConversionServiceTest(t)

	repo.EXPECT().GetConversion(ctx, "c1").Return(&domain.Conversion{ID: "c1", DomainID: "d1"}, nil)
	domains.EXPECT().Authorize(ctx, "d1", "user-2").Return(nil, domain.ErrForbidden)

	_, err := svc.GetConversion(ctx, "user-2", "c1")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
