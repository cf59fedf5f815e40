package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vecitools-backend/internal/domain"
	"vecitools-backend/internal/service"
)

func newReviewFixture() (*MockReviewRepo, *MockLoanRepo, service.ReviewService) {
	reviews := new(MockReviewRepo)
	loans := new(MockLoanRepo)
	return reviews, loans, service.NewReviewService(reviews, loans)
}

func TestReviewCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("requester reviews the owner after return", func(t *testing.T) {
		reviews, loans, svc := newReviewFixture()
		loans.On("GetByID", mock.Anything, int32(77)).Return(lifecycleLoan(domain.LoanStatusReturned, domain.ToolTypeLoan), nil)
		reviews.On("Create", mock.Anything, mock.AnythingOfType("*domain.Review")).Return(nil)

		review, err := svc.Create(ctx, domain.Actor{UserID: 1}, 77, 5, "great neighbor")

		require.NoError(t, err)
		assert.Equal(t, int32(1), review.ReviewerID)
		assert.Equal(t, int32(2), review.RevieweeID)
	})

	t.Run("owner reviews the requester", func(t *testing.T) {
		reviews, loans, svc := newReviewFixture()
		loans.On("GetByID", mock.Anything, int32(77)).Return(lifecycleLoan(domain.LoanStatusReturned, domain.ToolTypeLoan), nil)
		reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

		review, err := svc.Create(ctx, domain.Actor{UserID: 2}, 77, 4, "")

		require.NoError(t, err)
		assert.Equal(t, int32(1), review.RevieweeID)
	})

	t.Run("rating must sit in 1..5", func(t *testing.T) {
		_, loans, svc := newReviewFixture()

		_, err := svc.Create(ctx, domain.Actor{UserID: 1}, 77, 0, "")
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.Create(ctx, domain.Actor{UserID: 1}, 77, 6, "")
		assert.ErrorIs(t, err, domain.ErrValidation)

		loans.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("only returned loans can be reviewed", func(t *testing.T) {
		reviews, loans, svc := newReviewFixture()
		loans.On("GetByID", mock.Anything, int32(77)).Return(lifecycleLoan(domain.LoanStatusActive, domain.ToolTypeLoan), nil)

		_, err := svc.Create(ctx, domain.Actor{UserID: 1}, 77, 5, "")

		assert.ErrorIs(t, err, domain.ErrValidation)
		reviews.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("outsiders cannot review", func(t *testing.T) {
		_, loans, svc := newReviewFixture()
		loans.On("GetByID", mock.Anything, int32(77)).Return(lifecycleLoan(domain.LoanStatusReturned, domain.ToolTypeLoan), nil)

		_, err := svc.Create(ctx, domain.Actor{UserID: 9}, 77, 5, "")

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("missing loan surfaces as not found", func(t *testing.T) {
		_, loans, svc := newReviewFixture()
		loans.On("GetByID", mock.Anything, int32(404)).Return(nil, domain.NotFoundf("loan with id 404 not found"))

		_, err := svc.Create(ctx, domain.Actor{UserID: 1}, 404, 5, "")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
