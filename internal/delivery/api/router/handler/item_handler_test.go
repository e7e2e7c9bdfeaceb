package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"creatorhub/internal/domain/entity"
	domainerrors "creatorhub/internal/domain/errors"
	mockUsecase "creatorhub/internal/mocks/usecase"
	"creatorhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type itemHandlerMocks struct {
	product *mockUsecase.MockProductUsecase
	coupon  *mockUsecase.MockCouponUsecase
	partner *mockUsecase.MockPartnerUsecase
	reorder *mockUsecase.MockReorderUsecase
}

func newItemHandlerForTest(t *testing.T) (*ItemHandler, itemHandlerMocks) {
	mocks := itemHandlerMocks{
		product: mockUsecase.NewMockProductUsecase(t),
		coupon:  mockUsecase.NewMockCouponUsecase(t),
		partner: mockUsecase.NewMockPartnerUsecase(t),
		reorder: mockUsecase.NewMockReorderUsecase(t),
	}

	h := NewItemHandler(ItemHandlerParams{
		ProductUC: mocks.product,
		CouponUC:  mocks.coupon,
		PartnerUC: mocks.partner,
		ReorderUC: mocks.reorder,
	})

	return h, mocks
}

func TestItemHandler_CreateProduct(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e := newTestEcho(t)
		h, mocks := newItemHandlerForTest(t)

		product := &entity.Product{ID: uuid.New(), UserID: testUser.ID, Title: "Camera", AffiliateURL: "https://shop.example/camera", Active: true}
		mocks.product.EXPECT().
			CreateProduct(mock.Anything, testUser.ID, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
				return in.Title == "Camera" && in.AffiliateURL == "https://shop.example/camera"
			})).
			Return(product, nil).Once()

		req := jsonRequest(http.MethodPost, "/api/products", `{"title":"Camera","affiliate_url":"https://shop.example/camera"}`)
		rec := serve(t, e, h.CreateProduct, req, withUser(testUser))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title":"Camera"`)
	})

	t.Run("missing required fields name the field", func(t *testing.T) {
		e := newTestEcho(t)
		h, _ := newItemHandlerForTest(t)

		req := jsonRequest(http.MethodPost, "/api/products", `{"title":"Camera"}`)
		rec := serve(t, e, h.CreateProduct, req, withUser(testUser))

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var body struct {
			Error struct {
				Code    string            `json:"code"`
				Details map[string]string `json:"details"`
			} `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
		assert.Contains(t, body.Error.Details, "affiliate_url")
	})

	t.Run("free quota reached", func(t *testing.T) {
		e := newTestEcho(t)
		h, mocks := newItemHandlerForTest(t)

		mocks.product.EXPECT().CreateProduct(mock.Anything, testUser.ID, mock.Anything).
			Return(nil, domainerrors.ErrQuotaExceeded).Once()

		req := jsonRequest(http.MethodPost, "/api/products", `{"title":"Camera","affiliate_url":"https://shop.example/camera"}`)
		rec := serve(t, e, h.CreateProduct, req, withUser(testUser))

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "PLAN_LIMIT_REACHED")
	})

	t.Run("not onboarded", func(t *testing.T) {
		e := newTestEcho(t)
		h, _ := newItemHandlerForTest(t)

		req := jsonRequest(http.MethodPost, "/api/products", `{}`)
		rec := serve(t, e, h.CreateProduct, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "ONBOARDING_REQUIRED")
	})
}

func TestItemHandler_UpdateCoupon_ForeignItem(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newItemHandlerForTest(t)

	id := uuid.New()
	mocks.coupon.EXPECT().UpdateCoupon(mock.Anything, testUser.ID, id, mock.Anything).
		Return(nil, domainerrors.ErrNotFound.WithMessage("coupon not found")).Once()

	req := jsonRequest(http.MethodPut, "/api/coupons/"+id.String(), `{"code":"SAVE10"}`)
	rec := serve(t, e, h.UpdateCoupon, req, withUser(testUser), withParam("id", id.String()))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "coupon not found")
}

func TestItemHandler_DeletePartner(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		e := newTestEcho(t)
		h, mocks := newItemHandlerForTest(t)

		id := uuid.New()
		mocks.partner.EXPECT().DeletePartner(mock.Anything, testUser.ID, id).Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/api/partners/"+id.String(), nil)
		rec := serve(t, e, h.DeletePartner, req, withUser(testUser), withParam("id", id.String()))

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("malformed id is not found", func(t *testing.T) {
		e := newTestEcho(t)
		h, _ := newItemHandlerForTest(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/partners/nope", nil)
		rec := serve(t, e, h.DeletePartner, req, withUser(testUser), withParam("id", "nope"))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestItemHandler_Reorder(t *testing.T) {
	e := newTestEcho(t)
	h, mocks := newItemHandlerForTest(t)

	first, second := uuid.New(), uuid.New()
	mocks.reorder.EXPECT().
		Reorder(mock.Anything, testUser.ID, &usecase.ReorderInput{
			Type: "product",
			List: []entity.ItemPosition{{ID: first, Position: 1}, {ID: second, Position: 0}},
		}).
		Return(nil).Once()

	body := `{"type":"product","list":[{"id":"` + first.String() + `","position":1},{"id":"` + second.String() + `","position":0}]}`
	rec := serve(t, e, h.Reorder, jsonRequest(http.MethodPut, "/api/reorder", body), withUser(testUser))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)
}
