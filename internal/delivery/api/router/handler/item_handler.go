package handler

import (
	"creatorhub/internal/delivery/api/response"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ItemHandlerParams holds dependencies for ItemHandler, injected by Fx.
type ItemHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	CouponUC  usecase.CouponUsecase
	PartnerUC usecase.PartnerUsecase
	ReorderUC usecase.ReorderUsecase
}

// ItemHandler serves the CRUD of products, coupons and partners and their ordering.
type ItemHandler struct {
	productUC usecase.ProductUsecase
	couponUC  usecase.CouponUsecase
	partnerUC usecase.PartnerUsecase
	reorderUC usecase.ReorderUsecase
}

// NewItemHandler is the constructor for ItemHandler
func NewItemHandler(params ItemHandlerParams) *ItemHandler {
	return &ItemHandler{
		productUC: params.ProductUC,
		couponUC:  params.CouponUC,
		partnerUC: params.PartnerUC,
		reorderUC: params.ReorderUC,
	}
}

// --- Products ---

// ListProducts returns the caller's products in display order.
func (h *ItemHandler) ListProducts(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	products, err := h.productUC.ListProducts(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// CreateProduct adds a product for the caller.
func (h *ItemHandler) CreateProduct(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.CreateProductInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.CreateProduct(c.Request().Context(), user.ID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// UpdateProduct changes one of the caller's products.
func (h *ItemHandler) UpdateProduct(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.UpdateProductInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	product, err := h.productUC.UpdateProduct(c.Request().Context(), user.ID, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// DeleteProduct removes one of the caller's products.
func (h *ItemHandler) DeleteProduct(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.productUC.DeleteProduct(c.Request().Context(), user.ID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return noContent(c)
}

// --- Coupons ---

// ListCoupons returns the caller's coupons in display order.
func (h *ItemHandler) ListCoupons(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	coupons, err := h.couponUC.ListCoupons(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, coupons)
}

// CreateCoupon adds a coupon for the caller.
func (h *ItemHandler) CreateCoupon(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.CreateCouponInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	coupon, err := h.couponUC.CreateCoupon(c.Request().Context(), user.ID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, coupon)
}

// UpdateCoupon changes one of the caller's coupons.
func (h *ItemHandler) UpdateCoupon(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.UpdateCouponInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	coupon, err := h.couponUC.UpdateCoupon(c.Request().Context(), user.ID, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, coupon)
}

// DeleteCoupon removes one of the caller's coupons.
func (h *ItemHandler) DeleteCoupon(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.couponUC.DeleteCoupon(c.Request().Context(), user.ID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return noContent(c)
}

// --- Partners ---

// ListPartners returns the caller's partners in display order.
func (h *ItemHandler) ListPartners(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	partners, err := h.partnerUC.ListPartners(c.Request().Context(), user.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, partners)
}

// CreatePartner adds a partner for the caller.
func (h *ItemHandler) CreatePartner(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.CreatePartnerInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	partner, err := h.partnerUC.CreatePartner(c.Request().Context(), user.ID, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, partner)
}

// UpdatePartner changes one of the caller's partners.
func (h *ItemHandler) UpdatePartner(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.UpdatePartnerInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	partner, err := h.partnerUC.UpdatePartner(c.Request().Context(), user.ID, id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, partner)
}

// DeletePartner removes one of the caller's partners.
func (h *ItemHandler) DeletePartner(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := paramID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.partnerUC.DeletePartner(c.Request().Context(), user.ID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return noContent(c)
}

// --- Ordering ---

// Reorder assigns new positions to items of one type.
func (h *ItemHandler) Reorder(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req usecase.ReorderInput
	if err := bind(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.reorderUC.Reorder(c.Request().Context(), user.ID, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]bool{"success": true})
}
