package handlers

import (
	"ilovehiphop.ja/pkg/queryparams"
	"ilovehiphop.ja/services"

	"github.com/gofiber/fiber/v2"
)

// ContentHandler serves the read-only promotional content endpoints.
type ContentHandler struct {
	service services.IContentService
}

func NewContentHandler(service services.IContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

// ListEvents (GET /api/events?tag=&featured=)
func (h *ContentHandler) ListEvents(c *fiber.Ctx) error {
	params, err := queryparams.ParseEventParams(c)
	if err != nil {
		return respondError(c, err)
	}
	events, err := h.service.ListEvents(c.UserContext(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(events)
}

// ListArticles (GET /api/articles?tag=)
func (h *ContentHandler) ListArticles(c *fiber.Ctx) error {
	params, err := queryparams.ParseArticleParams(c)
	if err != nil {
		return respondError(c, err)
	}
	articles, err := h.service.ListArticles(c.UserContext(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(articles)
}

// ListMixtapes (GET /api/mixtapes?dj=)
func (h *ContentHandler) ListMixtapes(c *fiber.Ctx) error {
	params, err := queryparams.ParseMixtapeParams(c)
	if err != nil {
		return respondError(c, err)
	}
	mixtapes, err := h.service.ListMixtapes(c.UserContext(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mixtapes)
}

// ListPartners (GET /api/partners?featured=)
func (h *ContentHandler) ListPartners(c *fiber.Ctx) error {
	params, err := queryparams.ParsePartnerParams(c)
	if err != nil {
		return respondError(c, err)
	}
	partners, err := h.service.ListPartners(c.UserContext(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(partners)
}

// ListSpecials (GET /api/specials?limit=) limit is 1..12, default 3.
func (h *ContentHandler) ListSpecials(c *fiber.Ctx) error {
	params, err := queryparams.ParseSpecialParams(c)
	if err != nil {
		return respondError(c, err)
	}
	specials, err := h.service.ListSpecials(c.UserContext(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(specials)
}

// ListCoupons (GET /api/coupons?active_only=) active_only defaults to true.
func (h *ContentHandler) ListCoupons(c *fiber.Ctx) error {
	params, err := queryparams.ParseCouponParams(c)
	if err != nil {
		return respondError(c, err)
	}
	coupons, err := h.service.ListCoupons(c.UserContext(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(coupons)
}
