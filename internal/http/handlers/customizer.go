package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"tissovison.com/app/internal/app"
	"tissovison.com/app/internal/http/middleware"
	"tissovison.com/app/internal/http/render"
	"tissovison.com/app/internal/http/validation"
	"tissovison.com/app/internal/modules/customizer"
	"tissovison.com/app/internal/shared/apperr"
	"tissovison.com/app/pkg/view"
)

// CustomizerHandler manages the storefront content config.
type CustomizerHandler struct {
	App *app.App
}

func NewCustomizerHandler(a *app.App) *CustomizerHandler {
	return &CustomizerHandler{App: a}
}

// Get handles GET /api/customizer.
func (h *CustomizerHandler) Get(c *gin.Context) {
	render.JSON(c, http.StatusOK, h.App.Customizer.Config())
}

type customizerUpdateRequest struct {
	BrandName          *string `json:"brandName" binding:"omitempty,max=120"`
	TopBannerText      *string `json:"topBannerText" binding:"omitempty,max=300"`
	ButtonText         *string `json:"buttonText" binding:"omitempty,max=60"`
	HeroTitle          *string `json:"heroTitle" binding:"omitempty,max=120"`
	HeroDescription    *string `json:"heroDescription" binding:"omitempty,max=1000"`
	ShopButtonText     *string `json:"shopButtonText" binding:"omitempty,max=60"`
	SustainableMessage *string `json:"sustainableMessage" binding:"omitempty,max=300"`
	SectionTitle       *string `json:"sectionTitle" binding:"omitempty,max=120"`
	SelectedProducts   *[]int  `json:"selectedProducts" binding:"omitempty,dive,gte=1"`
}

// Update handles PUT /api/customizer - a partial update merged over the
// current config. Saving triggers cart revalidation via the customizer
// observer wired in app.New.
func (h *CustomizerHandler) Update(c *gin.Context) {
	var req customizerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid customizer config.", validation.FromBindError(err, &req)))
		return
	}

	cfg := h.App.Customizer.Config()
	applyUpdate(&cfg, req)
	h.App.Customizer.Set(cfg)

	render.WithFlash(c, http.StatusOK, view.FlashSuccess, "Customization saved successfully!",
		gin.H{"config": h.App.Customizer.Config()})
}

// Reset handles POST /api/customizer/reset.
func (h *CustomizerHandler) Reset(c *gin.Context) {
	h.App.Customizer.Reset()
	render.WithFlash(c, http.StatusOK, view.FlashSuccess, "Reset to default settings",
		gin.H{"config": h.App.Customizer.Config()})
}

// Export handles GET /api/customizer/export - downloads the config as JSON.
func (h *CustomizerHandler) Export(c *gin.Context) {
	raw, err := h.App.Customizer.Export()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.Header("Content-Disposition", `attachment; filename="tisso-vison-config.json"`)
	c.Data(http.StatusOK, "application/json", raw)
}

// Import handles POST /api/customizer/import - replaces the config with the
// uploaded JSON merged over the defaults.
func (h *CustomizerHandler) Import(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if err := h.App.Customizer.Import(raw); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Error importing configuration: Invalid JSON file", nil))
		return
	}
	render.WithFlash(c, http.StatusOK, view.FlashSuccess, "Configuration imported successfully!",
		gin.H{"config": h.App.Customizer.Config()})
}

func applyUpdate(cfg *customizer.Config, req customizerUpdateRequest) {
	if req.BrandName != nil {
		cfg.BrandName = *req.BrandName
	}
	if req.TopBannerText != nil {
		cfg.TopBannerText = *req.TopBannerText
	}
	if req.ButtonText != nil {
		cfg.ButtonText = *req.ButtonText
	}
	if req.HeroTitle != nil {
		cfg.HeroTitle = *req.HeroTitle
	}
	if req.HeroDescription != nil {
		cfg.HeroDescription = *req.HeroDescription
	}
	if req.ShopButtonText != nil {
		cfg.ShopButtonText = *req.ShopButtonText
	}
	if req.SustainableMessage != nil {
		cfg.SustainableMessage = *req.SustainableMessage
	}
	if req.SectionTitle != nil {
		cfg.SectionTitle = *req.SectionTitle
	}
	if req.SelectedProducts != nil {
		cfg.SelectedProducts = append([]int(nil), (*req.SelectedProducts)...)
	}
}
