package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	portssvc "github.com/finwise-app/finwise_backend/internal/core/ports/services"
	"github.com/finwise-app/finwise_backend/internal/dto"
	"github.com/finwise-app/finwise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles the user preference endpoints, most notably the
// currency preference change that triggers re-denomination.
type settingsHandler struct {
	userService       portssvc.UserSvcFacade
	conversionService portssvc.ConversionSvcFacade
}

func newSettingsHandler(us portssvc.UserSvcFacade, cs portssvc.ConversionSvcFacade) *settingsHandler {
	return &settingsHandler{userService: us, conversionService: cs}
}

// registerSettingsRoutes registers the user preference routes.
func registerSettingsRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade, conversionService portssvc.ConversionSvcFacade) {
	h := newSettingsHandler(userService, conversionService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("/currency", h.updateCurrencyPreference)
	}
}

// getSettings godoc
// @Summary Get current preferences
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve settings")
		return
	}
	c.JSON(http.StatusOK, dto.SettingsResponse{DefaultCurrency: user.DefaultCurrency})
}

// updateCurrencyPreference godoc
// @Summary Change default currency
// @Description Re-denominates every historical expense and income record into
// @Description the new currency, then commits the preference. The preference
// @Description changes only if the conversion succeeds.
// @Tags settings
// @Accept json
// @Produce json
// @Param preference body dto.UpdateCurrencyPreferenceRequest true "New default currency"
// @Success 200 {object} dto.ConversionResultResponse
// @Failure 400 {object} ErrorResponse "Unsupported currency"
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Rate provider unavailable"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /settings/currency [put]
func (h *settingsHandler) updateCurrencyPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.UpdateCurrencyPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve user")
		return
	}

	result, err := h.conversionService.ConvertAllRecords(c.Request.Context(), userID, user.DefaultCurrency, req.CurrencyCode)
	if err != nil {
		h.respondConversionError(c, logger, err)
		return
	}

	// The preference commits only after the records are re-denominated, so a
	// failed conversion leaves the account fully in the old currency.
	if err := h.userService.CommitDefaultCurrency(c.Request.Context(), userID, req.CurrencyCode); err != nil {
		logger.Error("Conversion succeeded but preference commit failed",
			slog.String("to_currency", req.CurrencyCode),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Records were converted but the preference could not be saved; retry the change",
		})
		return
	}

	logger.Info("Default currency changed",
		slog.String("from", result.FromCurrency),
		slog.String("to", result.ToCurrency),
		slog.Int("expenses_converted", result.ExpensesConverted),
		slog.Int("income_converted", result.IncomeConverted),
	)
	c.JSON(http.StatusOK, dto.ToConversionResultResponse(result))
}

// respondConversionError maps conversion engine failures onto HTTP responses.
// The partial state gets its own message because the user must know their
// data is split across two currencies.
func (h *settingsHandler) respondConversionError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnsupportedCurrency):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrPartialConversion):
		logger.Error("Partial currency conversion", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Conversion failed partway: expenses were converted but income records were not. Retry the currency change to finish.",
		})
	case errors.Is(err, apperrors.ErrProvider), errors.Is(err, apperrors.ErrInvalidResponse):
		logger.Warn("Rate provider failure during conversion", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Exchange rate service is unavailable; no records were changed"})
	case errors.Is(err, apperrors.ErrPersistence):
		logger.Error("Persistence failure during conversion", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Conversion failed; no records were changed"})
	default:
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to change default currency"})
	}
}
