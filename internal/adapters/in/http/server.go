package http

import (
	"errors"
	"fmt"
	"net/http"

	"helpii/internal/core/application/usecases/queries"
	"helpii/internal/core/domain/services"
	"helpii/internal/generated/servers"
	"helpii/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Query handlers
	resolveQuoteHandler     queries.ResolveQuoteQueryHandler
	getDeliveryTypesHandler queries.GetDeliveryTypesQueryHandler
}

// NewServer creates a new HTTP server with the required query handlers.
func NewServer(
	resolveQuoteHandler queries.ResolveQuoteQueryHandler,
	getDeliveryTypesHandler queries.GetDeliveryTypesQueryHandler,
) *Server {
	return &Server{
		resolveQuoteHandler:     resolveQuoteHandler,
		getDeliveryTypesHandler: getDeliveryTypesHandler,
	}
}

// GetDeliveryTypes handles GET /api/v1/delivery-types - lists active delivery tiers.
func (s *Server) GetDeliveryTypes(ctx echo.Context) error {
	query := queries.NewGetDeliveryTypesQuery()

	deliveryTypes, err := s.getDeliveryTypesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.ErrorResponse{
			Success: false,
			Error:   "Failed to retrieve delivery types",
		})
	}

	response := make([]servers.DeliveryType, len(deliveryTypes))
	for i, deliveryType := range deliveryTypes {
		response[i] = servers.DeliveryType{
			Id:                    deliveryType.ID.Bytes(),
			Code:                  deliveryType.Code,
			Name:                  deliveryType.Name,
			Description:           deliveryType.Description,
			BasePrice:             deliveryType.BasePrice,
			MaxCoverageKm:         deliveryType.MaxCoverageKm,
			RequiresAdminApproval: deliveryType.RequiresAdminApproval,
			DisplayOrder:          deliveryType.DisplayOrder,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetQuote handles GET /api/v1/quote - resolves a price quote for a parcel.
//
// Invalid inputs, unknown or inactive delivery types, and catalog gaps are
// all client-visible outcomes and answer with 400 and an explanatory message.
func (s *Server) GetQuote(ctx echo.Context, params servers.GetQuoteParams) error {
	isOversize := false
	if params.IsOversize != nil {
		isOversize = *params.IsOversize
	}

	query, err := queries.NewResolveQuoteQuery(
		params.DeliveryType, params.WeightKg, params.DistanceKm, isOversize)
	if err != nil {
		message := "Distance and weight must be greater than 0"
		if errors.Is(err, queries.ErrDeliveryTypeCodeIsRequired) {
			message = "Delivery type code is required"
		}

		return ctx.JSON(http.StatusBadRequest, servers.ErrorResponse{
			Success: false,
			Error:   message,
		})
	}

	quote, err := s.resolveQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusBadRequest, servers.ErrorResponse{
				Success: false,
				Error:   fmt.Sprintf("Delivery type %q not found or inactive", params.DeliveryType),
			})
		case errors.Is(err, services.ErrNoRuleMatched):
			return ctx.JSON(http.StatusBadRequest, servers.ErrorResponse{
				Success: false,
				Error: fmt.Sprintf("No pricing rule found for %vkg, %vkm, oversize=%t",
					params.WeightKg, params.DistanceKm, isOversize),
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, servers.ErrorResponse{
				Success: false,
				Error:   "Failed to resolve quote",
			})
		}
	}

	return ctx.JSON(http.StatusOK, servers.QuoteResponse{
		Success:               true,
		Estimate:              quote.Estimate,
		RequiresAdminApproval: quote.RequiresAdminApproval,
		Breakdown:             toBreakdownResponse(quote.Breakdown),
	})
}

func toBreakdownResponse(breakdown queries.QuoteBreakdown) servers.QuoteBreakdown {
	return servers.QuoteBreakdown{
		DistanceKm:        breakdown.DistanceKm,
		WeightKg:          breakdown.WeightKg,
		IsOversize:        breakdown.IsOversize,
		DeliveryType:      breakdown.DeliveryTypeName,
		DeliveryCode:      breakdown.DeliveryTypeCode,
		BasePrice:         breakdown.BasePrice,
		RuleName:          breakdown.RuleName,
		CalculationType:   servers.QuoteBreakdownCalculationType(breakdown.CalculationType),
		RatePerKm:         breakdown.RatePerKm,
		MaxPrice:          breakdown.MaxPrice,
		FlatTotal:         breakdown.FlatTotal,
		OversizeSurcharge: breakdown.OversizeSurcharge,
		Formula:           breakdown.Formula,
	}
}
