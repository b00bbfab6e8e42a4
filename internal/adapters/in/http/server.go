package http

import (
	"errors"
	"net/http"
	"strconv"

	"printship/internal/core/application/usecases/commands"
	"printship/internal/core/application/usecases/queries"
	"printship/internal/core/domain/model/packing"
	"printship/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createLabelHandler commands.CreateShippingLabelCommandHandler
	markPrintedHandler commands.MarkLabelPrintedCommandHandler

	// Query handlers
	shipmentStatusHandler  queries.GetShipmentStatusQueryHandler
	estimatePackingHandler queries.EstimatePackingQueryHandler

	// Ad-hoc estimates run the optimizer directly; no order row is involved.
	catalog packing.Catalog
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createLabelHandler commands.CreateShippingLabelCommandHandler,
	markPrintedHandler commands.MarkLabelPrintedCommandHandler,
	shipmentStatusHandler queries.GetShipmentStatusQueryHandler,
	estimatePackingHandler queries.EstimatePackingQueryHandler,
	catalog packing.Catalog,
) *Server {
	return &Server{
		createLabelHandler:     createLabelHandler,
		markPrintedHandler:     markPrintedHandler,
		shipmentStatusHandler:  shipmentStatusHandler,
		estimatePackingHandler: estimatePackingHandler,
		catalog:                catalog,
	}
}

// RegisterRoutes wires the server's handlers into an echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders/:id/label", s.CreateLabel)
	api.POST("/orders/:id/label/printed", s.MarkLabelPrinted)
	api.GET("/orders/:id/shipment", s.GetShipmentStatus)
	api.GET("/orders/:id/packing", s.GetPackingEstimate)
	api.POST("/packing/estimate", s.EstimatePacking)
}

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LabelResponse is the JSON body returned by a successful label purchase.
type LabelResponse struct {
	TrackingNumber    string `json:"tracking_number"`
	CarrierShipmentID string `json:"carrier_shipment_id"`
	LabelURL          string `json:"label_url"`
}

// EstimateRequest carries raw dimensions for an ad-hoc packing estimate.
type EstimateRequest struct {
	LengthMM        *float64 `json:"length_mm"`
	WidthMM         *float64 `json:"width_mm"`
	HeightMM        *float64 `json:"height_mm"`
	Quantity        int      `json:"quantity"`
	UnitWeightGrams float64  `json:"unit_weight_grams"`
	ShippingMethod  string   `json:"shipping_method"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateLabel handles POST /api/v1/orders/:id/label - purchases a label, or
// regenerates one when the shipment is still unlocked. A locked shipment
// returns 409 with the refusal message.
func (s *Server) CreateLabel(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewCreateShippingLabelCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.createLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, LabelResponse{
		TrackingNumber:    result.TrackingNumber,
		CarrierShipmentID: result.CarrierShipmentID,
		LabelURL:          result.LabelURL,
	})
}

// MarkLabelPrinted handles POST /api/v1/orders/:id/label/printed.
func (s *Server) MarkLabelPrinted(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewMarkLabelPrintedCommand(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err = s.markPrintedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShipmentStatus handles GET /api/v1/orders/:id/shipment.
func (s *Server) GetShipmentStatus(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetShipmentStatusQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	status, err := s.shipmentStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, status)
}

// GetPackingEstimate handles GET /api/v1/orders/:id/packing - recomputes the
// packing recommendation from the order's stored dimensions.
func (s *Server) GetPackingEstimate(ctx echo.Context) error {
	orderID, err := parseOrderID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewEstimatePackingQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.estimatePackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, result)
}

// EstimatePacking handles POST /api/v1/packing/estimate - runs the optimizer
// over raw dimensions without touching any order.
func (s *Server) EstimatePacking(ctx echo.Context) error {
	var req EstimateRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	result := s.catalog.Calculate(packing.Input{
		LengthMM:        req.LengthMM,
		WidthMM:         req.WidthMM,
		HeightMM:        req.HeightMM,
		Quantity:        req.Quantity,
		UnitWeightGrams: req.UnitWeightGrams,
		ShippingMethod:  req.ShippingMethod,
	})

	return ctx.JSON(http.StatusOK, result)
}

func parseOrderID(ctx echo.Context) (int64, error) {
	return strconv.ParseInt(ctx.Param("id"), 10, 64)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain error kinds onto HTTP status codes. The locked
// refusal keeps its full message so the dashboard can show staff what to do.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrShipmentLocked):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrUpstreamFailure):
		return ctx.JSON(http.StatusBadGateway, Error{
			Code:    http.StatusBadGateway,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}
