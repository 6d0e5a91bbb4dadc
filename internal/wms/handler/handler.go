package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/s1gl/eWMS/internal/wms/service"
	"github.com/s1gl/eWMS/internal/wms/wmserr"
)

// Handlers bundles the HTTP layer for route wiring.
type Handlers struct {
	Topology  *TopologyHandler
	Item      *ItemHandler
	Partner   *PartnerHandler
	Inventory *InventoryHandler
	Tare      *TareHandler
	Inbound   *InboundHandler
	Outbound  *OutboundHandler
	Picking   *PickingHandler
	Report    *ReportHandler
}

func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Topology:  NewTopologyHandler(svc.Topology),
		Item:      NewItemHandler(svc.Item),
		Partner:   NewPartnerHandler(svc.Partner),
		Inventory: NewInventoryHandler(svc.Inventory),
		Tare:      NewTareHandler(svc.Tare),
		Inbound:   NewInboundHandler(svc.Inbound),
		Outbound:  NewOutboundHandler(svc.Outbound),
		Picking:   NewPickingHandler(svc.Picking),
		Report:    NewReportHandler(svc.Report),
	}
}

// Response is the common JSON envelope.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(c *gin.Context, data interface{}) {
	c.JSON(200, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func Created(c *gin.Context, data interface{}) {
	c.JSON(201, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error envelope. The HTTP status is the first three digits
// of the business code.
func Error(c *gin.Context, code int, message string) {
	statusCode := code / 100
	if statusCode < 100 || statusCode > 599 {
		statusCode = 500
	}
	c.JSON(statusCode, Response{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, 40000, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 40400, message)
}

func Conflict(c *gin.Context, message string) {
	Error(c, 40900, message)
}

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

// HandleServiceError maps the error kinds of the business layer to HTTP
// responses. Unknown errors become 500s.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wmserr.ErrNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, wmserr.ErrDuplicateKey):
		Conflict(c, err.Error())
	case errors.Is(err, wmserr.ErrWarehouseMismatch),
		errors.Is(err, wmserr.ErrLocationMismatch),
		errors.Is(err, wmserr.ErrInvalidQuantity),
		errors.Is(err, wmserr.ErrInsufficientStock),
		errors.Is(err, wmserr.ErrInvalidMove),
		errors.Is(err, wmserr.ErrInvalidTransition),
		errors.Is(err, wmserr.ErrOrderNotReceiving),
		errors.Is(err, wmserr.ErrAlreadyClosed),
		errors.Is(err, wmserr.ErrAlreadyPlaced),
		errors.Is(err, wmserr.ErrInvalidZoneType),
		errors.Is(err, wmserr.ErrInvalidZoneTransition),
		errors.Is(err, wmserr.ErrZoneNotInbound),
		errors.Is(err, wmserr.ErrExceedsRequired),
		errors.Is(err, wmserr.ErrExceedsOrdered),
		errors.Is(err, wmserr.ErrEmptyOrder):
		BadRequest(c, err.Error())
	default:
		InternalError(c, err.Error())
	}
}

// ParamUint parses a numeric path parameter; ok=false means the response has
// already been written.
func ParamUint(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		BadRequest(c, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(v), true
}

// QueryUint parses an optional numeric query filter; absent or malformed
// values read as 0 (no filter).
func QueryUint(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(v)
}
