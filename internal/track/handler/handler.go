package handler

import (
	"strconv"

	"github.com/alterians/Lojistik-Asistan/internal/track/service"
	"github.com/gin-gonic/gin"
)

// Handlers is the tracking API handler collection.
type Handlers struct {
	Snapshot *SnapshotHandler
	Order    *OrderHandler
	Compare  *CompareHandler
	Draft    *DraftHandler
	Contact  *ContactHandler
}

func NewHandlers(
	importSvc *service.ImportService,
	trackingSvc *service.TrackingService,
	compareSvc *service.CompareService,
	draftSvc *service.DraftService,
	contactSvc *service.ContactService,
) *Handlers {
	return &Handlers{
		Snapshot: NewSnapshotHandler(importSvc, trackingSvc),
		Order:    NewOrderHandler(trackingSvc),
		Compare:  NewCompareHandler(compareSvc),
		Draft:    NewDraftHandler(draftSvc, trackingSvc),
		Contact:  NewContactHandler(contactSvc),
	}
}

// === Response helpers ===

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ListResponse struct {
	Items      interface{} `json:"items"`
	Pagination *Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
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

func InternalError(c *gin.Context, message string) {
	Error(c, 50000, message)
}

func GetUserID(c *gin.Context) string {
	userID, _ := c.Get("user_id")
	if id, ok := userID.(string); ok {
		return id
	}
	return ""
}

func GetPagination(c *gin.Context) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= 100 {
			pageSize = v
		}
	}

	return page, pageSize
}
