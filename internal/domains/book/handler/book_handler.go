package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-service/internal/domains/book/model"
	"library-service/internal/domains/book/service"
	"library-service/internal/shared/response"
)

type BookHandler struct {
	service service.Service
}

func NewBookHandler(svc service.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// RegisterRoutes mounts the book endpoints on the given group.
func (h *BookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}

// Create handles POST /books.
func (h *BookHandler) Create(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body.")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrAuthorMissing):
			response.NotFound(c, "Author not found.")
		case errors.Is(err, model.ErrInvalidTitle):
			response.BadRequest(c, err.Error())
		default:
			response.InternalServerError(c, "Failed to create book.")
		}
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// List handles GET /books?author_name=.
func (h *BookHandler) List(c *gin.Context) {
	filter := model.Filter{AuthorName: c.Query("author_name")}

	books, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to list books.")
		return
	}

	response.JSON(c, http.StatusOK, books)
}

// GetByID handles GET /books/:id.
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid book id.")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrBookNotFound) {
			response.NotFound(c, "Book not found.")
			return
		}
		response.InternalServerError(c, "Failed to get book.")
		return
	}

	response.JSON(c, http.StatusOK, b)
}
