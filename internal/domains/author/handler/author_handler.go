package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"library-service/internal/domains/author/model"
	"library-service/internal/domains/author/service"
	"library-service/internal/shared/response"
)

type AuthorHandler struct {
	service service.Service
}

func NewAuthorHandler(svc service.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// RegisterRoutes mounts the author endpoints on the given group.
func (h *AuthorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
}

// Create handles POST /authors.
func (h *AuthorHandler) Create(c *gin.Context) {
	var req model.CreateAuthorRequest
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
		case errors.Is(err, model.ErrDuplicateName):
			response.BadRequest(c, "Author with this name already exists.")
		case errors.Is(err, model.ErrInvalidName):
			response.BadRequest(c, err.Error())
		default:
			response.InternalServerError(c, "Failed to create author.")
		}
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// List handles GET /authors.
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to list authors.")
		return
	}

	response.JSON(c, http.StatusOK, authors)
}

// GetByID handles GET /authors/:id.
func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid author id.")
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			response.NotFound(c, "Author not found.")
			return
		}
		response.InternalServerError(c, "Failed to get author.")
		return
	}

	response.JSON(c, http.StatusOK, a)
}
