package handler

import (
	"errors"

	"github.com/alterians/Lojistik-Asistan/internal/track/repository"
	"github.com/alterians/Lojistik-Asistan/internal/track/service"
	"github.com/gin-gonic/gin"
)

// ContactHandler serves supplier contact metadata.
type ContactHandler struct {
	svc *service.ContactService
}

func NewContactHandler(svc *service.ContactService) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// List returns every known supplier contact.
// GET /api/v1/track/contacts
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.svc.List(c.Request.Context())
	if err != nil {
		InternalError(c, "kişiler alınamadı: "+err.Error())
		return
	}
	Success(c, contacts)
}

// Get returns the contact for one supplier code.
// GET /api/v1/track/contacts/:code
func (h *ContactHandler) Get(c *gin.Context) {
	contact, err := h.svc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "kayıtlı kişi yok")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, contact)
}
