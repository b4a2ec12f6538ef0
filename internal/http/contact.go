package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"company-cms/internal/domain"
)

const (
	contactDefaultLimit = 50
	contactMaxLimit     = 200
)

type contactRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactStatusRequest struct {
	Status string `json:"status"`
}

type contactResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	Status      string `json:"status"`
	IPAddress   string `json:"ip_address"`
	UserAgent   string `json:"user_agent"`
	SubmittedAt string `json:"submitted_at"`
}

func toContactResponse(s *domain.ContactSubmission) contactResponse {
	return contactResponse{
		ID:          s.ID,
		Name:        s.Name,
		Phone:       s.Phone,
		Email:       s.Email,
		Message:     s.Message,
		Status:      s.Status,
		IPAddress:   s.IPAddress,
		UserAgent:   s.UserAgent,
		SubmittedAt: timeRFC3339(s.SubmittedAt),
	}
}

func (h *Handler) registerContactRoutes(api *gin.RouterGroup) {
	api.POST("/contact", h.submitContact)

	admin := api.Group("/admin/contact-submissions", h.requireAdmin())
	admin.GET("", h.listContactSubmissions)
	admin.GET("/:id", h.getContactSubmission)
	admin.PATCH("/:id/status", h.updateContactStatus)
	admin.DELETE("/:id", h.deleteContactSubmission)
}

func (h *Handler) submitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub := domain.ContactSubmission{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Message:   req.Message,
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	if err := h.deps.Contact.Submit(c.Request.Context(), &sub); err != nil {
		h.respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, toContactResponse(&sub))
}

func (h *Handler) listContactSubmissions(c *gin.Context) {
	filter := domain.ContactFilter{
		Status: c.Query("status"),
		Limit:  contactDefaultLimit,
	}
	if filter.Status != "" && !domain.ValidContactStatus(filter.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be a non-negative integer"})
			return
		}
		filter.Offset = offset
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > contactMaxLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 200"})
			return
		}
		filter.Limit = limit
	}

	items, err := h.deps.Contact.List(c.Request.Context(), filter)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	out := make([]contactResponse, 0, len(items))
	for i := range items {
		out = append(out, toContactResponse(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) getContactSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	sub, err := h.deps.Contact.Get(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toContactResponse(sub))
}

func (h *Handler) updateContactStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req contactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sub, err := h.deps.Contact.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, toContactResponse(sub))
}

func (h *Handler) deleteContactSubmission(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deps.Contact.Delete(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
