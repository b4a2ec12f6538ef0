package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"company-cms/internal/cache"
	"company-cms/internal/domain"
)

const resourceTeam = "team"

type createTeamMemberRequest struct {
	NameEN     string `json:"name_en"`
	NameFA     string `json:"name_fa"`
	PositionEN string `json:"position_en"`
	PositionFA string `json:"position_fa"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	BioEN      string `json:"bio_en"`
	BioFA      string `json:"bio_fa"`
}

type updateTeamMemberRequest struct {
	NameEN     *string `json:"name_en"`
	NameFA     *string `json:"name_fa"`
	PositionEN *string `json:"position_en"`
	PositionFA *string `json:"position_fa"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	BioEN      *string `json:"bio_en"`
	BioFA      *string `json:"bio_fa"`
}

type teamMemberResponse struct {
	ID         int64  `json:"id"`
	NameEN     string `json:"name_en"`
	NameFA     string `json:"name_fa"`
	PositionEN string `json:"position_en"`
	PositionFA string `json:"position_fa"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	ImageURL   string `json:"image_url"`
	BioEN      string `json:"bio_en"`
	BioFA      string `json:"bio_fa"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func toTeamMemberResponse(m *domain.TeamMember) teamMemberResponse {
	return teamMemberResponse{
		ID:         m.ID,
		NameEN:     m.NameEN,
		NameFA:     m.NameFA,
		PositionEN: m.PositionEN,
		PositionFA: m.PositionFA,
		Email:      m.Email,
		Phone:      m.Phone,
		ImageURL:   m.ImageURL,
		BioEN:      m.BioEN,
		BioFA:      m.BioFA,
		CreatedAt:  timeRFC3339(m.CreatedAt),
		UpdatedAt:  timeRFC3339(m.UpdatedAt),
	}
}

func (h *Handler) registerTeamRoutes(api *gin.RouterGroup) {
	api.GET("/team", h.listTeam)
	api.GET("/team/:id", h.getTeamMember)

	admin := api.Group("/team", h.requireAdmin())
	admin.POST("", h.createTeamMember)
	admin.PUT("/:id", h.updateTeamMember)
	admin.DELETE("/:id", h.deleteTeamMember)
	admin.POST("/:id/upload-image", h.uploadTeamImage)
}

func (h *Handler) listTeam(c *gin.Context) {
	h.cached(c, cache.CollectionKey(resourceTeam), contentCacheTTL, func() (any, error) {
		items, err := h.deps.Team.List(c.Request.Context())
		if err != nil {
			return nil, err
		}
		out := make([]teamMemberResponse, 0, len(items))
		for i := range items {
			out = append(out, toTeamMemberResponse(&items[i]))
		}
		return out, nil
	})
}

func (h *Handler) getTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.cached(c, cache.Key(resourceTeam, id), contentCacheTTL, func() (any, error) {
		m, err := h.deps.Team.Get(c.Request.Context(), id)
		if err != nil {
			return nil, err
		}
		return toTeamMemberResponse(m), nil
	})
}

func (h *Handler) createTeamMember(c *gin.Context) {
	var req createTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	member := domain.TeamMember{
		NameEN:     req.NameEN,
		NameFA:     req.NameFA,
		PositionEN: req.PositionEN,
		PositionFA: req.PositionFA,
		Email:      req.Email,
		Phone:      req.Phone,
		BioEN:      req.BioEN,
		BioFA:      req.BioFA,
	}
	if err := member.Validate(); err != nil {
		h.respondErr(c, err)
		return
	}

	id, err := h.deps.Team.Create(c.Request.Context(), &member)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	created, err := h.deps.Team.Get(c.Request.Context(), id)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Collection(c.Request.Context(), resourceTeam)
	c.JSON(http.StatusCreated, toTeamMemberResponse(created))
}

func (h *Handler) updateTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	patch := domain.TeamMemberPatch{
		NameEN:     req.NameEN,
		NameFA:     req.NameFA,
		PositionEN: req.PositionEN,
		PositionFA: req.PositionFA,
		Email:      req.Email,
		Phone:      req.Phone,
		BioEN:      req.BioEN,
		BioFA:      req.BioFA,
	}

	updated, err := h.deps.Team.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.respondErr(c, err)
		return
	}

	h.deps.Inval.Entity(c.Request.Context(), resourceTeam, id)
	c.JSON(http.StatusOK, toTeamMemberResponse(updated))
}

func (h *Handler) deleteTeamMember(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.deps.Team.Delete(c.Request.Context(), id); err != nil {
		h.respondErr(c, err)
		return
	}
	h.deps.Inval.Entity(c.Request.Context(), resourceTeam, id)
	c.Status(http.StatusNoContent)
}

func (h *Handler) uploadTeamImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.uploadImage(c, h.deps.Team, resourceTeam, id)
}
