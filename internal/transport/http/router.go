package rest

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
	"github.com/Gunvolt24/moa_wifi/internal/usecase"
	"github.com/Gunvolt24/moa_wifi/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// genericDenial — единый текст отказа для портала: не раскрываем,
// что именно не совпало (номер, фамилия или бронь).
const genericDenial = "Invalid room number or guest name"

type Handler struct {
	access ports.AccessManager
	admin  ports.AdminService
	log    ports.Logger
}

func NewHandler(access ports.AccessManager, admin ports.AdminService, log ports.Logger) *Handler {
	return &Handler{access: access, admin: admin, log: log}
}

func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Портал hotspot'а.
	r.POST("/authenticate", h.authenticate)

	// Админ-интерфейс.
	api := r.Group("/api")
	{
		api.GET("/devices", h.listDevices)
		api.GET("/rooms", h.listRooms)
		api.GET("/reservations", h.listReservations)
		api.GET("/cache/stats", h.cacheStats)
		api.POST("/cache/purge", h.purgeCache)
	}

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "login.html"))
	}

	return r
}

// authForm — поля формы hotspot-портала. Имена полей повторяют форму
// RADIUS-логина роутера: username = номер комнаты, radius1 = фамилия,
// radius2 = профиль скорости.
type authForm struct {
	Username string `form:"username"`
	Radius1  string `form:"radius1"`
	Radius2  string `form:"radius2"`
	MAC      string `form:"mac"`
	Dst      string `form:"dst"`
}

func (h *Handler) authenticate(c *gin.Context) {
	var form authForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed form"})
		return
	}

	grant, err := h.access.Authenticate(c.Request.Context(), domain.AccessRequest{
		MAC:        form.MAC,
		RoomNumber: form.Username,
		Surname:    form.Radius1,
		FastMode:   form.Radius2 == "fast",
	})
	switch {
	case err == nil:
		// Hotspot-клиент после выдачи доступа уходит на исходный адрес.
		if form.Dst != "" {
			c.Redirect(http.StatusFound, form.Dst)
			return
		}
		c.JSON(http.StatusOK, grant)
	case errors.Is(err, usecase.ErrBadRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": genericDenial})
	case errors.Is(err, usecase.ErrUnknownRoom), errors.Is(err, usecase.ErrNotAGuest):
		// Один и тот же ответ на оба случая, чтобы не давать перебирать номера.
		c.JSON(http.StatusForbidden, gin.H{"error": genericDenial})
	default:
		h.log.Errorf(c.Request.Context(), "authenticate failed mac=%s err=%v", form.MAC, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) listDevices(c *gin.Context) {
	limit, offset := httpx.ParseLimitOffset(c, 50, 200)

	devices, err := h.admin.Devices(c.Request.Context(), limit, offset)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "Devices failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, devices)
}

func (h *Handler) listRooms(c *gin.Context) {
	rooms, err := h.admin.Rooms(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "Rooms failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func (h *Handler) listReservations(c *gin.Context) {
	reservations, err := h.admin.TodaysReservations(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "TodaysReservations failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (h *Handler) cacheStats(c *gin.Context) {
	stats, err := h.admin.CacheStats(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "CacheStats failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *Handler) purgeCache(c *gin.Context) {
	purged, err := h.admin.PurgeCache(c.Request.Context())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "PurgeCache failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"purged": purged})
}
