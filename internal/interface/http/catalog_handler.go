package handlers

import (
	"context"
	"maps"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/blinkmaid-backend/internal/application"
	"github.com/oksasatya/blinkmaid-backend/internal/domain/entity"
	"github.com/oksasatya/blinkmaid-backend/pkg/response"
)

// Resource is the set of CRUD handlers for one admin collection.
type Resource struct {
	List   gin.HandlerFunc
	Get    gin.HandlerFunc
	Create gin.HandlerFunc
	Update gin.HandlerFunc
	Delete gin.HandlerFunc
}

// crud adapts service methods over T to gin handlers. defaults seeds a new item before
// the body is decoded; setID stamps the path id onto the item.
type crud[T any] struct {
	name   string
	list   func(context.Context) ([]T, error)
	get    func(context.Context, int64) (*T, error)
	create func(context.Context, *T) error
	update func(context.Context, *T) error
	del    func(context.Context, int64) error
	setID    func(*T, int64)
	defaults func(*T)
	logger   *logrus.Logger
}

func (r crud[T]) resource() Resource {
	return Resource{
		List: func(c *gin.Context) {
			items, err := r.list(c.Request.Context())
			if err != nil {
				respondError(c, r.logger, err)
				return
			}
			response.Success(c, http.StatusOK, items, r.name, map[string]any{"count": len(items)})
		},
		Get: func(c *gin.Context) {
			id, ok := pathID(c)
			if !ok {
				return
			}
			item, err := r.get(c.Request.Context(), id)
			if err != nil {
				respondError(c, r.logger, err)
				return
			}
			response.Success(c, http.StatusOK, item, r.name, nil)
		},
		Create: func(c *gin.Context) {
			var item T
			if r.defaults != nil {
				r.defaults(&item)
			}
			if err := c.ShouldBindJSON(&item); err != nil {
				invalidPayload(c, err)
				return
			}
			r.setID(&item, 0)
			if err := r.create(c.Request.Context(), &item); err != nil {
				respondError(c, r.logger, err)
				return
			}
			response.Success(c, http.StatusCreated, item, r.name+" created", nil)
		},
		Update: func(c *gin.Context) {
			id, ok := pathID(c)
			if !ok {
				return
			}
			// omitted fields keep their stored values
			stored, err := r.get(c.Request.Context(), id)
			if err != nil {
				respondError(c, r.logger, err)
				return
			}
			item := *stored
			r.setID(&item, id)
			if err := c.ShouldBindJSON(&item); err != nil {
				invalidPayload(c, err)
				return
			}
			r.setID(&item, id)
			if err := r.update(c.Request.Context(), &item); err != nil {
				respondError(c, r.logger, err)
				return
			}
			response.Success(c, http.StatusOK, item, r.name+" updated", nil)
		},
		Delete: func(c *gin.Context) {
			id, ok := pathID(c)
			if !ok {
				return
			}
			if err := r.del(c.Request.Context(), id); err != nil {
				respondError(c, r.logger, err)
				return
			}
			c.Status(http.StatusNoContent)
		},
	}
}

// CatalogHandler serves the admin reference data collections.
type CatalogHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

func (h *CatalogHandler) States() Resource {
	return crud[entity.State]{
		name: "state", logger: h.Logger,
		list: h.Svc.ListStates, get: h.Svc.GetState,
		create: h.Svc.CreateState, update: h.Svc.UpdateState, del: h.Svc.DeleteState,
		setID:    func(s *entity.State, id int64) { s.ID = id },
		defaults: func(s *entity.State) { s.Active = true },
	}.resource()
}

func (h *CatalogHandler) Cities() Resource {
	return crud[entity.City]{
		name: "city", logger: h.Logger,
		list: h.Svc.ListCities, get: h.Svc.GetCity,
		create: h.Svc.CreateCity, update: h.Svc.UpdateCity, del: h.Svc.DeleteCity,
		setID:    func(c *entity.City, id int64) { c.ID = id },
		defaults: func(c *entity.City) { c.Active = true },
	}.resource()
}

func (h *CatalogHandler) Services() Resource {
	return crud[entity.Service]{
		name: "service", logger: h.Logger,
		list: h.Svc.ListServices, get: h.Svc.GetService,
		create: h.Svc.CreateService, update: h.Svc.UpdateService, del: h.Svc.DeleteService,
		setID: func(s *entity.Service, id int64) {
			s.ID = id
			s.Options = nil
			s.OptionalFields = maps.Clone(s.OptionalFields)
		},
		defaults: func(s *entity.Service) { s.Active = true },
	}.resource()
}

func (h *CatalogHandler) Options() Resource {
	return crud[entity.ServiceOption]{
		name: "service option", logger: h.Logger,
		list: h.Svc.ListOptions, get: h.Svc.GetOption,
		create: h.Svc.CreateOption, update: h.Svc.UpdateOption, del: h.Svc.DeleteOption,
		setID: func(o *entity.ServiceOption, id int64) { o.ID = id },
	}.resource()
}

func (h *CatalogHandler) Plans() Resource {
	return crud[entity.SubscriptionPlan]{
		name: "subscription plan", logger: h.Logger,
		list: h.Svc.ListPlans, get: h.Svc.GetPlan,
		create: h.Svc.CreatePlan, update: h.Svc.UpdatePlan, del: h.Svc.DeletePlan,
		setID:    func(p *entity.SubscriptionPlan, id int64) { p.ID = id },
		defaults: func(p *entity.SubscriptionPlan) { p.Active = true },
	}.resource()
}
