package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cfg "subs_reconciler/internal/config"
	"subs_reconciler/internal/entity"
	"subs_reconciler/internal/entity/generated"
	"subs_reconciler/internal/gateways/http/mw"
	"subs_reconciler/internal/usecase"
)

func setupRouter(r *gin.Engine, c cfg.Config, u UseCases, mon Monitoring) {
	r.HandleMethodNotAllowed = true

	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	if c.Metrics.Enabled && mon.Gatherer != nil {
		r.GET(c.Metrics.Path, gin.WrapH(promhttp.HandlerFor(mon.Gatherer, promhttp.HandlerOpts{})))
	}

	webhookPath := c.Server.WebhookPath
	if webhookPath == "" {
		webhookPath = "/webhook"
	}
	setupWebhook(r, webhookPath, u)

	{
		v1 := r.Group("api/v1/")
		setupCustomers(v1, u)
		setupCustomersId(v1, u)
		setupSubscriptionsId(v1, u)
	}
}

// setupWebhook registers the provider callback. Status codes drive provider retries:
// 400 never retried, 500 retried, 200 for everything accepted including no-ops.
func setupWebhook(r *gin.Engine, path string, u UseCases) {
	r.POST(path, func(c *gin.Context) {
		var input generated.WebhookEvent
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook payload"})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// the provider may hang up early; the event still has to finish
		ctx := context.WithoutCancel(c.Request.Context())
		res, err := u.Reconciler.Handle(ctx, toWebhookEvent(&input))
		c.Set(mw.ActionKey, string(res.Action))

		switch res.Outcome {
		case usecase.OutcomeRejected:
			msg := "invalid webhook payload"
			if err != nil {
				msg = err.Error()
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		case usecase.OutcomeFailed:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "webhook handling error"})
		default:
			c.JSON(http.StatusOK, gin.H{"received": true, "action": res.Action})
		}
	})

	r.OPTIONS(path, func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "POST,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

func setupCustomers(r *gin.RouterGroup, u UseCases) {
	r.GET("/customers", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		customers, err := u.Customer.ListCustomers(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		resp := make([]generated.Customer, 0, len(customers))
		for _, cu := range customers {
			resp = append(resp, toCustomerResponse(cu))
		}
		c.JSON(http.StatusOK, resp)
	})

	r.POST("/customers", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		if c.ContentType() != "" && c.ContentType() != "application/json" {
			c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "Use application/json"})
			return
		}

		var input generated.CustomerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := input.Validate(strfmt.Default); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		created, err := u.Customer.RegisterCustomer(c, &entity.Customer{
			Name:    *input.Name,
			Surname: *input.Surname,
			Email:   input.Email.String(),
		})
		switch {
		case errors.Is(err, usecase.ErrInvalidCustomer):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusCreated, toCustomerResponse(created))
	})

	r.OPTIONS("/customers", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "GET,POST,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

func setupCustomersId(r *gin.RouterGroup, u UseCases) {
	methodNA := func(c *gin.Context) {
		c.Header("Allow", "GET,DELETE,OPTIONS")
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	}
	for _, m := range []string{
		http.MethodPut,
		http.MethodPatch,
	} {
		r.Handle(m, "/customers/:id", methodNA)
	}

	r.GET("/customers/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
			return
		}

		customer, err := u.Customer.GetCustomerByID(c, id)
		if !writeCustomerErr(c, err) {
			return
		}
		c.JSON(http.StatusOK, toCustomerResponse(customer))
	})

	r.DELETE("/customers/:id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
			return
		}

		deleted, err := u.Customer.DeleteCustomer(c, id)
		if !writeCustomerErr(c, err) {
			return
		}
		c.JSON(http.StatusOK, toCustomerResponse(deleted))
	})

	r.OPTIONS("/customers/:id", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "GET,DELETE,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

// writeCustomerErr maps a customer use case error onto the response; false means it wrote one
func writeCustomerErr(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, usecase.ErrInvalidID):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
	case errors.Is(err, usecase.ErrCustomerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
	return false
}

func setupSubscriptionsId(r *gin.RouterGroup, u UseCases) {
	r.GET("/subscriptions/:sub_id", func(c *gin.Context) {
		if !requireAcceptJSON(c) {
			return
		}

		sub, err := u.Sub.GetSubByProviderID(c, c.Param("sub_id"))
		switch {
		case errors.Is(err, usecase.ErrInvalidID):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid id"})
			return
		case errors.Is(err, usecase.ErrSubscriptionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toSubscriptionResponse(sub))
	})

	r.OPTIONS("/subscriptions/:sub_id", func(c *gin.Context) {
		c.Writer.Header().Set("Allow", "GET,OPTIONS")
		c.Status(http.StatusNoContent)
	})
}

func acceptsJSON(h string) bool {
	if h == "" || h == "*/*" {
		return true
	}
	parts := strings.Split(h, ",")
	for _, p := range parts {
		mt := strings.TrimSpace(strings.SplitN(p, ";", 2)[0])
		if mt == "application/json" || mt == "*/*" {
			return true
		}
	}
	return false
}

func requireAcceptJSON(c *gin.Context) bool {
	if acceptsJSON(c.GetHeader("Accept")) {
		return true
	}
	c.JSON(http.StatusNotAcceptable, gin.H{"error": "Accept application/json only"})
	return false
}
