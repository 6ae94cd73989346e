// Package server exposes the SDK as a small JSON HTTP facade, for services
// that want to talk to Cetustek without linking the Go client directly.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rezonia/cetustek-go/internal/client"
	"github.com/rezonia/cetustek-go/internal/model"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Invoicer is the slice of the SDK client the facade needs.
type Invoicer interface {
	CreateInvoice(ctx context.Context, in model.CreateInvoiceInput) (*model.CreateInvoiceResponse, error)
	QueryInvoice(ctx context.Context, in model.QueryInvoiceInput) (*model.QueryInvoiceResponse, error)
	CancelInvoice(ctx context.Context, in model.CancelInvoiceInput, opts ...client.CancelOption) (*model.CancelInvoiceResponse, error)
}

// Server represents the HTTP facade
type Server struct {
	config   *Config
	router   *gin.Engine
	invoicer Invoicer
	log      logrus.FieldLogger
}

// NewServer creates a new facade server around an SDK client.
func NewServer(config *Config, invoicer Invoicer, log logrus.FieldLogger) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config:   config,
		router:   router,
		invoicer: invoicer,
		log:      log,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/invoices", s.handleCreate)
		v1.GET("/invoices/:year/:number", s.handleQuery)
		v1.POST("/invoices/:year/:number/cancel", s.handleCancel)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleCreate(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	in := req.ToModel()
	resp, err := s.invoicer.CreateInvoice(c.Request.Context(), in)
	if err != nil {
		s.renderError(c, err)
		return
	}

	sales, tax, total := in.Totals()
	s.log.WithFields(logrus.Fields{
		"order_id":       in.OrderID,
		"invoice_number": resp.InvoiceNumber,
	}).Info("invoice created")

	c.JSON(http.StatusOK, CreateInvoiceReply{
		InvoiceNumber: resp.InvoiceNumber,
		RandomCode:    resp.RandomCode,
		InvoiceYear:   resp.InvoiceYear(),
		SalesAmount:   sales,
		TaxAmount:     tax,
		TotalAmount:   total,
	})
}

func (s *Server) handleQuery(c *gin.Context) {
	in := model.QueryInvoiceInput{
		InvoiceNumber: c.Param("number"),
		InvoiceYear:   c.Param("year"),
	}

	resp, err := s.invoicer.QueryInvoice(c.Request.Context(), in)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, newQueryInvoiceReply(resp))
}

func (s *Server) handleCancel(c *gin.Context) {
	var req CancelInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	in := model.CancelInvoiceInput{
		InvoiceNumber:           c.Param("number"),
		InvoiceYear:             c.Param("year"),
		Remark:                  req.Remark,
		ReturnTaxDocumentNumber: req.ReturnTaxDocumentNumber,
	}

	var opts []client.CancelOption
	if req.NoCheck {
		opts = append(opts, client.WithNoCheck())
	}

	resp, err := s.invoicer.CancelInvoice(c.Request.Context(), in, opts...)
	if err != nil {
		s.renderError(c, err)
		return
	}

	s.log.WithFields(logrus.Fields{
		"invoice_number": in.InvoiceNumber,
		"code":           resp.Code,
		"success":        resp.Success,
	}).Info("invoice cancellation processed")

	c.JSON(http.StatusOK, CancelInvoiceReply{
		Success: resp.Success,
		Code:    resp.Code,
		Message: resp.Message,
	})
}

// renderError maps SDK errors onto HTTP statuses: validation problems are the
// caller's fault, vendor rejects are unprocessable, transport trouble is a
// bad gateway.
func (s *Server) renderError(c *gin.Context, err error) {
	var verr *model.ValidationError
	var aerr *model.APIError
	var terr *model.TransportError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Error(), "field": verr.Field})
	case errors.As(err, &aerr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": aerr.Error(), "code": aerr.Code})
	case errors.As(err, &terr):
		s.log.WithError(terr).Warn("vendor transport failure")
		c.JSON(http.StatusBadGateway, gin.H{"error": terr.Error()})
	default:
		s.log.WithError(err).Error("unexpected failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
