// Package server exposes the validation library over a small HTTP API.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/daniss/frenchInvoice/internal/compliance"
	"github.com/daniss/frenchInvoice/internal/identifier"
	"github.com/daniss/frenchInvoice/internal/logger"
	"github.com/daniss/frenchInvoice/internal/lookup"
	"github.com/daniss/frenchInvoice/internal/model"
	"github.com/daniss/frenchInvoice/internal/validation"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool

	// Rules overrides the mandate schedule; nil means defaults.
	Rules *compliance.Rules

	// Cities and Registry override the lookup backends. Nil gets the
	// static fixtures.
	Cities   lookup.CityDirectory
	Registry lookup.BusinessRegistry

	Log *logger.Logger
}

// Server represents the HTTP API server
type Server struct {
	config   *Config
	router   *gin.Engine
	resolver *compliance.Resolver
	cities   lookup.CityDirectory
	registry lookup.BusinessRegistry
	log      *logger.Logger
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	rules := compliance.DefaultRules()
	if config.Rules != nil {
		rules = *config.Rules
	}

	cities := config.Cities
	if cities == nil {
		cities = lookup.NewStaticCityDirectory(nil)
	}
	registry := config.Registry
	if registry == nil {
		registry = lookup.NewStaticBusinessRegistry(nil)
	}

	lg := config.Log
	if lg == nil {
		lg = logger.NewNop()
	}

	s := &Server{
		config:   config,
		router:   router,
		resolver: compliance.NewResolver(rules),
		cities:   cities,
		registry: registry,
		log:      lg,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/validate/:kind/:value", s.handleValidateIdentifier)
		v1.GET("/format/:kind/:value", s.handleFormatIdentifier)

		v1.POST("/business/validate", s.handleValidateBusiness)
		v1.POST("/invoice/validate", s.handleValidateInvoice)
		v1.POST("/compliance/deadline", s.handleDeadline)

		v1.GET("/city/:postalCode", s.handleCity)
		v1.GET("/registry/:siren", s.handleRegistry)
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
	s.log.Info().Str("addr", s.config.Address).Msg("starting HTTP server")
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

// handleValidateIdentifier validates one identifier. Failed validation
// is still 200 with is_valid false; 400 is reserved for unknown kinds.
func (s *Server) handleValidateIdentifier(c *gin.Context) {
	value := c.Param("value")

	switch c.Param("kind") {
	case "siren":
		c.JSON(http.StatusOK, identifier.ValidateSiren(value))
	case "siret":
		c.JSON(http.StatusOK, identifier.ValidateSiret(value))
	case "vat":
		c.JSON(http.StatusOK, identifier.ValidateVat(value))
	case "iban":
		c.JSON(http.StatusOK, identifier.ValidateIban(value))
	case "postal":
		c.JSON(http.StatusOK, identifier.ValidatePostalCode(value))
	case "phone":
		c.JSON(http.StatusOK, identifier.ValidatePhone(value))
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown identifier kind"})
	}
}

func (s *Server) handleFormatIdentifier(c *gin.Context) {
	value := c.Param("value")

	var formatted string
	switch c.Param("kind") {
	case "siren":
		formatted = identifier.FormatSiren(value)
	case "siret":
		formatted = identifier.FormatSiret(value)
	case "vat":
		formatted = identifier.FormatVat(value)
	case "iban":
		formatted = identifier.FormatIban(value)
	case "postal":
		formatted = identifier.FormatPostalCode(value)
	case "phone":
		formatted = identifier.FormatPhone(value)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown identifier kind"})
		return
	}

	c.JSON(http.StatusOK, FormatResponse{Input: value, Formatted: formatted})
}

func (s *Server) handleValidateBusiness(c *gin.Context) {
	var data validation.BusinessData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, validation.ValidateBusinessData(data))
}

func (s *Server) handleValidateInvoice(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	inv := req.Invoice
	if req.Recompute {
		inv.ComputeTotals()
	}

	c.JSON(http.StatusOK, InvoiceResponse{
		Invoice: inv,
		Result:  inv.Validate(),
	})
}

func (s *Server) handleDeadline(c *gin.Context) {
	var company model.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, s.resolver.Resolve(&company, time.Now().UTC()))
}

func (s *Server) handleCity(c *gin.Context) {
	city, err := s.cities.City(c.Request.Context(), c.Param("postalCode"))
	if err != nil {
		if errors.Is(err, lookup.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "postal code not found"})
			return
		}
		s.log.Error().Err(err).Msg("city lookup failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "city directory unavailable"})
		return
	}

	c.JSON(http.StatusOK, city)
}

func (s *Server) handleRegistry(c *gin.Context) {
	entry, err := s.registry.Lookup(c.Request.Context(), c.Param("siren"))
	if err != nil {
		if errors.Is(err, lookup.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "SIREN not found"})
			return
		}
		s.log.Error().Err(err).Msg("registry lookup failed")
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "business registry unavailable"})
		return
	}

	c.JSON(http.StatusOK, entry)
}
