// Package web contains the storefront's HTTP surface: per-resource form
// handlers rendering HTML views, plus two JSON endpoints for client-side
// lookups. All business decisions happen in the remote shop API; handlers
// validate input, call the typed client and pick the next view or redirect.
package web

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/retailops/storefront/internal/metrics"
	"github.com/retailops/storefront/internal/shopapi"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Server wires the shop API client into the gin router.
type Server struct {
	api *shopapi.Client
	log zerolog.Logger
}

// Config configures the web server.
type Config struct {
	API           *shopapi.Client
	Logger        zerolog.Logger
	SessionSecret string
	Production    bool
}

// New builds the router with all routes, middleware and views registered.
func New(cfg Config) (*Server, *gin.Engine) {
	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{api: cfg.API, log: cfg.Logger}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(cfg.Logger))
	r.Use(metrics.Middleware())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int((12 * time.Hour).Seconds()),
	})
	r.Use(sessions.Sessions("storefront", store))

	r.SetHTMLTemplate(template.Must(template.ParseFS(templateFS, "templates/*.tmpl")))

	s.routes(r)
	return s, r
}

func (s *Server) routes(r *gin.Engine) {
	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/orders")
	})

	customers := r.Group("/customers")
	{
		customers.GET("", s.listCustomers)
		customers.GET("/new", s.newCustomerForm)
		customers.POST("", s.createCustomer)
		customers.GET("/:id/edit", s.editCustomerForm)
		customers.POST("/:id", s.updateCustomer)
		customers.POST("/:id/delete", s.deleteCustomer)
	}

	products := r.Group("/products")
	{
		products.GET("", s.listProducts)
		products.GET("/new", s.newProductForm)
		products.POST("", s.createProduct)
		products.GET("/:id/edit", s.editProductForm)
		products.POST("/:id", s.updateProduct)
		products.POST("/:id/delete", s.deleteProduct)
	}

	orders := r.Group("/orders")
	{
		orders.GET("", s.listOrders)
		orders.GET("/new", s.newOrderForm)
		orders.POST("", s.createOrder)
		orders.POST("/:id/delete", s.deleteOrder)
		orders.GET("/:id/proof", s.proofOfPaymentForm)
		orders.POST("/:id/proof", s.uploadProofOfPayment)
	}

	api := r.Group("/api")
	{
		api.GET("/products/:id/info", s.productInfo)
		api.POST("/orders/:id/status", s.updateOrderStatus)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "storefront",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// render draws a view, attaching any pending flash messages.
func (s *Server) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = popFlashes(c)
	}
	c.HTML(status, name, data)
}
