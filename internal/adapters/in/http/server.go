// Package http is the echo transport layer. It binds requests, resolves the
// acting user from the session cookie, dispatches to command and query
// handlers, and maps domain errors to HTTP statuses. No business rules live
// here.
package http

import (
	"log/slog"
	"net/http"

	"scribeassist/internal/core/application/usecases/commands"
	"scribeassist/internal/core/application/usecases/queries"
	"scribeassist/internal/core/domain/services"
	"scribeassist/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrder         commands.CreateOrderCommandHandler
	updateOrderContent  commands.UpdateOrderContentCommandHandler
	changeOrderStatus   commands.ChangeOrderStatusCommandHandler
	changePaymentStatus commands.ChangePaymentStatusCommandHandler
	assignWriter        commands.AssignWriterCommandHandler
	cancelOrder         commands.CancelOrderCommandHandler
	deleteOrder         commands.DeleteOrderCommandHandler
	createInquiry       commands.CreateInquiryCommandHandler
	updateInquiry       commands.UpdateInquiryCommandHandler
	deleteInquiry       commands.DeleteInquiryCommandHandler
	createPost          commands.CreatePostCommandHandler
	updatePost          commands.UpdatePostCommandHandler
	registerCustomer    commands.RegisterCustomerCommandHandler

	getOrders         queries.GetOrdersQueryHandler
	getOrder          queries.GetOrderQueryHandler
	getInquiries      queries.GetInquiriesQueryHandler
	getPosts          queries.GetPostsQueryHandler
	getPostBySlug     queries.GetPostBySlugQueryHandler
	getDashboardStats queries.GetDashboardStatsQueryHandler

	users    ports.UserRepository
	sessions ports.SessionStore
	pricing  services.PricingEngine
	logger   *slog.Logger
}

// ServerParams carries the dependencies for NewServer.
type ServerParams struct {
	CreateOrder         commands.CreateOrderCommandHandler
	UpdateOrderContent  commands.UpdateOrderContentCommandHandler
	ChangeOrderStatus   commands.ChangeOrderStatusCommandHandler
	ChangePaymentStatus commands.ChangePaymentStatusCommandHandler
	AssignWriter        commands.AssignWriterCommandHandler
	CancelOrder         commands.CancelOrderCommandHandler
	DeleteOrder         commands.DeleteOrderCommandHandler
	CreateInquiry       commands.CreateInquiryCommandHandler
	UpdateInquiry       commands.UpdateInquiryCommandHandler
	DeleteInquiry       commands.DeleteInquiryCommandHandler
	CreatePost          commands.CreatePostCommandHandler
	UpdatePost          commands.UpdatePostCommandHandler
	RegisterCustomer    commands.RegisterCustomerCommandHandler

	GetOrders         queries.GetOrdersQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetInquiries      queries.GetInquiriesQueryHandler
	GetPosts          queries.GetPostsQueryHandler
	GetPostBySlug     queries.GetPostBySlugQueryHandler
	GetDashboardStats queries.GetDashboardStatsQueryHandler

	Users    ports.UserRepository
	Sessions ports.SessionStore
	Pricing  services.PricingEngine
	Logger   *slog.Logger
}

// NewServer creates the HTTP server with all its use case handlers.
func NewServer(p ServerParams) *Server {
	return &Server{
		createOrder:         p.CreateOrder,
		updateOrderContent:  p.UpdateOrderContent,
		changeOrderStatus:   p.ChangeOrderStatus,
		changePaymentStatus: p.ChangePaymentStatus,
		assignWriter:        p.AssignWriter,
		cancelOrder:         p.CancelOrder,
		deleteOrder:         p.DeleteOrder,
		createInquiry:       p.CreateInquiry,
		updateInquiry:       p.UpdateInquiry,
		deleteInquiry:       p.DeleteInquiry,
		createPost:          p.CreatePost,
		updatePost:          p.UpdatePost,
		registerCustomer:    p.RegisterCustomer,
		getOrders:           p.GetOrders,
		getOrder:            p.GetOrder,
		getInquiries:        p.GetInquiries,
		getPosts:            p.GetPosts,
		getPostBySlug:       p.GetPostBySlug,
		getDashboardStats:   p.GetDashboardStats,
		users:               p.Users,
		sessions:            p.Sessions,
		pricing:             p.Pricing,
		logger:              p.Logger,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance. The session
// middleware runs on every route; anonymous requests simply carry no actor.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", s.ResolveSession)

	api.POST("/pricing/calculate", s.CalculatePrice)
	api.GET("/pricing/tiers", s.GetPricingTiers)

	api.POST("/auth/register", s.Register)
	api.POST("/auth/login", s.Login)
	api.POST("/auth/logout", s.Logout)
	api.GET("/auth/me", s.Me, requireAuth)

	api.POST("/orders", s.CreateOrder, requireAuth)
	api.GET("/orders", s.GetOrders, requireAuth)
	api.GET("/orders/:id", s.GetOrder, requireAuth)
	api.PATCH("/orders/:id", s.UpdateOrderContent, requireAuth)
	api.POST("/orders/:id/cancel", s.CancelOrder, requireAuth)
	api.PUT("/orders/:id/status", s.ChangeOrderStatus, requireAuth)
	api.PUT("/orders/:id/payment", s.ChangePaymentStatus, requireAuth)
	api.PUT("/orders/:id/writer", s.AssignWriter, requireAuth)
	api.DELETE("/orders/:id", s.DeleteOrder, requireAuth)

	api.POST("/inquiries", s.CreateInquiry)
	api.GET("/inquiries", s.GetInquiries, requireAuth)
	api.PATCH("/inquiries/:id", s.UpdateInquiry, requireAuth)
	api.DELETE("/inquiries/:id", s.DeleteInquiry, requireAuth)

	api.GET("/posts", s.GetPosts)
	api.GET("/posts/:slug", s.GetPostBySlug)
	api.POST("/posts", s.CreatePost, requireAuth)
	api.PATCH("/posts/:id", s.UpdatePost, requireAuth)

	api.GET("/dashboard/stats", s.GetDashboardStats, requireAuth)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
