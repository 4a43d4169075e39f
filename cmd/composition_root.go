package cmd

import (
	"time"

	"scribeassist/internal/adapters/out/postgres"
	"scribeassist/internal/adapters/out/postgres/userrepo"
	"scribeassist/internal/core/application/usecases/commands"
	"scribeassist/internal/core/application/usecases/queries"
	"scribeassist/internal/core/domain/services"
	"scribeassist/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	pricing    services.PricingEngine
	policy     services.AccessPolicy
	clock      commands.Clock
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		pricing:    services.NewPricingEngine(),
		policy:     services.NewAccessPolicy(),
		clock:      time.Now,
	}
}

func (c *CompositionRoot) PricingEngine() services.PricingEngine {
	return c.pricing
}

func (c *CompositionRoot) UserRepository() ports.UserRepository {
	return userrepo.NewGormUserRepository(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) inquiryUoWFactory() commands.InquiryUoWFactory {
	return FuncInquiryUoWFactory(func() commands.InquiryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) postUoWFactory() commands.PostUoWFactory {
	return FuncPostUoWFactory(func() commands.PostUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.pricing, c.clock)
}

func (c *CompositionRoot) CreateUpdateOrderContentCommandHandler() commands.UpdateOrderContentCommandHandler {
	return commands.NewUpdateOrderContentCommandHandler(c.orderUoWFactory(), c.policy, c.pricing, c.clock)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory(), c.policy, c.clock)
}

func (c *CompositionRoot) CreateChangePaymentStatusCommandHandler() commands.ChangePaymentStatusCommandHandler {
	return commands.NewChangePaymentStatusCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateAssignWriterCommandHandler() commands.AssignWriterCommandHandler {
	return commands.NewAssignWriterCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateCreateInquiryCommandHandler() commands.CreateInquiryCommandHandler {
	return commands.NewCreateInquiryCommandHandler(c.inquiryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateInquiryCommandHandler() commands.UpdateInquiryCommandHandler {
	return commands.NewUpdateInquiryCommandHandler(c.inquiryUoWFactory(), c.policy, c.clock)
}

func (c *CompositionRoot) CreateDeleteInquiryCommandHandler() commands.DeleteInquiryCommandHandler {
	return commands.NewDeleteInquiryCommandHandler(c.inquiryUoWFactory(), c.policy)
}

func (c *CompositionRoot) CreateEscalateStaleInquiriesCommandHandler() commands.EscalateStaleInquiriesCommandHandler {
	return commands.NewEscalateStaleInquiriesCommandHandler(c.inquiryUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreatePostCommandHandler() commands.CreatePostCommandHandler {
	return commands.NewCreatePostCommandHandler(c.postUoWFactory(), c.policy, c.clock)
}

func (c *CompositionRoot) CreateUpdatePostCommandHandler() commands.UpdatePostCommandHandler {
	return commands.NewUpdatePostCommandHandler(c.postUoWFactory(), c.policy, c.clock)
}

func (c *CompositionRoot) CreateRegisterCustomerCommandHandler() commands.RegisterCustomerCommandHandler {
	return commands.NewRegisterCustomerCommandHandler(c.userUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetInquiriesQueryHandler() queries.GetInquiriesQueryHandler {
	return queries.NewGetInquiriesQueryHandler(c.gormDB, c.policy)
}

func (c *CompositionRoot) CreateGetPostsQueryHandler() queries.GetPostsQueryHandler {
	return queries.NewGetPostsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPostBySlugQueryHandler() queries.GetPostBySlugQueryHandler {
	return queries.NewGetPostBySlugQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardStatsQueryHandler() queries.GetDashboardStatsQueryHandler {
	return queries.NewGetDashboardStatsQueryHandler(c.gormDB, c.policy)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncInquiryUoWFactory func() commands.InquiryUoW

func (f FuncInquiryUoWFactory) Create() commands.InquiryUoW {
	return f()
}

type FuncPostUoWFactory func() commands.PostUoW

func (f FuncPostUoWFactory) Create() commands.PostUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
