package queries_test

import (
	"testing"
	"time"

	"foodorder/internal/adapters/out/memory"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/review"
	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

var (
	pizzaID = kernel.NewUUID()
	soupID  = kernel.NewUUID()
	t0      = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

type QueriesSuite struct {
	suite.Suite
	store *memory.Store
}

func TestQueriesSuite(t *testing.T) {
	suite.Run(t, new(QueriesSuite))
}

func (s *QueriesSuite) SetupTest() {
	s.store = memory.NewStore()
}

func (s *QueriesSuite) addOrder(customerID kernel.UUID, at time.Time) *order.Order {
	pizza, err := order.NewLineItem(pizzaID, "Pizza", 2, kernel.MustMoney("10.00"))
	s.Require().NoError(err)
	soup, err := order.NewLineItem(soupID, "Soup", 1, kernel.MustMoney("5.00"))
	s.Require().NoError(err)
	payment, err := order.NewPayment("")
	s.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.LineItem{pizza, soup}, "221B Baker Street", payment, at)
	s.Require().NoError(err)
	s.Require().NoError(s.store.OrderRepository().Add(s.T().Context(), o))
	return o
}

func (s *QueriesSuite) addCourier(name string, at time.Time) *courier.Courier {
	c, err := courier.NewCourier(kernel.NewUUID(), name, name+"@example.com", "89001234567", "hash", at)
	s.Require().NoError(err)
	s.Require().NoError(s.store.CourierRepository().Add(s.T().Context(), c))
	return c
}

func (s *QueriesSuite) hand(o *order.Order, c *courier.Courier) {
	ctx := s.T().Context()
	s.Require().NoError(o.AssignCourier(c.ID(), t0))
	s.Require().NoError(c.Claim(o.ID()))
	s.Require().NoError(s.store.OrderRepository().Update(ctx, o))
	s.Require().NoError(s.store.CourierRepository().Update(ctx, c))
}

func (s *QueriesSuite) TestGetOrder_OwnerAndStaffOnly() {
	ctx := s.T().Context()
	owner := kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleCustomer}
	o := s.addOrder(owner.UserID, t0)
	handler := queries.NewGetOrderQueryHandler(s.store.OrderRepository())

	query, err := queries.NewGetOrderQuery(owner, o.ID())
	s.Require().NoError(err)
	view, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.True(view.Total.Equal(decimal.RequireFromString("25.00")))
	s.Equal("pending", view.Status)
	s.Equal("Cash", view.PaymentMethod)
	s.Len(view.Items, 2)

	chief := kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleKitchenChief}
	query, _ = queries.NewGetOrderQuery(chief, o.ID())
	_, err = handler.Handle(ctx, query)
	s.NoError(err)

	stranger := kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleCustomer}
	query, _ = queries.NewGetOrderQuery(stranger, o.ID())
	_, err = handler.Handle(ctx, query)
	s.ErrorIs(err, errs.ErrAccessDenied)

	query, _ = queries.NewGetOrderQuery(owner, kernel.NewUUID())
	_, err = handler.Handle(ctx, query)
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueriesSuite) TestListCustomerOrders_NewestFirst() {
	me := kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleCustomer}
	older := s.addOrder(me.UserID, t0)
	newer := s.addOrder(me.UserID, t0.Add(time.Minute))
	s.addOrder(kernel.NewUUID(), t0)

	query, err := queries.NewListCustomerOrdersQuery(me)
	s.Require().NoError(err)
	views, err := queries.NewListCustomerOrdersQueryHandler(s.store.OrderRepository()).Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Equal(newer.ID(), views[0].ID)
	s.Equal(older.ID(), views[1].ID)
}

func (s *QueriesSuite) TestListAllOrders_StaffOnly() {
	s.addOrder(kernel.NewUUID(), t0)
	s.addOrder(kernel.NewUUID(), t0.Add(time.Second))

	_, err := queries.NewListAllOrdersQuery(kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleCourier})
	s.ErrorIs(err, errs.ErrAccessDenied)

	query, err := queries.NewListAllOrdersQuery(kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleAdmin})
	s.Require().NoError(err)
	views, err := queries.NewListAllOrdersQueryHandler(s.store.OrderRepository()).Handle(s.T().Context(), query)
	s.Require().NoError(err)
	s.Len(views, 2)
}

func (s *QueriesSuite) TestListOpenOrders_OldestFirstWithSummary() {
	second := s.addOrder(kernel.NewUUID(), t0.Add(time.Minute))
	first := s.addOrder(kernel.NewUUID(), t0)
	taken := s.addOrder(kernel.NewUUID(), t0.Add(-time.Minute))
	s.hand(taken, s.addCourier("bob", t0))

	query, err := queries.NewListOpenOrdersQuery(kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleCourier})
	s.Require().NoError(err)
	views, err := queries.NewListOpenOrdersQueryHandler(s.store.OrderRepository()).Handle(s.T().Context(), query)

	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Equal(first.ID(), views[0].ID)
	s.Equal(second.ID(), views[1].ID)
	s.Equal("2x Pizza, 1x Soup", views[0].ItemsSummary)

	_, err = queries.NewListOpenOrdersQuery(kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleCustomer})
	s.ErrorIs(err, errs.ErrAccessDenied)
}

func (s *QueriesSuite) TestGetActiveDelivery() {
	ctx := s.T().Context()
	handler := queries.NewGetActiveDeliveryQueryHandler(s.store.CourierRepository(), s.store.OrderRepository())
	c := s.addCourier("bob", t0)
	actor := kernel.Actor{UserID: c.ID(), Role: kernel.RoleCourier}

	query, err := queries.NewGetActiveDeliveryQuery(actor)
	s.Require().NoError(err)
	resp, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.False(resp.Active)
	s.Nil(resp.Order)

	o := s.addOrder(kernel.NewUUID(), t0)
	s.hand(o, c)

	resp, err = handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.True(resp.Active)
	s.Require().NotNil(resp.Order)
	s.Equal(o.ID(), resp.Order.ID)
	s.Equal("onTheWay", resp.Order.Status)
}

func (s *QueriesSuite) TestListCouriers() {
	ctx := s.T().Context()
	busy := s.addCourier("zed", t0)
	s.addCourier("amy", t0.Add(time.Minute))
	s.hand(s.addOrder(kernel.NewUUID(), t0), busy)
	admin := kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleAdmin}
	handler := queries.NewListCouriersQueryHandler(s.store.CourierRepository())

	query, err := queries.NewListCouriersQuery(admin, false)
	s.Require().NoError(err)
	all, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("amy", all[0].Name)
	s.Equal("busy", all[1].Status)

	query, _ = queries.NewListCouriersQuery(admin, true)
	available, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Require().Len(available, 1)
	s.Equal("amy", available[0].Name)

	_, err = queries.NewListCouriersQuery(kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleKitchenChief}, false)
	s.ErrorIs(err, errs.ErrAccessDenied)
}

func (s *QueriesSuite) TestListItemReviews() {
	ctx := s.T().Context()
	handler := queries.NewListItemReviewsQueryHandler(s.store.ReviewRepository())
	query, err := queries.NewListItemReviewsQuery(pizzaID)
	s.Require().NoError(err)

	empty, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Zero(empty.Count)
	s.True(empty.Average.IsZero())
	s.Empty(empty.Reviews)

	c := s.addCourier("bob", t0)
	for i, rating := range []int{5, 4, 4} {
		customerID := kernel.NewUUID()
		o := s.addOrder(customerID, t0)
		s.hand(o, c)
		s.Require().NoError(o.Deliver(t0))
		s.Require().NoError(c.Release(o.ID()))
		s.Require().NoError(s.store.OrderRepository().Update(ctx, o))
		s.Require().NoError(s.store.CourierRepository().Update(ctx, c))

		r, err := review.NewReview(kernel.NewUUID(), o, customerID, pizzaID, rating, "", t0.Add(time.Duration(i)*time.Minute))
		s.Require().NoError(err)
		s.Require().NoError(s.store.ReviewRepository().Add(ctx, r))
	}

	resp, err := handler.Handle(ctx, query)
	s.Require().NoError(err)
	s.Equal(3, resp.Count)
	s.Equal("4.3", resp.Average.String())
	s.Require().Len(resp.Reviews, 3)
	s.Equal(4, resp.Reviews[0].Rating)
	s.Equal(5, resp.Reviews[2].Rating)
}
