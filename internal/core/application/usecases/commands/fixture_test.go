package commands_test

import (
	"testing"
	"time"

	"foodorder/internal/adapters/out/memory"
	"foodorder/internal/core/application/pricing"
	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/ports"

	"github.com/stretchr/testify/require"
)

type storeUoWFactory struct{ factory *memory.UnitOfWorkFactory }

func (f storeUoWFactory) Create() commands.UoW { return f.factory.Create() }

type storeOrderUoWFactory struct{ factory *memory.UnitOfWorkFactory }

func (f storeOrderUoWFactory) Create() commands.OrderUoW { return f.factory.Create() }

type storeCourierUoWFactory struct{ factory *memory.UnitOfWorkFactory }

func (f storeCourierUoWFactory) Create() commands.CourierUoW { return f.factory.Create() }

type storeReviewUoWFactory struct{ factory *memory.UnitOfWorkFactory }

func (f storeReviewUoWFactory) Create() commands.ReviewUoW { return f.factory.Create() }

type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "hashed:" + p, nil }

var (
	admin = kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleAdmin}
	pizza = ports.CatalogItem{ID: kernel.NewUUID(), Name: "Pizza", Price: kernel.MustMoney("10.00"), Available: true}
	soup  = ports.CatalogItem{ID: kernel.NewUUID(), Name: "Soup", Price: kernel.MustMoney("5.00"), Available: true}
	phone = "89001234567"
	w0    = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
)

// world wires command handlers to an in-memory store.
type world struct {
	t       *testing.T
	store   *memory.Store
	catalog *memory.Catalog

	createOrder   commands.CreateOrderCommandHandler
	setStatus     commands.SetOrderStatusCommandHandler
	register      commands.RegisterCourierCommandHandler
	assign        commands.AssignDeliveryCommandHandler
	complete      commands.CompleteDeliveryCommandHandler
	accept        commands.AcceptOrderCommandHandler
	markDelivered commands.MarkDeliveredCommandHandler
	addReview     commands.AddReviewCommandHandler
	dispatch      commands.DispatchOpenOrderCommandHandler
}

func newWorld(t *testing.T) *world {
	t.Helper()
	store := memory.NewStore()
	catalog := memory.NewCatalog(pizza, soup)
	pricer, err := pricing.NewValidator(catalog)
	require.NoError(t, err)

	f := store.UnitOfWorkFactory()
	return &world{
		t:             t,
		store:         store,
		catalog:       catalog,
		createOrder:   commands.NewCreateOrderCommandHandler(storeOrderUoWFactory{f}, pricer),
		setStatus:     commands.NewSetOrderStatusCommandHandler(storeUoWFactory{f}),
		register:      commands.NewRegisterCourierCommandHandler(storeCourierUoWFactory{f}, plainHasher{}),
		assign:        commands.NewAssignDeliveryCommandHandler(storeUoWFactory{f}),
		complete:      commands.NewCompleteDeliveryCommandHandler(storeUoWFactory{f}),
		accept:        commands.NewAcceptOrderCommandHandler(storeUoWFactory{f}),
		markDelivered: commands.NewMarkDeliveredCommandHandler(storeUoWFactory{f}),
		addReview:     commands.NewAddReviewCommandHandler(storeReviewUoWFactory{f}),
		dispatch:      commands.NewDispatchOpenOrderCommandHandler(storeUoWFactory{f}),
	}
}

func customer() kernel.Actor {
	return kernel.Actor{UserID: kernel.NewUUID(), Role: kernel.RoleCustomer}
}

func (w *world) placeOrder(by kernel.Actor) *order.Order {
	w.t.Helper()
	cmd, err := commands.NewCreateOrderCommand(by, []pricing.Line{
		{MenuItemID: pizza.ID, Quantity: 2},
		{MenuItemID: soup.ID, Quantity: 1},
	}, "221B Baker Street", "")
	require.NoError(w.t, err)
	o, err := w.createOrder.Handle(w.t.Context(), cmd)
	require.NoError(w.t, err)
	return o
}

// newCourier registers a courier and returns the actor they authenticate as.
func (w *world) newCourier(name string) kernel.Actor {
	w.t.Helper()
	cmd, err := commands.NewRegisterCourierCommand(admin, name, name+"@example.com", phone, "secret1", "secret1")
	require.NoError(w.t, err)
	c, err := w.register.Handle(w.t.Context(), cmd)
	require.NoError(w.t, err)
	return kernel.Actor{UserID: c.ID(), Role: kernel.RoleCourier}
}

func (w *world) acceptCmd(by kernel.Actor, orderID kernel.UUID) commands.AcceptOrderCommand {
	w.t.Helper()
	cmd, err := commands.NewAcceptOrderCommand(by, orderID)
	require.NoError(w.t, err)
	return cmd
}

func (w *world) markCmd(by kernel.Actor, orderID kernel.UUID) commands.MarkDeliveredCommand {
	w.t.Helper()
	cmd, err := commands.NewMarkDeliveredCommand(by, orderID)
	require.NoError(w.t, err)
	return cmd
}

func (w *world) order(id kernel.UUID) *order.Order {
	w.t.Helper()
	o, err := w.store.OrderRepository().Get(w.t.Context(), id)
	require.NoError(w.t, err)
	return o
}

func (w *world) courier(id kernel.UUID) *courier.Courier {
	w.t.Helper()
	c, err := w.store.CourierRepository().Get(w.t.Context(), id)
	require.NoError(w.t, err)
	return c
}
