package cmd

import (
	"log/slog"

	adapterhttp "github.com/RodrigoFK06/rapiditos/internal/adapters/in/http"
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo/assignmentrepo"
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo/clientrepo"
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo/orderrepo"
	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo/riderrepo"
	"github.com/RodrigoFK06/rapiditos/internal/core/application/usecases/commands"
	"github.com/RodrigoFK06/rapiditos/internal/core/application/usecases/queries"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/jobs"
)

// CompositionRoot wires the document store, the repositories, and the use
// case handlers together. It is the only place that knows concrete adapter
// types.
type CompositionRoot struct {
	store  ports.DocumentStore
	logger *slog.Logger

	orderRepo      ports.OrderRepository
	riderRepo      ports.RiderRepository
	assignmentRepo ports.AssignmentRepository
	clientRepo     ports.ClientRepository
}

// NewCompositionRoot builds the object graph on top of the given store.
func NewCompositionRoot(_ Config, store ports.DocumentStore, logger *slog.Logger) (CompositionRoot, error) {
	orderRepo, err := orderrepo.NewRepository(store)
	if err != nil {
		return CompositionRoot{}, err
	}
	riderRepo, err := riderrepo.NewRepository(store)
	if err != nil {
		return CompositionRoot{}, err
	}
	assignmentRepo, err := assignmentrepo.NewRepository(store)
	if err != nil {
		return CompositionRoot{}, err
	}
	clientRepo, err := clientrepo.NewRepository(store)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		store:          store,
		logger:         logger,
		orderRepo:      orderRepo,
		riderRepo:      riderRepo,
		assignmentRepo: assignmentRepo,
		clientRepo:     clientRepo,
	}, nil
}

func (c *CompositionRoot) CreateAssignRiderCommandHandler() commands.AssignRiderCommandHandler {
	return commands.NewAssignRiderCommandHandler(c.store, c.orderRepo, c.riderRepo, c.assignmentRepo)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.store, c.orderRepo, c.riderRepo, c.clientRepo, c.logger)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetRiderAssignmentsQueryHandler() queries.GetRiderAssignmentsQueryHandler {
	return queries.NewGetRiderAssignmentsQueryHandler(c.assignmentRepo)
}

func (c *CompositionRoot) CreateWatchOrderQueryHandler() queries.WatchOrderQueryHandler {
	return queries.NewWatchOrderQueryHandler(c.orderRepo)
}

// CreateHTTPServer assembles the HTTP server with every handler wired in.
func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateAssignRiderCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateUpdateOrderStatusCommandHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetAllOrdersQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.CreateGetRiderAssignmentsQueryHandler(),
		c.CreateWatchOrderQueryHandler(),
	)
}

// CreateJobManager assembles the background job manager.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.orderRepo, c.logger)
}
