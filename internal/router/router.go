package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "ganaderia-dashboard/docs"
	mem "ganaderia-dashboard/internal/adapters/storage/memory"
	pg "ganaderia-dashboard/internal/adapters/storage/postgres"
	"ganaderia-dashboard/internal/domain/animals"
	"ganaderia-dashboard/internal/domain/clients"
	"ganaderia-dashboard/internal/domain/groups"
	"ganaderia-dashboard/internal/domain/milk"
	"ganaderia-dashboard/internal/domain/reports"
	"ganaderia-dashboard/internal/middleware"
	"ganaderia-dashboard/internal/platform/logger"
	"ganaderia-dashboard/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB
	// Store in-memory a usar cuando no hay DB; nil => uno nuevo con los grupos sembrados.
	Store *mem.Store

	Logger  logger.Logger    // nil => Nop
	Metrics *metrics.Metrics // nil => sin métricas
	Company reports.Company

	// Now fija el reloj de reportes y producción (tests).
	Now func() time.Time
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log, opts.Metrics))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", opts.Metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		animalRepo animals.Repository
		clientRepo clients.Repository
		groupRepo  groups.Repository
		milkRepo   milk.Repository
		reportRepo reports.Repository
	)

	if db := opts.DB; db != nil {
		animalRepo = pg.NewAnimalsRepo(db)
		clientRepo = pg.NewClientsRepo(db)
		groupRepo = pg.NewGroupsRepo(db)
		milkRepo = pg.NewMilkRepo(db)
		reportRepo = pg.NewReportsRepo(db)
	} else {
		st := opts.Store
		if st == nil {
			st = mem.NewStore()
			st.SeedDefaultGroups()
		}
		animalRepo = st.Animals()
		clientRepo = st.Clients()
		groupRepo = st.Groups()
		milkRepo = st.Milk()
		reportRepo = st.Reports()
	}

	// Services por módulo
	animalsSvc := animals.NewService(animalRepo)
	clientsSvc := clients.NewService(clientRepo)
	groupsSvc := groups.NewService(groupRepo)
	milkSvc := milk.NewService(milkRepo).WithClock(opts.Now)
	reportsSvc := reports.NewService(reportRepo, opts.Company).WithClock(opts.Now)

	// Rutas por módulo
	animals.RegisterRoutes(r, animalsSvc)
	clients.RegisterRoutes(r, clientsSvc)
	groups.RegisterRoutes(r, groupsSvc)
	milk.RegisterRoutes(r, milkSvc)

	var rec reports.Recorder
	if opts.Metrics != nil {
		rec = opts.Metrics
	}
	reports.RegisterRoutes(r, reportsSvc, rec)

	return r
}
