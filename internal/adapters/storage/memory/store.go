package memory

import (
	"sync"

	"ganaderia-dashboard/internal/domain/animals"
	"ganaderia-dashboard/internal/domain/clients"
	"ganaderia-dashboard/internal/domain/groups"
	"ganaderia-dashboard/internal/domain/milk"
)

// Store guarda todas las tablas en memoria (dev y tests).
// Los reportes cruzan tablas, por eso los repos comparten un solo lock.
type Store struct {
	mu sync.RWMutex

	groups     map[int64]groups.Group
	nextGroup  int64
	families   map[int64]groups.Family
	nextFamily int64

	animals map[string]animals.Animal
	clients map[string]clients.Client
	milk    []milk.Record
}

func NewStore() *Store {
	return &Store{
		groups:   make(map[int64]groups.Group),
		families: make(map[int64]groups.Family),
		animals:  make(map[string]animals.Animal),
		clients:  make(map[string]clients.Client),
	}
}

// DefaultGroups son los grupos que siembra la migración inicial.
var DefaultGroups = []string{"Bovinos", "Bufalinos", "Equinos"}

// SeedDefaultGroups replica la semilla de grupos de Postgres.
func (s *Store) SeedDefaultGroups() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range DefaultGroups {
		s.nextGroup++
		s.groups[s.nextGroup] = groups.Group{ID: s.nextGroup, Name: name}
	}
}

func (s *Store) Animals() animals.Repository { return &animalRepo{s: s} }
func (s *Store) Clients() clients.Repository { return &clientRepo{s: s} }
func (s *Store) Groups() groups.Repository { return &groupRepo{s: s} }
func (s *Store) Milk() milk.Repository { return &milkRepo{s: s} }
func (s *Store) Reports() *ReportsRepo { return &ReportsRepo{s: s} }
