package catalog

import (
	"errors"

	"umrah-gateway/internal/models"
)

// FreeApplicationID marks the free-application entry. It is resolvable by ID
// but hidden from public listings.
const FreeApplicationID = 999

var ErrPackageNotFound = errors.New("package not found")

// Store is the immutable package catalog. It is populated once at startup and
// never mutated, so lookups need no locking.
type Store struct {
	packages []models.Package
	byID     map[int]models.Package
}

func NewStore(packages []models.Package) *Store {
	byID := make(map[int]models.Package, len(packages))
	for _, pkg := range packages {
		byID[pkg.ID] = pkg
	}
	return &Store{
		packages: packages,
		byID:     byID,
	}
}

// Default returns the catalog the storefront ships with.
func Default() []models.Package {
	return []models.Package{
		{
			ID:          1,
			Name:        "Essential Package",
			Price:       69999,
			Description: "Comprehensive Umrah package with essential services",
		},
		{
			ID:          2,
			Name:        "Premium Package",
			Price:       79999,
			Description: "Enhanced comfort with premium services",
		},
		{
			ID:          3,
			Name:        "Luxury Package",
			Price:       110000,
			Description: "Ultimate luxury experience with business class travel",
		},
		{
			ID:          FreeApplicationID,
			Name:        "Free Umrah Application",
			Price:       11,
			Description: "Application for free Umrah opportunity",
		},
	}
}

// ListPublic returns every package except the free-application entry, in
// catalog order.
func (s *Store) ListPublic() []models.Package {
	public := make([]models.Package, 0, len(s.packages))
	for _, pkg := range s.packages {
		if pkg.ID == FreeApplicationID {
			continue
		}
		public = append(public, pkg)
	}
	return public
}

// GetByID resolves any package, including the free-application entry.
func (s *Store) GetByID(id int) (models.Package, error) {
	pkg, ok := s.byID[id]
	if !ok {
		return models.Package{}, ErrPackageNotFound
	}
	return pkg, nil
}
