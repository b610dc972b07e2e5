package usecase

import (
	"context"
	"testing"

	"preventa/internal/adapter/persistence/repository"
	"preventa/internal/domain/entities"
)

const (
	testProductsJSON = `[
		null,
		{"ID": 1, "nombre": "Yerba 1kg", "precio": "$ 100", "precio_mayorista": "80", "stock": 10, "categoria": "Almacen", "sugerencias": "2, 3"},
		{"ID": "2", "nombre": "Azucar", "precio": 50, "categoria": "Almacen"},
		{"ID": "3", "nombre": "Combo Verano", "precio": "1.500", "precio_mayorista": "1.200"},
		{"ID": "4", "nombre": "Galletitas", "precio": "30,5"}
	]`
	testClientsJSON = `[
		{"ID": "c1", "nombre": "Almacen Don Pepe", "direccion": "Calle 1", "telefono": "11 1234-5678", "lista": "General", "top10": "4, 1, 99"},
		{"ID": "c2", "nombre": "Mayorista Sur", "direccion": "Ruta 3", "telefono": "+54 9 11 5555 0000", "lista": "Mayorista", "lat": -34.6, "lon": -58.4},
		{"ID": "c3", "nombre": "Kiosco Nuevo", "direccion": "Calle 9"}
	]`
)

// newSeededStorage returns a memory store holding the test catalog.
func newSeededStorage(t *testing.T) *repository.MemoryStorage {
	t.Helper()
	s := repository.NewMemoryStorage()
	ctx := context.Background()
	if err := s.Set(ctx, KeyProducts, []byte(testProductsJSON)); err != nil {
		t.Fatalf("seed products: %v", err)
	}
	if err := s.Set(ctx, KeyClients, []byte(testClientsJSON)); err != nil {
		t.Fatalf("seed clients: %v", err)
	}
	return s
}

func newLoadedCatalog(t *testing.T, s *repository.MemoryStorage) *CatalogUseCase {
	t.Helper()
	cat := NewCatalogUseCase(s, IDPolicyDeterministic)
	if _, err := cat.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	return cat
}

func newTestDraft(t *testing.T, s *repository.MemoryStorage) *DraftEngine {
	t.Helper()
	d, err := NewDraftEngine(context.Background(), s)
	if err != nil {
		t.Fatalf("new draft engine: %v", err)
	}
	return d
}

func mustProduct(t *testing.T, cat ICatalogUseCase, id string) *entities.Product {
	t.Helper()
	p, err := cat.FindProduct(id)
	if err != nil {
		t.Fatalf("product %s: %v", id, err)
	}
	return &p
}
