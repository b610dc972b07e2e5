package usecase

import (
	"errors"
	"strings"

	"preventa/internal/domain/entities"
)

// ErrNoPurchaseHistory means the client has never purchased anything, as
// opposed to having history whose products are all delisted now.
var ErrNoPurchaseHistory = errors.New("client has no purchase history")

// promoMarkers flag promotional products offered when the cart is empty.
var promoMarkers = []string{"combo", "oferta", "offer"}

// TopHistory resolves the client's past purchases through the catalog.
func TopHistory(client entities.Client, catalog Catalog) ([]entities.Product, error) {
	if len(client.TopHistoryIDs) == 0 {
		return nil, ErrNoPurchaseHistory
	}
	return catalog.ResolveProducts(client.TopHistoryIDs), nil
}

// CrossSell suggests promotional products for an empty cart, otherwise the
// products related to the most recently added line.
func CrossSell(lines []entities.CartLine, catalog Catalog) []entities.Product {
	if len(lines) == 0 {
		out := []entities.Product{}
		for _, p := range catalog.Products {
			name := strings.ToLower(p.Name)
			for _, m := range promoMarkers {
				if strings.Contains(name, m) {
					out = append(out, p)
					break
				}
			}
		}
		return out
	}

	last := lines[len(lines)-1]
	source, ok := catalog.FindProduct(last.ProductID)
	if !ok {
		return []entities.Product{}
	}
	return catalog.ResolveProducts(source.RelatedIDs)
}

// IRecommendationUseCase answers recommendation queries for the live draft.
type IRecommendationUseCase interface {
	TopHistory() ([]entities.Product, error)
	CrossSell() []entities.Product
}

type RecommendationUseCase struct {
	catalog ICatalogUseCase
	draft   IDraftUseCase
}

var _ IRecommendationUseCase = (*RecommendationUseCase)(nil)

func NewRecommendationUseCase(catalog ICatalogUseCase, draft IDraftUseCase) *RecommendationUseCase {
	return &RecommendationUseCase{catalog: catalog, draft: draft}
}

func (u *RecommendationUseCase) TopHistory() ([]entities.Product, error) {
	clientID := u.draft.State().Draft.ClientID
	if clientID == "" {
		return nil, ErrNoClientSelected
	}
	client, err := u.catalog.FindClient(clientID)
	if err != nil {
		return nil, err
	}
	return TopHistory(client, u.catalog.Snapshot())
}

func (u *RecommendationUseCase) CrossSell() []entities.Product {
	return CrossSell(u.draft.State().Draft.Lines, u.catalog.Snapshot())
}
