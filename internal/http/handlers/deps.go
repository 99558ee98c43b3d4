package handlers

import (
	"github.com/jmoiron/sqlx"

	"cafestore/internal/catalog"
	"cafestore/internal/config"
	"cafestore/internal/repos"
	"cafestore/internal/services"
)

type Deps struct {
	CategoryHandler *CategoryHandler
	SearchHandler   *SearchHandler
	ProductHandler  *ProductHandler
	CartHandler     *CartHandler
	CheckoutHandler *CheckoutHandler
	APIHandler      *APIHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	cartRepo := repos.NewCartRepo(db)
	source := catalog.NewClient(cfg.CatalogURL)

	catalogSvc := services.NewCatalogService(source)
	cartSvc := services.NewCartService(cartRepo)
	selSvc := services.NewSelectionService(cartSvc)

	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	return &Deps{
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc, Cart: cartSvc, PageSize: pageSize},
		SearchHandler:   &SearchHandler{Catalog: catalogSvc, Cart: cartSvc, PageSize: pageSize},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, Selection: selSvc},
		CartHandler:     &CartHandler{Cart: cartSvc, PageSize: pageSize},
		CheckoutHandler: &CheckoutHandler{Cart: cartSvc},
		APIHandler:      &APIHandler{Catalog: catalogSvc},
	}
}
