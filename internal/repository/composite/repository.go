package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/repository"
	"github.com/kingrain94/catalog-api/internal/repository/opensearch"
	"github.com/kingrain94/catalog-api/internal/repository/postgres"
)

type compositeRepository struct {
	repository.PostgresRepository
	productIndex repository.ProductIndex
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) repository.Repository {
	return New(postgres.NewPostgresRepository(dbConnections), opensearch.NewProductIndex(osClient, osConfig))
}

func New(postgresRepo repository.PostgresRepository, productIndex repository.ProductIndex) repository.Repository {
	return &compositeRepository{
		PostgresRepository: postgresRepo,
		productIndex:       productIndex,
	}
}

func (r *compositeRepository) Search() repository.ProductIndex {
	return r.productIndex
}
