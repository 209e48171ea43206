package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kingrain94/catalog-api/internal/config"
	"github.com/kingrain94/catalog-api/internal/domain"
	"github.com/kingrain94/catalog-api/internal/tenant"
)

const defaultSearchPageSize = 20

// productDocument is the indexed shape of a product. It carries the tenant id
// so a document can never be mistaken for another tenant's even if indices
// were shared.
type productDocument struct {
	ID          string    `json:"id"`
	TenantID    string    `json:"tenant_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	SKU         string    `json:"sku"`
	Price       float64   `json:"price"`
	TaxRate     float64   `json:"tax_rate"`
	Stock       int       `json:"stock"`
	Images      []string  `json:"images"`
	Active      bool      `json:"active"`
	CategoryIDs []string  `json:"category_ids"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newProductDocument(p *domain.Product) productDocument {
	doc := productDocument{
		ID:        p.ID,
		TenantID:  p.TenantID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		TaxRate:   p.TaxRate,
		Stock:     p.Stock,
		Images:    []string(p.Images),
		Active:    p.Active,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Description != nil {
		doc.Description = *p.Description
	}
	for _, c := range p.Categories {
		doc.CategoryIDs = append(doc.CategoryIDs, c.ID)
	}
	return doc
}

func (d productDocument) toProduct() domain.Product {
	p := domain.Product{
		ID:        d.ID,
		TenantID:  d.TenantID,
		Name:      d.Name,
		SKU:       d.SKU,
		Price:     d.Price,
		TaxRate:   d.TaxRate,
		Stock:     d.Stock,
		Images:    d.Images,
		Active:    d.Active,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Description != "" {
		desc := d.Description
		p.Description = &desc
	}
	for _, id := range d.CategoryIDs {
		p.Categories = append(p.Categories, domain.Category{ID: id, TenantID: d.TenantID})
	}
	return p
}

// ProductIndex keeps one index per tenant.
type ProductIndex struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewProductIndex(client *opensearch.Client, config *config.OpenSearchConfig) *ProductIndex {
	return &ProductIndex{
		client: client,
		config: config,
	}
}

func (r *ProductIndex) Index(ctx context.Context, product *domain.Product) error {
	if err := r.CreateIndex(ctx, product.TenantID); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(newProductDocument(product))
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.config.GetIndexName(product.TenantID),
		DocumentID: product.ID,
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}
	return nil
}

// Delete removes a product document. A missing document or index is not an
// error.
func (r *ProductIndex) Delete(ctx context.Context, tenantID, productID string) error {
	req := opensearchapi.DeleteRequest{
		Index:      r.config.GetIndexName(tenantID),
		DocumentID: productID,
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("error deleting document: %s", res.String())
	}
	return nil
}

// Search runs a full-text query against the index of the tenant bound to ctx.
func (r *ProductIndex) Search(ctx context.Context, query domain.ProductSearchQuery) ([]domain.Product, error) {
	tenantID, err := tenant.IDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(buildSearchQuery(tenantID, query))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexName(tenantID)},
		Body:  bytes.NewReader(body),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			return []domain.Product{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source productDocument `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := make([]domain.Product, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		products = append(products, hit.Source.toProduct())
	}
	return products, nil
}

func buildSearchQuery(tenantID string, query domain.ProductSearchQuery) map[string]any {
	filter := []map[string]any{
		{"term": map[string]any{"tenant_id": tenantID}},
		{"term": map[string]any{"active": true}},
	}

	var must []map[string]any
	if query.Query != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":  query.Query,
				"fields": []string{"name^3", "sku^2", "description"},
			},
		})
	} else {
		must = append(must, map[string]any{"match_all": map[string]any{}})
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	size := query.PageSize
	if size < 1 {
		size = defaultSearchPageSize
	}

	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must":   must,
				"filter": filter,
			},
		},
		"from": (page - 1) * size,
		"size": size,
	}
}

func productIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"tenant_id": { "type": "keyword" },
				"name": { "type": "text" },
				"description": { "type": "text" },
				"sku": { "type": "text", "fields": { "raw": { "type": "keyword" } } },
				"price": { "type": "scaled_float", "scaling_factor": 100 },
				"tax_rate": { "type": "float" },
				"stock": { "type": "integer" },
				"images": { "type": "keyword", "index": false },
				"active": { "type": "boolean" },
				"category_ids": { "type": "keyword" },
				"updated_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *ProductIndex) CreateIndex(ctx context.Context, tenantID string) error {
	indexName := r.config.GetIndexName(tenantID)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  bytes.NewReader([]byte(productIndexMapping())),
	}
	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	// Another worker may have created it between the two calls.
	if res.IsError() && res.StatusCode != http.StatusBadRequest {
		return fmt.Errorf("error creating index: %s", res.String())
	}
	return nil
}

func (r *ProductIndex) DeleteIndex(ctx context.Context, tenantID string) error {
	req := opensearchapi.IndicesDeleteRequest{
		Index: []string{r.config.GetIndexName(tenantID)},
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("error deleting index: %s", res.String())
	}
	return nil
}
