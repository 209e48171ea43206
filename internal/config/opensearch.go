package config

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2"
)

type OpenSearchConfig struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"9200"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`

	IndexPrefix string `env:"PRODUCT_INDEX_PREFIX" envDefault:"products"`
}

func LoadOpenSearchConfig() (*OpenSearchConfig, error) {
	return parse[OpenSearchConfig]("opensearch", "OPENSEARCH_")
}

func (c *OpenSearchConfig) GetClient() (*opensearch.Client, error) {
	config := opensearch.Config{
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		},
		Addresses: []string{
			fmt.Sprintf("http://%s:%s", c.Host, c.Port),
		},
	}

	if c.Username != "" && c.Password != "" {
		config.Username = c.Username
		config.Password = c.Password
	}

	return opensearch.NewClient(config)
}

// GetIndexName returns the product index for a tenant.
// Format: <prefix>_<tenant_id>
func (c *OpenSearchConfig) GetIndexName(tenantID string) string {
	return fmt.Sprintf("%s_%s", c.IndexPrefix, tenantID)
}
