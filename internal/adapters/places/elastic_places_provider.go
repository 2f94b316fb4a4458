package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/aafham/Masjid-hunt/internal/domain"
	"github.com/aafham/Masjid-hunt/internal/platform/obs"
	"github.com/aafham/Masjid-hunt/internal/ports"
	"github.com/olivere/elastic/v7"
)

// Mapping for the self-hosted mosque index.
const ElasticMapping = `{
  "mappings": {
    "properties": {
      "name":     {"type": "text"},
      "address":  {"type": "text"},
      "category": {"type": "keyword"},
      "location": {"type": "geo_point"}
    }
  }
}`

// ElasticPlace is the document stored per mosque in the index.
type ElasticPlace struct {
	Name     string           `json:"name"`
	Address  string           `json:"address,omitempty"`
	Category string           `json:"category"`
	Location elastic.GeoPoint `json:"location"`
}

// ElasticPlacesProvider implements NearbySearchProvider against a
// self-hosted Elasticsearch index of places.
type ElasticPlacesProvider struct {
	client *elastic.Client
	index  string
	size   int
}

// NewElasticClient builds a client for a single node without sniffing, so no
// request is issued at construction time.
func NewElasticClient(rawURL string, timeout time.Duration) (*elastic.Client, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, errors.New("elasticsearch url is empty")
	}

	client, err := elastic.NewClient(
		elastic.SetURL(rawURL),
		elastic.SetSniff(false),
		elastic.SetHealthcheck(false),
		elastic.SetHttpClient(&http.Client{Timeout: timeout}),
	)
	if err != nil {
		return nil, fmt.Errorf("create elasticsearch client: %w", err)
	}

	return client, nil
}

func NewElasticPlacesProvider(client *elastic.Client, index string) *ElasticPlacesProvider {
	return &ElasticPlacesProvider{client: client, index: index, size: domain.MaxResults}
}

// SearchNearby returns indexed places within radiusMeters, nearest first.
func (e *ElasticPlacesProvider) SearchNearby(
	ctx context.Context,
	origin domain.Coordinates,
	radiusMeters int,
	category string,
) (_ []ports.PlaceCandidate, err error) {
	defer obs.Time(ctx, "elastic.places.SearchNearby")(&err)

	query := elastic.NewBoolQuery().
		Filter(elastic.NewTermQuery("category", category)).
		Filter(elastic.NewGeoDistanceQuery("location").
			Lat(origin.Lat).
			Lon(origin.Lon).
			Distance(fmt.Sprintf("%dm", radiusMeters)))

	res, err := e.client.Search().
		Index(e.index).
		Query(query).
		SortBy(elastic.NewGeoDistanceSort("location").
			Point(origin.Lat, origin.Lon).
			Asc().
			Unit("m").
			DistanceType("arc")).
		Size(e.size).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: elasticsearch search index=%s: %w", domain.ErrProviderUnavailable, e.index, err)
	}
	if res.Hits == nil {
		return []ports.PlaceCandidate{}, nil
	}

	out := make([]ports.PlaceCandidate, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc ElasticPlace
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			log.Printf("elastic places: skip hit id=%s err=%v", hit.Id, err)
			continue
		}
		out = append(out, ports.PlaceCandidate{
			PlaceID:     hit.Id,
			Name:        doc.Name,
			Address:     doc.Address,
			Coordinates: domain.Coordinates{Lat: doc.Location.Lat, Lon: doc.Location.Lon},
		})
	}

	return out, nil
}

// EnsureIndex creates the index with ElasticMapping when it does not exist.
func EnsureIndex(ctx context.Context, client *elastic.Client, index string) error {
	exists, err := client.IndexExists(index).Do(ctx)
	if err != nil {
		return fmt.Errorf("ensure index %s: exists: %w", index, err)
	}
	if exists {
		return nil
	}

	created, err := client.CreateIndex(index).BodyString(ElasticMapping).Do(ctx)
	if err != nil {
		return fmt.Errorf("ensure index %s: create: %w", index, err)
	}
	if !created.Acknowledged {
		log.Printf("elastic: create index=%s was not acknowledged", index)
	}

	return nil
}

// IndexMosques bulk-indexes mosques under their place id.
func IndexMosques(ctx context.Context, client *elastic.Client, index, category string, mosques []domain.Mosque) error {
	if len(mosques) == 0 {
		return nil
	}

	bulk := client.Bulk()
	for _, m := range mosques {
		doc := ElasticPlace{
			Name:     m.Name,
			Address:  m.Address,
			Category: category,
			Location: elastic.GeoPoint{Lat: m.Lat, Lon: m.Lng},
		}
		bulk = bulk.Add(elastic.NewBulkIndexRequest().Index(index).Id(m.PlaceID).Doc(doc))
	}

	res, err := bulk.Do(ctx)
	if err != nil {
		return fmt.Errorf("index mosques: bulk: %w", err)
	}

	failed := 0
	for _, item := range res.Failed() {
		failed++
		if item.Error != nil {
			log.Printf("elastic: index failed id=%s reason=%s", item.Id, item.Error.Reason)
		}
	}
	if failed > 0 {
		return fmt.Errorf("index mosques: %d of %d documents failed", failed, len(mosques))
	}

	return nil
}
