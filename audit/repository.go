// audit/repository.go
package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const defaultQuerySize = 100

type Repository interface {
	LogAccess(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, q Query) ([]AuditLog, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
	index    string
}

// NewElasticsearchRepository creates a repository writing to index at esURL.
func NewElasticsearchRepository(esURL, index string) (*ElasticsearchRepository, error) {
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{esURL},
	})
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient, index: index}, nil
}

// LogAccess indexes one audit entry.
func (r *ElasticsearchRepository) LogAccess(ctx context.Context, log AuditLog) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index:      r.index,
		DocumentID: log.ID,
		Body:       bytes.NewReader(data),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing audit document: %s", res.Status())
	}
	return nil
}

type searchResponse struct {
	Hits struct {
		Hits []struct {
			Source AuditLog `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func buildQuery(q Query) map[string]any {
	must := []any{
		map[string]any{
			"range": map[string]any{
				"timestamp": map[string]any{
					"gte": q.From.UTC().Format(time.RFC3339),
					"lte": q.To.UTC().Format(time.RFC3339),
				},
			},
		},
	}
	if q.UserID != "" {
		must = append(must, map[string]any{"term": map[string]any{"user_id": q.UserID}})
	}
	if q.ResourceID != "" {
		must = append(must, map[string]any{"term": map[string]any{"resource_id": q.ResourceID}})
	}
	size := q.Size
	if size <= 0 {
		size = defaultQuerySize
	}
	return map[string]any{
		"size":  size,
		"sort":  []any{map[string]any{"timestamp": map[string]any{"order": "desc"}}},
		"query": map[string]any{"bool": map[string]any{"must": must}},
	}
}

// QueryLogs returns entries in the time window, newest first.
func (r *ElasticsearchRepository) QueryLogs(ctx context.Context, q Query) ([]AuditLog, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(buildQuery(q)); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(r.index),
		r.esClient.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching audit documents: %s", res.Status())
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	logs := make([]AuditLog, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		logs = append(logs, hit.Source)
	}
	return logs, nil
}
