package external_services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jomei/notionapi"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

const (
	notionPageSize = 100
	notionMaxPages = 10
)

// NotionClient queries Notion databases.
type NotionClient struct {
	client *notionapi.Client
}

var _ contract.INotionClient = (*NotionClient)(nil)

// NewNotionClient uses httpClient for transport; nil means a client with a 10s timeout.
func NewNotionClient(apiKey string, httpClient *http.Client) *NotionClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &NotionClient{
		client: notionapi.NewClient(notionapi.Token(apiKey), notionapi.WithHTTPClient(httpClient)),
	}
}

// QueryDatabase returns every page of the database, following cursors.
func (c *NotionClient) QueryDatabase(ctx context.Context, databaseID string) ([]entity.NotionPage, error) {
	pages := []entity.NotionPage{}
	req := &notionapi.DatabaseQueryRequest{PageSize: notionPageSize}

	for i := 0; i < notionMaxPages; i++ {
		resp, err := c.client.Database.Query(ctx, notionapi.DatabaseID(databaseID), req)
		if err != nil {
			return nil, fmt.Errorf("failed to query notion database: %w", err)
		}
		for _, p := range resp.Results {
			page, err := toNotionPage(p)
			if err != nil {
				return nil, err
			}
			pages = append(pages, page)
		}
		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		req.StartCursor = resp.NextCursor
	}
	return pages, nil
}

func toNotionPage(p notionapi.Page) (entity.NotionPage, error) {
	props, err := json.Marshal(p.Properties)
	if err != nil {
		return entity.NotionPage{}, fmt.Errorf("failed to encode notion properties: %w", err)
	}
	return entity.NotionPage{
		ID:             string(p.ID),
		URL:            p.URL,
		CreatedTime:    p.CreatedTime.UTC().Format(time.RFC3339),
		LastEditedTime: p.LastEditedTime.UTC().Format(time.RFC3339),
		Properties:     props,
	}, nil
}
