// Package opensearch implements the dispute event sink on OpenSearch.
package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"disputeresolver/internal/domain/dispute"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go"
)

var _ dispute.EventSink = (*EventSink)(nil)

// EventSink indexes dispute lifecycle events for audit queries.
type EventSink struct {
	client *opensearch.Client
	index  string
}

// NewEventSink builds the client and ensures the index exists.
func NewEventSink(ctx context.Context, urls []string, index string) (*EventSink, error) {
	if len(urls) == 0 {
		return nil, errors.New("no OpenSearch addresses configured")
	}

	cfg := opensearch.Config{
		Addresses: urls,
		Transport: &http.Transport{
			MaxIdleConnsPerHost: 10,
		},
	}
	client, err := opensearch.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("opensearch client: %w", err)
	}

	sink := &EventSink{client: client, index: index}
	if err := sink.ensureIndex(ctx); err != nil {
		return nil, err
	}
	return sink, nil
}

func (s *EventSink) ensureIndex(ctx context.Context) error {
	res, err := s.client.Indices.Exists([]string{s.index}, s.client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("indices.exists: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body := map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				"event_id":   map[string]any{"type": "keyword"},
				"dispute_id": map[string]any{"type": "keyword"},
				"kind":       map[string]any{"type": "keyword"},
				"created_at": map[string]any{"type": "date"},
				"data":       map[string]any{"type": "object", "enabled": true},
			},
		},
		"settings": map[string]any{
			"number_of_replicas": 0,
		},
	}
	buf, _ := json.Marshal(body)
	cr, err := s.client.Indices.Create(
		s.index,
		s.client.Indices.Create.WithBody(bytes.NewReader(buf)),
		s.client.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("indices.create: %w", err)
	}
	defer cr.Body.Close()
	if cr.IsError() {
		return fmt.Errorf("indices.create error: %s", cr.String())
	}
	return nil
}

type eventDoc struct {
	EventID   string                   `json:"event_id"`
	DisputeID string                   `json:"dispute_id"`
	Kind      dispute.DisputeEventKind `json:"kind"`
	Data      json.RawMessage          `json:"data,omitempty"`
	CreatedAt time.Time                `json:"created_at"`
}

// CreateDisputeEvent indexes one lifecycle event.
func (s *EventSink) CreateDisputeEvent(ctx context.Context, ev dispute.NewDisputeEvent) error {
	eventID := uuid.NewString()
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	doc := eventDoc{
		EventID:   eventID,
		DisputeID: strconv.FormatInt(ev.DisputeID, 10),
		Kind:      ev.Kind,
		Data:      ev.Data,
		CreatedAt: ev.CreatedAt.UTC(),
	}
	payload, _ := json.Marshal(doc)

	res, err := s.client.Index(
		s.index,
		bytes.NewReader(payload),
		s.client.Index.WithDocumentID(eventID),
		s.client.Index.WithContext(ctx),
		s.client.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index error: %s", res.String())
	}
	return nil
}

// GetDisputeEvents returns the events for one dispute in creation order.
func (s *EventSink) GetDisputeEvents(ctx context.Context, disputeID int64) ([]dispute.DisputeEvent, error) {
	body := map[string]any{
		"size": 500,
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []map[string]any{
					{"term": map[string]any{"dispute_id": strconv.FormatInt(disputeID, 10)}},
				},
			},
		},
		"sort": []map[string]any{
			{"created_at": map[string]any{"order": "asc"}},
		},
	}
	raw, _ := json.Marshal(body)

	res, err := s.client.Search(
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(s.index),
		s.client.Search.WithBody(bytes.NewReader(raw)),
	)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("search error: %s", res.String())
	}

	var sr struct {
		Hits struct {
			Hits []struct {
				ID     string          `json:"_id"`
				Source json.RawMessage `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search: %w", err)
	}

	out := make([]dispute.DisputeEvent, 0, len(sr.Hits.Hits))
	for _, h := range sr.Hits.Hits {
		var doc eventDoc
		if err := json.Unmarshal(h.Source, &doc); err != nil {
			return nil, fmt.Errorf("decode hit: %w", err)
		}
		id, _ := strconv.ParseInt(doc.DisputeID, 10, 64)
		evtID := doc.EventID
		if evtID == "" {
			evtID = h.ID
		}
		out = append(out, dispute.DisputeEvent{
			EventID: evtID,
			NewDisputeEvent: dispute.NewDisputeEvent{
				DisputeID: id,
				Kind:      doc.Kind,
				Data:      doc.Data,
				CreatedAt: doc.CreatedAt,
			},
		})
	}
	return out, nil
}
