package data

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"equipment-valuation/internal/model"
)

// bookEntry matches one value of the api-response.json document.
//
// Example:
//
//	"87390": {
//	  "schedule": {"years": {"2016": {"marketRatio": 0.61, "auctionRatio": 0.41}}},
//	  "saleDetails": {"cost": 48929},
//	  "classification": {"category": "Aerial Equipment", "make": "JLG"}
//	}
type bookEntry struct {
	Schedule *struct {
		Years map[string]*struct {
			MarketRatio  *float64 `json:"marketRatio"`
			AuctionRatio *float64 `json:"auctionRatio"`
		} `json:"years"`
	} `json:"schedule"`
	SaleDetails *struct {
		Cost *float64 `json:"cost"`
	} `json:"saleDetails"`
	Classification any `json:"classification"`
}

// ClassificationStore is an in-memory, read-only index of classifications by id.
// It is fully built before it is returned, so concurrent readers need no locking.
type ClassificationStore struct {
	byID map[int]model.Classification
}

// NewClassificationStore indexes already-built classifications.
// Later entries with a duplicate id replace earlier ones.
func NewClassificationStore(classifications ...model.Classification) *ClassificationStore {
	s := &ClassificationStore{byID: make(map[int]model.Classification, len(classifications))}
	for _, c := range classifications {
		s.byID[c.ID] = c
	}
	return s
}

// LoadClassifications reads and parses the whole book file.
// Any malformed entry fails the load; a partial store is never returned.
func LoadClassifications(path string) (*ClassificationStore, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read book file: %w", err)
	}
	return ParseClassifications(raw)
}

// ParseClassifications builds a store from the raw JSON document.
func ParseClassifications(raw []byte) (*ClassificationStore, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse book file: %w", err)
	}

	// Walk keys in order so a bad document always reports the same entry.
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	byID := make(map[int]model.Classification, len(doc))
	for _, key := range keys {
		c, err := parseEntry(key, doc[key])
		if err != nil {
			return nil, err
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("classification %q: duplicate classification id %d", key, c.ID)
		}
		byID[c.ID] = c
	}

	return &ClassificationStore{byID: byID}, nil
}

func parseEntry(key string, raw json.RawMessage) (model.Classification, error) {
	id, err := strconv.Atoi(key)
	if err != nil {
		return model.Classification{}, fmt.Errorf("classification %q: id is not an integer", key)
	}

	var e bookEntry
	if err := json.Unmarshal(raw, &e); err != nil {
		return model.Classification{}, fmt.Errorf("classification %q: %w", key, err)
	}
	if e.SaleDetails == nil || e.SaleDetails.Cost == nil {
		return model.Classification{}, fmt.Errorf("classification %q: missing saleDetails.cost", key)
	}
	if e.Schedule == nil || e.Schedule.Years == nil {
		return model.Classification{}, fmt.Errorf("classification %q: missing schedule.years", key)
	}

	ratios := make(map[int]model.RatioSet, len(e.Schedule.Years))
	for yearKey, y := range e.Schedule.Years {
		year, err := strconv.Atoi(yearKey)
		if err != nil {
			return model.Classification{}, fmt.Errorf("classification %q: year %q is not an integer", key, yearKey)
		}
		if y == nil || y.MarketRatio == nil || y.AuctionRatio == nil {
			return model.Classification{}, fmt.Errorf("classification %q: year %q: missing marketRatio or auctionRatio", key, yearKey)
		}
		if _, dup := ratios[year]; dup {
			return model.Classification{}, fmt.Errorf("classification %q: duplicate year %d", key, year)
		}
		ratios[year] = model.RatioSet{Market: *y.MarketRatio, Auction: *y.AuctionRatio}
	}

	return model.Classification{
		ID:           id,
		BookCost:     *e.SaleDetails.Cost,
		RatiosByYear: ratios,
		Hierarchy:    e.Classification,
	}, nil
}

// Get returns the classification for id, if present.
func (s *ClassificationStore) Get(classificationID int) (model.Classification, bool) {
	if s == nil {
		return model.Classification{}, false
	}
	c, ok := s.byID[classificationID]
	return c, ok
}

// Len reports how many classifications were loaded.
func (s *ClassificationStore) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byID)
}

// IDs returns all classification ids in ascending order.
func (s *ClassificationStore) IDs() []int {
	if s == nil {
		return nil
	}
	ids := make([]int, 0, len(s.byID))
	for id := range s.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
