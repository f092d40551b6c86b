package cli

import "testing"

func TestListBundledTopics(t *testing.T) {
	topics, err := listBundledTopics()
	if err != nil {
		t.Fatalf("listBundledTopics() error = %v", err)
	}
	if len(topics) == 0 {
		t.Fatal("expected bundled topics")
	}

	byID := make(map[string]docsTopic)
	for _, topic := range topics {
		byID[topic.ID] = topic
	}

	filters, ok := byID["filters"]
	if !ok {
		t.Fatal("expected a 'filters' topic")
	}
	if filters.Title != "Filters" {
		t.Errorf("filters title = %q, want Filters", filters.Title)
	}
	if filters.Path != "guide/filters.md" {
		t.Errorf("filters path = %q", filters.Path)
	}
	if _, ok := byID["getting-started"]; !ok {
		t.Error("expected a 'getting-started' topic")
	}
}
