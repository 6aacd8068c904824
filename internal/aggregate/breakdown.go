package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultBucket collects entries whose category is empty or not covered by
// any group. Unresolved categories are never dropped.
const DefaultBucket = "uncategorized"

// Bucket is one slice of a breakdown.
type Bucket struct {
	Name             string
	TransactionCount int
	TotalsByCurrency map[string]decimal.Decimal
}

// Breakdown groups transactions by category, or by group membership when
// groups is non-empty. A group is a named set of category identifiers;
// entries matching no group (or carrying no category) land in
// DefaultBucket. Buckets come back sorted by name.
func Breakdown(entries []TransactionEntry, groups map[string][]string) []Bucket {
	categoryToGroup := make(map[string]string)
	for name, categories := range groups {
		for _, category := range categories {
			categoryToGroup[category] = name
		}
	}

	byBucket := make(map[string]*Bucket)
	for _, entry := range entries {
		name := entry.Category
		if len(groups) > 0 {
			name = categoryToGroup[entry.Category]
		}
		if name == "" {
			name = DefaultBucket
		}

		bucket, ok := byBucket[name]
		if !ok {
			bucket = &Bucket{
				Name:             name,
				TotalsByCurrency: make(map[string]decimal.Decimal),
			}
			byBucket[name] = bucket
		}
		bucket.TransactionCount++
		bucket.TotalsByCurrency[entry.Currency] = bucket.TotalsByCurrency[entry.Currency].Add(entry.Amount)
	}

	buckets := make([]Bucket, 0, len(byBucket))
	for _, bucket := range byBucket {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Name < buckets[j].Name
	})
	return buckets
}
