package docstore

import (
	"fmt"
	"maps"
	"sort"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	// KeyAttribute holds the document key in every stored document.
	KeyAttribute = "id"
	// RevisionAttribute is refreshed on each write and used by transactions to
	// detect concurrent modification.
	RevisionAttribute = "_rev"
)

type document = map[string]types.AttributeValue

func newRevision() string {
	return uuid.NewString()
}

func encodeDocument(key string, data any) (document, error) {
	item, err := attributevalue.MarshalMap(data)
	if err != nil {
		return nil, fmt.Errorf("encode document %q: %w", key, err)
	}
	if item == nil {
		item = document{}
	}
	item[KeyAttribute] = &types.AttributeValueMemberS{Value: key}
	item[RevisionAttribute] = &types.AttributeValueMemberS{Value: newRevision()}
	return item, nil
}

func encodeFields(fields map[string]any) (document, error) {
	out := make(document, len(fields))
	for name, v := range fields {
		if name == KeyAttribute || name == RevisionAttribute {
			return nil, fmt.Errorf("field %q cannot be updated", name)
		}
		av, err := attributevalue.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode field %q: %w", name, err)
		}
		out[name] = av
	}
	return out, nil
}

func mergeDocument(base, fields document) document {
	merged := maps.Clone(base)
	if merged == nil {
		merged = document{}
	}
	for k, v := range fields {
		merged[k] = v
	}
	merged[RevisionAttribute] = &types.AttributeValueMemberS{Value: newRevision()}
	return merged
}

func decodeDocument(item document, out any) error {
	if out == nil {
		return nil
	}
	return attributevalue.UnmarshalMap(item, out)
}

func decodeDocuments(items []document, out any) error {
	if items == nil {
		items = []document{}
	}
	return attributevalue.UnmarshalListOfMaps(items, out)
}

func revisionOf(item document) string {
	if s, ok := item[RevisionAttribute].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func attrEqual(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		return ok && compareNumbers(av.Value, bv.Value) == 0
	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value
	case *types.AttributeValueMemberNULL:
		_, ok := b.(*types.AttributeValueMemberNULL)
		return ok
	}
	return false
}

// compareAttr orders scalar attributes. Missing values sort first.
func compareAttr(a, b types.AttributeValue) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		if bv, ok := b.(*types.AttributeValueMemberS); ok {
			switch {
			case av.Value < bv.Value:
				return -1
			case av.Value > bv.Value:
				return 1
			}
		}
	case *types.AttributeValueMemberN:
		if bv, ok := b.(*types.AttributeValueMemberN); ok {
			return compareNumbers(av.Value, bv.Value)
		}
	case *types.AttributeValueMemberBOOL:
		if bv, ok := b.(*types.AttributeValueMemberBOOL); ok && av.Value != bv.Value {
			if !av.Value {
				return -1
			}
			return 1
		}
	}
	return 0
}

func compareNumbers(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA != nil || errB != nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
	switch {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	}
	return 0
}

func sortDocuments(items []document, field string, descending bool) {
	if field == "" {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		c := compareAttr(items[i][field], items[j][field])
		if descending {
			return c > 0
		}
		return c < 0
	})
}

func limitDocuments(items []document, limit int) []document {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
