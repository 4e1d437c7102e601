package service

import (
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/spec-kit/catalog-admin/internal/slug"
)

// ListParams is the canonical argument object for list operations, produced
// by the list input transform from _start/_end/_sort/_order/q.
type ListParams struct {
	Skip      int64
	Limit     int64
	Sort      string
	Order     string
	Q         string
	Activated *bool
}

// ListResult pairs a page of documents with the total match count reported
// through the X-Total-Count header.
type ListResult struct {
	Data  any
	Total int64
}

// listProjection drops the audit fields from list responses.
var listProjection = bson.M{
	"createdAt": 0,
	"createdBy": 0,
	"updatedAt": 0,
	"updatedBy": 0,
}

// buildListFilter restricts to non-deleted documents and optionally narrows
// by slugified free-text search and activation state.
func buildListFilter(params ListParams) bson.M {
	and := []bson.M{
		{"deleted": false},
	}
	if params.Q != "" {
		and = append(and, bson.M{"$or": []bson.M{
			{"slug": bson.M{"$regex": slug.Make(params.Q), "$options": "i"}},
		}})
	}
	if params.Activated != nil {
		and = append(and, bson.M{"activated": *params.Activated})
	}
	return bson.M{"$and": and}
}

// buildSort defaults to ascending slug order.
func buildSort(params ListParams) bson.D {
	property := params.Sort
	if property == "" {
		property = "slug"
	}
	order := 1
	if strings.EqualFold(params.Order, "DESC") {
		order = -1
	}
	return bson.D{{Key: property, Value: order}}
}
