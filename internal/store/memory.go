package store

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Memory is a mutex-guarded Gateway used in tests and single-process
// deployments. It evaluates the filter operators the services actually use:
// equality, $and, $or, $ne and case-insensitive $regex.
type Memory struct {
	mu      sync.RWMutex
	data    map[string]map[string]bson.M
	indexes []UniqueIndex
}

// NewMemory builds an empty store enforcing the given unique indexes.
func NewMemory(indexes ...UniqueIndex) *Memory {
	return &Memory{
		data:    make(map[string]map[string]bson.M),
		indexes: indexes,
	}
}

func (m *Memory) collection(entity string) map[string]bson.M {
	col, ok := m.data[entity]
	if !ok {
		col = make(map[string]bson.M)
		m.data[entity] = col
	}
	return col
}

func (m *Memory) Create(ctx context.Context, entity string, doc any) error {
	raw, err := toDoc(doc)
	if err != nil {
		return err
	}
	id, _ := raw["_id"].(string)
	if id == "" {
		id = NewID()
		raw["_id"] = id
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkIndexes(entity, raw, id); err != nil {
		return err
	}
	m.collection(entity)[id] = raw
	return nil
}

func (m *Memory) Find(ctx context.Context, entity string, q Query, results any) error {
	m.mu.RLock()
	matched := make([]bson.M, 0)
	for _, doc := range m.data[entity] {
		if matches(doc, q.Filter) {
			matched = append(matched, doc)
		}
	}
	m.mu.RUnlock()

	sortDocs(matched, q.Sort)

	if q.Skip > 0 {
		if q.Skip >= int64(len(matched)) {
			matched = nil
		} else {
			matched = matched[q.Skip:]
		}
	}
	if q.Limit > 0 && int64(len(matched)) > q.Limit {
		matched = matched[:q.Limit]
	}

	slice := reflect.ValueOf(results)
	if slice.Kind() != reflect.Ptr || slice.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("store: results must be a pointer to a slice, got %T", results)
	}
	elemType := slice.Elem().Type().Elem()
	out := reflect.MakeSlice(slice.Elem().Type(), 0, len(matched))
	for _, doc := range matched {
		elem := reflect.New(elemType)
		if err := decodeDoc(project(doc, q.Projection), elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	slice.Elem().Set(out)
	return nil
}

func (m *Memory) FindOne(ctx context.Context, entity string, filter, projection bson.M, result any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, doc := range m.data[entity] {
		if matches(doc, filter) {
			return decodeDoc(project(doc, projection), result)
		}
	}
	return ErrNotFound
}

func (m *Memory) Get(ctx context.Context, entity, id string, result any) error {
	return m.FindOne(ctx, entity, bson.M{"_id": id}, nil, result)
}

func (m *Memory) Update(ctx context.Context, entity, id string, update bson.M, result any) error {
	fields, err := toDoc(update)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.data[entity][id]
	if !ok {
		return ErrNotFound
	}

	merged := make(bson.M, len(doc)+len(fields))
	for k, v := range doc {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	if err := m.checkIndexes(entity, merged, id); err != nil {
		return err
	}
	m.data[entity][id] = merged
	if result != nil {
		return decodeDoc(merged, result)
	}
	return nil
}

func (m *Memory) Count(ctx context.Context, entity string, filter bson.M) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total int64
	for _, doc := range m.data[entity] {
		if matches(doc, filter) {
			total++
		}
	}
	return total, nil
}

// checkIndexes enforces declared unique constraints. Caller holds the lock.
func (m *Memory) checkIndexes(entity string, candidate bson.M, selfID string) error {
	for _, idx := range m.indexes {
		if idx.Entity != entity {
			continue
		}
		value, ok := candidate[idx.Field]
		if !ok || value == nil {
			continue
		}
		if idx.Partial != nil && !matches(candidate, idx.Partial) {
			continue
		}
		for id, doc := range m.data[entity] {
			if id == selfID {
				continue
			}
			if idx.Partial != nil && !matches(doc, idx.Partial) {
				continue
			}
			if valueEq(doc[idx.Field], value) {
				return &DuplicateKeyError{Entity: entity}
			}
		}
	}
	return nil
}

func toDoc(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decodeDoc(doc bson.M, result any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, result)
}

// matches evaluates filter against doc.
func matches(doc bson.M, filter bson.M) bool {
	for key, cond := range filter {
		switch key {
		case "$and":
			for _, sub := range asFilters(cond) {
				if !matches(doc, sub) {
					return false
				}
			}
		case "$or":
			matchedOne := false
			for _, sub := range asFilters(cond) {
				if matches(doc, sub) {
					matchedOne = true
					break
				}
			}
			if !matchedOne {
				return false
			}
		default:
			if !fieldMatches(doc[key], cond) {
				return false
			}
		}
	}
	return true
}

func asFilters(v any) []bson.M {
	switch list := v.(type) {
	case []bson.M:
		return list
	case bson.A:
		out := make([]bson.M, 0, len(list))
		for _, item := range list {
			if sub, ok := item.(bson.M); ok {
				out = append(out, sub)
			}
		}
		return out
	default:
		return nil
	}
}

func fieldMatches(value any, cond any) bool {
	ops, ok := cond.(bson.M)
	if !ok {
		return valueEq(value, cond)
	}
	for op, arg := range ops {
		switch op {
		case "$eq":
			if !valueEq(value, arg) {
				return false
			}
		case "$ne":
			if valueEq(value, arg) {
				return false
			}
		case "$regex":
			pattern, _ := arg.(string)
			if opts, _ := ops["$options"].(string); strings.Contains(opts, "i") {
				pattern = "(?i)" + pattern
			}
			str, ok := value.(string)
			if !ok {
				return false
			}
			re, err := regexp.Compile(pattern)
			if err != nil || !re.MatchString(str) {
				return false
			}
		case "$options":
			// handled together with $regex
		default:
			return false
		}
	}
	return true
}

func valueEq(a, b any) bool {
	if af, aok := asFloat(a); aok {
		bf, bok := asFloat(b)
		return bok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func sortDocs(docs []bson.M, keys bson.D) {
	if len(keys) == 0 {
		return
	}
	sort.SliceStable(docs, func(i, j int) bool {
		for _, key := range keys {
			cmp := compareValues(docs[i][key.Key], docs[j][key.Key])
			if cmp == 0 {
				continue
			}
			if order, ok := asFloat(key.Value); ok && order < 0 {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

func compareValues(a, b any) int {
	if af, aok := asFloat(a); aok {
		if bf, bok := asFloat(b); bok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			}
			return 0
		}
	}
	as, _ := a.(string)
	bs, _ := b.(string)
	return strings.Compare(as, bs)
}

// project applies a simple single-mode projection: all values 1 means
// inclusion (plus _id), all values 0 means exclusion, nil means everything.
func project(doc bson.M, projection bson.M) bson.M {
	if len(projection) == 0 {
		return doc
	}
	include := false
	for _, v := range projection {
		if f, ok := asFloat(v); ok && f == 1 {
			include = true
			break
		}
	}
	out := make(bson.M, len(doc))
	if include {
		out["_id"] = doc["_id"]
		for k, v := range projection {
			if f, ok := asFloat(v); ok && f == 1 {
				if val, exists := doc[k]; exists {
					out[k] = val
				}
			}
		}
		return out
	}
	for k, v := range doc {
		if f, ok := asFloat(projection[k]); ok && f == 0 {
			continue
		}
		out[k] = v
	}
	return out
}
