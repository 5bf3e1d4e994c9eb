// SPDX-License-Identifier: MIT
//
// File: attrs.go
// Role: named edge attributes: lookup, locked writes, numeric coercion.
//
// Missing means "key absent or value nil". Writers never delete keys; the
// only way an attribute disappears is RemoveEdge.

package core

import (
	"fmt"
	"math"
)

// Attr returns the value stored under key and whether it is present.
// A nil value reports false.
func (e *Edge) Attr(key string) (interface{}, bool) {
	v, ok := e.Attrs[key]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

// Float returns attribute key as float64.
//
// Errors:
//   - ErrAttrMissing: key absent or nil.
//   - ErrAttrNotNumeric: value is not a supported number type, or is NaN.
func (e *Edge) Float(key string) (float64, error) {
	v, ok := e.Attr(key)
	if !ok {
		return 0, fmt.Errorf("edge %s %q: %w", e.ID, key, ErrAttrMissing)
	}
	f, err := ToFloat(v)
	if err != nil {
		return 0, fmt.Errorf("edge %s %q: %w", e.ID, key, err)
	}

	return f, nil
}

// ToFloat converts the built-in numeric kinds to float64.
// NaN is rejected since no ordering or sum over it is meaningful.
func ToFloat(v interface{}) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int8:
		f = float64(x)
	case int16:
		f = float64(x)
	case int32:
		f = float64(x)
	case int64:
		f = float64(x)
	case uint:
		f = float64(x)
	case uint8:
		f = float64(x)
	case uint16:
		f = float64(x)
	case uint32:
		f = float64(x)
	case uint64:
		f = float64(x)
	default:
		return 0, fmt.Errorf("%T: %w", v, ErrAttrNotNumeric)
	}
	if math.IsNaN(f) {
		return 0, fmt.Errorf("NaN: %w", ErrAttrNotNumeric)
	}

	return f, nil
}

// EdgeAttr returns attribute key of edge eid.
//
// Errors:
//   - ErrEdgeNotFound, ErrAttrMissing.
func (g *Graph) EdgeAttr(eid, key string) (interface{}, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}
	v, ok := e.Attr(key)
	if !ok {
		return nil, ErrAttrMissing
	}

	return v, nil
}

// SetEdgeAttr stores value under key on edge eid. Storing nil marks the
// attribute as missing without removing the key.
//
// Errors:
//   - ErrEmptyAttrKey, ErrEdgeNotFound.
//
// Complexity: O(1).
// Concurrency: write lock on muEdgeAdj.
func (g *Graph) SetEdgeAttr(eid, key string, value interface{}) error {
	if key == "" {
		return ErrEmptyAttrKey
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	e.Attrs[key] = value

	return nil
}

// FillEdgeAttr sets key to value on every edge where it is missing and
// returns how many edges were written. Existing values are never touched,
// so a second call returns 0.
//
// Errors:
//   - ErrEmptyAttrKey.
//
// Complexity: O(E).
// Concurrency: write lock on muEdgeAdj for the whole pass.
func (g *Graph) FillEdgeAttr(key string, value interface{}) (int, error) {
	if key == "" {
		return 0, ErrEmptyAttrKey
	}
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	filled := 0
	var e *Edge
	for _, e = range g.edges {
		if _, ok := e.Attr(key); ok {
			continue
		}
		e.Attrs[key] = value
		filled++
	}

	return filled, nil
}
