package main

import (
	"fmt"

	"github.com/zoobzio/underz"
)

func asArray(doc any) ([]any, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("expected an array, got %s: %w", describe(doc), ErrUnexpectedShape)
	}
	return items, nil
}

// asArrays expects an array of arrays. With scalars set, every element of
// every inner array must be a scalar.
func asArrays(doc any, scalars bool) ([][]any, error) {
	items, err := asArray(doc)
	if err != nil {
		return nil, err
	}
	arrays := make([][]any, len(items))
	for i, item := range items {
		inner, ok := item.([]any)
		if !ok {
			return nil, fmt.Errorf("element %d: expected an array, got %s: %w", i, describe(item), ErrUnexpectedShape)
		}
		if scalars {
			if err := checkScalars(inner); err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
		}
		arrays[i] = inner
	}
	return arrays, nil
}

func asObjects(doc any) ([]map[string]any, error) {
	items, err := asArray(doc)
	if err != nil {
		return nil, err
	}
	objects := make([]map[string]any, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d: expected an object, got %s: %w", i, describe(item), ErrUnexpectedShape)
		}
		objects[i] = obj
	}
	return objects, nil
}

// asCollection accepts either an array or an object.
func asCollection(doc any) (underz.Collection[any], error) {
	switch v := doc.(type) {
	case []any:
		return underz.Sequence(v...), nil
	case map[string]any:
		return underz.Mapping(v), nil
	}
	return underz.Collection[any]{}, fmt.Errorf("expected an array or object, got %s: %w", describe(doc), ErrUnexpectedShape)
}

func scalarArray(doc any) ([]any, error) {
	items, err := asArray(doc)
	if err != nil {
		return nil, err
	}
	if err := checkScalars(items); err != nil {
		return nil, err
	}
	return items, nil
}

func checkScalars(items []any) error {
	for i, item := range items {
		if !isScalar(item) {
			return fmt.Errorf("element %d is %s: %w", i, describe(item), ErrNotScalar)
		}
	}
	return nil
}

func isScalar(v any) bool {
	switch v.(type) {
	case nil, bool, float64, string:
		return true
	}
	return false
}

func isNumber(v any) bool {
	_, ok := v.(float64)
	return ok
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64:
		return "a number"
	case string:
		return "a string"
	case []any:
		return "an array"
	case map[string]any:
		return "an object"
	}
	return fmt.Sprintf("%T", v)
}
