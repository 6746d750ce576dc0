package walk

import (
	"reflect"
	"testing"
)

func TestAncestors(t *testing.T) {
	tests := []struct {
		name     string
		parents  map[string]string
		start    string
		maxDepth int
		want     []string
	}{
		{
			name:    "chain to root",
			parents: map[string]string{"c": "b", "b": "a"},
			start:   "c",
			want:    []string{"b", "a"},
		},
		{
			name:    "root has no ancestors",
			parents: map[string]string{"b": "a"},
			start:   "a",
			want:    nil,
		},
		{
			name:    "cycle stops at repeat",
			parents: map[string]string{"a": "b", "b": "c", "c": "a"},
			start:   "a",
			want:    []string{"b", "c"},
		},
		{
			name:    "self parent",
			parents: map[string]string{"a": "a"},
			start:   "a",
			want:    nil,
		},
		{
			name:     "depth bound",
			parents:  map[string]string{"d": "c", "c": "b", "b": "a"},
			start:    "d",
			maxDepth: 2,
			want:     []string{"c", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parent := func(k string) (string, bool) {
				p, ok := tt.parents[k]
				return p, ok
			}
			got := Ancestors(tt.start, parent, tt.maxDepth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Ancestors() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDescendants(t *testing.T) {
	tests := []struct {
		name     string
		children map[int][]int
		maxDepth int
		want     []int
	}{
		{
			name:     "pre-order",
			children: map[int][]int{1: {2, 5}, 2: {3, 4}},
			want:     []int{2, 3, 4, 5},
		},
		{
			name:     "leaf",
			children: map[int][]int{},
			want:     nil,
		},
		{
			name:     "cycle back to start",
			children: map[int][]int{1: {2}, 2: {3}, 3: {1}},
			want:     []int{2, 3},
		},
		{
			name:     "shared child visited once",
			children: map[int][]int{1: {2, 3}, 2: {4}, 3: {4}},
			want:     []int{2, 4, 3},
		},
		{
			name:     "depth bound keeps boundary nodes",
			children: map[int][]int{1: {2}, 2: {3}, 3: {4}},
			maxDepth: 2,
			want:     []int{2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			children := func(k int) []int { return tt.children[k] }
			got := Descendants(1, children, tt.maxDepth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Descendants() = %v, want %v", got, tt.want)
			}
		})
	}
}
