// Copyright 2026 The ptop Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package app

import (
	"sort"
	"strings"

	"github.com/ptop-project/ptop/pkg/snapshot"
)

// SortKey is a process table column the user can sort by.
type SortKey int

const (
	SortByCPU SortKey = iota
	SortByMemory
	SortByPID
	SortByCommand
	sortKeyCount
)

// Next cycles to the following sort key, wrapping around, for the 's' key.
func (k SortKey) Next() SortKey { return (k + 1) % sortKeyCount }

func (k SortKey) String() string {
	switch k {
	case SortByCPU:
		return "cpu"
	case SortByMemory:
		return "mem"
	case SortByPID:
		return "pid"
	case SortByCommand:
		return "cmd"
	default:
		return "?"
	}
}

// FilterProcesses keeps only rows whose Command contains substr
// (case-insensitive). An empty substr keeps every row.
func FilterProcesses(rows []snapshot.Process, substr string) []snapshot.Process {
	if substr == "" {
		return rows
	}
	needle := strings.ToLower(substr)
	out := make([]snapshot.Process, 0, len(rows))
	for _, p := range rows {
		if strings.Contains(strings.ToLower(p.Command), needle) {
			out = append(out, p)
		}
	}
	return out
}

// SortProcesses orders rows by key, descending unless desc is false.
// It copies the slice so callers retain the snapshot's original order.
func SortProcesses(rows []snapshot.Process, key SortKey, desc bool) []snapshot.Process {
	out := make([]snapshot.Process, len(rows))
	copy(out, rows)
	less := func(i, j int) bool {
		a, b := out[i], out[j]
		switch key {
		case SortByCPU:
			return a.CPUPercent < b.CPUPercent
		case SortByMemory:
			return a.RSSBytes < b.RSSBytes
		case SortByPID:
			return a.PID < b.PID
		case SortByCommand:
			return a.Command < b.Command
		default:
			return false
		}
	}
	if desc {
		sort.SliceStable(out, func(i, j int) bool { return less(j, i) })
	} else {
		sort.SliceStable(out, less)
	}
	return out
}

// ProcessNode is one row of the process tree view: a process plus its
// depth for indentation and its direct children, built from the flat
// PPID relationships in a Process slice.
type ProcessNode struct {
	Process  snapshot.Process
	Depth    int
	Children []*ProcessNode
}

// BuildTree groups rows into a forest of ProcessNode by PPID, rooted at
// any process whose PPID isn't itself present in rows (typically PID 1
// and kernel threads with PPID 0). Hierarchy overrides the requested
// sort key per panel spec; siblings are still ordered by key at each
// level so the tree reads consistently.
func BuildTree(rows []snapshot.Process, key SortKey, desc bool) []*ProcessNode {
	byPID := make(map[int]snapshot.Process, len(rows))
	childrenOf := make(map[int][]snapshot.Process)
	for _, p := range rows {
		byPID[p.PID] = p
	}
	for _, p := range rows {
		if _, hasParent := byPID[p.PPID]; hasParent && p.PPID != p.PID {
			childrenOf[p.PPID] = append(childrenOf[p.PPID], p)
		}
	}

	var roots []snapshot.Process
	for _, p := range rows {
		if _, hasParent := byPID[p.PPID]; !hasParent || p.PPID == p.PID {
			roots = append(roots, p)
		}
	}
	roots = SortProcesses(roots, key, desc)

	var build func(p snapshot.Process, depth int) *ProcessNode
	build = func(p snapshot.Process, depth int) *ProcessNode {
		node := &ProcessNode{Process: p, Depth: depth}
		kids := SortProcesses(childrenOf[p.PID], key, desc)
		for _, k := range kids {
			node.Children = append(node.Children, build(k, depth+1))
		}
		return node
	}

	nodes := make([]*ProcessNode, len(roots))
	for i, r := range roots {
		nodes[i] = build(r, 0)
	}
	return nodes
}

// Flatten walks a ProcessNode forest depth-first (parents before
// children) into the row order the table widget paints.
func Flatten(nodes []*ProcessNode) []*ProcessNode {
	var out []*ProcessNode
	var walk func(n *ProcessNode)
	walk = func(n *ProcessNode) {
		out = append(out, n)
		for _, c := range n.Children {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return out
}
