// Package chain links build configurations through their finish-build triggers.
package chain

import (
	"fmt"
	"sort"

	"github.com/sourceplane/litedsl/internal/catalog/triggers"
	dslerrors "github.com/sourceplane/litedsl/internal/errors"
	"github.com/sourceplane/litedsl/internal/model"
)

// buildTypeSource is implemented by triggers that watch another configuration
type buildTypeSource interface {
	BuildType() (string, bool)
}

var _ buildTypeSource = (*triggers.FinishBuildTrigger)(nil)

// Reference is a trigger dependency on a configuration that is not loaded
type Reference struct {
	From      string
	TriggerID string
	BuildType string
}

// Graph is the DAG of build configurations. An edge A -> B means A is
// triggered when B finishes.
type Graph struct {
	dependsOn map[string][]string
	sources   map[string]string
	external  []Reference
}

// Build creates the graph of every BuildConfiguration in configs
func Build(configs []*model.Configuration) (*Graph, error) {
	g := &Graph{
		dependsOn: make(map[string][]string),
		sources:   make(map[string]string),
	}

	for _, cfg := range configs {
		if cfg.Kind != "" && cfg.Kind != model.DocumentBuildConfiguration {
			continue
		}
		name := cfg.Metadata.Name
		if prev, dup := g.sources[name]; dup {
			return nil, fmt.Errorf("build configuration %s is defined in %s and %s: %w", name, prev, cfg.Source, dslerrors.ErrInvalidDocument)
		}
		g.sources[name] = cfg.Source
		g.dependsOn[name] = nil
	}

	for _, cfg := range configs {
		name := cfg.Metadata.Name
		if _, ok := g.dependsOn[name]; !ok {
			continue
		}
		for _, d := range cfg.ByKind(model.KindTrigger) {
			src, ok := d.(buildTypeSource)
			if !ok {
				continue
			}
			target, ok := src.BuildType()
			if !ok || target == "" {
				continue
			}
			if _, loaded := g.dependsOn[target]; !loaded {
				g.external = append(g.external, Reference{From: name, TriggerID: d.ID(), BuildType: target})
				continue
			}
			g.dependsOn[name] = appendUnique(g.dependsOn[name], target)
		}
	}

	for name := range g.dependsOn {
		sort.Strings(g.dependsOn[name])
	}
	return g, nil
}

// Names returns every configuration in the graph, sorted
func (g *Graph) Names() []string {
	names := make([]string, 0, len(g.dependsOn))
	for name := range g.dependsOn {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Source returns the document a configuration was loaded from
func (g *Graph) Source(name string) string { return g.sources[name] }

// Dependencies returns the configurations whose builds trigger name
func (g *Graph) Dependencies(name string) []string {
	return append([]string(nil), g.dependsOn[name]...)
}

// External returns trigger references to configurations that are not loaded
func (g *Graph) External() []Reference {
	return append([]Reference(nil), g.external...)
}

// DetectCycles performs cycle detection on the trigger graph using DFS
func (g *Graph) DetectCycles() error {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, name := range g.Names() {
		if !visited[name] {
			if path := g.cycleDFS(name, visited, recStack, nil); path != nil {
				return fmt.Errorf("cycle detected in build chain: %v", path)
			}
		}
	}
	return nil
}

// cycleDFS returns the nodes of a cycle reachable from node, or nil
func (g *Graph) cycleDFS(node string, visited, recStack map[string]bool, stack []string) []string {
	visited[node] = true
	recStack[node] = true
	stack = append(stack, node)

	for _, dep := range g.dependsOn[node] {
		if !visited[dep] {
			if path := g.cycleDFS(dep, visited, recStack, stack); path != nil {
				return path
			}
		} else if recStack[dep] {
			for i, n := range stack {
				if n == dep {
					return append(append([]string(nil), stack[i:]...), dep)
				}
			}
		}
	}

	recStack[node] = false
	return nil
}

// Order sorts configurations using Kahn's algorithm so every configuration
// comes after the ones that trigger it. Ties are broken by name.
func (g *Graph) Order() ([]string, error) {
	dependents := make(map[string][]string)
	inDegree := make(map[string]int)

	for name := range g.dependsOn {
		inDegree[name] = 0
	}
	for name, deps := range g.dependsOn {
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], name)
			inDegree[name]++
		}
	}

	var queue []string
	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	sorted := make([]string, 0, len(g.dependsOn))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		sorted = append(sorted, current)

		var ready []string
		for _, dependent := range dependents[current] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
		sort.Strings(queue)
	}

	if len(sorted) != len(g.dependsOn) {
		return nil, fmt.Errorf("failed to order build chain: %w", g.DetectCycles())
	}
	return sorted, nil
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}
