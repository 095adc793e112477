// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package webapi

import (
	"slices"
	"strings"
	"sync"
)

// Assembly is a named group of controllers published by one package.
type Assembly struct {
	Name        string
	Controllers []ControllerDescriptor
}

// AssembliesResolver decides which assemblies are searched for controllers.
type AssembliesResolver interface {
	GetAssemblies() []Assembly
}

var (
	assembliesMu sync.RWMutex
	assemblies   = map[string]Assembly{}
)

// RegisterAssembly publishes an assembly for controller discovery. It is
// meant to be called from package init functions. Registering the same name
// again replaces the earlier assembly.
func RegisterAssembly(a Assembly) {
	assembliesMu.Lock()
	defer assembliesMu.Unlock()

	assemblies[a.Name] = a
}

// DefaultAssembliesResolver returns every registered assembly, ordered by
// name.
type DefaultAssembliesResolver struct{}

// GetAssemblies implements [AssembliesResolver].
func (DefaultAssembliesResolver) GetAssemblies() []Assembly {
	assembliesMu.RLock()
	defer assembliesMu.RUnlock()

	result := make([]Assembly, 0, len(assemblies))
	for _, a := range assemblies {
		result = append(result, a)
	}
	slices.SortFunc(result, func(a, b Assembly) int {
		return strings.Compare(a.Name, b.Name)
	})

	return result
}

// StaticAssembliesResolver returns a fixed list of assemblies.
type StaticAssembliesResolver struct {
	Assemblies []Assembly
}

// GetAssemblies implements [AssembliesResolver].
func (r StaticAssembliesResolver) GetAssemblies() []Assembly {
	return slices.Clone(r.Assemblies)
}
