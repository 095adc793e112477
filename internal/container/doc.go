// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package container is a small reflection-keyed inversion-of-control
// container. Components are registered on a [Builder] with a factory and a
// [Lifetime], frozen with [Builder.Build], and resolved by type.
//
// [NewDependencyResolver] adapts a [Container] to the web API host so that
// every request resolves its controllers from a fresh lifetime scope.
package container
