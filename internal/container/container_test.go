// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package container

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ id int }

type catalog struct {
	clock  *clock
	closed *[]string
	name   string
}

func (c *catalog) Close() error {
	*c.closed = append(*c.closed, c.name)
	return nil
}

type chicken struct{}

type egg struct{}

func counter() (func(Resolver) (*clock, error), *int) {
	n := 0
	return func(Resolver) (*clock, error) {
		n++
		return &clock{id: n}, nil
	}, &n
}

func TestLifetime_String(t *testing.T) {
	assert.Equal(t, "per-dependency", InstancePerDependency.String())
	assert.Equal(t, "single", SingleInstance.String())
	assert.Equal(t, "per-request", InstancePerRequest.String())
	assert.Equal(t, "Lifetime(7)", Lifetime(7).String())
}

func TestLifetimes(t *testing.T) {
	tests := []struct {
		name            string
		lifetime        Lifetime
		sameInScope     bool
		sameAcrossScope bool
		wantCreated     int
	}{
		{name: "per dependency", lifetime: InstancePerDependency, wantCreated: 4},
		{name: "single instance", lifetime: SingleInstance, sameInScope: true, sameAcrossScope: true, wantCreated: 1},
		{name: "per request", lifetime: InstancePerRequest, sameInScope: true, wantCreated: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factory, created := counter()
			c, err := Provide(NewBuilder(), tt.lifetime, factory).Build()
			require.NoError(t, err)

			first := c.BeginLifetimeScope()
			second := c.BeginLifetimeScope()

			a1, err := Resolve[*clock](first)
			require.NoError(t, err)
			a2, err := Resolve[*clock](first)
			require.NoError(t, err)
			b1, err := Resolve[*clock](second)
			require.NoError(t, err)
			b2, err := Resolve[*clock](second)
			require.NoError(t, err)

			assert.Equal(t, tt.sameInScope, a1 == a2)
			assert.Equal(t, tt.sameInScope, b1 == b2)
			assert.Equal(t, tt.sameAcrossScope, a1 == b1)
			assert.Equal(t, tt.wantCreated, *created)
		})
	}
}

func TestProvideInstance(t *testing.T) {
	want := &clock{id: 99}
	c, err := ProvideInstance(NewBuilder(), want).Build()
	require.NoError(t, err)

	got, err := Resolve[*clock](c.BeginLifetimeScope())
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.True(t, c.IsRegistered(reflect.TypeFor[*clock]()))
}

func TestFactoriesResolveDependencies(t *testing.T) {
	var closed []string
	b := NewBuilder()
	ProvideInstance(b, &clock{id: 1})
	Provide(b, InstancePerRequest, func(r Resolver) (*catalog, error) {
		clk, err := Resolve[*clock](r)
		if err != nil {
			return nil, err
		}
		return &catalog{clock: clk, closed: &closed, name: "catalog"}, nil
	})
	c, err := b.Build()
	require.NoError(t, err)

	cat, err := Resolve[*catalog](c.BeginLifetimeScope())
	require.NoError(t, err)
	assert.Equal(t, 1, cat.clock.id)
}

func TestLaterRegistrationWins(t *testing.T) {
	b := NewBuilder()
	ProvideInstance(b, &clock{id: 1})
	ProvideInstance(b, &clock{id: 2})
	c, err := b.Build()
	require.NoError(t, err)

	got, err := Resolve[*clock](c)
	require.NoError(t, err)
	assert.Equal(t, 2, got.id)
}

func TestResolveErrors(t *testing.T) {
	t.Run("not registered", func(t *testing.T) {
		c, err := NewBuilder().Build()
		require.NoError(t, err)

		_, err = Resolve[*clock](c)
		assert.ErrorIs(t, err, ErrNotRegistered)
	})

	t.Run("circular dependency", func(t *testing.T) {
		b := NewBuilder()
		Provide(b, InstancePerDependency, func(r Resolver) (*chicken, error) {
			_, err := Resolve[*egg](r)
			return &chicken{}, err
		})
		Provide(b, SingleInstance, func(r Resolver) (*egg, error) {
			_, err := Resolve[*chicken](r)
			return &egg{}, err
		})
		c, err := b.Build()
		require.NoError(t, err)

		_, err = Resolve[*chicken](c.BeginLifetimeScope())
		require.ErrorIs(t, err, ErrCircularDependency)
		assert.Contains(t, err.Error(), "*container.chicken -> *container.egg -> *container.chicken")
	})

	t.Run("factory error is wrapped", func(t *testing.T) {
		boom := errors.New("boom")
		c, err := Provide(NewBuilder(), SingleInstance, func(Resolver) (*clock, error) {
			return nil, boom
		}).Build()
		require.NoError(t, err)

		_, err = Resolve[*clock](c)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("wrong type from registration", func(t *testing.T) {
		c, err := NewBuilder().Register(reflect.TypeFor[*clock](), func(Resolver) (any, error) {
			return "not a clock", nil
		}, SingleInstance).Build()
		require.NoError(t, err)

		_, err = Resolve[*clock](c)
		assert.Error(t, err)
	})
}

func TestBuild(t *testing.T) {
	t.Run("invalid registration", func(t *testing.T) {
		_, err := NewBuilder().Register(nil, nil, SingleInstance).Build()
		assert.ErrorIs(t, err, ErrInvalidRegistration)

		_, err = Provide[*clock](NewBuilder(), SingleInstance, nil).Build()
		assert.ErrorIs(t, err, ErrInvalidRegistration)
	})

	t.Run("twice", func(t *testing.T) {
		b := NewBuilder()
		_, err := b.Build()
		require.NoError(t, err)

		_, err = b.Build()
		assert.ErrorIs(t, err, ErrAlreadyBuilt)
	})
}

func TestScopeClose(t *testing.T) {
	var closed []string
	b := NewBuilder()
	Provide(b, InstancePerRequest, func(Resolver) (*catalog, error) {
		return &catalog{closed: &closed, name: "request"}, nil
	})
	Provide(b, SingleInstance, func(r Resolver) (*clock, error) {
		return &clock{}, nil
	})
	c, err := b.Build()
	require.NoError(t, err)

	scope := c.BeginLifetimeScope()
	_, err = Resolve[*catalog](scope)
	require.NoError(t, err)
	_, err = Resolve[*clock](scope)
	require.NoError(t, err)

	require.NoError(t, scope.Close())
	assert.Equal(t, []string{"request"}, closed)

	require.NoError(t, scope.Close())
	assert.Len(t, closed, 1)

	_, err = Resolve[*catalog](scope)
	assert.ErrorIs(t, err, ErrScopeDisposed)

	_, err = Resolve[*clock](c.BeginLifetimeScope())
	assert.NoError(t, err, "single instances outlive request scopes")

	require.NoError(t, c.Close())
	_, err = Resolve[*clock](c)
	assert.ErrorIs(t, err, ErrScopeDisposed)
}

type failingCloser struct {
	order *[]int
	id    int
	err   error
}

func (f *failingCloser) Close() error {
	*f.order = append(*f.order, f.id)
	return f.err
}

func TestScopeClose_ReverseOrderAndJoinedErrors(t *testing.T) {
	var order []int
	errFirst := errors.New("first")
	errSecond := errors.New("second")

	id := 0
	c, err := Provide(NewBuilder(), InstancePerDependency, func(Resolver) (*failingCloser, error) {
		id++
		e := errFirst
		if id == 2 {
			e = errSecond
		}
		return &failingCloser{order: &order, id: id, err: e}, nil
	}).Build()
	require.NoError(t, err)

	scope := c.BeginLifetimeScope()
	for range 2 {
		_, err := Resolve[*failingCloser](scope)
		require.NoError(t, err)
	}

	err = scope.Close()
	assert.ErrorIs(t, err, errFirst)
	assert.ErrorIs(t, err, errSecond)
	assert.Equal(t, []int{2, 1}, order)
}
