// Package health aggregates dependency checks for the readiness probe.
package health

import (
	"context"
	"fmt"
	"time"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

type Service struct {
	checkers []Checker
}

func NewService(checkers ...Checker) *Service {
	return &Service{checkers: checkers}
}

// Ready runs the checkers in order and stops at the first failure.
func (s *Service) Ready(ctx context.Context) error {
	for _, ch := range s.checkers {
		if err := ch.Check(ctx); err != nil {
			return fmt.Errorf("%s: %w", ch.Name(), err)
		}
	}
	return nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

type PostgresChecker struct {
	pool pinger
}

func NewPostgresChecker(pool pinger) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

func (c *PostgresChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return c.pool.Ping(ctx)
}

// FuncChecker adapts a plain function.
type FuncChecker struct {
	CheckName string
	Fn        func(ctx context.Context) error
}

func (f FuncChecker) Name() string                    { return f.CheckName }
func (f FuncChecker) Check(ctx context.Context) error { return f.Fn(ctx) }
