package otel_test

import (
	"context"
	"errors"
	"shoppinglist/config"
	"shoppinglist/infras/otel"
	"testing"

	"github.com/stretchr/testify/assert"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNewScopeWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "shoppinglist-test"

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "repository", "repository.shopping_list.GetAll")
	defer scope.End()

	span := oteltrace.SpanFromContext(ctx)
	assert.True(t, span.SpanContext().IsValid())

	assert.NotPanics(t, func() {
		scope.SetAttribute("query", "SELECT 1")
		scope.SetAttributes(map[string]any{
			"rows":    3,
			"ok":      true,
			"columns": []string{"id", "name"},
			"price":   2.5,
		})
		scope.AddEvent("done")
		scope.TraceIfError(nil)
		scope.TraceIfError(errors.New("boom"))
	})
}
