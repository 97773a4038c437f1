//go:build unit

package order_test

import (
	"strings"
	"testing"
	"time"

	"commission-tracker/internal/domain/order"
	"commission-tracker/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDraft(t *testing.T) {
	t.Run("success: totals and commission with snapshot rate", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithRate(1250).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "FB-001-01", o.ReferenceID())
		assert.Equal(t, int64(5000), o.OrderTotal().Cents())
		assert.Equal(t, int64(625), o.CommissionAmount().Cents())
		assert.Equal(t, int32(1250), o.SnapshotRate().BasisPoints())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("success: order date is truncated to the day", func(t *testing.T) {
		b := builder.NewOrderBuilder()
		b.OrderDate = b.Today.Add(15 * time.Hour)
		o, err := b.BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, b.Today, o.OrderDate())
	})

	t.Run("success: counter key is the campaign reference", func(t *testing.T) {
		d, err := builder.NewOrderBuilder().BuildDraft()
		require.NoError(t, err)
		key, err := d.CounterKey()
		require.NoError(t, err)
		assert.Equal(t, "FB-001", key.String())
	})

	cases := []struct {
		name   string
		mutate func(*builder.OrderBuilder)
		errIs  error
	}{
		{"error: future date", func(b *builder.OrderBuilder) { b.OrderDate = b.Today.AddDate(0, 0, 1) }, order.ErrFutureOrderDate},
		{"error: missing date", func(b *builder.OrderBuilder) { b.OrderDate = time.Time{} }, order.ErrMissingDate},
		{"error: no items", func(b *builder.OrderBuilder) { b.Items = nil }, order.ErrNoValidItems},
		{"error: only blank items", func(b *builder.OrderBuilder) {
			b.Items = []order.ItemInput{{Name: "  ", Quantity: 1, UnitPrice: 100}, {Name: "Widget", Quantity: 0, UnitPrice: 100}}
		}, order.ErrNoValidItems},
		{"error: negative price", func(b *builder.OrderBuilder) {
			b.Items = []order.ItemInput{{Name: "Refund", Quantity: 1, UnitPrice: -1}}
		}, order.ErrNegativePrice},
		{"error: name too long", func(b *builder.OrderBuilder) {
			b.Items = []order.ItemInput{{Name: strings.Repeat("n", order.MaxItemNameLength+1), Quantity: 1, UnitPrice: 1}}
		}, order.ErrItemNameTooLong},
		{"error: too many items", func(b *builder.OrderBuilder) {
			b.Items = make([]order.ItemInput, order.MaxLineItems+1)
		}, order.ErrTooManyLineItems},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.NewOrderBuilder().With(tc.mutate).BuildDraft()
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestSanitizeItems(t *testing.T) {
	items, err := order.SanitizeItems([]order.ItemInput{
		{Name: "  Widget ", Quantity: 2, UnitPrice: 150},
		{Name: "", Quantity: 5, UnitPrice: 100},
		{Name: "Skipped", Quantity: -1, UnitPrice: 100},
		{Name: "Free sample", Quantity: 1, UnitPrice: 0},
	})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Widget", items[0].Name())
	assert.Equal(t, "Free sample", items[1].Name())
}

func TestOrderNumbering(t *testing.T) {
	for number, want := range map[int64]string{1: "FB-001-01", 99: "FB-001-99", 100: "FB-001-100"} {
		o, err := builder.NewOrderBuilder().With(func(b *builder.OrderBuilder) { b.Number = number }).BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, want, o.ReferenceID())
	}
}

func TestReplaceItems(t *testing.T) {
	later := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)

	t.Run("success: recomputes with the stored rate", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().WithRate(1000).BuildDomain()
		require.NoError(t, err)
		ref := o.ReferenceID()

		err = o.ReplaceItems([]order.ItemInput{{Name: "Bundle", Quantity: 3, UnitPrice: 3333}}, later)
		require.NoError(t, err)

		assert.Equal(t, int64(9999), o.OrderTotal().Cents())
		assert.Equal(t, int64(1000), o.CommissionAmount().Cents())
		assert.Equal(t, int32(1000), o.SnapshotRate().BasisPoints())
		assert.Equal(t, ref, o.ReferenceID())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("error: invalid items leave the order untouched", func(t *testing.T) {
		o, err := builder.NewOrderBuilder().BuildDomain()
		require.NoError(t, err)

		err = o.ReplaceItems([]order.ItemInput{{Name: "Bad", Quantity: 1, UnitPrice: -5}}, later)
		require.ErrorIs(t, err, order.ErrNegativePrice)
		assert.Equal(t, int64(5000), o.OrderTotal().Cents())
		assert.Len(t, o.Items(), 2)
	})
}
