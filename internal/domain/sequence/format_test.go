//go:build unit

package sequence_test

import (
	"testing"

	"commission-tracker/internal/domain/sequence"
	"commission-tracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name   string
		prefix string
		number int64
		width  int
		want   string
		errIs  error
	}{
		{name: "success: pads to width", prefix: "FB", number: 7, width: 3, want: "FB-007"},
		{name: "success: exact width", prefix: "IG", number: 123, width: 3, want: "IG-123"},
		{name: "success: order width", prefix: "FB-001", number: 1, width: 2, want: "FB-001-01"},
		{name: "success: zero is allowed", prefix: "FB", number: 0, width: 3, want: "FB-000"},
		{name: "success: widens past width", prefix: "FB", number: 1000, width: 3, want: "FB-1000"},
		{name: "success: width one", prefix: "X", number: 42, width: 1, want: "X-42"},
		{name: "error: negative number", prefix: "FB", number: -1, width: 3, errIs: sequence.ErrNegativeNumber},
		{name: "error: zero width", prefix: "FB", number: 1, width: 0, errIs: sequence.ErrInvalidWidth},
		{name: "error: empty prefix", prefix: "", number: 1, width: 3, errIs: sequence.ErrEmptyPrefix},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sequence.Format(tc.prefix, tc.number, tc.width)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, errs.ErrValidation))
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSchemeFor(t *testing.T) {
	t.Run("success: campaign and order widths", func(t *testing.T) {
		c, err := sequence.SchemeFor(sequence.KindCampaign)
		require.NoError(t, err)
		assert.Equal(t, 3, c.Width)

		o, err := sequence.SchemeFor(sequence.KindOrder)
		require.NoError(t, err)
		assert.Equal(t, 2, o.Width)

		ref, err := o.Issue("IG-010", 12)
		require.NoError(t, err)
		assert.Equal(t, "IG-010-12", ref)
	})

	t.Run("error: unknown kind", func(t *testing.T) {
		_, err := sequence.SchemeFor("invoice")
		require.ErrorIs(t, err, sequence.ErrUnknownKind)
	})
}

func TestNewKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		ok   bool
	}{
		{name: "success: platform", in: "facebook", ok: true},
		{name: "success: campaign reference", in: "FB-001", ok: true},
		{name: "error: empty", in: ""},
		{name: "error: padded", in: " facebook"},
		{name: "error: too long", in: string(make([]byte, sequence.MaxKeyLength+1))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			k, err := sequence.NewKey(tc.in)
			if !tc.ok {
				require.ErrorIs(t, err, sequence.ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.in, k.String())
		})
	}
}
