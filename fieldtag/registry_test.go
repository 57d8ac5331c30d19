package fieldtag

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryUniqueness(t *testing.T) {
	r := Default()
	seen := make(map[string]Field)
	for _, f := range r.Fields() {
		key, err := r.Lookup(f)
		require.NoError(t, err)
		prev, dup := seen[key]
		require.False(t, dup, "key %q bound to both %v and %v", key, prev, f)
		seen[key] = f
	}
	assert.Equal(t, r.Len(), len(seen))
}

func TestDefaultRegistryRoundTrip(t *testing.T) {
	r := Default()
	for _, f := range r.Fields() {
		key, err := r.Lookup(f)
		require.NoError(t, err)
		got, err := r.ReverseLookup(key)
		require.NoError(t, err)
		assert.Equal(t, f, got, "key %q", key)
	}
}

func TestRegistryStability(t *testing.T) {
	a := MustNew(Builtin()...)
	b := MustNew(Builtin()...)
	require.Equal(t, a.Len(), b.Len())
	assert.Equal(t, a.Keys(), b.Keys())
	for _, f := range a.Fields() {
		ka, err := a.Lookup(f)
		require.NoError(t, err)
		kb, err := b.Lookup(f)
		require.NoError(t, err)
		assert.Equal(t, ka, kb)
	}
}

func TestLookup(t *testing.T) {
	tt := []struct {
		field Field
		key   string
	}{
		{
			field: FieldOrderID,
			key:   "OrderId",
		},
		{
			field: FieldTakeProfit,
			key:   "TakeProfit",
		},
		{
			field: FieldCurrency,
			key:   "Currency",
		},
		{
			field: FieldAccountID,
			key:   "AccountId",
		},
		{
			field: FieldAveragePrice,
			key:   "AveragePrice",
		},
		{
			field: FieldCashBalance,
			key:   "CashBalance",
		},
		{
			field: FieldTickSize,
			key:   "TickSize",
		},
		{
			field: FieldRolloverInterestBuy,
			key:   "RolloverInterestBuy",
		},
		{
			field: FieldBarType,
			key:   "BarType",
		},
		{
			field: FieldFromDateTime,
			key:   "FromDateTime",
		},
		{
			field: FieldLogLevel,
			key:   "LogLevel",
		},
		{
			field: FieldThreadID,
			key:   "ThreadId",
		},
	}
	r := Default()
	for _, tc := range tt {
		key, err := r.Lookup(tc.field)
		require.NoError(t, err)
		assert.Equal(t, tc.key, key)
	}
}

func TestLookupUnknownField(t *testing.T) {
	_, err := Default().Lookup(Field(1 << 20))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownField))

	var ufe *UnknownFieldError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, Field(1<<20), ufe.Field)

	_, err = Default().Lookup(FieldUnknown)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownField))
}

func TestReverseLookup(t *testing.T) {
	f, err := Default().ReverseLookup("CashBalance")
	require.NoError(t, err)
	assert.Equal(t, FieldCashBalance, f)
}

func TestReverseLookupUnrecognizedKey(t *testing.T) {
	f, err := Default().ReverseLookup("NotARealKey")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnrecognizedKey))
	assert.Equal(t, FieldUnknown, f)

	var uke *UnrecognizedKeyError
	require.True(t, errors.As(err, &uke))
	assert.Equal(t, "NotARealKey", uke.Key)
}

func TestNewIdempotentRedefinition(t *testing.T) {
	// 同字段同键的重复注册按幂等处理, 历史上 Currency 曾在两个域中
	// 各定义一次且值相同
	dup := Schema{
		Group: GroupAccount,
		Entries: []Entry{
			{FieldCurrency, "Currency"},
		},
	}
	r, err := New(CommonSchema, dup)
	require.NoError(t, err)
	key, err := r.Lookup(FieldCurrency)
	require.NoError(t, err)
	assert.Equal(t, "Currency", key)
	// 首次注册的分组生效
	g, err := r.GroupOf(FieldCurrency)
	require.NoError(t, err)
	assert.Equal(t, GroupCommon, g)
}

func TestNewKeyCollision(t *testing.T) {
	bad := Schema{
		Group: GroupOrder,
		Entries: []Entry{
			{FieldPrice, "Price"},
			{FieldAveragePrice, "Price"},
		},
	}
	_, err := New(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCollision))
}

func TestNewFieldCollision(t *testing.T) {
	bad := Schema{
		Group: GroupOrder,
		Entries: []Entry{
			{FieldPrice, "Price"},
			{FieldPrice, "OrderPrice"},
		},
	}
	_, err := New(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCollision))
}

func TestNewInvalidEntry(t *testing.T) {
	tt := []struct {
		name   string
		schema Schema
	}{
		{
			name: "zero field",
			schema: Schema{
				Group:   GroupOrder,
				Entries: []Entry{{FieldUnknown, "Whatever"}},
			},
		},
		{
			name: "empty key",
			schema: Schema{
				Group:   GroupOrder,
				Entries: []Entry{{FieldPrice, ""}},
			},
		},
	}
	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.schema)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidEntry))
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	bad := Schema{
		Group: GroupOrder,
		Entries: []Entry{
			{FieldPrice, "Price"},
			{FieldAveragePrice, "Price"},
		},
	}
	assert.Panics(t, func() {
		MustNew(bad)
	})
}

func TestMustKey(t *testing.T) {
	assert.Equal(t, "OrderId", MustKey(FieldOrderID))
	assert.Panics(t, func() {
		MustKey(Field(1 << 20))
	})
}

func TestHas(t *testing.T) {
	r := Default()
	assert.True(t, r.Has("OrderId"))
	assert.False(t, r.Has("NotARealKey"))
}

func TestGroupOf(t *testing.T) {
	tt := []struct {
		field Field
		group Group
	}{
		{
			field: FieldCurrency,
			group: GroupCommon,
		},
		{
			field: FieldOrderID,
			group: GroupIdentity,
		},
		{
			field: FieldTakeProfit,
			group: GroupOrder,
		},
		{
			field: FieldMarginRatio,
			group: GroupAccount,
		},
		{
			field: FieldMinTradeSize,
			group: GroupInstrument,
		},
		{
			field: FieldToDateTime,
			group: GroupDataQuery,
		},
		{
			field: FieldLogText,
			group: GroupLog,
		},
	}
	r := Default()
	for _, tc := range tt {
		g, err := r.GroupOf(tc.field)
		require.NoError(t, err)
		assert.Equal(t, tc.group, g)
	}
}

func TestGroupFields(t *testing.T) {
	r := Default()
	logFields := r.GroupFields(GroupLog)
	assert.Equal(t, []Field{FieldLogLevel, FieldLogText, FieldThreadID}, logFields)

	total := 0
	for _, g := range []Group{GroupCommon, GroupIdentity, GroupOrder, GroupAccount, GroupInstrument, GroupDataQuery, GroupLog} {
		fields := r.GroupFields(g)
		assert.NotEmpty(t, fields, "group %s", g)
		total += len(fields)
	}
	assert.Equal(t, r.Len(), total)
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "OrderId", FieldOrderID.String())
	assert.Equal(t, "Field(1048576)", Field(1<<20).String())
}
