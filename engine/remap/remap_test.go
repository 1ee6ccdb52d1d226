package remap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bridgeql-engine/bridgeql/engine/rules"
)

func TestFunctions(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		functions map[string]string
		want      string
	}{
		{
			"simple rename",
			"SELECT legacy_udf(x) FROM t",
			map[string]string{"legacy_udf": "bridge.udf"},
			"SELECT bridge.udf(x) FROM t",
		},
		{
			"identifier boundary respected",
			"SELECT foo(x), food(x) FROM t",
			map[string]string{"foo": "bar"},
			"SELECT bar(x), food(x) FROM t",
		},
		{
			"dotted source name",
			"SELECT proj.fn(x) FROM t",
			map[string]string{"proj.fn": "cat.fn"},
			"SELECT cat.fn(x) FROM t",
		},
		{
			"no rules",
			"SELECT foo(x) FROM t",
			nil,
			"SELECT foo(x) FROM t",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Functions(tt.text, tt.functions))
		})
	}
}

func TestTables(t *testing.T) {
	tm := rules.TableMapping{
		Projects: map[string]string{"proj": "cat"},
		Datasets: map[string]string{"ds": "sch"},
	}

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"single backtick form",
			"SELECT * FROM `proj.ds.tbl`",
			"SELECT * FROM cat.sch.tbl",
		},
		{
			"per-segment backtick form",
			"SELECT * FROM `proj`.`ds`.`tbl`",
			"SELECT * FROM cat.sch.tbl",
		},
		{
			"identity fallback for unmapped segments",
			"SELECT * FROM `other.ds.tbl`",
			"SELECT * FROM other.sch.tbl",
		},
		{
			"two-part reference untouched",
			"SELECT * FROM `ds.tbl`",
			"SELECT * FROM `ds.tbl`",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tables(tt.text, tm))
		})
	}
}

func TestApply(t *testing.T) {
	set := &rules.Set{
		Functions: map[string]string{"legacy_udf": "bridge_udf"},
		Tables: rules.TableMapping{
			Projects: map[string]string{"proj": "cat"},
		},
	}

	got := Apply("SELECT legacy_udf(x) FROM `proj.ds.tbl`", set)
	assert.Equal(t, "SELECT bridge_udf(x) FROM cat.ds.tbl", got)
}

func TestApply_EmptySetIsIdentity(t *testing.T) {
	text := "SELECT * FROM `proj.ds.tbl`"
	assert.Equal(t, text, Apply(text, rules.Empty()))
	assert.Equal(t, text, Apply(text, nil))
}
