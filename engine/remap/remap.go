// Package remap applies the externally configured identifier substitutions:
// function-name synonyms and three-part qualified table references.
package remap

import (
	"regexp"
	"sort"
	"strings"

	"github.com/bridgeql-engine/bridgeql/engine/rules"
)

// tableRef matches both backtick forms of a fully qualified reference:
// `project`.`dataset`.`table` and `project.dataset.table`
var tableRef = regexp.MustCompile(
	"`([\\w-]+)`\\.`([\\w-]+)`\\.`([\\w-]+)`|`([\\w-]+)\\.([\\w-]+)\\.([\\w-]+)`")

var wordName = regexp.MustCompile(`^\w+$`)

// Apply runs both remapping stages over the text
func Apply(text string, set *rules.Set) string {
	if set.IsEmpty() {
		return text
	}
	text = Functions(text, set.Functions)
	text = Tables(text, set.Tables)
	return text
}

// Functions replaces every occurrence of each mapped source function name
// with its target name. Names are matched at identifier boundaries and
// applied in sorted key order so output is deterministic.
func Functions(text string, functions map[string]string) string {
	if len(functions) == 0 {
		return text
	}

	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		target := functions[name]
		if wordName.MatchString(name) {
			re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
			text = re.ReplaceAllLiteralString(text, target)
			continue
		}
		// Names with non-word characters get no boundary anchoring
		text = strings.ReplaceAll(text, name, target)
	}
	return text
}

// Tables rewrites qualified references: each of the three segments resolves
// through its own mapping with identity fallback, and the result is emitted
// unquoted as catalog.schema.table.
func Tables(text string, tm rules.TableMapping) string {
	if len(tm.Projects) == 0 && len(tm.Datasets) == 0 && len(tm.Tables) == 0 {
		return text
	}

	return tableRef.ReplaceAllStringFunc(text, func(match string) string {
		groups := tableRef.FindStringSubmatch(match)
		project := firstOf(groups[1], groups[4])
		dataset := firstOf(groups[2], groups[5])
		table := firstOf(groups[3], groups[6])

		catalog := lookup(tm.Projects, project)
		schema := lookup(tm.Datasets, dataset)
		name := lookup(tm.Tables, table)

		return catalog + "." + schema + "." + name
	})
}

func firstOf(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// lookup resolves a segment with identity fallback
func lookup(m map[string]string, key string) string {
	if mapped, ok := m[key]; ok {
		return mapped
	}
	return key
}
