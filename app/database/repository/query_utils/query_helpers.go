package util

import (
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/uptrace/bun"
)

// StructToQueries decodes a filter struct into per-field conditions. Nil and
// zero fields tagged omitempty are skipped; slice values become IN clauses.
func StructToQueries(input any, alias string) (conds []string, args []any, err error) {
	output := make(map[string]any)
	if err = mapstructure.Decode(input, &output); err != nil {
		return nil, nil, err
	}
	if alias != "" {
		alias += "."
	}

	for key, value := range output {
		v := reflect.ValueOf(value)
		if v.Kind() == reflect.Array || v.Kind() == reflect.Slice {
			conds = append(conds, alias+key+" IN (?)")
			args = append(args, bun.In(value))
		} else {
			conds = append(conds, alias+key+" = ?")
			args = append(args, value)
		}
	}

	return conds, args, nil
}

func StructToConditions(input any, alias string) (condition string, args []any, err error) {
	conds, args, err := StructToQueries(input, alias)
	if err != nil {
		return "", nil, err
	}

	if len(conds) == 0 {
		return "", nil, nil
	}
	return strings.Join(conds, " AND "), args, nil
}

// ApplyConditions adds the conditions derived from a filter struct to a select query.
func ApplyConditions(query *bun.SelectQuery, filter any, alias string) (*bun.SelectQuery, error) {
	condition, args, err := StructToConditions(filter, alias)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		query = query.Where(condition, args...)
	}
	return query, nil
}
