package graphql

import (
	"github.com/iancoleman/strcase"
	"github.com/teamkeel/graphql"
)

// AttributeFields exposes snake_case backend attributes as camelCase fields.
// Sources are the decoded JSON objects returned by the backend.
func AttributeFields(attributes map[string]graphql.Output) graphql.Fields {
	fields := graphql.Fields{}
	for attribute, t := range attributes {
		fields[strcase.ToLowerCamel(attribute)] = &graphql.Field{
			Type:    t,
			Resolve: attributeResolver(attribute),
		}
	}
	return fields
}

func attributeResolver(attribute string) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		source, ok := p.Source.(map[string]any)
		if !ok {
			return nil, nil
		}
		return source[attribute], nil
	}
}

// MergeFields returns a new set of fields containing all of the given fields.
// Later sets win when names clash.
func MergeFields(sets ...graphql.Fields) graphql.Fields {
	merged := graphql.Fields{}
	for _, set := range sets {
		for name, field := range set {
			merged[name] = field
		}
	}
	return merged
}
