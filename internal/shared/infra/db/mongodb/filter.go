package mongodb

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
)

// CriteriaToFilter traduce el modelo neutral de criterios al filtro de MongoDB.
// Un CompositeCriteria con operador OR se traduce a $or; el resto en AND.
func CriteriaToFilter(criteria sharedDomain.Criteria) bson.D {
	if criteria == nil {
		return bson.D{}
	}

	if composite, ok := criteria.(sharedDomain.CompositeCriteria); ok && composite.Operator == sharedDomain.OpOr {
		conds := composite.ToConditions()
		if len(conds) == 0 {
			return bson.D{}
		}
		ors := bson.A{}
		for _, c := range conds {
			ors = append(ors, bson.M{c.Field: conditionValue(c)})
		}
		return bson.D{{Key: "$or", Value: ors}}
	}

	conds := criteria.ToConditions()
	if len(conds) == 0 {
		return bson.D{}
	}

	filter := bson.D{}
	for _, c := range conds {
		filter = append(filter, bson.E{Key: c.Field, Value: conditionValue(c)})
	}
	return filter
}

// conditionValue mapea operadores genéricos a operadores de MongoDB.
func conditionValue(c sharedDomain.Criterion) bson.M {
	var mongoOp string
	switch c.Op {
	case sharedDomain.OpEq:
		mongoOp = "$eq"
	case sharedDomain.OpNe:
		mongoOp = "$ne"
	case sharedDomain.OpGt:
		mongoOp = "$gt"
	case sharedDomain.OpGte:
		mongoOp = "$gte"
	case sharedDomain.OpLt:
		mongoOp = "$lt"
	case sharedDomain.OpLte:
		mongoOp = "$lte"
	case sharedDomain.OpLike, sharedDomain.OpILike:
		mongoOp = "$regex"
	default:
		mongoOp = "$eq" // Operador por defecto
	}

	// Para ILIKE añadimos la opción 'i' de insensibilidad a mayúsculas
	if c.Op == sharedDomain.OpILike {
		if s, ok := c.Value.(string); ok {
			return bson.M{mongoOp: strings.Trim(s, "%"), "$options": "i"}
		}
	}
	return bson.M{mongoOp: c.Value}
}

// FindOptions arma los options.Find de paginación y orden.
func FindOptions(pagination sharedDomain.Pagination, sort sharedDomain.Sort) *options.FindOptions {
	opts := options.Find()

	if p, ok := pagination.(sharedDomain.OffsetPagination); ok {
		opts.SetSkip(int64(p.Offset))
		opts.SetLimit(int64(p.Limit))
	}

	if sort.Field != "" {
		sortDir := 1 // Ascendente por defecto
		if sort.Desc {
			sortDir = -1 // Descendente
		}
		opts.SetSort(bson.D{{Key: sort.Field, Value: sortDir}})
	}

	return opts
}
