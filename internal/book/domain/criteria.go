package domain

import (
	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
)

// ---------------- Implementaciones concretas ----------------

// Filtrado por estado exacto
type StatusCriteria struct {
	Status BookStatus
}

func (c StatusCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "status", Op: sharedDomain.OpEq, Value: string(c.Status)}}
}

// Filtrado por email del dueño
type OwnerEmailCriteria struct {
	Email string
}

func (c OwnerEmailCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "ownerEmail", Op: sharedDomain.OpEq, Value: c.Email}}
}

// Filtrado por título, regex case-insensitive
type TitleLikeCriteria struct {
	Title string
}

func (c TitleLikeCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "title", Op: sharedDomain.OpILike, Value: c.Title}}
}
