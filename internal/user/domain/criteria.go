package domain

import (
	sharedDomain "github.com/davicafu/bookcourier/internal/shared/domain"
)

// ---------------- Implementaciones concretas ----------------

// Filtrado por email exacto
type EmailCriteria struct {
	Email string
}

func (c EmailCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{{Field: "email", Op: sharedDomain.OpEq, Value: c.Email}}
}

// SearchTextCriteria busca el texto (regex case-insensitive) en nombre O email.
// Los adapters deben combinar estas condiciones con OR.
type SearchTextCriteria struct {
	Text string
}

func (c SearchTextCriteria) ToConditions() []sharedDomain.Criterion {
	return []sharedDomain.Criterion{
		{Field: "name", Op: sharedDomain.OpILike, Value: c.Text},
		{Field: "email", Op: sharedDomain.OpILike, Value: c.Text},
	}
}
