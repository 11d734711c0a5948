package model

import internalmodel "github.com/goliatone/go-buildergen/internal/model"

// Kind re-exports the internal slot classification.
type Kind = internalmodel.Kind

const (
	KindRequired = internalmodel.KindRequired
	KindOptional = internalmodel.KindOptional
	KindRepeated = internalmodel.KindRepeated
)

type Member = internalmodel.Member
type Import = internalmodel.Import
type Record = internalmodel.Record
