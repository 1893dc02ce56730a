package model

// EffectEnum identifies an effect handler stored in a context.
type EffectEnum string

const (
	EffectLog EffectEnum = "fnkit_effect_enum_log"
)

type Partitionable interface {
	PartitionKey() string
}
