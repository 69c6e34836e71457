package model

// LabelKind identifies one of the open label vocabularies.
type LabelKind string

const (
	LabelKindCategory LabelKind = "category"
	LabelKindSector   LabelKind = "sector"
	LabelKindCustody  LabelKind = "custody"
)

// ValidLabelKind reports whether kind names a known vocabulary.
func ValidLabelKind(kind string) bool {
	switch LabelKind(kind) {
	case LabelKindCategory, LabelKindSector, LabelKindCustody:
		return true
	}
	return false
}

// Label is one entry of a label vocabulary. Names are deduplicated
// case-insensitively on add.
type Label struct {
	ID   string    `json:"id"`
	Kind LabelKind `json:"kind"`
	Name string    `json:"name"`
}
