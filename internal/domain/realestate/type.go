package realestate

// ===============================
// Real Estate Type
// ===============================

type Type string

const (
	TypeApartment Type = "APARTMENT"
	TypeBuilding  Type = "BUILDING"
)

func (t Type) IsValid() bool {
	return t == TypeApartment || t == TypeBuilding
}
