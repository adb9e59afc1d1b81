package absence

import "fmt"

// Type is the kind of absence. Values beyond the ones named here are
// accepted verbatim; the Gateway owns the full catalogue.
type Type int

const (
	TypeVacation          Type = 1
	TypeIllness           Type = 2
	TypeOvertimeReduction Type = 3
	TypeSpecialLeave      Type = 4
)

var typeNames = map[Type]string{
	TypeVacation:          "vacation",
	TypeIllness:           "illness",
	TypeOvertimeReduction: "overtime reduction",
	TypeSpecialLeave:      "special leave",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type %d", int(t))
}
