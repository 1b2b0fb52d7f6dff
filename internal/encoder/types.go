package encoder

// Field names a categorical column of the training data.
type Field string

const (
	FieldAnimal  Field = "Name"
	FieldSym1    Field = "Sym1"
	FieldSym2    Field = "Sym2"
	FieldSym3    Field = "Sym3"
	FieldSym4    Field = "Sym4"
	FieldSym5    Field = "Sym5"
	FieldDisease Field = "Disease"
	FieldDanger  Field = "Danger"
)

// Unknown is the code assigned to a symptom outside its slot's vocabulary.
const Unknown = -1

// SymptomFields lists the symptom slots in feature order.
var SymptomFields = []Field{FieldSym1, FieldSym2, FieldSym3, FieldSym4, FieldSym5}

// AllFields lists every field a bundle must provide.
var AllFields = []Field{
	FieldAnimal,
	FieldSym1, FieldSym2, FieldSym3, FieldSym4, FieldSym5,
	FieldDisease,
	FieldDanger,
}

// IsSymptom reports whether unknown labels in f are tolerated.
func (f Field) IsSymptom() bool {
	switch f {
	case FieldSym1, FieldSym2, FieldSym3, FieldSym4, FieldSym5:
		return true
	}
	return false
}
