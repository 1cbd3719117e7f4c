package cdtarget

type RelationType string

const (
	RespondedExistence RelationType = "responded_existence"
	Coexistence        RelationType = "coexistence"
	Response           RelationType = "response"
	Precedence         RelationType = "precedence"
	Succession         RelationType = "succession"

	AlternateResponse   RelationType = "alternate_response"
	AlternatePrecedence RelationType = "alternate_precedence"
	AlternateSuccession RelationType = "alternate_succession"

	ChainResponse   RelationType = "chain_response"
	ChainPrecedence RelationType = "chain_precedence"
	ChainSuccession RelationType = "chain_succession"

	RespondedAbsence RelationType = "responded_absence"
	NotCoexistence   RelationType = "not_coexistence"
	NegResponse      RelationType = "neg_response"
	NegPrecedence    RelationType = "neg_precedence"
	NegSuccession    RelationType = "neg_succession"
	NegChainResponse RelationType = "neg_chain_response"

	Choice   RelationType = "choice"
	ExChoice RelationType = "Ex_choice"
)

// Notation is the line style a relation type is drawn with.
type Notation int

const (
	PlainNotation Notation = iota
	AlternateNotation
	ChainNotation
	NegatedNotation
)

var relationNotations = map[RelationType]Notation{
	RespondedExistence: PlainNotation,
	Coexistence:        PlainNotation,
	Response:           PlainNotation,
	Precedence:         PlainNotation,
	Succession:         PlainNotation,

	AlternateResponse:   AlternateNotation,
	AlternatePrecedence: AlternateNotation,
	AlternateSuccession: AlternateNotation,

	ChainResponse:   ChainNotation,
	ChainPrecedence: ChainNotation,
	ChainSuccession: ChainNotation,

	RespondedAbsence: NegatedNotation,
	NotCoexistence:   NegatedNotation,
	NegResponse:      NegatedNotation,
	NegPrecedence:    NegatedNotation,
	NegSuccession:    NegatedNotation,
	NegChainResponse: NegatedNotation,

	Choice:   PlainNotation,
	ExChoice: PlainNotation,
}

func (t RelationType) Known() bool {
	_, ok := relationNotations[t]
	return ok
}

func (t RelationType) IsNary() bool {
	return t == Choice || t == ExChoice
}

// Notation of an unknown type is PlainNotation.
func (t RelationType) Notation() Notation {
	return relationNotations[t]
}

// SideLineCount is how many parallel lines are drawn on each side of the main line.
func (n Notation) SideLineCount() int {
	switch n {
	case AlternateNotation:
		return 1
	case ChainNotation:
		return 2
	}
	return 0
}
