// pkg/api/structures_v1.go
package api

// PairV1 is one base pair, 1-based, I < J.
type PairV1 struct {
	I int `json:"i"`
	J int `json:"j"`
}

// HelixV1 is the group of pairs accepted from one traceback.
type HelixV1 struct {
	Score int      `json:"score"`
	Pairs []PairV1 `json:"pairs"`
}

// StructureV1 is the stable JSON/JSONL schema for one folded sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StructureV1 struct {
	SequenceID  string    `json:"sequence_id"`
	Description string    `json:"description,omitempty"`
	SourceFile  string    `json:"source_file,omitempty"`
	Length      int       `json:"length"`
	Sequence    string    `json:"sequence"`
	Structure   string    `json:"structure"`
	Pairs       []PairV1  `json:"pairs"`
	Helices     []HelixV1 `json:"helices,omitempty"`
	Iterations  int       `json:"iterations"`
	Crossing    bool      `json:"crossing,omitempty"`
}
